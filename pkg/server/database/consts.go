/* Copyright 2025 LitLens Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

const (
	// TokenTypeResetPassword is a type of a token for reseting password
	TokenTypeResetPassword = "reset_password"
)

const (
	// RoleUser is the default role for a user
	RoleUser = "user"
	// RoleAdmin is the role for an administrator
	RoleAdmin = "admin"
)

const (
	// StatusReading indicates that the user is currently reading the book
	StatusReading = "reading"
	// StatusCompleted indicates that the user has finished the book
	StatusCompleted = "completed"
	// StatusWantToRead indicates that the user wants to read the book
	StatusWantToRead = "want_to_read"
)

const (
	// ReportTargetReview is a report target type for a review
	ReportTargetReview = "review"
	// ReportTargetDiscussion is a report target type for a discussion
	ReportTargetDiscussion = "discussion"
	// ReportTargetReply is a report target type for a discussion reply
	ReportTargetReply = "reply"
)

const (
	// ReportStatusPending is the initial status of a report
	ReportStatusPending = "pending"
	// ReportStatusReviewed indicates that a moderator has reviewed the report
	ReportStatusReviewed = "reviewed"
	// ReportStatusDismissed indicates that the report was dismissed
	ReportStatusDismissed = "dismissed"
	// ReportStatusActionTaken indicates that moderation action was taken
	ReportStatusActionTaken = "action_taken"
)

// ReportReasons is the fixed enumeration of valid report reasons
var ReportReasons = []string{
	"spam",
	"harassment",
	"inappropriate",
	"misinformation",
	"off_topic",
	"other",
}

// ReportStatuses is the set of valid report statuses
var ReportStatuses = []string{
	ReportStatusPending,
	ReportStatusReviewed,
	ReportStatusDismissed,
	ReportStatusActionTaken,
}

// BookStatuses is the set of valid per-book reading statuses
var BookStatuses = []string{
	StatusReading,
	StatusCompleted,
	StatusWantToRead,
}
