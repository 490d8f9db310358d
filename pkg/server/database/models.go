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

import (
	"time"
)

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Book is a model for a book in the catalog.
// Rating and TotalRatings are aggregates derived from reviews. They are
// recomputed in the same transaction as every review write and re-derived
// by the reconcile job, never incremented ad hoc.
type Book struct {
	Model
	UUID          string     `json:"uuid" gorm:"uniqueIndex;type:text"`
	Title         string     `json:"title" gorm:"index"`
	Author        string     `json:"author" gorm:"index"`
	CoverURL      string     `json:"cover_url"`
	Description   string     `json:"description"`
	Genre         StringList `json:"genre" gorm:"type:text"`
	Rating        float64    `json:"rating" gorm:"default:0"`
	TotalRatings  int        `json:"total_ratings" gorm:"default:0"`
	PublishedYear int        `json:"published_year"`
	Pages         int        `json:"pages"`
	ISBN          string     `json:"isbn"`
	Publisher     string     `json:"publisher"`
	Language      string     `json:"language"`
	ViewCount     int        `json:"view_count" gorm:"default:0"`
	ReadCount     int        `json:"read_count" gorm:"default:0"`
	Reviews       []Review   `json:"reviews" gorm:"foreignKey:BookUUID;references:UUID"`
}

// PrimaryGenre returns the first genre tag, or an empty string
func (b Book) PrimaryGenre() string {
	if len(b.Genre) == 0 {
		return ""
	}

	return b.Genre[0]
}

// Review is a model for a book review. A review is never edited or
// deleted by its author; the helpful counter and moderation state are
// the only mutations after creation.
type Review struct {
	Model
	UUID         string `json:"uuid" gorm:"uniqueIndex;type:text"`
	BookUUID     string `json:"book_uuid" gorm:"index;type:text"`
	UserID       int    `json:"user_id" gorm:"index"`
	User         User   `json:"user"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	HelpfulCount int    `json:"helpful_count" gorm:"default:0"`
	ReportCount  int    `json:"report_count" gorm:"default:0"`
}

// Discussion is a model for a community discussion thread.
// ReplyCount is a denormalized counter kept consistent with the
// persisted replies on every write and by the reconcile job.
type Discussion struct {
	Model
	UUID       string            `json:"uuid" gorm:"uniqueIndex;type:text"`
	UserID     int               `json:"user_id" gorm:"index"`
	User       User              `json:"user"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Category   string            `json:"category" gorm:"index"`
	BookUUID   string            `json:"book_uuid" gorm:"index;type:text"`
	ReplyCount int               `json:"reply_count" gorm:"default:0"`
	Replies    []DiscussionReply `json:"replies" gorm:"foreignKey:DiscussionUUID;references:UUID"`
}

// DiscussionReply is a model for a reply within a discussion
type DiscussionReply struct {
	Model
	UUID           string `json:"uuid" gorm:"uniqueIndex;type:text"`
	DiscussionUUID string `json:"discussion_uuid" gorm:"index;type:text"`
	UserID         int    `json:"user_id" gorm:"index"`
	User           User   `json:"user"`
	Content        string `json:"content"`
}

// Report is a model for a moderation report against a review, a
// discussion, or a reply. Created once per report action; only the
// status is mutated afterwards, by admins.
type Report struct {
	Model
	UUID        string `json:"uuid" gorm:"uniqueIndex;type:text"`
	TargetUUID  string `json:"target_uuid" gorm:"index;type:text"`
	TargetType  string `json:"target_type" gorm:"index"`
	ReporterID  int    `json:"reporter_id" gorm:"index"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"index;default:pending"`
}

// User is a model for a user
type User struct {
	Model
	UUID           string     `json:"uuid" gorm:"type:text;index"`
	Email          NullString `json:"-" gorm:"index"`
	Password       NullString `json:"-"`
	Name           string     `json:"name"`
	Username       string     `json:"username" gorm:"uniqueIndex"`
	Role           string     `json:"role" gorm:"default:user"`
	Avatar         string     `json:"avatar"`
	Bio            string     `json:"bio"`
	FavoriteGenres StringList `json:"favorite_genres" gorm:"type:text"`
	ReadingGoal    int        `json:"reading_goal" gorm:"default:0"`
	LastLoginAt    *time.Time `json:"-"`
}

// UserBookStatus is a model for a user's per-book reading status.
// The pair (user, book) is unique; Status is one of the StatusX consts
// and the favorite flag is independent of the reading status.
type UserBookStatus struct {
	Model
	UserID   int    `json:"user_id" gorm:"index;uniqueIndex:idx_user_book"`
	BookUUID string `json:"book_uuid" gorm:"type:text;uniqueIndex:idx_user_book"`
	Status   string `json:"status"`
	Favorite bool   `json:"favorite" gorm:"default:false"`
}

// ReadingList is a model for a user-curated reading list
type ReadingList struct {
	Model
	UUID        string            `json:"uuid" gorm:"uniqueIndex;type:text"`
	UserID      int               `json:"user_id" gorm:"index"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Private     bool              `json:"private" gorm:"default:false"`
	Items       []ReadingListItem `json:"items" gorm:"foreignKey:ListUUID;references:UUID"`
}

// ReadingListItem is an ordered book reference within a reading list
type ReadingListItem struct {
	Model
	ListUUID string `json:"list_uuid" gorm:"index;type:text"`
	BookUUID string `json:"book_uuid" gorm:"index;type:text"`
	Position int    `json:"position"`
}

// Token is a model for a token
type Token struct {
	Model
	UserID int    `gorm:"index"`
	Value  string `gorm:"index"`
	Type   string
	UsedAt *time.Time
}

// Session represents a user session
type Session struct {
	Model
	UserID     int    `gorm:"index"`
	Key        string `gorm:"index"`
	LastUsedAt time.Time
	ExpiresAt  time.Time
}
