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

package app

import (
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateDiscussionParams is the parameters for creating a discussion
type CreateDiscussionParams struct {
	Title    string
	Content  string
	Category string
	BookUUID string
}

// CreateDiscussion creates a discussion thread
func (a *App) CreateDiscussion(user database.User, p CreateDiscussionParams) (database.Discussion, error) {
	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Discussion{}, errors.Wrap(err, "generating uuid")
	}

	discussion := database.Discussion{
		UUID:     uuid,
		UserID:   user.ID,
		User:     user,
		Title:    p.Title,
		Content:  p.Content,
		Category: p.Category,
		BookUUID: p.BookUUID,
	}
	if err := a.DB.Create(&discussion).Error; err != nil {
		return database.Discussion{}, errors.Wrap(err, "inserting discussion")
	}

	return discussion, nil
}

// ListDiscussions returns discussions, newest first, optionally scoped
// to a category or a book
func (a *App) ListDiscussions(category, bookUUID string) ([]database.Discussion, error) {
	conn := a.DB.Preload("User").Order("created_at DESC")
	if category != "" {
		conn = conn.Where("category = ?", category)
	}
	if bookUUID != "" {
		conn = conn.Where("book_uuid = ?", bookUUID)
	}

	var discussions []database.Discussion
	if err := conn.Find(&discussions).Error; err != nil {
		return nil, errors.Wrap(err, "fetching discussions")
	}

	return discussions, nil
}

// CreateReply creates a reply in the given discussion and updates the
// discussion's denormalized reply count in the same transaction
func (a *App) CreateReply(user database.User, discussion database.Discussion, content string) (database.DiscussionReply, error) {
	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.DiscussionReply{}, errors.Wrap(err, "generating uuid")
	}

	reply := database.DiscussionReply{
		UUID:           uuid,
		DiscussionUUID: discussion.UUID,
		UserID:         user.ID,
		User:           user,
		Content:        content,
	}

	tx := a.DB.Begin()

	if err := tx.Create(&reply).Error; err != nil {
		tx.Rollback()
		return database.DiscussionReply{}, errors.Wrap(err, "inserting reply")
	}

	var count int64
	err = tx.Model(&database.DiscussionReply{}).
		Where("discussion_uuid = ?", discussion.UUID).
		Count(&count).Error
	if err != nil {
		tx.Rollback()
		return database.DiscussionReply{}, errors.Wrap(err, "counting replies")
	}

	err = tx.Model(&database.Discussion{}).
		Where("uuid = ?", discussion.UUID).
		Update("reply_count", count).Error
	if err != nil {
		tx.Rollback()
		return database.DiscussionReply{}, errors.Wrap(err, "updating reply count")
	}

	tx.Commit()

	return reply, nil
}

// GetReplyCount returns the persisted number of replies for a discussion
func GetReplyCount(db *gorm.DB, discussionUUID string) (int64, error) {
	var count int64
	err := db.Model(&database.DiscussionReply{}).
		Where("discussion_uuid = ?", discussionUUID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "counting replies")
	}

	return count, nil
}
