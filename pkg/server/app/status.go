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
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isValidBookStatus(status string) bool {
	for _, s := range database.BookStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// UpsertBookStatusParams is the parameters for setting a reading status.
// Nil fields are left untouched on an existing record.
type UpsertBookStatusParams struct {
	Status   *string
	Favorite *bool
}

// UpsertBookStatus creates or updates the (user, book) reading status
// record. The first completion of a book bumps the book's read count.
// Statuses against demo catalog records are accepted but not persisted.
func (a *App) UpsertBookStatus(user database.User, id catalog.BookID, p UpsertBookStatusParams) (database.UserBookStatus, error) {
	if p.Status != nil && !isValidBookStatus(*p.Status) {
		return database.UserBookStatus{}, ErrInvalidBookStatus
	}

	status := database.UserBookStatus{
		UserID:   user.ID,
		BookUUID: id.String(),
	}
	if p.Status != nil {
		status.Status = *p.Status
	}
	if p.Favorite != nil {
		status.Favorite = *p.Favorite
	}

	if id.IsDemo() {
		return status, nil
	}

	tx := a.DB.Begin()

	var existing database.UserBookStatus
	err := tx.Where("user_id = ? AND book_uuid = ?", user.ID, id.UUID).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return database.UserBookStatus{}, errors.Wrap(err, "finding status")
	}

	wasCompleted := existing.Status == database.StatusCompleted

	if existing.ID != 0 {
		if p.Status != nil {
			existing.Status = *p.Status
		}
		if p.Favorite != nil {
			existing.Favorite = *p.Favorite
		}
		status = existing
	}

	if err := tx.Save(&status).Error; err != nil {
		tx.Rollback()
		return database.UserBookStatus{}, errors.Wrap(err, "saving status")
	}

	if !wasCompleted && status.Status == database.StatusCompleted {
		err := tx.Model(&database.Book{}).
			Where("uuid = ?", id.UUID).
			Update("read_count", gorm.Expr("read_count + 1")).Error
		if err != nil {
			tx.Rollback()
			return database.UserBookStatus{}, errors.Wrap(err, "incrementing read count")
		}
	}

	tx.Commit()

	return status, nil
}

// GetBookStatus returns the user's reading status for the given book.
// The zero value is returned when no record exists.
func (a *App) GetBookStatus(user database.User, id catalog.BookID) (database.UserBookStatus, error) {
	if id.IsDemo() {
		return database.UserBookStatus{UserID: user.ID, BookUUID: id.String()}, nil
	}

	var status database.UserBookStatus
	err := a.DB.Where("user_id = ? AND book_uuid = ?", user.ID, id.UUID).
		First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.UserBookStatus{UserID: user.ID, BookUUID: id.UUID}, nil
	} else if err != nil {
		return database.UserBookStatus{}, errors.Wrap(err, "finding status")
	}

	return status, nil
}

// GetUserHistory returns the books the user has completed or marked as
// favorite, used as the reference set for personalized recommendations
func (a *App) GetUserHistory(user database.User) ([]database.Book, error) {
	var statuses []database.UserBookStatus
	err := a.DB.
		Where("user_id = ? AND (status = ? OR favorite = ?)", user.ID, database.StatusCompleted, true).
		Order("updated_at DESC").
		Find(&statuses).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching statuses")
	}

	if len(statuses) == 0 {
		return []database.Book{}, nil
	}

	uuids := make([]string, 0, len(statuses))
	for _, s := range statuses {
		uuids = append(uuids, s.BookUUID)
	}

	var books []database.Book
	if err := a.DB.Where("uuid IN ?", uuids).Find(&books).Error; err != nil {
		return nil, errors.Wrap(err, "fetching history books")
	}

	return books, nil
}
