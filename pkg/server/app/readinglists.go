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
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateReadingListParams is the parameters for creating a reading list
type CreateReadingListParams struct {
	Name        string
	Description string
	Private     bool
}

// CreateReadingList creates a reading list for the given user
func (a *App) CreateReadingList(user database.User, p CreateReadingListParams) (database.ReadingList, error) {
	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.ReadingList{}, errors.Wrap(err, "generating uuid")
	}

	list := database.ReadingList{
		UUID:        uuid,
		UserID:      user.ID,
		Name:        p.Name,
		Description: p.Description,
		Private:     p.Private,
	}
	if err := a.DB.Create(&list).Error; err != nil {
		return database.ReadingList{}, errors.Wrap(err, "inserting reading list")
	}

	return list, nil
}

// GetUserReadingLists returns the reading lists owned by a user
func (a *App) GetUserReadingLists(user database.User) ([]database.ReadingList, error) {
	var lists []database.ReadingList
	err := a.DB.Where("user_id = ?", user.ID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("reading_list_items.position ASC")
		}).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching reading lists")
	}

	return lists, nil
}

// UpdateReadingListParams is the parameters for updating a reading list.
// Nil fields are left untouched.
type UpdateReadingListParams struct {
	Name        *string
	Description *string
	Private     *bool
}

// UpdateReadingList updates a reading list
func (a *App) UpdateReadingList(list database.ReadingList, p UpdateReadingListParams) (database.ReadingList, error) {
	if p.Name != nil {
		list.Name = *p.Name
	}
	if p.Description != nil {
		list.Description = *p.Description
	}
	if p.Private != nil {
		list.Private = *p.Private
	}

	if err := a.DB.Save(&list).Error; err != nil {
		return list, errors.Wrap(err, "saving reading list")
	}

	return list, nil
}

// DeleteReadingList deletes a reading list along with its items
func (a *App) DeleteReadingList(list database.ReadingList) error {
	tx := a.DB.Begin()

	if err := tx.Where("list_uuid = ?", list.UUID).Delete(&database.ReadingListItem{}).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting items")
	}
	if err := tx.Delete(&list).Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting reading list")
	}

	tx.Commit()

	return nil
}

// AddBookToList appends a book at the end of a reading list. Adding a
// book that is already on the list is a no-op.
func (a *App) AddBookToList(list database.ReadingList, id catalog.BookID) (database.ReadingListItem, error) {
	tx := a.DB.Begin()

	var existing database.ReadingListItem
	err := tx.Where("list_uuid = ? AND book_uuid = ?", list.UUID, id.String()).
		First(&existing).Error
	if err == nil {
		tx.Rollback()
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return database.ReadingListItem{}, errors.Wrap(err, "finding item")
	}

	var maxPos struct {
		Max int
	}
	err = tx.Model(&database.ReadingListItem{}).
		Select("COALESCE(MAX(position), 0) AS max").
		Where("list_uuid = ?", list.UUID).
		Scan(&maxPos).Error
	if err != nil {
		tx.Rollback()
		return database.ReadingListItem{}, errors.Wrap(err, "finding max position")
	}

	item := database.ReadingListItem{
		ListUUID: list.UUID,
		BookUUID: id.String(),
		Position: maxPos.Max + 1,
	}
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		return database.ReadingListItem{}, errors.Wrap(err, "inserting item")
	}

	tx.Commit()

	return item, nil
}

// RemoveBookFromList removes a book from a reading list
func (a *App) RemoveBookFromList(list database.ReadingList, id catalog.BookID) error {
	err := a.DB.Where("list_uuid = ? AND book_uuid = ?", list.UUID, id.String()).
		Delete(&database.ReadingListItem{}).Error
	if err != nil {
		return errors.Wrap(err, "deleting item")
	}

	return nil
}
