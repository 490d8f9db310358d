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

package operations

import (
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/litlens/litlens/pkg/server/permissions"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetDiscussion retrieves a discussion with its author and replies
// preloaded. The second return value reports whether it was found.
func GetDiscussion(db *gorm.DB, uuid string) (database.Discussion, bool, error) {
	zeroDiscussion := database.Discussion{}
	if !helpers.ValidateUUID(uuid) {
		return zeroDiscussion, false, nil
	}

	var discussion database.Discussion
	err := db.Where("discussions.uuid = ?", uuid).
		Preload("User").
		Preload("Replies", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("discussion_replies.created_at ASC")
		}).
		Preload("Replies.User").
		First(&discussion).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zeroDiscussion, false, nil
	} else if err != nil {
		return zeroDiscussion, false, errors.Wrap(err, "finding discussion")
	}

	return discussion, true, nil
}

// GetReadingList retrieves a reading list for the given user. Private
// lists are visible to their owner only; not-found and forbidden are
// indistinguishable to the caller.
func GetReadingList(db *gorm.DB, uuid string, user *database.User) (database.ReadingList, bool, error) {
	zeroList := database.ReadingList{}
	if !helpers.ValidateUUID(uuid) {
		return zeroList, false, nil
	}

	var list database.ReadingList
	err := db.Where("reading_lists.uuid = ?", uuid).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("reading_list_items.position ASC")
		}).
		First(&list).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zeroList, false, nil
	} else if err != nil {
		return zeroList, false, errors.Wrap(err, "finding reading list")
	}

	if ok := permissions.ViewReadingList(user, list); !ok {
		return zeroList, false, nil
	}

	return list, true, nil
}
