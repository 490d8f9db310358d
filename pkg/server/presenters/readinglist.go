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

package presenters

import (
	"time"

	"github.com/litlens/litlens/pkg/server/database"
)

// ReadingList is a result of PresentReadingList
type ReadingList struct {
	UUID        string    `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	BookUUIDs   []string  `json:"book_uuids"`
	Books       []Book    `json:"books,omitempty"`
}

// PresentReadingList presents a reading list. Items are assumed to be
// preloaded in position order.
func PresentReadingList(list database.ReadingList) ReadingList {
	bookUUIDs := []string{}
	for _, item := range list.Items {
		bookUUIDs = append(bookUUIDs, item.BookUUID)
	}

	return ReadingList{
		UUID:        list.UUID,
		CreatedAt:   FormatTS(list.CreatedAt),
		UpdatedAt:   FormatTS(list.UpdatedAt),
		Name:        list.Name,
		Description: list.Description,
		Private:     list.Private,
		BookUUIDs:   bookUUIDs,
	}
}

// ReadingListItem is a result of PresentReadingListItem
type ReadingListItem struct {
	ListUUID string `json:"list_uuid"`
	BookUUID string `json:"book_uuid"`
	Position int    `json:"position"`
}

// PresentReadingListItem presents a reading list item
func PresentReadingListItem(item database.ReadingListItem) ReadingListItem {
	return ReadingListItem{
		ListUUID: item.ListUUID,
		BookUUID: item.BookUUID,
		Position: item.Position,
	}
}

// PresentReadingLists presents reading lists
func PresentReadingLists(lists []database.ReadingList) []ReadingList {
	ret := []ReadingList{}

	for _, list := range lists {
		p := PresentReadingList(list)
		ret = append(ret, p)
	}

	return ret
}
