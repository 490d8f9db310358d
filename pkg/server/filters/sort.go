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

package filters

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/litlens/litlens/pkg/server/database"
)

// SortKey selects the single key to order books by
type SortKey string

const (
	// SortTitle orders by title, locale-aware ascending
	SortTitle SortKey = "title"
	// SortAuthor orders by author, locale-aware ascending
	SortAuthor SortKey = "author"
	// SortRating orders by rating, descending
	SortRating SortKey = "rating"
	// SortYear orders by published year, newest first
	SortYear SortKey = "year"
)

// Sort returns a new list ordered by the given key. The sort is stable:
// ties keep the input's relative order. An unknown key is a no-op
// returning the input order unchanged.
func Sort(books []database.Book, key SortKey) []database.Book {
	ret := make([]database.Book, len(books))
	copy(ret, books)

	switch key {
	case SortTitle:
		c := collate.New(language.English)
		sort.SliceStable(ret, func(i, j int) bool {
			return c.CompareString(ret[i].Title, ret[j].Title) < 0
		})
	case SortAuthor:
		c := collate.New(language.English)
		sort.SliceStable(ret, func(i, j int) bool {
			return c.CompareString(ret[i].Author, ret[j].Author) < 0
		})
	case SortRating:
		sort.SliceStable(ret, func(i, j int) bool {
			return ret[i].Rating > ret[j].Rating
		})
	case SortYear:
		sort.SliceStable(ret, func(i, j int) bool {
			return ret[i].PublishedYear > ret[j].PublishedYear
		})
	}

	return ret
}
