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

// Package filters implements the multi-predicate book filter used by the
// browse, search, and home surfaces. All functions are pure: they never
// mutate their input and the same inputs always produce the same output,
// in the input's relative order.
package filters

import (
	"strconv"
	"strings"

	"github.com/litlens/litlens/pkg/server/database"
)

// Sentinel filter values meaning "no constraint"
const (
	AllGenres     = "All"
	AllYears      = "All Years"
	AllLanguages  = "All Languages"
	AllPublishers = "All Publishers"
)

// Year bucket labels
const (
	YearBucket2010s  = "2010-2014"
	YearBucket2000s  = "2000-2009"
	YearBucketBefore = "Before 2000"
)

// Filters is a set of independently-optional predicates. A zero value
// constrains nothing.
type Filters struct {
	SearchText   string
	Genre        string
	Author       string
	YearSelector string
	MinRating    float64
	Language     string
	Publisher    string
}

// Apply returns the books satisfying every active predicate, preserving
// the input order. Unrecognized filter values degrade to "no constraint"
// rather than erroring; rejecting the whole render over a malformed
// user-editable filter would be worse than showing unfiltered results.
func Apply(books []database.Book, f Filters) []database.Book {
	ret := []database.Book{}

	for _, book := range books {
		if !matches(book, f) {
			continue
		}

		ret = append(ret, book)
	}

	return ret
}

func matches(book database.Book, f Filters) bool {
	if !MatchesSearch(book, f.SearchText) {
		return false
	}
	if f.Genre != "" && f.Genre != AllGenres && !book.Genre.Contains(f.Genre) {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(book.Author), strings.ToLower(f.Author)) {
		return false
	}
	if !matchesYear(book.PublishedYear, f.YearSelector) {
		return false
	}
	if f.MinRating > 0 && book.Rating < f.MinRating {
		return false
	}
	if f.Language != "" && f.Language != AllLanguages && book.Language != f.Language {
		return false
	}
	if f.Publisher != "" && f.Publisher != AllPublishers && book.Publisher != f.Publisher {
		return false
	}

	return true
}

// MatchesSearch checks the book against a free-text query: a
// case-insensitive substring match against the title, the author, or any
// genre tag. An empty query matches everything.
func MatchesSearch(book database.Book, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(book.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Author), q) {
		return true
	}
	for _, tag := range book.Genre {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}

	return false
}

// matchesYear checks the published year against the year selector: a
// literal 4-digit year requires exact equality in its string form, a
// bucket label requires range membership, and anything unrecognized
// constrains nothing.
func matchesYear(year int, selector string) bool {
	switch selector {
	case "", AllYears:
		return true
	case YearBucket2010s:
		return year >= 2010 && year <= 2014
	case YearBucket2000s:
		return year >= 2000 && year <= 2009
	case YearBucketBefore:
		return year < 2000
	}

	if isLiteralYear(selector) {
		return strconv.Itoa(year) == selector
	}

	return true
}

func isLiteralYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
