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

// Package suggest derives a small ranked suggestion list from a live
// search query and manages keyboard-driven selection state over it.
package suggest

import (
	"strings"

	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/filters"
)

// MaxSuggestions caps the suggestion list length
const MaxSuggestions = 8

// NoSelection is the cursor sentinel meaning no suggestion is selected
const NoSelection = -1

// Suggestions returns up to MaxSuggestions books matching the query, in
// input order, using the same title/author/genre substring predicate as
// the filter pipeline. An empty or whitespace-only query suppresses
// suggestions entirely rather than matching everything.
func Suggestions(books []database.Book, query string) []database.Book {
	ret := []database.Book{}

	if strings.TrimSpace(query) == "" {
		return ret
	}

	for _, book := range books {
		if !filters.MatchesSearch(book, query) {
			continue
		}

		ret = append(ret, book)
		if len(ret) == MaxSuggestions {
			break
		}
	}

	return ret
}

// Controller holds the suggestion list and the keyboard selection state
// over it. The committed choice and the free-text query are independent
// pieces of state: confirming a suggestion sets the query text to the
// chosen title but nothing else.
type Controller struct {
	query       string
	suggestions []database.Book
	cursor      int
	choice      *database.Book
}

// NewController returns a controller with no query and no selection
func NewController() *Controller {
	return &Controller{cursor: NoSelection}
}

// SetQuery updates the query, recomputes the suggestion list from the
// given pool, and resets the cursor to no selection.
func (c *Controller) SetQuery(books []database.Book, query string) {
	c.query = query
	c.suggestions = Suggestions(books, query)
	c.cursor = NoSelection
}

// Query returns the current free-text query
func (c *Controller) Query() string {
	return c.query
}

// Suggestions returns the current suggestion list
func (c *Controller) Suggestions() []database.Book {
	return c.suggestions
}

// Cursor returns the current cursor position, NoSelection if none
func (c *Controller) Cursor() int {
	return c.cursor
}

// Next advances the cursor by one, clamped at the last index
func (c *Controller) Next() {
	if len(c.suggestions) == 0 {
		return
	}

	if c.cursor < len(c.suggestions)-1 {
		c.cursor++
	}
}

// Prev retreats the cursor by one, clamped at NoSelection
func (c *Controller) Prev() {
	if c.cursor > NoSelection {
		c.cursor--
	}
}

// Confirm commits the suggestion under the cursor as the chosen book,
// sets the query text to its title, and clears the suggestion list. It
// is a no-op unless the cursor references a valid index.
func (c *Controller) Confirm() (database.Book, bool) {
	if c.cursor <= NoSelection || c.cursor >= len(c.suggestions) {
		return database.Book{}, false
	}

	chosen := c.suggestions[c.cursor]
	c.choice = &chosen
	c.query = chosen.Title
	c.suggestions = nil
	c.cursor = NoSelection

	return chosen, true
}

// Dismiss clears the suggestion list and resets the cursor without
// committing a choice. It also serves as the handler for externally
// delivered cancellation, such as focus moving outside the control.
func (c *Controller) Dismiss() {
	c.suggestions = nil
	c.cursor = NoSelection
}

// Choice returns the committed choice, if any
func (c *Controller) Choice() (database.Book, bool) {
	if c.choice == nil {
		return database.Book{}, false
	}

	return *c.choice, true
}
