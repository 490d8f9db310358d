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

package suggest

import (
	"fmt"
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/database"
)

func poolOf(n int) []database.Book {
	ret := []database.Book{}
	for i := 0; i < n; i++ {
		ret = append(ret, database.Book{
			UUID:  fmt.Sprintf("b%d", i),
			Title: fmt.Sprintf("Widget Book %d", i),
		})
	}

	return ret
}

func TestSuggestions(t *testing.T) {
	pool := []database.Book{
		{UUID: "b1", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b2", Title: "1984", Author: "George Orwell", Genre: database.StringList{"Dystopian Fiction"}},
		{UUID: "b3", Title: "Gone Girl", Author: "Gillian Flynn", Genre: database.StringList{"Thriller"}},
	}

	t.Run("matches title author and genre", func(t *testing.T) {
		got := Suggestions(pool, "fiction")

		assert.Equal(t, len(got), 2, "suggestion count mismatch")
		assert.Equal(t, got[0].Title, "Dune", "first suggestion mismatch")
		assert.Equal(t, got[1].Title, "1984", "second suggestion mismatch")
	})

	t.Run("empty query yields empty list", func(t *testing.T) {
		got := Suggestions(pool, "")

		assert.Equal(t, len(got), 0, "expected no suggestions")
	})

	t.Run("whitespace query yields empty list", func(t *testing.T) {
		got := Suggestions(pool, "   ")

		assert.Equal(t, len(got), 0, "expected no suggestions")
	})

	t.Run("truncates to max", func(t *testing.T) {
		got := Suggestions(poolOf(20), "widget")

		assert.Equal(t, len(got), MaxSuggestions, "suggestion cap mismatch")
		assert.Equal(t, got[0].UUID, "b0", "truncation must keep input order")
	})
}

func TestControllerNavigation(t *testing.T) {
	pool := poolOf(3)

	c := NewController()
	c.SetQuery(pool, "widget")

	assert.Equal(t, c.Cursor(), NoSelection, "initial cursor mismatch")

	// advance past the end; cursor clamps at the last index
	for i := 0; i < 10; i++ {
		c.Next()
	}
	assert.Equal(t, c.Cursor(), 2, "cursor must clamp at last index")

	// retreat past the start; cursor clamps at the sentinel
	for i := 0; i < 10; i++ {
		c.Prev()
	}
	assert.Equal(t, c.Cursor(), NoSelection, "cursor must clamp at sentinel")
}

func TestControllerConfirm(t *testing.T) {
	pool := poolOf(3)

	t.Run("no-op without selection", func(t *testing.T) {
		c := NewController()
		c.SetQuery(pool, "widget")

		_, ok := c.Confirm()

		assert.Equal(t, ok, false, "confirm at sentinel must be a no-op")
		assert.Equal(t, len(c.Suggestions()), 3, "suggestions must survive a no-op confirm")
	})

	t.Run("commits the selection", func(t *testing.T) {
		c := NewController()
		c.SetQuery(pool, "widget")
		c.Next()
		c.Next()

		chosen, ok := c.Confirm()

		assert.Equal(t, ok, true, "confirm failed")
		assert.Equal(t, chosen.UUID, "b1", "chosen book mismatch")
		assert.Equal(t, c.Query(), "Widget Book 1", "query must become the chosen title")
		assert.Equal(t, len(c.Suggestions()), 0, "suggestions must clear on confirm")
		assert.Equal(t, c.Cursor(), NoSelection, "cursor must reset on confirm")

		choice, ok := c.Choice()
		assert.Equal(t, ok, true, "choice not recorded")
		assert.Equal(t, choice.UUID, "b1", "recorded choice mismatch")
	})
}

func TestControllerDismiss(t *testing.T) {
	pool := poolOf(3)

	c := NewController()
	c.SetQuery(pool, "widget")
	c.Next()

	c.Dismiss()

	assert.Equal(t, len(c.Suggestions()), 0, "suggestions must clear on dismiss")
	assert.Equal(t, c.Cursor(), NoSelection, "cursor must reset on dismiss")
	assert.Equal(t, c.Query(), "widget", "dismiss must not touch the query")

	_, ok := c.Choice()
	assert.Equal(t, ok, false, "dismiss must not commit a choice")
}

func TestControllerQueryChangeResetsCursor(t *testing.T) {
	pool := poolOf(3)

	c := NewController()
	c.SetQuery(pool, "widget")
	c.Next()
	c.Next()

	c.SetQuery(pool, "widget book")

	assert.Equal(t, c.Cursor(), NoSelection, "cursor must reset on query change")
}
