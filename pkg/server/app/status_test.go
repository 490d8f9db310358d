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
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/testutils"
	"github.com/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestUpsertBookStatus(t *testing.T) {
	t.Run("creates and updates a single record per pair", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(a.DB, "Dune", "Frank Herbert", []string{"Science Fiction"})
		id := catalog.ParseBookID(book.UUID)

		if _, err := a.UpsertBookStatus(user, id, UpsertBookStatusParams{Status: strPtr(database.StatusReading)}); err != nil {
			t.Fatal(err)
		}
		if _, err := a.UpsertBookStatus(user, id, UpsertBookStatusParams{Favorite: boolPtr(true)}); err != nil {
			t.Fatal(err)
		}

		var count int64
		testutils.MustExec(t, a.DB.Model(&database.UserBookStatus{}).Count(&count), "counting statuses")
		assert.Equal(t, count, int64(1), "status count mismatch")

		got, err := a.GetBookStatus(user, id)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, got.Status, database.StatusReading, "status should survive favorite update")
		assert.Equal(t, got.Favorite, true, "favorite mismatch")
	})

	t.Run("first completion bumps the read count once", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(a.DB, "Dune", "Frank Herbert", []string{"Science Fiction"})
		id := catalog.ParseBookID(book.UUID)

		if _, err := a.UpsertBookStatus(user, id, UpsertBookStatusParams{Status: strPtr(database.StatusCompleted)}); err != nil {
			t.Fatal(err)
		}
		if _, err := a.UpsertBookStatus(user, id, UpsertBookStatusParams{Status: strPtr(database.StatusCompleted)}); err != nil {
			t.Fatal(err)
		}

		var got database.Book
		testutils.MustExec(t, a.DB.Where("uuid = ?", book.UUID).First(&got), "finding book")
		assert.Equal(t, got.ReadCount, 1, "read count mismatch")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(a.DB, "Dune", "Frank Herbert", []string{"Science Fiction"})

		_, err := a.UpsertBookStatus(user, catalog.ParseBookID(book.UUID), UpsertBookStatusParams{Status: strPtr("abandoned")})
		assert.Equal(t, errors.Cause(err), ErrInvalidBookStatus, "error mismatch")
	})

	t.Run("demo book is not persisted", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")

		status, err := a.UpsertBookStatus(user, catalog.ParseBookID("1"), UpsertBookStatusParams{Status: strPtr(database.StatusReading)})
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, status.Status, database.StatusReading, "status mismatch")

		var count int64
		testutils.MustExec(t, a.DB.Model(&database.UserBookStatus{}).Count(&count), "counting statuses")
		assert.Equal(t, count, int64(0), "status count mismatch")
	})
}

func TestGetUserHistory(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")
	b1 := testutils.SetupBookData(a.DB, "Dune", "Frank Herbert", []string{"Science Fiction"})
	b2 := testutils.SetupBookData(a.DB, "Emma", "Jane Austen", []string{"Romance"})
	b3 := testutils.SetupBookData(a.DB, "Contact", "Carl Sagan", []string{"Science Fiction"})

	if _, err := a.UpsertBookStatus(user, catalog.ParseBookID(b1.UUID), UpsertBookStatusParams{Status: strPtr(database.StatusCompleted)}); err != nil {
		t.Fatal(err)
	}
	if _, err := a.UpsertBookStatus(user, catalog.ParseBookID(b2.UUID), UpsertBookStatusParams{Favorite: boolPtr(true)}); err != nil {
		t.Fatal(err)
	}
	if _, err := a.UpsertBookStatus(user, catalog.ParseBookID(b3.UUID), UpsertBookStatusParams{Status: strPtr(database.StatusWantToRead)}); err != nil {
		t.Fatal(err)
	}

	history, err := a.GetUserHistory(user)
	if err != nil {
		t.Fatal(err)
	}

	// completed and favorite books count; want_to_read does not
	assert.Equal(t, len(history), 2, "history size mismatch")
}
