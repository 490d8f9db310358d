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

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/presenters"
	"github.com/litlens/litlens/pkg/server/testutils"
)

func TestCreateReview(t *testing.T) {
	dat := `{"rating": 4, "title": "Great read", "content": "Loved the worldbuilding."}`

	t.Run("valid", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), dat)
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusCreated, "")

		var record database.Review
		testutils.MustExec(t, db.Where("book_uuid = ?", book.UUID).First(&record), "finding review")
		assert.Equal(t, record.Rating, 4, "rating mismatch")
		assert.Equal(t, record.Title, "Great read", "title mismatch")

		// aggregates are recomputed in the same transaction
		var bookRecord database.Book
		testutils.MustExec(t, db.Where("uuid = ?", book.UUID).First(&bookRecord), "finding book")
		assert.Equal(t, bookRecord.Rating, 4.0, "aggregate rating mismatch")
		assert.Equal(t, bookRecord.TotalRatings, 1, "total ratings mismatch")
	})

	t.Run("duplicate", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), dat)
		res := testutils.HTTPAuthDo(t, db, req, user)
		assert.StatusCodeEquals(t, res, http.StatusCreated, "")

		req = testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), dat)
		res = testutils.HTTPAuthDo(t, db, req, user)
		assert.StatusCodeEquals(t, res, http.StatusConflict, "")
	})

	t.Run("invalid rating", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

		badDat := `{"rating": 6, "title": "Too good", "content": "off the scale"}`
		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), badDat)
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
	})

	t.Run("missing content", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
		book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

		badDat := `{"rating": 4, "title": "Great read"}`
		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), badDat)
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")

		var reviewCount int64
		testutils.MustExec(t, db.Model(&database.Review{}).Count(&reviewCount), "counting reviews")
		assert.Equal(t, reviewCount, int64(0), "reviewCount mismatch")
	})

	t.Run("guest", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), dat)
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
	})

	t.Run("nonexistent book", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		_, server := newTestEnv(t, db)

		user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/books/%s/reviews", testutils.MustUUID(t)), dat)
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
	})
}

func TestGetBookReviews(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	_, server := newTestEnv(t, db)

	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
	book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

	review := database.Review{
		UUID:     testutils.MustUUID(t),
		BookUUID: book.UUID,
		UserID:   user.ID,
		Rating:   5,
		Title:    "A classic",
		Content:  "Still holds up.",
	}
	testutils.MustExec(t, db.Save(&review), "preparing review")

	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/api/v3/books/%s/reviews", book.UUID), "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload []presenters.Review
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	assert.Equal(t, len(payload), 1, "review count mismatch")
	assert.Equal(t, payload[0].UUID, review.UUID, "uuid mismatch")
	assert.Equal(t, payload[0].UserUUID, user.UUID, "reviewer mismatch")
}

func TestMarkReviewHelpful(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	_, server := newTestEnv(t, db)

	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
	book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Sci-Fi"})

	review := database.Review{
		UUID:     testutils.MustUUID(t),
		BookUUID: book.UUID,
		UserID:   user.ID,
		Rating:   5,
	}
	testutils.MustExec(t, db.Save(&review), "preparing review")

	t.Run("existing review", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/reviews/%s/helpful", review.UUID), "")
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "")

		var payload presenters.Review
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			t.Fatal(errors.Wrap(err, "decoding payload"))
		}
		assert.Equal(t, payload.HelpfulCount, 1, "helpful count mismatch")
	})

	t.Run("nonexistent review", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v3/reviews/%s/helpful", testutils.MustUUID(t)), "")
		res := testutils.HTTPAuthDo(t, db, req, user)

		assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
	})
}
