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

package jobs

import (
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/testutils"
)

func TestReconcile(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	user1 := testutils.SetupUserData(db, "alice@example.com", "pass1234")
	user2 := testutils.SetupUserData(db, "bob@example.com", "pass1234")

	// book with drifted aggregates
	book := testutils.SetupBookData(db, "Dune", "Frank Herbert", []string{"Science Fiction"})
	testutils.MustExec(t, db.Model(&book).Updates(map[string]interface{}{
		"rating":        1.0,
		"total_ratings": 99,
	}), "preparing drifted book")

	r1 := database.Review{
		UUID:     testutils.MustUUID(t),
		BookUUID: book.UUID,
		UserID:   user1.ID,
		Rating:   5,
	}
	testutils.MustExec(t, db.Save(&r1), "preparing r1")
	r2 := database.Review{
		UUID:     testutils.MustUUID(t),
		BookUUID: book.UUID,
		UserID:   user2.ID,
		Rating:   4,
	}
	testutils.MustExec(t, db.Save(&r2), "preparing r2")

	// discussion with a drifted reply count
	discussion := database.Discussion{
		UUID:       testutils.MustUUID(t),
		UserID:     user1.ID,
		Title:      "t1",
		Content:    "c1",
		Category:   "General",
		ReplyCount: 42,
	}
	testutils.MustExec(t, db.Save(&discussion), "preparing discussion")

	reply := database.DiscussionReply{
		UUID:           testutils.MustUUID(t),
		DiscussionUUID: discussion.UUID,
		UserID:         user2.ID,
		Content:        "reply",
	}
	testutils.MustExec(t, db.Save(&reply), "preparing reply")

	if err := Reconcile(db); err != nil {
		t.Fatal(err)
	}

	var gotBook database.Book
	testutils.MustExec(t, db.Where("uuid = ?", book.UUID).First(&gotBook), "finding book")
	assert.Equal(t, gotBook.Rating, 4.5, "rating mismatch")
	assert.Equal(t, gotBook.TotalRatings, 2, "total ratings mismatch")

	var gotDiscussion database.Discussion
	testutils.MustExec(t, db.Where("uuid = ?", discussion.UUID).First(&gotDiscussion), "finding discussion")
	assert.Equal(t, gotDiscussion.ReplyCount, 1, "reply count mismatch")

	t.Run("book with no reviews resets to zero", func(t *testing.T) {
		empty := testutils.SetupBookData(db, "Emma", "Jane Austen", []string{"Romance"})
		testutils.MustExec(t, db.Model(&empty).Updates(map[string]interface{}{
			"rating":        3.0,
			"total_ratings": 7,
		}), "preparing empty book")

		if err := Reconcile(db); err != nil {
			t.Fatal(err)
		}

		var got database.Book
		testutils.MustExec(t, db.Where("uuid = ?", empty.UUID).First(&got), "finding book")
		assert.Equal(t, got.Rating, 0.0, "rating mismatch")
		assert.Equal(t, got.TotalRatings, 0, "total ratings mismatch")
	})
}
