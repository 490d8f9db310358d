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

// Package operations provides fetch helpers shared between controllers
// and the application layer.
package operations

import (
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetBook retrieves a book by its identifier. Demo identifiers resolve
// against the built-in catalog without touching the database. The second
// return value reports whether the book was found.
func GetBook(db *gorm.DB, id catalog.BookID) (database.Book, bool, error) {
	zeroBook := database.Book{}

	if id.IsDemo() {
		for _, book := range catalog.Books() {
			if book.UUID == id.String() {
				return book, true, nil
			}
		}

		return zeroBook, false, nil
	}

	var book database.Book
	err := db.Where("books.uuid = ?", id.UUID).First(&book).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zeroBook, false, nil
	} else if err != nil {
		return zeroBook, false, errors.Wrap(err, "finding book")
	}

	return book, true, nil
}

// GetReview retrieves a review with its author preloaded
func GetReview(db *gorm.DB, uuid string) (database.Review, bool, error) {
	zeroReview := database.Review{}

	var review database.Review
	err := db.Where("reviews.uuid = ?", uuid).Preload("User").First(&review).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zeroReview, false, nil
	} else if err != nil {
		return zeroReview, false, errors.Wrap(err, "finding review")
	}

	return review, true, nil
}
