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
	"math"

	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RecomputeBookAggregates re-derives the denormalized rating average and
// total rating count for the given book from its persisted reviews. It
// must run inside the same transaction as the review write so that the
// counters never drift from the rows they summarize.
func RecomputeBookAggregates(tx *gorm.DB, bookUUID string) error {
	var result struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&database.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("book_uuid = ?", bookUUID).
		Scan(&result).Error
	if err != nil {
		return errors.Wrap(err, "aggregating reviews")
	}

	rating := math.Round(result.Avg*10) / 10

	err = tx.Model(&database.Book{}).
		Where("uuid = ?", bookUUID).
		Updates(map[string]interface{}{
			"rating":        rating,
			"total_ratings": result.Count,
		}).Error
	if err != nil {
		return errors.Wrap(err, "updating book aggregates")
	}

	return nil
}

// CreateReviewParams is the parameters for creating a review
type CreateReviewParams struct {
	Rating  int
	Title   string
	Content string
}

// CreateReview creates a review for the given book and updates the
// book's denormalized aggregates in the same transaction. A user can
// review a book at most once. Reviews against demo catalog records are
// accepted but not persisted.
func (a *App) CreateReview(user database.User, id catalog.BookID, p CreateReviewParams) (database.Review, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return database.Review{}, ErrInvalidRating
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Review{}, errors.Wrap(err, "generating uuid")
	}

	review := database.Review{
		UUID:     uuid,
		BookUUID: id.String(),
		UserID:   user.ID,
		User:     user,
		Rating:   p.Rating,
		Title:    p.Title,
		Content:  p.Content,
	}

	if id.IsDemo() {
		return review, nil
	}

	tx := a.DB.Begin()

	var count int64
	err = tx.Model(&database.Review{}).
		Where("book_uuid = ? AND user_id = ?", id.UUID, user.ID).
		Count(&count).Error
	if err != nil {
		tx.Rollback()
		return database.Review{}, errors.Wrap(err, "counting reviews")
	}
	if count > 0 {
		tx.Rollback()
		return database.Review{}, ErrDuplicateReview
	}

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return database.Review{}, errors.Wrap(err, "inserting review")
	}

	if err := RecomputeBookAggregates(tx, id.UUID); err != nil {
		tx.Rollback()
		return database.Review{}, errors.Wrap(err, "recomputing aggregates")
	}

	tx.Commit()

	return review, nil
}

// GetBookReviews returns the reviews for the given book, newest first
func (a *App) GetBookReviews(id catalog.BookID) ([]database.Review, error) {
	if id.IsDemo() {
		return []database.Review{}, nil
	}

	var reviews []database.Review
	err := a.DB.Where("book_uuid = ?", id.UUID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetching reviews")
	}

	return reviews, nil
}

// MarkReviewHelpful bumps the helpful counter of the given review
func (a *App) MarkReviewHelpful(reviewUUID string) (database.Review, error) {
	var review database.Review
	err := a.DB.Where("uuid = ?", reviewUUID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Review{}, ErrNotFound
	} else if err != nil {
		return database.Review{}, errors.Wrap(err, "finding review")
	}

	err = a.DB.Model(&review).
		Update("helpful_count", gorm.Expr("helpful_count + 1")).Error
	if err != nil {
		return database.Review{}, errors.Wrap(err, "incrementing helpful count")
	}

	review.HelpfulCount++

	return review, nil
}
