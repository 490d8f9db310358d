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

// Package jobs provides background jobs that reconcile denormalized
// counters with the rows they summarize.
package jobs

import (
	"math"

	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"gorm.io/gorm"
)

// RecomputeBookAggregates re-derives Rating and TotalRatings for every
// book from its persisted reviews
func RecomputeBookAggregates(db *gorm.DB) error {
	var books []database.Book
	if err := db.Find(&books).Error; err != nil {
		return errors.Wrap(err, "fetching books")
	}

	for _, book := range books {
		var result struct {
			Avg   float64
			Count int64
		}
		err := db.Model(&database.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("book_uuid = ?", book.UUID).
			Scan(&result).Error
		if err != nil {
			return errors.Wrapf(err, "aggregating reviews for %s", book.UUID)
		}

		rating := math.Round(result.Avg*10) / 10

		err = db.Model(&database.Book{}).
			Where("uuid = ?", book.UUID).
			Updates(map[string]interface{}{
				"rating":        rating,
				"total_ratings": result.Count,
			}).Error
		if err != nil {
			return errors.Wrapf(err, "updating aggregates for %s", book.UUID)
		}
	}

	return nil
}

// RecomputeReplyCounts re-derives ReplyCount for every discussion from
// its persisted replies
func RecomputeReplyCounts(db *gorm.DB) error {
	var discussions []database.Discussion
	if err := db.Find(&discussions).Error; err != nil {
		return errors.Wrap(err, "fetching discussions")
	}

	for _, discussion := range discussions {
		var count int64
		err := db.Model(&database.DiscussionReply{}).
			Where("discussion_uuid = ?", discussion.UUID).
			Count(&count).Error
		if err != nil {
			return errors.Wrapf(err, "counting replies for %s", discussion.UUID)
		}

		err = db.Model(&database.Discussion{}).
			Where("uuid = ?", discussion.UUID).
			Update("reply_count", count).Error
		if err != nil {
			return errors.Wrapf(err, "updating reply count for %s", discussion.UUID)
		}
	}

	return nil
}

// Reconcile runs all counter reconciliations once
func Reconcile(db *gorm.DB) error {
	if err := RecomputeBookAggregates(db); err != nil {
		return errors.Wrap(err, "recomputing book aggregates")
	}
	if err := RecomputeReplyCounts(db); err != nil {
		return errors.Wrap(err, "recomputing reply counts")
	}

	return nil
}

// Runner schedules the reconcile job
type Runner struct {
	DB       *gorm.DB
	Schedule string
	c        *cron.Cron
}

// NewRunner creates a runner with the default hourly schedule
func NewRunner(db *gorm.DB) *Runner {
	return &Runner{
		DB:       db,
		Schedule: "@hourly",
	}
}

// Do starts the cron scheduler
func (r *Runner) Do() error {
	c := cron.New()

	err := c.AddFunc(r.Schedule, func() {
		if err := Reconcile(r.DB); err != nil {
			log.ErrorWrap(err, "reconciling counters")
			return
		}

		log.Info("reconciled denormalized counters")
	})
	if err != nil {
		return errors.Wrap(err, "scheduling reconcile job")
	}

	c.Start()
	r.c = c

	return nil
}

// Stop stops the cron scheduler
func (r *Runner) Stop() {
	if r.c != nil {
		r.c.Stop()
	}
}
