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

package presenters

import (
	"time"

	"github.com/litlens/litlens/pkg/server/database"
)

// Review is a result of PresentReview
type Review struct {
	UUID         string    `json:"uuid"`
	BookUUID     string    `json:"book_uuid"`
	CreatedAt    time.Time `json:"created_at"`
	UserUUID     string    `json:"user_uuid"`
	UserName     string    `json:"user_name"`
	UserAvatar   string    `json:"user_avatar"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	HelpfulCount int       `json:"helpful_count"`
	ReportCount  int       `json:"report_count"`
}

// PresentReview presents a review
func PresentReview(review database.Review) Review {
	return Review{
		UUID:         review.UUID,
		BookUUID:     review.BookUUID,
		CreatedAt:    FormatTS(review.CreatedAt),
		UserUUID:     review.User.UUID,
		UserName:     review.User.Name,
		UserAvatar:   review.User.Avatar,
		Rating:       review.Rating,
		Title:        review.Title,
		Content:      review.Content,
		HelpfulCount: review.HelpfulCount,
		ReportCount:  review.ReportCount,
	}
}

// PresentReviews presents reviews
func PresentReviews(reviews []database.Review) []Review {
	ret := []Review{}

	for _, review := range reviews {
		p := PresentReview(review)
		ret = append(ret, p)
	}

	return ret
}
