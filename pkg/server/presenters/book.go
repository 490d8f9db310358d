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
	"github.com/litlens/litlens/pkg/server/recommend"
)

// Book is a result of PresentBook
type Book struct {
	UUID          string    `json:"uuid"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	CoverURL      string    `json:"cover_url"`
	Description   string    `json:"description"`
	Genre         []string  `json:"genre"`
	Rating        float64   `json:"rating"`
	TotalRatings  int       `json:"total_ratings"`
	PublishedYear int       `json:"published_year"`
	Pages         int       `json:"pages"`
	ISBN          string    `json:"isbn"`
	Publisher     string    `json:"publisher"`
	Language      string    `json:"language"`
	ViewCount     int       `json:"view_count"`
	ReadCount     int       `json:"read_count"`
	Reviews       []Review  `json:"reviews,omitempty"`
	UserRating    *int      `json:"user_rating,omitempty"`
}

// PresentBook presents a book
func PresentBook(book database.Book) Book {
	return Book{
		UUID:          book.UUID,
		CreatedAt:     FormatTS(book.CreatedAt),
		UpdatedAt:     FormatTS(book.UpdatedAt),
		Title:         book.Title,
		Author:        book.Author,
		CoverURL:      book.CoverURL,
		Description:   book.Description,
		Genre:         presentGenre(book.Genre),
		Rating:        book.Rating,
		TotalRatings:  book.TotalRatings,
		PublishedYear: book.PublishedYear,
		Pages:         book.Pages,
		ISBN:          book.ISBN,
		Publisher:     book.Publisher,
		Language:      book.Language,
		ViewCount:     book.ViewCount,
		ReadCount:     book.ReadCount,
	}
}

// PresentBooks presents books
func PresentBooks(books []database.Book) []Book {
	ret := []Book{}

	for _, book := range books {
		p := PresentBook(book)
		ret = append(ret, p)
	}

	return ret
}

// Recommendation is a ranked book with its justification
type Recommendation struct {
	Book   Book   `json:"book"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// PresentRecommendation presents a recommendation
func PresentRecommendation(rec recommend.Recommendation) Recommendation {
	return Recommendation{
		Book:   PresentBook(rec.Book),
		Score:  rec.Score,
		Reason: rec.Reason,
	}
}

// PresentRecommendations presents recommendations
func PresentRecommendations(recs []recommend.Recommendation) []Recommendation {
	ret := []Recommendation{}

	for _, rec := range recs {
		p := PresentRecommendation(rec)
		ret = append(ret, p)
	}

	return ret
}
