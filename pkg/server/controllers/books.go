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
	"net/http"

	"github.com/gorilla/mux"

	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/context"
	"github.com/litlens/litlens/pkg/server/filters"
	"github.com/litlens/litlens/pkg/server/log"
	"github.com/litlens/litlens/pkg/server/operations"
	"github.com/litlens/litlens/pkg/server/presenters"
	"github.com/litlens/litlens/pkg/server/suggest"
)

// defaultPageSize is the number of books per listing page when the
// client does not specify a limit
const defaultPageSize = 20

// NewBooks creates a new Books controller
func NewBooks(app *app.App) *Books {
	return &Books{app: app}
}

// Books is a book controller
type Books struct {
	app *app.App
}

// BookListResponse is the response shape for the book listing
type BookListResponse struct {
	Books []presenters.Book `json:"books"`
	Total int               `json:"total"`
}

// Index handles GET /books
func (b *Books) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := filters.Filters{
		SearchText:   q.Get("q"),
		Genre:        q.Get("genre"),
		Author:       q.Get("author"),
		YearSelector: q.Get("year"),
		MinRating:    parseFloatQuery(r, "min_rating", 0),
		Language:     q.Get("language"),
		Publisher:    q.Get("publisher"),
	}
	sortKey := filters.SortKey(q.Get("sort"))
	limit := parseIntQuery(r, "limit", defaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	books, total, err := b.app.ListBooks(f, sortKey, limit, offset)
	if err != nil {
		handleJSONError(w, err, "listing books")
		return
	}

	respondJSON(w, http.StatusOK, BookListResponse{
		Books: presenters.PresentBooks(books),
		Total: total,
	})
}

// Show handles GET /books/{bookUUID}
func (b *Books) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := catalog.ParseBookID(vars["bookUUID"])

	book, ok, err := operations.GetBook(b.app.DB, id)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "book not found")
		return
	}

	if err := b.app.IncrementBookViewCount(id); err != nil {
		log.ErrorWrap(err, "incrementing view count")
	} else if !id.IsDemo() {
		book.ViewCount++
	}

	reviews, err := b.app.GetBookReviews(id)
	if err != nil {
		handleJSONError(w, err, "getting reviews")
		return
	}

	presented := presenters.PresentBook(book)
	presented.Reviews = presenters.PresentReviews(reviews)

	if user := context.User(r.Context()); user != nil {
		for _, review := range reviews {
			if review.UserID == user.ID {
				rating := review.Rating
				presented.UserRating = &rating
				break
			}
		}
	}

	respondJSON(w, http.StatusOK, presented)
}

type createBookPayload struct {
	Title         string   `schema:"title" json:"title" validate:"required"`
	Author        string   `schema:"author" json:"author" validate:"required"`
	CoverURL      string   `schema:"cover_url" json:"cover_url"`
	Description   string   `schema:"description" json:"description"`
	Genre         []string `schema:"genre" json:"genre"`
	PublishedYear int      `schema:"published_year" json:"published_year"`
	Pages         int      `schema:"pages" json:"pages"`
	ISBN          string   `schema:"isbn" json:"isbn"`
	Publisher     string   `schema:"publisher" json:"publisher"`
	Language      string   `schema:"language" json:"language"`
}

// Create handles POST /books
func (b *Books) Create(w http.ResponseWriter, r *http.Request) {
	var payload createBookPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	book, err := b.app.CreateBook(app.CreateBookParams{
		Title:         payload.Title,
		Author:        payload.Author,
		CoverURL:      payload.CoverURL,
		Description:   payload.Description,
		Genre:         payload.Genre,
		PublishedYear: payload.PublishedYear,
		Pages:         payload.Pages,
		ISBN:          payload.ISBN,
		Publisher:     payload.Publisher,
		Language:      payload.Language,
	})
	if err != nil {
		handleJSONError(w, err, "creating book")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentBook(book))
}

// Suggestions handles GET /books/suggestions
func (b *Books) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	pool, err := b.app.GetBookPool()
	if err != nil {
		handleJSONError(w, err, "getting book pool")
		return
	}

	matches := suggest.Suggestions(pool, query)
	respondJSON(w, http.StatusOK, presenters.PresentBooks(matches))
}

// Similar handles GET /books/{bookUUID}/similar
func (b *Books) Similar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := catalog.ParseBookID(vars["bookUUID"])

	book, ok, err := operations.GetBook(b.app.DB, id)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "book not found")
		return
	}

	limit := parseIntQuery(r, "limit", 0)

	recs, err := b.app.GetSimilarBooks(book, limit)
	if err != nil {
		handleJSONError(w, err, "getting similar books")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentRecommendations(recs))
}

// Recommendations handles GET /recommendations
func (b *Books) Recommendations(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	limit := parseIntQuery(r, "limit", 0)

	recs, err := b.app.GetRecommendations(*user, limit)
	if err != nil {
		handleJSONError(w, err, "getting recommendations")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentRecommendations(recs))
}

func (b *Books) indexOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
}
