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
	"github.com/litlens/litlens/pkg/server/operations"
	"github.com/litlens/litlens/pkg/server/presenters"
)

// NewReviews creates a new Reviews controller
func NewReviews(app *app.App) *Reviews {
	return &Reviews{app: app}
}

// Reviews is a review controller
type Reviews struct {
	app *app.App
}

// Index handles GET /books/{bookUUID}/reviews
func (c *Reviews) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := catalog.ParseBookID(vars["bookUUID"])

	_, ok, err := operations.GetBook(c.app.DB, id)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "book not found")
		return
	}

	reviews, err := c.app.GetBookReviews(id)
	if err != nil {
		handleJSONError(w, err, "getting reviews")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReviews(reviews))
}

type createReviewPayload struct {
	Rating  int    `schema:"rating" json:"rating" validate:"required,min=1,max=5"`
	Title   string `schema:"title" json:"title"`
	Content string `schema:"content" json:"content" validate:"required"`
}

// Create handles POST /books/{bookUUID}/reviews
func (c *Reviews) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)
	id := catalog.ParseBookID(vars["bookUUID"])

	_, ok, err := operations.GetBook(c.app.DB, id)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "book not found")
		return
	}

	var payload createReviewPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	review, err := c.app.CreateReview(*user, id, app.CreateReviewParams{
		Rating:  payload.Rating,
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		handleJSONError(w, err, "creating review")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentReview(review))
}

// Helpful handles POST /reviews/{reviewUUID}/helpful
func (c *Reviews) Helpful(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reviewUUID := vars["reviewUUID"]

	review, err := c.app.MarkReviewHelpful(reviewUUID)
	if err != nil {
		handleJSONError(w, err, "marking review helpful")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReview(review))
}
