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
	"github.com/litlens/litlens/pkg/server/context"
	"github.com/litlens/litlens/pkg/server/operations"
	"github.com/litlens/litlens/pkg/server/presenters"
)

// NewDiscussions creates a new Discussions controller
func NewDiscussions(app *app.App) *Discussions {
	return &Discussions{app: app}
}

// Discussions is a discussion controller
type Discussions struct {
	app *app.App
}

// Index handles GET /discussions
func (c *Discussions) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	discussions, err := c.app.ListDiscussions(q.Get("category"), q.Get("book_uuid"))
	if err != nil {
		handleJSONError(w, err, "listing discussions")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDiscussions(discussions))
}

type createDiscussionPayload struct {
	Title    string `schema:"title" json:"title" validate:"required"`
	Content  string `schema:"content" json:"content" validate:"required"`
	Category string `schema:"category" json:"category"`
	BookUUID string `schema:"book_uuid" json:"book_uuid"`
}

// Create handles POST /discussions
func (c *Discussions) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	var payload createDiscussionPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	discussion, err := c.app.CreateDiscussion(*user, app.CreateDiscussionParams{
		Title:    payload.Title,
		Content:  payload.Content,
		Category: payload.Category,
		BookUUID: payload.BookUUID,
	})
	if err != nil {
		handleJSONError(w, err, "creating discussion")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentDiscussion(discussion))
}

// Show handles GET /discussions/{discussionUUID}
func (c *Discussions) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	discussion, ok, err := operations.GetDiscussion(c.app.DB, vars["discussionUUID"])
	if err != nil {
		handleJSONError(w, err, "finding discussion")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "discussion not found")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDiscussionDetail(discussion))
}

type createReplyPayload struct {
	Content string `schema:"content" json:"content" validate:"required"`
}

// CreateReply handles POST /discussions/{discussionUUID}/replies
func (c *Discussions) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)

	discussion, ok, err := operations.GetDiscussion(c.app.DB, vars["discussionUUID"])
	if err != nil {
		handleJSONError(w, err, "finding discussion")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "discussion not found")
		return
	}

	var payload createReplyPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	reply, err := c.app.CreateReply(*user, discussion, payload.Content)
	if err != nil {
		handleJSONError(w, err, "creating reply")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentDiscussionReply(reply))
}
