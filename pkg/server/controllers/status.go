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

// NewStatus creates a new Status controller
func NewStatus(app *app.App) *Status {
	return &Status{app: app}
}

// Status is a controller for per-book reading statuses
type Status struct {
	app *app.App
}

// Show handles GET /books/{bookUUID}/status
func (c *Status) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)
	id := catalog.ParseBookID(vars["bookUUID"])

	status, err := c.app.GetBookStatus(*user, id)
	if err != nil {
		handleJSONError(w, err, "getting book status")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookStatus(status))
}

type upsertStatusPayload struct {
	Status   *string `schema:"status" json:"status"`
	Favorite *bool   `schema:"favorite" json:"favorite"`
}

// Upsert handles PUT /books/{bookUUID}/status
func (c *Status) Upsert(w http.ResponseWriter, r *http.Request) {
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

	var payload upsertStatusPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	status, err := c.app.UpsertBookStatus(*user, id, app.UpsertBookStatusParams{
		Status:   payload.Status,
		Favorite: payload.Favorite,
	})
	if err != nil {
		handleJSONError(w, err, "updating book status")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookStatus(status))
}
