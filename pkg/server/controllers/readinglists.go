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
	"github.com/litlens/litlens/pkg/server/permissions"
	"github.com/litlens/litlens/pkg/server/presenters"
)

// NewReadingLists creates a new ReadingLists controller
func NewReadingLists(app *app.App) *ReadingLists {
	return &ReadingLists{app: app}
}

// ReadingLists is a reading list controller
type ReadingLists struct {
	app *app.App
}

// Index handles GET /reading-lists
func (c *ReadingLists) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	lists, err := c.app.GetUserReadingLists(*user)
	if err != nil {
		handleJSONError(w, err, "getting reading lists")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReadingLists(lists))
}

type createReadingListPayload struct {
	Name        string `schema:"name" json:"name" validate:"required"`
	Description string `schema:"description" json:"description"`
	Private     bool   `schema:"private" json:"private"`
}

// Create handles POST /reading-lists
func (c *ReadingLists) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	var payload createReadingListPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	list, err := c.app.CreateReadingList(*user, app.CreateReadingListParams{
		Name:        payload.Name,
		Description: payload.Description,
		Private:     payload.Private,
	})
	if err != nil {
		handleJSONError(w, err, "creating reading list")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentReadingList(list))
}

// Show handles GET /reading-lists/{listUUID}. Private lists are only
// visible to their owners; a guest asking for one gets the same
// not-found answer as for a list that does not exist.
func (c *ReadingLists) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user := context.User(r.Context())

	list, ok, err := operations.GetReadingList(c.app.DB, vars["listUUID"], user)
	if err != nil {
		handleJSONError(w, err, "finding reading list")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "reading list not found")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReadingList(list))
}

type updateReadingListPayload struct {
	Name        *string `schema:"name" json:"name"`
	Description *string `schema:"description" json:"description"`
	Private     *bool   `schema:"private" json:"private"`
}

// Update handles PATCH /reading-lists/{listUUID}
func (c *ReadingLists) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)

	list, ok, err := operations.GetReadingList(c.app.DB, vars["listUUID"], user)
	if err != nil {
		handleJSONError(w, err, "finding reading list")
		return
	}
	if !ok || !permissions.EditReadingList(user, list) {
		handleJSONError(w, app.ErrNotFound, "reading list not found")
		return
	}

	var payload updateReadingListPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	updated, err := c.app.UpdateReadingList(list, app.UpdateReadingListParams{
		Name:        payload.Name,
		Description: payload.Description,
		Private:     payload.Private,
	})
	if err != nil {
		handleJSONError(w, err, "updating reading list")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReadingList(updated))
}

// Delete handles DELETE /reading-lists/{listUUID}
func (c *ReadingLists) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)

	list, ok, err := operations.GetReadingList(c.app.DB, vars["listUUID"], user)
	if err != nil {
		handleJSONError(w, err, "finding reading list")
		return
	}
	if !ok || !permissions.EditReadingList(user, list) {
		handleJSONError(w, app.ErrNotFound, "reading list not found")
		return
	}

	if err := c.app.DeleteReadingList(list); err != nil {
		handleJSONError(w, err, "deleting reading list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddBook handles POST /reading-lists/{listUUID}/books/{bookUUID}
func (c *ReadingLists) AddBook(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)

	list, ok, err := operations.GetReadingList(c.app.DB, vars["listUUID"], user)
	if err != nil {
		handleJSONError(w, err, "finding reading list")
		return
	}
	if !ok || !permissions.EditReadingList(user, list) {
		handleJSONError(w, app.ErrNotFound, "reading list not found")
		return
	}

	id := catalog.ParseBookID(vars["bookUUID"])

	_, found, err := operations.GetBook(c.app.DB, id)
	if err != nil {
		handleJSONError(w, err, "finding book")
		return
	}
	if !found {
		handleJSONError(w, app.ErrNotFound, "book not found")
		return
	}

	item, err := c.app.AddBookToList(list, id)
	if err != nil {
		handleJSONError(w, err, "adding book to list")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentReadingListItem(item))
}

// RemoveBook handles DELETE /reading-lists/{listUUID}/books/{bookUUID}
func (c *ReadingLists) RemoveBook(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	vars := mux.Vars(r)

	list, ok, err := operations.GetReadingList(c.app.DB, vars["listUUID"], user)
	if err != nil {
		handleJSONError(w, err, "finding reading list")
		return
	}
	if !ok || !permissions.EditReadingList(user, list) {
		handleJSONError(w, app.ErrNotFound, "reading list not found")
		return
	}

	id := catalog.ParseBookID(vars["bookUUID"])

	if err := c.app.RemoveBookFromList(list, id); err != nil {
		handleJSONError(w, err, "removing book from list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
