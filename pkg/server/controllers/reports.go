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
	"github.com/litlens/litlens/pkg/server/presenters"
)

// NewReports creates a new Reports controller
func NewReports(app *app.App) *Reports {
	return &Reports{app: app}
}

// Reports is a moderation report controller
type Reports struct {
	app *app.App
}

type createReportPayload struct {
	TargetUUID  string `schema:"target_uuid" json:"target_uuid" validate:"required"`
	TargetType  string `schema:"target_type" json:"target_type" validate:"required,oneof=review discussion"`
	Reason      string `schema:"reason" json:"reason" validate:"required"`
	Description string `schema:"description" json:"description"`
}

// Create handles POST /reports
func (c *Reports) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	var payload createReportPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	report, err := c.app.CreateReport(*user, app.CreateReportParams{
		TargetUUID:  payload.TargetUUID,
		TargetType:  payload.TargetType,
		Reason:      payload.Reason,
		Description: payload.Description,
	})
	if err != nil {
		handleJSONError(w, err, "creating report")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentReport(report))
}

// Index handles GET /reports
func (c *Reports) Index(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	reports, err := c.app.ListReports(status)
	if err != nil {
		handleJSONError(w, err, "listing reports")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReports(reports))
}

type updateReportPayload struct {
	Status string `schema:"status" json:"status" validate:"required"`
}

// Update handles PATCH /reports/{reportUUID}
func (c *Reports) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var payload updateReportPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	report, err := c.app.UpdateReportStatus(vars["reportUUID"], payload.Status)
	if err != nil {
		handleJSONError(w, err, "updating report")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentReport(report))
}
