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
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"

	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/database"
	mw "github.com/litlens/litlens/pkg/server/middleware"
	"github.com/litlens/litlens/pkg/server/presenters"
	"github.com/litlens/litlens/pkg/server/validation"
)

var formDecoder = schema.NewDecoder()

func init() {
	formDecoder.IgnoreUnknownKeys(true)
}

func parseForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "parsing form")
	}

	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return errors.Wrap(err, "decoding form")
	}

	return nil
}

// parseRequestData decodes the request payload into dst and validates
// it against its validate tags, before any database work. Form-encoded
// bodies are supported for compatibility; anything else is treated as
// JSON.
func parseRequestData(r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := parseForm(r, dst); err != nil {
			return err
		}

		return validation.Struct(dst)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decoding json")
	}

	return validation.Struct(dst)
}

func statusForError(err error) (int, bool) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, true
	}

	switch errors.Cause(err) {
	case app.ErrNotFound:
		return http.StatusNotFound, true
	case app.ErrLoginInvalid, app.ErrLoginRequired:
		return http.StatusUnauthorized, true
	case app.ErrRegistrationDisabled:
		return http.StatusForbidden, true
	case app.ErrDuplicateEmail, app.ErrDuplicateUsername, app.ErrDuplicateReview:
		return http.StatusConflict, true
	case app.ErrEmailRequired,
		app.ErrUsernameRequired,
		app.ErrPasswordRequired,
		app.ErrPasswordTooShort,
		app.ErrPasswordConfirmationMismatch,
		app.ErrInvalidToken,
		app.ErrPasswordResetTokenExpired,
		app.ErrInvalidRating,
		app.ErrInvalidReportReason,
		app.ErrInvalidReportStatus,
		app.ErrInvalidBookStatus:
		return http.StatusBadRequest, true
	}

	return 0, false
}

// handleJSONError responds with the status code matching the given
// application error, falling back to 500 for unrecognized errors.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	if status, ok := statusForError(err); ok {
		mw.DoError(w, errors.Cause(err).Error(), err, status)
		return
	}

	mw.DoError(w, msg, err, http.StatusInternalServerError)
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		handleJSONError(w, err, "encoding response")
	}
}

func setSessionCookie(w http.ResponseWriter, key string, expires time.Time) {
	cookie := http.Cookie{
		Name:     "id",
		Value:    key,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}
	http.SetCookie(w, &cookie)
}

func unsetSessionCookie(w http.ResponseWriter) {
	expire := time.Now().Add(time.Hour * -24)
	cookie := http.Cookie{
		Name:     "id",
		Value:    "",
		Expires:  expire,
		Path:     "/",
		HttpOnly: true,
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.SetCookie(w, &cookie)
}

func respondWithSession(w http.ResponseWriter, statusCode int, session *database.Session) {
	setSessionCookie(w, session.Key, session.ExpiresAt)
	respondJSON(w, statusCode, presenters.PresentSession(*session))
}

// parseIntQuery reads an integer query parameter, returning the
// fallback when the parameter is absent or malformed
func parseIntQuery(r *http.Request, name string, fallback int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func parseFloatQuery(r *http.Request, name string, fallback float64) float64 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}

	return parsed
}
