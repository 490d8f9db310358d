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

// Package middleware provides middleware for handlers
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/log"
)

func getSessionKeyFromCookie(r *http.Request) (string, error) {
	c, err := r.Cookie("id")

	if err == http.ErrNoCookie {
		return "", nil
	} else if err != nil {
		return "", err
	}

	return c.Value, nil
}

func getSessionKeyFromAuth(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", nil
	}

	payload := strings.TrimPrefix(h, "Bearer ")

	return payload, nil
}

// GetCredential extracts the session key from the request. The
// authorization header takes precedence over the session cookie.
func GetCredential(r *http.Request) (string, error) {
	key, err := getSessionKeyFromAuth(r)
	if err != nil {
		return "", err
	}
	if key != "" {
		return key, nil
	}

	return getSessionKeyFromCookie(r)
}

// ErrorResponse is the shape of a JSON error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// errSchemaOutdated is the distinguished error code clients use to show
// the migration banner
const errSchemaOutdated = "schema_outdated"

// DoError logs the error and responds with a JSON error payload.
// Schema-outdated database errors are translated to 503 with the
// distinguished error code regardless of the given status.
func DoError(w http.ResponseWriter, msg string, err error, statusCode int) {
	log.WithFields(log.Fields{
		"statusCode": statusCode,
	}).ErrorWrap(err, msg)

	if database.IsSchemaOutdated(err) {
		respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: errSchemaOutdated})
		return
	}

	respondJSON(w, statusCode, ErrorResponse{Error: msg})
}

// RespondUnauthorized responds with 401
func RespondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="litlens"`)
	respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

// RespondForbidden responds with 403
func RespondForbidden(w http.ResponseWriter) {
	respondJSON(w, http.StatusForbidden, ErrorResponse{Error: "forbidden"})
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding error payload")
	}
}

// NotSupported is a handler for unsupported API versions
func NotSupported(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusGone, ErrorResponse{Error: "API version is not supported"})
}

// Middleware is a function signature for a middleware
type Middleware func(h http.HandlerFunc, app *app.App, rateLimit bool) http.Handler

func applyCORS(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	}
}

// APIMw is the middleware for API routes
func APIMw(h http.HandlerFunc, app *app.App, rateLimit bool) http.Handler {
	return applyCORS(ApplyLimit(h, rateLimit))
}

// WebMw is the middleware for web routes
func WebMw(h http.HandlerFunc, app *app.App, rateLimit bool) http.Handler {
	return ApplyLimit(h, rateLimit)
}

func logging(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"remoteAddr": lookupIP(r),
			"method":     r.Method,
			"uri":        r.RequestURI,
		}).Debug("incoming request")
	}
}

func recoverPanic(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"uri": r.RequestURI,
				}).Error("recovered from panic")

				respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			}
		}()

		h.ServeHTTP(w, r)
	}
}

// Global applies the middleware for all routes
func Global(h http.Handler) http.Handler {
	return recoverPanic(logging(h))
}
