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
	"github.com/pkg/errors"

	"github.com/litlens/litlens/pkg/server/app"
	mw "github.com/litlens/litlens/pkg/server/middleware"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns a new api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		// v3
		{"POST", "/v3/signin", c.Users.Login, true},
		{"POST", "/v3/signout", c.Users.Logout, true},
		{"OPTIONS", "/v3/signout", c.Users.logoutOptions, true},
		{"GET", "/v3/me", mw.Auth(a.DB, c.Users.Me), true},
		{"PATCH", "/v3/account/profile", mw.Auth(a.DB, c.Users.ProfileUpdate), true},
		{"PATCH", "/v3/account/password", mw.Auth(a.DB, c.Users.PasswordUpdate), true},
		{"POST", "/v3/reset-token", c.Users.CreateResetToken, true},
		{"PATCH", "/v3/password-reset", c.Users.PasswordReset, true},

		// The suggestions route must precede the {bookUUID} routes so
		// that "suggestions" is not captured as a book identifier.
		{"GET", "/v3/books/suggestions", c.Books.Suggestions, true},
		{"GET", "/v3/books", c.Books.Index, true},
		{"OPTIONS", "/v3/books", c.Books.indexOptions, true},
		{"POST", "/v3/books", mw.Admin(a.DB, c.Books.Create), true},
		{"GET", "/v3/books/{bookUUID}", mw.OptionalAuth(a.DB, c.Books.Show), true},
		{"GET", "/v3/books/{bookUUID}/similar", c.Books.Similar, true},
		{"GET", "/v3/recommendations", mw.Auth(a.DB, c.Books.Recommendations), true},

		{"GET", "/v3/books/{bookUUID}/reviews", c.Reviews.Index, true},
		{"POST", "/v3/books/{bookUUID}/reviews", mw.Auth(a.DB, c.Reviews.Create), true},
		{"POST", "/v3/reviews/{reviewUUID}/helpful", mw.Auth(a.DB, c.Reviews.Helpful), true},

		{"GET", "/v3/discussions", c.Discussions.Index, true},
		{"POST", "/v3/discussions", mw.Auth(a.DB, c.Discussions.Create), true},
		{"GET", "/v3/discussions/{discussionUUID}", c.Discussions.Show, true},
		{"POST", "/v3/discussions/{discussionUUID}/replies", mw.Auth(a.DB, c.Discussions.CreateReply), true},

		{"POST", "/v3/reports", mw.Auth(a.DB, c.Reports.Create), true},
		{"GET", "/v3/reports", mw.Admin(a.DB, c.Reports.Index), true},
		{"PATCH", "/v3/reports/{reportUUID}", mw.Admin(a.DB, c.Reports.Update), true},

		{"GET", "/v3/books/{bookUUID}/status", mw.Auth(a.DB, c.Status.Show), true},
		{"PUT", "/v3/books/{bookUUID}/status", mw.Auth(a.DB, c.Status.Upsert), true},

		{"GET", "/v3/reading-lists", mw.Auth(a.DB, c.ReadingLists.Index), true},
		{"POST", "/v3/reading-lists", mw.Auth(a.DB, c.ReadingLists.Create), true},
		{"GET", "/v3/reading-lists/{listUUID}", mw.OptionalAuth(a.DB, c.ReadingLists.Show), true},
		{"PATCH", "/v3/reading-lists/{listUUID}", mw.Auth(a.DB, c.ReadingLists.Update), true},
		{"DELETE", "/v3/reading-lists/{listUUID}", mw.Auth(a.DB, c.ReadingLists.Delete), true},
		{"POST", "/v3/reading-lists/{listUUID}/books/{bookUUID}", mw.Auth(a.DB, c.ReadingLists.AddBook), true},
		{"DELETE", "/v3/reading-lists/{listUUID}/books/{bookUUID}", mw.Auth(a.DB, c.ReadingLists.RemoveBook), true},

		{"GET", "/v3/health", c.Health.Index, true},
	}

	if !a.DisableRegistration {
		ret = append(ret, Route{"POST", "/v3/register", c.Users.Register, true})
	}

	return ret
}

func registerRoutes(router *mux.Router, wrapper mw.Middleware, app *app.App, routes []Route) {
	for _, route := range routes {
		wrappedHandler := wrapper(route.Handler, app, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, mw.APIMw, app, rc.APIRoutes)

	router.PathPrefix("/api/v1").Handler(mw.ApplyLimit(mw.NotSupported, true))
	router.PathPrefix("/api/v2").Handler(mw.ApplyLimit(mw.NotSupported, true))

	router.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nAllow: /"))
	})

	// catch-all
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, mw.ErrorResponse{Error: "not found"})
	})

	return mw.Global(router), nil
}
