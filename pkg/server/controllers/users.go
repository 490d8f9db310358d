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
	"errors"
	"net/http"

	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/context"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/log"
	mw "github.com/litlens/litlens/pkg/server/middleware"
	"github.com/litlens/litlens/pkg/server/presenters"
	"github.com/litlens/litlens/pkg/server/token"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{app: app}
}

// Users is a user controller
type Users struct {
	app *app.App
}

// RegistrationForm is the payload for registering
type RegistrationForm struct {
	Email                string `schema:"email" json:"email" validate:"required,email"`
	Username             string `schema:"username" json:"username" validate:"required"`
	Password             string `schema:"password" json:"password" validate:"required,min=8"`
	PasswordConfirmation string `schema:"password_confirmation" json:"password_confirmation" validate:"required"`
}

// Register handles POST /register. The route is not registered when
// registration is disabled; the in-handler check guards deployments
// that toggle the setting without rebuilding the route table.
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	if u.app.DisableRegistration {
		handleJSONError(w, app.ErrRegistrationDisabled, "registration is disabled")
		return
	}

	var form RegistrationForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.CreateUser(form.Email, form.Username, form.Password, form.PasswordConfirmation)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	session, err := u.app.SignIn(&user)
	if err != nil {
		handleJSONError(w, err, "signing in a user")
		return
	}

	if err := u.app.SendWelcomeEmail(form.Email); err != nil {
		log.ErrorWrap(err, "sending welcome email")
	}

	respondWithSession(w, http.StatusCreated, session)
}

// LoginForm is the payload for logging in
type LoginForm struct {
	Email    string `schema:"email" json:"email" validate:"required"`
	Password string `schema:"password" json:"password" validate:"required"`
}

func (u *Users) login(form LoginForm) (*database.Session, error) {
	if form.Email == "" {
		return nil, app.ErrEmailRequired
	}
	if form.Password == "" {
		return nil, app.ErrPasswordRequired
	}

	user, err := u.app.Authenticate(form.Email, form.Password)
	if err != nil {
		// If the user is not found, treat it as invalid login
		if err == app.ErrNotFound {
			return nil, app.ErrLoginInvalid
		}

		return nil, err
	}

	return u.app.SignIn(user)
}

// Login handles POST /signin
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	session, err := u.login(form)
	if err != nil {
		handleJSONError(w, err, "logging in user")
		return
	}

	respondWithSession(w, http.StatusOK, session)
}

func (u *Users) logout(r *http.Request) (bool, error) {
	key, err := mw.GetCredential(r)
	if err != nil {
		return false, pkgErrors.Wrap(err, "getting credentials")
	}

	if key == "" {
		return false, nil
	}

	if err = u.app.DeleteSession(key); err != nil {
		return false, err
	}

	return true, nil
}

// Logout handles POST /signout
func (u *Users) Logout(w http.ResponseWriter, r *http.Request) {
	ok, err := u.logout(r)
	if err != nil {
		handleJSONError(w, err, "logging out")
		return
	}

	if ok {
		unsetSessionCookie(w)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (u *Users) logoutOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "POST")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Version")
}

// Me handles GET /me
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}

type updateProfileForm struct {
	Name           *string   `schema:"name" json:"name"`
	Avatar         *string   `schema:"avatar" json:"avatar"`
	Bio            *string   `schema:"bio" json:"bio"`
	FavoriteGenres *[]string `schema:"favorite_genres" json:"favorite_genres"`
	ReadingGoal    *int      `schema:"reading_goal" json:"reading_goal"`
}

// ProfileUpdate handles PATCH /account/profile
func (u *Users) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	var form updateProfileForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	updated, err := u.app.UpdateProfile(*user, app.UpdateProfileParams{
		Name:           form.Name,
		Avatar:         form.Avatar,
		Bio:            form.Bio,
		FavoriteGenres: form.FavoriteGenres,
		ReadingGoal:    form.ReadingGoal,
	})
	if err != nil {
		handleJSONError(w, err, "updating profile")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentUser(updated))
}

type updatePasswordForm struct {
	OldPassword             string `schema:"old_password" json:"old_password" validate:"required"`
	NewPassword             string `schema:"new_password" json:"new_password" validate:"required,min=8"`
	NewPasswordConfirmation string `schema:"new_password_confirmation" json:"new_password_confirmation" validate:"required"`
}

// PasswordUpdate handles PATCH /account/password
func (u *Users) PasswordUpdate(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if user == nil {
		handleJSONError(w, app.ErrLoginRequired, "no authenticated user found")
		return
	}

	var form updatePasswordForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if form.OldPassword == "" || form.NewPassword == "" {
		handleJSONError(w, app.ErrPasswordRequired, "invalid params")
		return
	}
	if form.NewPassword != form.NewPasswordConfirmation {
		handleJSONError(w, app.ErrPasswordConfirmationMismatch, "passwords do not match")
		return
	}

	if err := u.app.UpdatePassword(*user, form.OldPassword, form.NewPassword); err != nil {
		handleJSONError(w, err, "updating password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createResetTokenPayload struct {
	Email string `schema:"email" json:"email" validate:"required,email"`
}

// CreateResetToken handles POST /reset-token. Unknown emails are
// answered the same as known ones so the endpoint does not reveal
// which addresses have accounts.
func (u *Users) CreateResetToken(w http.ResponseWriter, r *http.Request) {
	var form createResetTokenPayload
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if form.Email == "" {
		handleJSONError(w, app.ErrEmailRequired, "email is not provided")
		return
	}

	var user database.User
	err := u.app.DB.Where("email = ?", form.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		handleJSONError(w, err, "finding user")
		return
	}

	resetToken, err := token.Create(u.app.DB, user.ID, database.TokenTypeResetPassword)
	if err != nil {
		handleJSONError(w, err, "generating token")
		return
	}

	if err := u.app.SendPasswordResetEmail(user.Email.String, resetToken.Value); err != nil {
		handleJSONError(w, err, "sending password reset email")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type resetPasswordPayload struct {
	Password             string `schema:"password" json:"password" validate:"required,min=8"`
	PasswordConfirmation string `schema:"password_confirmation" json:"password_confirmation" validate:"required"`
	Token                string `schema:"token" json:"token" validate:"required"`
}

// PasswordReset handles PATCH /password-reset
func (u *Users) PasswordReset(w http.ResponseWriter, r *http.Request) {
	var params resetPasswordPayload
	if err := parseRequestData(r, &params); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if params.Password != params.PasswordConfirmation {
		handleJSONError(w, app.ErrPasswordConfirmationMismatch, "password mismatch")
		return
	}

	user, err := u.app.ResetPassword(params.Token, params.Password)
	if err != nil {
		handleJSONError(w, err, "resetting password")
		return
	}

	w.WriteHeader(http.StatusNoContent)

	if err := u.app.SendPasswordResetAlertEmail(user.Email.String); err != nil {
		log.ErrorWrap(err, "sending password reset alert email")
	}
}
