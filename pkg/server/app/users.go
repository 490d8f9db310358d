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

package app

import (
	"errors"
	"time"

	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/litlens/litlens/pkg/server/log"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TouchLastLoginAt updates the last login timestamp
func (a *App) TouchLastLoginAt(user database.User, tx *gorm.DB) error {
	t := a.Clock.Now()
	if err := tx.Model(&user).Update("last_login_at", &t).Error; err != nil {
		return pkgErrors.Wrap(err, "updating last_login_at")
	}

	return nil
}

// CreateUser creates a user
func (a *App) CreateUser(email, username, password, passwordConfirmation string) (database.User, error) {
	if email == "" {
		return database.User{}, ErrEmailRequired
	}

	if username == "" {
		return database.User{}, ErrUsernameRequired
	}

	if len(password) < 8 {
		return database.User{}, ErrPasswordTooShort
	}

	if password != passwordConfirmation {
		return database.User{}, ErrPasswordConfirmationMismatch
	}

	tx := a.DB.Begin()

	var count int64
	if err := tx.Model(database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "counting email")
	}
	if count > 0 {
		tx.Rollback()
		return database.User{}, ErrDuplicateEmail
	}

	if err := tx.Model(database.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "counting username")
	}
	if count > 0 {
		tx.Rollback()
		return database.User{}, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "hashing password")
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "generating uuid")
	}

	user := database.User{
		UUID:     uuid,
		Email:    database.ToNullString(email),
		Password: database.ToNullString(string(hashedPassword)),
		Name:     username,
		Username: username,
		Role:     database.RoleUser,
	}
	if err = tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "saving user")
	}

	if err := a.TouchLastLoginAt(user, tx); err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "updating last login")
	}

	tx.Commit()

	return user, nil
}

// Authenticate authenticates a user
func (a *App) Authenticate(email, password string) (*database.User, error) {
	var user database.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(password))
	if err != nil {
		return nil, ErrLoginInvalid
	}

	return &user, nil
}

// SignIn signs in a user
func (a *App) SignIn(user *database.User) (*database.Session, error) {
	err := a.TouchLastLoginAt(*user, a.DB)
	if err != nil {
		log.ErrorWrap(err, "touching login timestamp")
	}

	session, err := a.CreateSession(user.ID)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "creating session")
	}

	return &session, nil
}

// UpdateProfileParams is the parameters for updating a user profile.
// Nil fields are left untouched.
type UpdateProfileParams struct {
	Name           *string
	Avatar         *string
	Bio            *string
	FavoriteGenres *[]string
	ReadingGoal    *int
}

// UpdateProfile updates the profile fields of the given user
func (a *App) UpdateProfile(user database.User, p UpdateProfileParams) (database.User, error) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Avatar != nil {
		user.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		user.Bio = *p.Bio
	}
	if p.FavoriteGenres != nil {
		user.FavoriteGenres = database.StringList(*p.FavoriteGenres)
	}
	if p.ReadingGoal != nil {
		user.ReadingGoal = *p.ReadingGoal
	}

	if err := a.DB.Save(&user).Error; err != nil {
		return user, pkgErrors.Wrap(err, "saving user")
	}

	return user, nil
}

// UpdatePassword updates the password of the given user after verifying
// the old one. All existing sessions are invalidated.
func (a *App) UpdatePassword(user database.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(oldPassword)); err != nil {
		return ErrLoginInvalid
	}

	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	tx := a.DB.Begin()

	if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "updating password")
	}
	if err := a.DeleteUserSessions(tx, user.ID); err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting sessions")
	}

	tx.Commit()

	return nil
}

// ResetPassword resets the password of the user that the given token
// belongs to, marks the token as used, and invalidates all sessions.
func (a *App) ResetPassword(tokenValue, newPassword string) (database.User, error) {
	var tok database.Token
	err := a.DB.
		Where("value = ? AND type = ?", tokenValue, database.TokenTypeResetPassword).
		First(&tok).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrInvalidToken
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding token")
	}

	if tok.UsedAt != nil {
		return database.User{}, ErrInvalidToken
	}
	if a.Clock.Now().Sub(tok.CreatedAt) > 10*time.Minute {
		return database.User{}, ErrPasswordResetTokenExpired
	}

	if len(newPassword) < 8 {
		return database.User{}, ErrPasswordTooShort
	}

	var user database.User
	if err := a.DB.Where("id = ?", tok.UserID).First(&user).Error; err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "hashing password")
	}

	tx := a.DB.Begin()

	if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "updating password")
	}

	usedAt := a.Clock.Now()
	if err := tx.Model(&tok).Update("used_at", &usedAt).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "marking token used")
	}

	if err := a.DeleteUserSessions(tx, user.ID); err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "deleting sessions")
	}

	tx.Commit()

	return user, nil
}

// GetUserByEmail finds a user by email
func (a *App) GetUserByEmail(email string) (database.User, error) {
	var user database.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrNotFound
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	return user, nil
}

// SetPassword sets a user's password without verifying the old one and
// invalidates all existing sessions. Meant for operator use.
func (a *App) SetPassword(user database.User, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	tx := a.DB.Begin()

	if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "updating password")
	}
	if err := a.DeleteUserSessions(tx, user.ID); err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting sessions")
	}

	tx.Commit()

	return nil
}

// SetRole changes a user's role
func (a *App) SetRole(user database.User, role string) error {
	if role != database.RoleUser && role != database.RoleAdmin {
		return pkgErrors.Errorf("unsupported role %s", role)
	}

	if err := a.DB.Model(&user).Update("role", role).Error; err != nil {
		return pkgErrors.Wrap(err, "updating role")
	}

	return nil
}
