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
	"testing"
	"time"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/clock"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name                 string
		email                string
		username             string
		password             string
		passwordConfirmation string
		expectedErr          error
	}{
		{
			name:                 "valid",
			email:                "alice@example.com",
			username:             "alice",
			password:             "pass1234",
			passwordConfirmation: "pass1234",
			expectedErr:          nil,
		},
		{
			name:                 "missing email",
			email:                "",
			username:             "alice",
			password:             "pass1234",
			passwordConfirmation: "pass1234",
			expectedErr:          ErrEmailRequired,
		},
		{
			name:                 "missing username",
			email:                "alice@example.com",
			username:             "",
			password:             "pass1234",
			passwordConfirmation: "pass1234",
			expectedErr:          ErrUsernameRequired,
		},
		{
			name:                 "password too short",
			email:                "alice@example.com",
			username:             "alice",
			password:             "short",
			passwordConfirmation: "short",
			expectedErr:          ErrPasswordTooShort,
		},
		{
			name:                 "password confirmation mismatch",
			email:                "alice@example.com",
			username:             "alice",
			password:             "pass1234",
			passwordConfirmation: "pass12345",
			expectedErr:          ErrPasswordConfirmationMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewTest()
			a.DB = testutils.InitMemoryDB(t)

			user, err := a.CreateUser(tc.email, tc.username, tc.password, tc.passwordConfirmation)
			assert.Equal(t, errors.Cause(err), tc.expectedErr, "error mismatch")

			if tc.expectedErr == nil {
				assert.Equal(t, user.Username, tc.username, "username mismatch")
				assert.Equal(t, user.Email.String, tc.email, "email mismatch")
				assert.Equal(t, user.Role, database.RoleUser, "role mismatch")
				assert.NotEqual(t, user.UUID, "", "uuid mismatch")
			}
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		if _, err := a.CreateUser("alice@example.com", "alice", "pass1234", "pass1234"); err != nil {
			t.Fatal(err)
		}

		_, err := a.CreateUser("alice@example.com", "alice2", "pass1234", "pass1234")
		assert.Equal(t, errors.Cause(err), ErrDuplicateEmail, "error mismatch")
	})

	t.Run("duplicate username", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		if _, err := a.CreateUser("alice@example.com", "alice", "pass1234", "pass1234"); err != nil {
			t.Fatal(err)
		}

		_, err := a.CreateUser("alice2@example.com", "alice", "pass1234", "pass1234")
		assert.Equal(t, errors.Cause(err), ErrDuplicateUsername, "error mismatch")
	})
}

func TestAuthenticate(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")

	t.Run("correct credentials", func(t *testing.T) {
		user, err := a.Authenticate("alice@example.com", "pass1234")
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, user.Email.String, "alice@example.com", "email mismatch")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate("alice@example.com", "wrongpass")
		assert.Equal(t, errors.Cause(err), ErrLoginInvalid, "error mismatch")
	})

	t.Run("nonexistent email", func(t *testing.T) {
		_, err := a.Authenticate("nobody@example.com", "pass1234")
		assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
	})
}

func TestSignIn(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")

	session, err := a.SignIn(&user)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, session.UserID, user.ID, "session user mismatch")
	assert.NotEqual(t, session.Key, "", "session key mismatch")

	var updated database.User
	testutils.MustExec(t, a.DB.Where("id = ?", user.ID).First(&updated), "finding user")
	assert.NotEqual(t, updated.LastLoginAt, nil, "last login mismatch")
}

func TestUpdatePassword(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	user := testutils.SetupUserData(a.DB, "alice@example.com", "oldpass123")
	testutils.SetupSession(a.DB, user)

	t.Run("wrong old password", func(t *testing.T) {
		err := a.UpdatePassword(user, "wrongpass", "newpass123")
		assert.Equal(t, errors.Cause(err), ErrLoginInvalid, "error mismatch")
	})

	t.Run("new password too short", func(t *testing.T) {
		err := a.UpdatePassword(user, "oldpass123", "short")
		assert.Equal(t, errors.Cause(err), ErrPasswordTooShort, "error mismatch")
	})

	t.Run("success invalidates sessions", func(t *testing.T) {
		if err := a.UpdatePassword(user, "oldpass123", "newpass123"); err != nil {
			t.Fatal(err)
		}

		if _, err := a.Authenticate("alice@example.com", "newpass123"); err != nil {
			t.Errorf("new password should authenticate: %v", err)
		}

		var count int64
		testutils.MustExec(t, a.DB.Model(&database.Session{}).Where("user_id = ?", user.ID).Count(&count), "counting sessions")
		assert.Equal(t, count, int64(0), "session count mismatch")
	})
}

func TestResetPassword(t *testing.T) {
	setup := func(t *testing.T) (App, database.User, database.Token) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		user := testutils.SetupUserData(a.DB, "alice@example.com", "oldpass123")

		tok := database.Token{
			UserID: user.ID,
			Type:   database.TokenTypeResetPassword,
			Value:  "testToken",
		}
		tok.CreatedAt = a.Clock.Now()
		testutils.MustExec(t, a.DB.Save(&tok), "preparing token")

		return a, user, tok
	}

	t.Run("valid token", func(t *testing.T) {
		a, user, tok := setup(t)

		got, err := a.ResetPassword(tok.Value, "newpass123")
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, got.ID, user.ID, "user mismatch")

		if _, err := a.Authenticate("alice@example.com", "newpass123"); err != nil {
			t.Errorf("new password should authenticate: %v", err)
		}

		var usedTok database.Token
		testutils.MustExec(t, a.DB.Where("id = ?", tok.ID).First(&usedTok), "finding token")
		assert.NotEqual(t, usedTok.UsedAt, nil, "token should be marked used")
	})

	t.Run("expired token", func(t *testing.T) {
		a, _, tok := setup(t)

		mock := a.Clock.(*clock.Mock)
		mock.Advance(11 * time.Minute)

		_, err := a.ResetPassword(tok.Value, "newpass123")
		assert.Equal(t, errors.Cause(err), ErrPasswordResetTokenExpired, "error mismatch")
	})

	t.Run("unknown token", func(t *testing.T) {
		a, _, _ := setup(t)

		_, err := a.ResetPassword("noSuchToken", "newpass123")
		assert.Equal(t, errors.Cause(err), ErrInvalidToken, "error mismatch")
	})

	t.Run("used token", func(t *testing.T) {
		a, _, tok := setup(t)

		usedAt := a.Clock.Now()
		testutils.MustExec(t, a.DB.Model(&tok).Update("used_at", &usedAt), "marking token used")

		_, err := a.ResetPassword(tok.Value, "newpass123")
		assert.Equal(t, errors.Cause(err), ErrInvalidToken, "error mismatch")
	})
}
