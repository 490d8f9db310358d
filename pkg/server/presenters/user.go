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

package presenters

import (
	"time"

	"github.com/litlens/litlens/pkg/server/database"
)

// User is a result of PresentUser
type User struct {
	UUID           string    `json:"uuid"`
	CreatedAt      time.Time `json:"created_at"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	FavoriteGenres []string  `json:"favorite_genres"`
	ReadingGoal    int       `json:"reading_goal"`
}

// PresentUser presents a user for the user's own consumption
func PresentUser(user database.User) User {
	return User{
		UUID:           user.UUID,
		CreatedAt:      FormatTS(user.CreatedAt),
		Email:          user.Email.String,
		Name:           user.Name,
		Username:       user.Username,
		Role:           user.Role,
		Avatar:         user.Avatar,
		Bio:            user.Bio,
		FavoriteGenres: presentGenre(user.FavoriteGenres),
		ReadingGoal:    user.ReadingGoal,
	}
}

// Session is a result of PresentSession
type Session struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PresentSession presents a session
func PresentSession(session database.Session) Session {
	return Session{
		Key:       session.Key,
		ExpiresAt: FormatTS(session.ExpiresAt),
	}
}

// BookStatus is a result of PresentBookStatus
type BookStatus struct {
	BookUUID string `json:"book_uuid"`
	Status   string `json:"status"`
	Favorite bool   `json:"favorite"`
}

// PresentBookStatus presents a user's per-book status
func PresentBookStatus(s database.UserBookStatus) BookStatus {
	return BookStatus{
		BookUUID: s.BookUUID,
		Status:   s.Status,
		Favorite: s.Favorite,
	}
}
