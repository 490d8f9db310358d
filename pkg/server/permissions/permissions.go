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

// Package permissions decides what a user is allowed to do
package permissions

import (
	"github.com/litlens/litlens/pkg/server/database"
)

// Moderate checks if the given user can view and resolve reports
func Moderate(user *database.User) bool {
	if user == nil {
		return false
	}

	return user.Role == database.RoleAdmin
}

// ManageCatalog checks if the given user can create or edit catalog books
func ManageCatalog(user *database.User) bool {
	if user == nil {
		return false
	}

	return user.Role == database.RoleAdmin
}

// ViewReadingList checks if the given user can view the given reading
// list. Public lists are visible to anyone, private lists only to their
// owner.
func ViewReadingList(user *database.User, list database.ReadingList) bool {
	if !list.Private {
		return true
	}

	return EditReadingList(user, list)
}

// EditReadingList checks if the given user can modify the given reading list
func EditReadingList(user *database.User, list database.ReadingList) bool {
	if user == nil {
		return false
	}
	if list.UserID == 0 {
		return false
	}

	return list.UserID == user.ID
}
