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

package catalog

import (
	"strconv"

	"github.com/litlens/litlens/pkg/server/helpers"
)

// IDKind discriminates the two identifier spaces for books: remote
// records carry UUIDs, demo records carry small-integer string ids.
// The two spaces are never unified; callers dispatch on the kind
// instead of pattern-matching the identifier's string shape.
type IDKind int

const (
	// KindRemote identifies a book persisted in the remote store
	KindRemote IDKind = iota
	// KindDemo identifies a book from the static demo catalog
	KindDemo
)

// BookID is a tagged book identifier
type BookID struct {
	Kind  IDKind
	UUID  string
	Index int
}

// ParseBookID parses the given identifier string into a tagged BookID.
// A valid UUID yields a remote id. Anything else is treated as a demo
// id; if it is a small integer it carries the catalog index, otherwise
// the index is -1.
func ParseBookID(s string) BookID {
	if helpers.ValidateUUID(s) {
		return BookID{Kind: KindRemote, UUID: s}
	}

	idx, err := strconv.Atoi(s)
	if err != nil {
		idx = -1
	}

	return BookID{Kind: KindDemo, Index: idx}
}

// IsDemo checks whether the id references a demo catalog record.
// Persistence operations are a no-op for demo records.
func (id BookID) IsDemo() bool {
	return id.Kind == KindDemo
}

// String returns the identifier in its original string form
func (id BookID) String() string {
	if id.Kind == KindRemote {
		return id.UUID
	}

	return strconv.Itoa(id.Index)
}
