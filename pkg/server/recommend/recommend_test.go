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

package recommend

import (
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/database"
)

func TestScore(t *testing.T) {
	scorer := NewScorer()

	testCases := []struct {
		name      string
		candidate database.Book
		reference database.Book
		expected  int
	}{
		{
			name:      "no relation",
			candidate: database.Book{Author: "A", Genre: database.StringList{"Romance"}},
			reference: database.Book{Author: "B", Genre: database.StringList{"Biography"}},
			expected:  0,
		},
		{
			name:      "shared genre only",
			candidate: database.Book{Author: "A", Genre: database.StringList{"Fantasy"}},
			reference: database.Book{Author: "B", Genre: database.StringList{"Fantasy"}},
			expected:  3,
		},
		{
			name:      "same author only",
			candidate: database.Book{Author: "Andy Weir", Genre: database.StringList{"Romance"}},
			reference: database.Book{Author: "Andy Weir", Genre: database.StringList{"Biography"}},
			expected:  2,
		},
		{
			name:      "author match is case-sensitive",
			candidate: database.Book{Author: "andy weir", Genre: database.StringList{"Romance"}},
			reference: database.Book{Author: "Andy Weir", Genre: database.StringList{"Biography"}},
			expected:  0,
		},
		{
			name:      "shared genre and same author",
			candidate: database.Book{Author: "Brandon", Genre: database.StringList{"Fantasy"}},
			reference: database.Book{Author: "Brandon", Genre: database.StringList{"Fantasy"}},
			expected:  5,
		},
		{
			name:      "adjacency bonus for neighboring primary genres",
			candidate: database.Book{Author: "A", Genre: database.StringList{"Mystery"}},
			reference: database.Book{Author: "B", Genre: database.StringList{"Thriller"}},
			expected:  1,
		},
		{
			name:      "adjacency stacks with a shared secondary tag",
			candidate: database.Book{Author: "A", Genre: database.StringList{"Dystopian Fiction"}},
			reference: database.Book{Author: "B", Genre: database.StringList{"Science Fiction", "Dystopian Fiction"}},
			expected:  4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.Score(tc.candidate, tc.reference)

			assert.Equal(t, got, tc.expected, "score mismatch")
		})
	}
}

func TestSimilarBooks(t *testing.T) {
	scorer := NewScorer()

	reference := database.Book{UUID: "ref", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}}
	pool := []database.Book{
		reference,
		{UUID: "b1", Title: "The Martian", Author: "Andy Weir", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b2", Title: "Dune Messiah", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b3", Title: "Becoming", Author: "Michelle Obama", Genre: database.StringList{"Biography"}},
		{UUID: "b4", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}},
	}

	got := SimilarBooks(scorer, pool, reference, DefaultSimilarLimit)

	// b4 is a duplicate-looking record of the reference under a different
	// id; both it and the reference itself must be excluded, and the
	// unrelated biography must be filtered on score zero
	assert.Equal(t, len(got), 2, "result count mismatch")
	assert.Equal(t, got[0].Book.UUID, "b2", "highest scored mismatch")
	assert.Equal(t, got[0].Score, 5, "top score mismatch")
	assert.Equal(t, got[1].Book.UUID, "b1", "second scored mismatch")
	assert.Equal(t, got[1].Score, 3, "second score mismatch")

	for _, rec := range got {
		assert.NotEqual(t, rec.Book.UUID, reference.UUID, "reference leaked into its own output")
		assert.True(t, rec.Score > 0, "zero-score candidate leaked into output")
		assert.NotEqual(t, rec.Reason, "", "missing justification")
	}
}

func TestSimilarBooksStableTies(t *testing.T) {
	scorer := NewScorer()

	reference := database.Book{UUID: "ref", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}}
	pool := []database.Book{
		{UUID: "b1", Title: "The Martian", Author: "Andy Weir", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b2", Title: "Project Hail Mary", Author: "Andy Weir", Genre: database.StringList{"Science Fiction"}},
	}

	got := SimilarBooks(scorer, pool, reference, 0)

	assert.Equal(t, got[0].Book.UUID, "b1", "tie must keep input order")
	assert.Equal(t, got[1].Book.UUID, "b2", "tie must keep input order")
}

func TestSimilarBooksTruncation(t *testing.T) {
	scorer := NewScorer()

	reference := database.Book{UUID: "ref", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}}
	pool := []database.Book{}
	for i := 0; i < 10; i++ {
		pool = append(pool, database.Book{
			UUID:   string(rune('a' + i)),
			Title:  string(rune('a' + i)),
			Author: "X",
			Genre:  database.StringList{"Science Fiction"},
		})
	}

	got := SimilarBooks(scorer, pool, reference, 4)

	assert.Equal(t, len(got), 4, "truncation mismatch")
}

func TestForHistory(t *testing.T) {
	scorer := NewScorer()

	history := []database.Book{
		{UUID: "h1", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}},
	}
	pool := []database.Book{
		{UUID: "h1", Title: "Dune", Author: "Frank Herbert", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b1", Title: "The Martian", Author: "Andy Weir", Genre: database.StringList{"Science Fiction"}},
		{UUID: "b2", Title: "Becoming", Author: "Michelle Obama", Genre: database.StringList{"Biography"}},
	}

	got := ForHistory(scorer, pool, history, DefaultHomeLimit)

	assert.Equal(t, len(got), 1, "result count mismatch")
	assert.Equal(t, got[0].Book.UUID, "b1", "recommended book mismatch")
	assert.Equal(t, got[0].Reason, "Because you read Dune", "justification mismatch")
}

func TestFallback(t *testing.T) {
	pool := []database.Book{
		{UUID: "b1", Title: "first"},
		{UUID: "b2", Title: "second"},
		{UUID: "b3", Title: "third"},
	}

	got := Fallback(pool, 2)

	assert.Equal(t, len(got), 2, "fallback count mismatch")
	assert.Equal(t, got[0].Book.UUID, "b1", "fallback must keep pool order")
	assert.Equal(t, got[0].Reason, FallbackReason, "fallback justification mismatch")
}

func TestForHistoryEmptyHistory(t *testing.T) {
	scorer := NewScorer()

	got := ForHistory(scorer, []database.Book{{UUID: "b1"}}, nil, 4)

	assert.Equal(t, len(got), 0, "empty history must yield no personalized results")
}
