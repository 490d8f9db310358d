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

// Package recommend ranks candidate books against a reference book or a
// user's read history with a fixed-weight similarity heuristic. The
// scoring function is a strategy so that weights and the genre adjacency
// table are configuration rather than embedded literals.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/litlens/litlens/pkg/server/database"
)

// DefaultSimilarLimit is the top-N size used by the book detail surface
const DefaultSimilarLimit = 6

// DefaultHomeLimit is the top-N size used by the home surface
const DefaultHomeLimit = 4

// Scorer scores a candidate book against a reference book. Higher is
// more similar; zero means no relation and excludes the candidate.
type Scorer interface {
	Score(candidate, reference database.Book) int
}

// Weights are the score contributions of each similarity signal
type Weights struct {
	SharedGenre   int
	SameAuthor    int
	AdjacentGenre int
}

// DefaultWeights returns the standard weights
func DefaultWeights() Weights {
	return Weights{
		SharedGenre:   3,
		SameAuthor:    2,
		AdjacentGenre: 1,
	}
}

// DefaultAdjacencyGroups returns the curated genre adjacency table.
// Genres within a group are considered neighboring tastes.
func DefaultAdjacencyGroups() [][]string {
	return [][]string{
		{"Romance", "Romantic Comedy"},
		{"Science Fiction", "Dystopian Fiction", "Fantasy"},
		{"Mystery", "Thriller"},
		{"Fiction", "Biography"},
	}
}

// WeightedScorer is a Scorer with configurable weights and adjacency groups
type WeightedScorer struct {
	Weights Weights
	Groups  [][]string
}

// NewScorer returns a WeightedScorer with the default configuration
func NewScorer() *WeightedScorer {
	return &WeightedScorer{
		Weights: DefaultWeights(),
		Groups:  DefaultAdjacencyGroups(),
	}
}

// Score implements Scorer. Shared genre tags and identical authors are
// scored independently; the adjacency bonus applies when the two primary
// genres are distinct members of the same group, so it can stack with a
// shared-tag match on a secondary genre.
func (s *WeightedScorer) Score(candidate, reference database.Book) int {
	score := 0

	if sharesGenre(candidate, reference) {
		score += s.Weights.SharedGenre
	}

	// author match is exact and case-sensitive
	if candidate.Author != "" && candidate.Author == reference.Author {
		score += s.Weights.SameAuthor
	}

	if s.adjacent(candidate.PrimaryGenre(), reference.PrimaryGenre()) {
		score += s.Weights.AdjacentGenre
	}

	return score
}

func sharesGenre(a, b database.Book) bool {
	for _, tag := range a.Genre {
		if b.Genre.Contains(tag) {
			return true
		}
	}

	return false
}

func (s *WeightedScorer) adjacent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.EqualFold(a, b) {
		return false
	}

	for _, group := range s.Groups {
		if containsFold(group, a) && containsFold(group, b) {
			return true
		}
	}

	return false
}

func containsFold(group []string, genre string) bool {
	for _, g := range group {
		if strings.EqualFold(g, genre) {
			return true
		}
	}

	return false
}

// Recommendation is a ranked book with a human-readable justification
type Recommendation struct {
	Book   database.Book
	Score  int
	Reason string
}

// SimilarBooks ranks the pool against the reference and returns the top
// n. The reference itself never appears in its own output: candidates
// are excluded on identifier equality, with a title+author fallback
// check guarding against duplicate-looking records.
func SimilarBooks(scorer Scorer, pool []database.Book, reference database.Book, n int) []Recommendation {
	scored := []Recommendation{}

	for _, candidate := range pool {
		if isSameBook(candidate, reference) {
			continue
		}

		score := scorer.Score(candidate, reference)
		if score == 0 {
			continue
		}

		scored = append(scored, Recommendation{
			Book:   candidate,
			Score:  score,
			Reason: reason(candidate, reference),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}

	return scored
}

// ForHistory ranks the pool against every book in the user's read
// history, scoring each candidate by its best match. Books already in
// the history are excluded. An empty history yields no results; callers
// fall back to Fallback.
func ForHistory(scorer Scorer, pool, history []database.Book, n int) []Recommendation {
	scored := []Recommendation{}

	for _, candidate := range pool {
		if inHistory(candidate, history) {
			continue
		}

		best := 0
		var bestRef database.Book
		for _, ref := range history {
			if score := scorer.Score(candidate, ref); score > best {
				best = score
				bestRef = ref
			}
		}

		if best == 0 {
			continue
		}

		scored = append(scored, Recommendation{
			Book:   candidate,
			Score:  best,
			Reason: fmt.Sprintf("Because you read %s", bestRef.Title),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}

	return scored
}

// FallbackReason is the fixed justification for non-personalized picks
const FallbackReason = "Popular with readers right now"

// Fallback returns the top of the curated pool with a fixed,
// non-personalized justification. This is the defined degradation for a
// new user with no read history, not an error path.
func Fallback(pool []database.Book, n int) []Recommendation {
	ret := []Recommendation{}

	for _, book := range pool {
		ret = append(ret, Recommendation{
			Book:   book,
			Reason: FallbackReason,
		})
		if n > 0 && len(ret) == n {
			break
		}
	}

	return ret
}

// isSameBook guards self-exclusion: identifier equality, plus a
// title+author equality fallback in case the pool carries
// duplicate-looking records under different ids. Keep both conditions
// until the data source is verified clean of duplicates.
func isSameBook(a, b database.Book) bool {
	if a.UUID != "" && a.UUID == b.UUID {
		return true
	}

	return a.Title == b.Title && a.Author == b.Author
}

func inHistory(candidate database.Book, history []database.Book) bool {
	for _, h := range history {
		if isSameBook(candidate, h) {
			return true
		}
	}

	return false
}

func reason(candidate, reference database.Book) string {
	if candidate.Author == reference.Author {
		return fmt.Sprintf("More from %s", reference.Author)
	}

	for _, tag := range candidate.Genre {
		if reference.Genre.Contains(tag) {
			return fmt.Sprintf("Shares the %s genre with %s", tag, reference.Title)
		}
	}

	return fmt.Sprintf("Readers of %s also enjoy this", reference.Title)
}
