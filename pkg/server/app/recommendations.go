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
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/recommend"
	"github.com/pkg/errors"
)

// GetSimilarBooks returns books similar to the given reference book
func (a *App) GetSimilarBooks(reference database.Book, limit int) ([]recommend.Recommendation, error) {
	if limit <= 0 {
		limit = recommend.DefaultSimilarLimit
	}

	pool, err := a.GetBookPool()
	if err != nil {
		return nil, errors.Wrap(err, "getting book pool")
	}

	return recommend.SimilarBooks(recommend.NewScorer(), pool, reference, limit), nil
}

// GetRecommendations returns personalized recommendations from the
// user's completed and favorite books. Users without history get the
// curated fallback pool.
func (a *App) GetRecommendations(user database.User, limit int) ([]recommend.Recommendation, error) {
	if limit <= 0 {
		limit = recommend.DefaultHomeLimit
	}

	history, err := a.GetUserHistory(user)
	if err != nil {
		return nil, errors.Wrap(err, "getting user history")
	}

	if len(history) == 0 {
		return recommend.Fallback(catalog.Books(), limit), nil
	}

	pool, err := a.GetBookPool()
	if err != nil {
		return nil, errors.Wrap(err, "getting book pool")
	}

	recs := recommend.ForHistory(recommend.NewScorer(), pool, history, limit)
	if len(recs) == 0 {
		return recommend.Fallback(catalog.Books(), limit), nil
	}

	return recs, nil
}
