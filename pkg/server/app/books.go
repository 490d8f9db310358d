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
	"github.com/litlens/litlens/pkg/server/filters"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetBookPool returns the pool of books that listing, suggestion and
// recommendation queries run over. The demo catalog serves as the pool
// when the store holds no books, so a fresh deployment is browsable
// before seeding.
func (a *App) GetBookPool() ([]database.Book, error) {
	var books []database.Book
	if err := a.DB.Order("id ASC").Find(&books).Error; err != nil {
		return nil, errors.Wrap(err, "fetching books")
	}

	if len(books) == 0 {
		return catalog.Books(), nil
	}

	return books, nil
}

// ListBooks returns books matching the given filters in the given sort
// order. Pagination happens after filtering; a zero limit means no
// limit. It returns the page and the total number of matches.
func (a *App) ListBooks(f filters.Filters, sortKey filters.SortKey, limit, offset int) ([]database.Book, int, error) {
	pool, err := a.GetBookPool()
	if err != nil {
		return nil, 0, errors.Wrap(err, "getting book pool")
	}

	matched := filters.Apply(pool, f)
	matched = filters.Sort(matched, sortKey)
	total := len(matched)

	// malformed pagination values degrade to no constraint
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

// IncrementBookViewCount bumps the view counter for the given book.
// Demo records are not persisted, so the increment is a no-op for them.
func (a *App) IncrementBookViewCount(id catalog.BookID) error {
	if id.IsDemo() {
		return nil
	}

	err := a.DB.Model(&database.Book{}).
		Where("uuid = ?", id.UUID).
		Update("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return errors.Wrap(err, "incrementing view count")
	}

	return nil
}

// CreateBookParams is the parameters for creating a book
type CreateBookParams struct {
	Title         string
	Author        string
	CoverURL      string
	Description   string
	Genre         []string
	PublishedYear int
	Pages         int
	ISBN          string
	Publisher     string
	Language      string
}

// CreateBook creates a book in the catalog
func (a *App) CreateBook(p CreateBookParams) (database.Book, error) {
	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Book{}, errors.Wrap(err, "generating uuid")
	}

	book := database.Book{
		UUID:          uuid,
		Title:         p.Title,
		Author:        p.Author,
		CoverURL:      p.CoverURL,
		Description:   p.Description,
		Genre:         database.StringList(p.Genre),
		PublishedYear: p.PublishedYear,
		Pages:         p.Pages,
		ISBN:          p.ISBN,
		Publisher:     p.Publisher,
		Language:      p.Language,
	}
	if err := a.DB.Create(&book).Error; err != nil {
		return database.Book{}, errors.Wrap(err, "inserting book")
	}

	return book, nil
}
