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

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the store with the demo catalog",
		RunE:  runSeed,
	}

	Register(cmd)
}

// seedCatalog inserts the demo catalog into the store. Seeded rows get
// fresh UUIDs so they live in the remote identifier space; a book whose
// title and author are already present is skipped, making the command
// safe to run repeatedly.
func seedCatalog(db *gorm.DB) (int, error) {
	inserted := 0

	for _, book := range catalog.Books() {
		var count int64
		err := db.Model(&database.Book{}).
			Where("title = ? AND author = ?", book.Title, book.Author).
			Count(&count).Error
		if err != nil {
			return inserted, errors.Wrapf(err, "checking for %s", book.Title)
		}
		if count > 0 {
			continue
		}

		uuid, err := helpers.GenUUID()
		if err != nil {
			return inserted, errors.Wrap(err, "generating uuid")
		}

		book.UUID = uuid
		if err := db.Create(&book).Error; err != nil {
			return inserted, errors.Wrapf(err, "inserting %s", book.Title)
		}

		inserted++
	}

	return inserted, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setupApp()
	if err != nil {
		return err
	}
	defer cleanup()

	inserted, err := seedCatalog(a.DB)
	if err != nil {
		return errors.Wrap(err, "seeding catalog")
	}

	if inserted == 0 {
		printInfof("catalog already seeded, nothing to do\n")
		return nil
	}

	printSuccessf("seeded %d books\n", inserted)

	return nil
}
