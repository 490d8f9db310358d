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

package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/litlens/litlens/pkg/server/config"
)

// InitSchema migrates database schema to reflect the latest model definition
func InitSchema(db *gorm.DB) {
	if err := db.AutoMigrate(
		&User{},
		&Book{},
		&Review{},
		&Discussion{},
		&DiscussionReply{},
		&Report{},
		&UserBookStatus{},
		&ReadingList{},
		&ReadingListItem{},
		&Token{},
		&Session{},
	); err != nil {
		panic(err)
	}
}

// Open initializes the database connection using the configured driver
func Open(c config.Config) *gorm.DB {
	switch c.DBDriver {
	case config.DBDriverSQLite:
		return openSQLite(c.DBPath)
	default:
		return openPostgres(c.DB.DSN())
	}
}

func openPostgres(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}

func openSQLite(dbPath string) *gorm.DB {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(errors.Wrapf(err, "creating database directory at %s", dir))
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}

// Postgres error codes indicating that the schema is behind the code
const (
	pgErrUndefinedTable  = "42P01"
	pgErrUndefinedColumn = "42703"
)

// IsSchemaOutdated checks if the given error indicates that the database
// schema is missing a table or a column the code expects. Such errors get
// a distinct API error code so that clients can surface a migration
// banner instead of a generic failure.
func IsSchemaOutdated(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgErrUndefinedTable || string(pqErr.Code) == pgErrUndefinedColumn
	}

	// the SQLite driver reports missing schema through the error message only
	msg := err.Error()
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column")
}
