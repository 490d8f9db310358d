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
	"gorm.io/gorm"

	"github.com/litlens/litlens/pkg/clock"
	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/config"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/log"
	"github.com/litlens/litlens/pkg/server/mailer"
)

func newConfig(p config.Params) (config.Config, error) {
	p.ConfigFile = configFileFlag
	if p.DBDriver == "" {
		p.DBDriver = dbDriverFlag
	}
	if p.DBPath == "" {
		p.DBPath = dbPathFlag
	}

	return config.New(p)
}

func initDB(cfg config.Config) (*gorm.DB, error) {
	db := database.Open(cfg)
	database.InitSchema(db)
	if err := database.Migrate(db); err != nil {
		return nil, errors.Wrap(err, "migrating schema")
	}

	return db, nil
}

func getEmailBackend() mailer.Backend {
	defaultBackend, err := mailer.NewDefaultBackend()
	if err != nil {
		log.Debug("SMTP not configured, using StdoutBackend for emails")
		return mailer.NewStdoutBackend()
	}

	log.Debug("Email backend configured")
	return defaultBackend
}

// initApp builds an app from the given config and returns it along
// with a cleanup function that closes the database connection
func initApp(cfg config.Config) (*app.App, func(), error) {
	db, err := initDB(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initializing database")
	}

	a := app.App{
		DB:                  db,
		Clock:               clock.New(),
		EmailBackend:        getEmailBackend(),
		BaseURL:             cfg.WebURL,
		DisableRegistration: cfg.DisableRegistration,
		Port:                cfg.Port,
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return &a, cleanup, nil
}

// setupApp builds a config from the persistent flags alone and
// initializes an app, for subcommands that only need database access
func setupApp() (*app.App, func(), error) {
	cfg, err := newConfig(config.Params{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading config")
	}

	return initApp(cfg)
}
