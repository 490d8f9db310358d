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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/pkg/errors"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		config      Config
		expectedErr error
	}{
		{
			config: Config{
				WebURL:   "http://mock.url",
				Port:     "3001",
				DBDriver: DBDriverSQLite,
				DBPath:   "test.db",
			},
			expectedErr: nil,
		},
		{
			config: Config{
				WebURL:   "http://mock.url",
				Port:     "3001",
				DBDriver: DBDriverPostgres,
				DB: PostgresConfig{
					Host: "localhost",
					Port: "5432",
					Name: "litlens",
					User: "postgres",
				},
			},
			expectedErr: nil,
		},
		{
			config: Config{
				Port:     "3001",
				DBDriver: DBDriverSQLite,
				DBPath:   "test.db",
			},
			expectedErr: ErrWebURLInvalid,
		},
		{
			config: Config{
				WebURL:   "http://mock.url",
				DBDriver: DBDriverSQLite,
				DBPath:   "test.db",
			},
			expectedErr: ErrPortInvalid,
		},
		{
			config: Config{
				WebURL:   "http://mock.url",
				Port:     "3001",
				DBDriver: DBDriverSQLite,
				DBPath:   "",
			},
			expectedErr: ErrDBMissingConfig,
		},
		{
			config: Config{
				WebURL:   "http://mock.url",
				Port:     "3001",
				DBDriver: "mysql",
			},
			expectedErr: ErrDBDriverInvalid,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", idx), func(t *testing.T) {
			err := validate(tc.config)

			assert.Equal(t, errors.Cause(err), tc.expectedErr, "error mismatch")
		})
	}
}

func TestNewDefaults(t *testing.T) {
	// clear ambient environment so defaults apply
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("WebURL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := New(Params{
		DBDriver: DBDriverSQLite,
		DBPath:   "test.db",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg.AppEnv, AppEnvProduction, "AppEnv mismatch")
	assert.Equal(t, cfg.Port, "3001", "Port mismatch")
	assert.Equal(t, cfg.WebURL, "http://localhost:3001", "WebURL mismatch")
	assert.Equal(t, cfg.LogLevel, "info", "LogLevel mismatch")
}

func TestNewConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `web_url: http://file.example.com
port: "4000"
db_driver: sqlite
db_path: file.db
disable_registration: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(Params{ConfigFile: path})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg.WebURL, "http://file.example.com", "WebURL mismatch")
	assert.Equal(t, cfg.Port, "4000", "Port mismatch")
	assert.Equal(t, cfg.DBDriver, DBDriverSQLite, "DBDriver mismatch")
	assert.Equal(t, cfg.DBPath, "file.db", "DBPath mismatch")
	assert.Equal(t, cfg.DisableRegistration, true, "DisableRegistration mismatch")
}

func TestNewFlagWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `port: "4000"
db_driver: sqlite
db_path: file.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(Params{ConfigFile: path, Port: "5000"})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg.Port, "5000", "Port mismatch")
}
