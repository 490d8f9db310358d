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

// Package config loads and validates the server configuration
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// AppEnvTest represents an app environment for test.
	AppEnvTest string = "TEST"

	// DBDriverPostgres is the database driver for the hosted Postgres store
	DBDriverPostgres = "postgres"
	// DBDriverSQLite is the database driver for standalone deployments
	DBDriverSQLite = "sqlite"
)

var (
	// ErrWebURLInvalid is an error for an incomplete configuration with invalid web url
	ErrWebURLInvalid = errors.New("Invalid WebURL")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
	// ErrDBDriverInvalid is an error for an unsupported database driver
	ErrDBDriverInvalid = errors.New("Invalid DBDriver")
	// ErrDBMissingConfig is an error for a missing database configuration
	ErrDBMissingConfig = errors.New("Incomplete database configuration")
)

// PostgresConfig holds the connection information for the Postgres store
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN builds a Postgres connection string from the config
func (c PostgresConfig) DSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslmode)
}

// Config is an application configuration
type Config struct {
	AppEnv              string
	WebURL              string
	Port                string
	DBDriver            string
	DBPath              string
	DB                  PostgresConfig
	DisableRegistration bool
	LogLevel            string
}

// Params are the configuration parameters for creating a new Config.
// Empty string params fall back to the config file, environment
// variables, and defaults, in that order.
type Params struct {
	AppEnv              string
	Port                string
	WebURL              string
	DBDriver            string
	DBPath              string
	DisableRegistration bool
	LogLevel            string
	ConfigFile          string
}

// fileConfig is the shape of an optional YAML configuration file
type fileConfig struct {
	AppEnv              string         `yaml:"app_env"`
	Port                string         `yaml:"port"`
	WebURL              string         `yaml:"web_url"`
	DBDriver            string         `yaml:"db_driver"`
	DBPath              string         `yaml:"db_path"`
	DB                  PostgresConfig `yaml:"db"`
	DisableRegistration bool           `yaml:"disable_registration"`
	LogLevel            string         `yaml:"log_level"`
}

func readFileConfig(path string) (fileConfig, error) {
	var fc fileConfig

	if path == "" {
		return fc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fc, errors.Wrap(err, "parsing config file")
	}

	return fc, nil
}

func readBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}

// resolve returns the first non-empty value among the flag value, the
// config file value, and the environment variable, falling back to the default
func resolve(flagVal, fileVal, envKey, defaultVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if fileVal != "" {
		return fileVal
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

// New constructs and returns a new validated config
func New(p Params) (Config, error) {
	fc, err := readFileConfig(p.ConfigFile)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		AppEnv:              resolve(p.AppEnv, fc.AppEnv, "APP_ENV", AppEnvProduction),
		Port:                resolve(p.Port, fc.Port, "PORT", "3001"),
		WebURL:              resolve(p.WebURL, fc.WebURL, "WebURL", "http://localhost:3001"),
		DBDriver:            resolve(p.DBDriver, fc.DBDriver, "DBDriver", DBDriverPostgres),
		DBPath:              resolve(p.DBPath, fc.DBPath, "DBPath", ""),
		DisableRegistration: p.DisableRegistration || fc.DisableRegistration || readBoolEnv("DisableRegistration"),
		LogLevel:            resolve(p.LogLevel, fc.LogLevel, "LOG_LEVEL", "info"),
		DB: PostgresConfig{
			Host:     resolve(fc.DB.Host, "", "DBHost", "localhost"),
			Port:     resolve(fc.DB.Port, "", "DBPort", "5432"),
			Name:     resolve(fc.DB.Name, "", "DBName", "litlens"),
			User:     resolve(fc.DB.User, "", "DBUser", "postgres"),
			Password: resolve(fc.DB.Password, "", "DBPassword", ""),
			SSLMode:  resolve(fc.DB.SSLMode, "", "DBSSLMode", ""),
		},
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

func validate(c Config) error {
	if _, err := url.ParseRequestURI(c.WebURL); err != nil {
		return errors.Wrapf(ErrWebURLInvalid, "'%s'", c.WebURL)
	}
	if c.Port == "" {
		return ErrPortInvalid
	}

	switch c.DBDriver {
	case DBDriverPostgres:
		if c.DB.Host == "" || c.DB.Name == "" || c.DB.User == "" {
			return ErrDBMissingConfig
		}
	case DBDriverSQLite:
		if c.DBPath == "" {
			return ErrDBMissingConfig
		}
	default:
		return errors.Wrapf(ErrDBDriverInvalid, "'%s'", c.DBDriver)
	}

	return nil
}
