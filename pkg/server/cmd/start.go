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
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/litlens/litlens/pkg/server/buildinfo"
	"github.com/litlens/litlens/pkg/server/config"
	"github.com/litlens/litlens/pkg/server/controllers"
	"github.com/litlens/litlens/pkg/server/jobs"
	"github.com/litlens/litlens/pkg/server/log"
)

var (
	portFlag                string
	webURLFlag              string
	disableRegistrationFlag bool
	logLevelFlag            string
)

func init() {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the server",
		RunE:  runStart,
	}

	cmd.Flags().StringVar(&portFlag, "port", "", "server port (env: PORT, default: 3001)")
	cmd.Flags().StringVar(&webURLFlag, "webUrl", "", "full URL to the server without a trailing slash (env: WebURL, default: http://localhost:3001)")
	cmd.Flags().BoolVar(&disableRegistrationFlag, "disableRegistration", false, "disable user registration (env: DisableRegistration, default: false)")
	cmd.Flags().StringVar(&logLevelFlag, "logLevel", "", "log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	Register(cmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := newConfig(config.Params{
		Port:                portFlag,
		WebURL:              webURLFlag,
		DisableRegistration: disableRegistrationFlag,
		LogLevel:            logLevelFlag,
	})
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	log.SetLevel(cfg.LogLevel)

	a, cleanup, err := initApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runner := jobs.NewRunner(a.DB)
	if err := runner.Do(); err != nil {
		return errors.Wrap(err, "starting background jobs")
	}
	defer runner.Stop()

	ctl := controllers.New(a)
	rc := controllers.RouteConfig{
		APIRoutes:   controllers.NewAPIRoutes(a, ctl),
		Controllers: ctl,
	}

	r, err := controllers.NewRouter(a, rc)
	if err != nil {
		return errors.Wrap(err, "initializing router")
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("LitLens server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		return errors.Wrap(err, "running server")
	}

	return nil
}
