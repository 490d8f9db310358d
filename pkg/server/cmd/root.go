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

// Package cmd implements the litlens-server command tree
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFileFlag string
	dbDriverFlag   string
	dbPathFlag     string
)

var root = &cobra.Command{
	Use:           "litlens-server",
	Short:         "LitLens - a book discovery and social reading server",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	root.PersistentFlags().StringVar(&configFileFlag, "configFile", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&dbDriverFlag, "dbDriver", "", "database driver: postgres or sqlite (env: DBDriver, default: postgres)")
	root.PersistentFlags().StringVar(&dbPathFlag, "dbPath", "", "path to the SQLite database file (env: DBPath)")
}

// Register adds a new command
func Register(cmd *cobra.Command) {
	root.AddCommand(cmd)
}

// Execute runs the root command
func Execute() error {
	return root.Execute()
}
