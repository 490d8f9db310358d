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

	"github.com/litlens/litlens/pkg/server/jobs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute denormalized counters from their source rows",
		RunE:  runReconcile,
	}

	Register(cmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setupApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := jobs.Reconcile(a.DB); err != nil {
		return errors.Wrap(err, "reconciling counters")
	}

	printSuccessf("reconciled book ratings and reply counts\n")

	return nil
}
