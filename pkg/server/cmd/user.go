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

	"github.com/litlens/litlens/pkg/server/app"
	"github.com/litlens/litlens/pkg/server/database"
)

var (
	userEmailFlag    string
	userUsernameFlag string
	userPasswordFlag string
)

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE:  runUserCreate,
	}
	createCmd.Flags().StringVar(&userEmailFlag, "email", "", "user email address (required)")
	createCmd.Flags().StringVar(&userUsernameFlag, "username", "", "username (required)")
	createCmd.Flags().StringVar(&userPasswordFlag, "password", "", "user password (required)")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("username")
	createCmd.MarkFlagRequired("password")

	promoteCmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant a user the moderator role",
		RunE:  runUserPromote,
	}
	promoteCmd.Flags().StringVar(&userEmailFlag, "email", "", "user email address (required)")
	promoteCmd.MarkFlagRequired("email")

	resetPasswordCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password",
		RunE:  runUserResetPassword,
	}
	resetPasswordCmd.Flags().StringVar(&userEmailFlag, "email", "", "user email address (required)")
	resetPasswordCmd.Flags().StringVar(&userPasswordFlag, "password", "", "new password (required)")
	resetPasswordCmd.MarkFlagRequired("email")
	resetPasswordCmd.MarkFlagRequired("password")

	userCmd.AddCommand(createCmd)
	userCmd.AddCommand(promoteCmd)
	userCmd.AddCommand(resetPasswordCmd)

	Register(userCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setupApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := a.CreateUser(userEmailFlag, userUsernameFlag, userPasswordFlag, userPasswordFlag); err != nil {
		return errors.Wrap(err, "creating user")
	}

	printSuccessf("created user %s\n", userEmailFlag)

	return nil
}

func runUserPromote(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setupApp()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := a.GetUserByEmail(userEmailFlag)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			printErrorf("user %s not found\n", userEmailFlag)
			return app.ErrNotFound
		}

		return errors.Wrap(err, "finding user")
	}

	if err := a.SetRole(user, database.RoleAdmin); err != nil {
		return errors.Wrap(err, "setting role")
	}

	printSuccessf("promoted %s to moderator\n", userEmailFlag)

	return nil
}

func runUserResetPassword(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setupApp()
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := a.GetUserByEmail(userEmailFlag)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			printErrorf("user %s not found\n", userEmailFlag)
			return app.ErrNotFound
		}

		return errors.Wrap(err, "finding user")
	}

	if err := a.SetPassword(user, userPasswordFlag); err != nil {
		return errors.Wrap(err, "setting password")
	}

	printSuccessf("reset password for %s\n", userEmailFlag)

	return nil
}
