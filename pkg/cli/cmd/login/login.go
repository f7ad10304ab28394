/* Copyright (C) 2026 Biblio contributors
 *
 * This file is part of Biblio.
 *
 * Biblio is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * Biblio is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with Biblio.  If not, see <https://www.gnu.org/licenses/>.
 */

package login

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/session"
	"github.com/biblio/biblio/pkg/cli/ui"
	"github.com/biblio/biblio/pkg/cli/validate"
)

// NewCmd returns a new login command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the administrator or a visitor",
		RunE:  newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		var username, password string

		if err := ui.PromptInput("username", &username); err != nil {
			return errors.Wrap(err, "getting username input")
		}
		if err := validate.Username(username); err != nil {
			return err
		}

		if err := ui.PromptPassword("password", &password); err != nil {
			return errors.Wrap(err, "getting password input")
		}
		if err := validate.Password(password); err != nil {
			return err
		}

		auth, err := ctx.Library.Authenticate(username, password)
		if err != nil {
			return err
		}

		s := session.Session{
			Username:  auth.Username,
			Role:      auth.Role,
			VisitorID: auth.VisitorID,
		}
		if err := session.Write(ctx, s); err != nil {
			return errors.Wrap(err, "writing the session")
		}

		if auth.Role == database.RoleAdmin {
			log.Success("logged in as the administrator\n")
		} else {
			log.Successf("logged in as %s (visitor %d)\n", auth.Username, auth.VisitorID)
		}

		return nil
	}
}
