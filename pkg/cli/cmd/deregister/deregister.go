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

package deregister

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/session"
	"github.com/biblio/biblio/pkg/cli/ui"
)

// NewCmd returns a new deregister command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deregister",
		Short: "Delete your visitor account",
		RunE:  newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		s, err := session.RequireVisitor(ctx)
		if err != nil {
			return err
		}

		ok, err := ui.Confirm("delete your account? all borrow history will be lost", false)
		if err != nil {
			return errors.Wrap(err, "getting confirmation")
		}
		if !ok {
			log.Warnf("aborted\n")
			return nil
		}

		if err := ctx.Library.RemoveVisitor(s.VisitorID); err != nil {
			return err
		}

		if err := session.Clear(ctx); err != nil {
			return errors.Wrap(err, "clearing the session")
		}

		log.Success("account deleted\n")

		return nil
	}
}
