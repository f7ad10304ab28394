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

package borrow

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/session"
)

var example = `
 * lend copy 978-0061120084-1 to visitor 1001
 biblio borrow 978-0061120084 978-0061120084-1 1001`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return errors.New("Missing isbn, copy id and visitor id arguments")
	}

	return nil
}

// NewCmd returns a new borrow command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "borrow <isbn> <copyId> <visitorId>",
		Short:   "Lend a book copy to a visitor",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := session.RequireAdmin(ctx); err != nil {
			return err
		}

		isbn := args[0]
		copyID := args[1]
		visitorID, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.Errorf("invalid visitor id: %s", args[2])
		}

		if err := ctx.Library.Borrow(isbn, copyID, visitorID); err != nil {
			return err
		}

		log.Successf("lent %s to visitor %d\n", copyID, visitorID)

		return nil
	}
}
