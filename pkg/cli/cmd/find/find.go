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

package find

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/output"
)

var example = `
 * search by title, author or isbn
 biblio find mockingbird`

// NewCmd returns a new find command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find <query>",
		Short:   "Search books by title, author or isbn",
		Example: example,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		output.BookTable(ctx.Library.Search(query))

		return nil
	}
}
