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

package add

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/session"
	"github.com/biblio/biblio/pkg/cli/validate"
)

var titleFlag string
var authorFlag string
var typeFlag string
var sectionFlag string
var quantityFlag string

var example = `
 * add five copies of a new title
 biblio add 978-0061120084 -t "To Kill a Mockingbird" -a "Harper Lee" --type literature --section s2 -q 5

 * add more copies of an existing title
 biblio add 978-0061120084 -q 3`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Missing isbn argument")
	}

	return nil
}

// NewCmd returns a new add command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <isbn>",
		Short:   "Add copies of a book to the library",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "the title of the book")
	f.StringVarP(&authorFlag, "author", "a", "", "the author of the book")
	f.StringVar(&typeFlag, "type", "", "the book type (technology, science, literature, history, art, fiction)")
	f.StringVar(&sectionFlag, "section", "", "the shelf section (s1, s2, s3)")
	f.StringVarP(&quantityFlag, "quantity", "q", "1", "the number of copies to add")

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := session.RequireAdmin(ctx); err != nil {
			return err
		}

		isbn := args[0]
		if err := validate.ISBN(isbn); err != nil {
			return err
		}
		quantity, err := validate.Quantity(quantityFlag)
		if err != nil {
			return err
		}

		existing := ctx.Books.FindByISBN(isbn)

		var title, author string
		var bookType database.BookType
		var section database.Section
		if existing == nil {
			// a brand new title needs the full metadata
			if err := validate.Title(titleFlag); err != nil {
				return err
			}
			title = titleFlag
			author = authorFlag

			bookType, err = database.ParseBookType(typeFlag)
			if err != nil {
				return err
			}
			section, err = database.ParseSection(sectionFlag)
			if err != nil {
				return err
			}
		} else {
			// metadata of an existing title is kept as is
			title = existing.Title
			author = existing.Author
			bookType = existing.Type
			section = existing.Section
		}

		ctx.Books.Add(title, author, isbn, bookType, section, quantity)

		if existing == nil {
			log.Successf("added %s with %d copies\n", isbn, quantity)
		} else {
			log.Successf("added %d copies to %s\n", quantity, isbn)
		}

		return nil
	}
}
