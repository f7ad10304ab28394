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

package edit

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/library"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/session"
	"github.com/biblio/biblio/pkg/cli/validate"
)

var titleFlag string
var authorFlag string
var typeFlag string
var sectionFlag string

var example = `
 * change the title only; other fields are kept
 biblio edit 978-0061120084 -t "Go Set a Watchman"`

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Missing isbn argument")
	}

	return nil
}

// NewCmd returns a new edit command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <isbn>",
		Short:   "Edit the metadata of a book",
		Example: example,
		PreRunE: preRun,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&titleFlag, "title", "t", "", "the title of the book")
	f.StringVarP(&authorFlag, "author", "a", "", "the author of the book")
	f.StringVar(&typeFlag, "type", "", "the book type (technology, science, literature, history, art, fiction)")
	f.StringVar(&sectionFlag, "section", "", "the shelf section (s1, s2, s3)")

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

		existing := ctx.Books.FindByISBN(isbn)
		if existing == nil {
			return library.ErrTitleNotFound
		}

		// empty flags keep the current value
		title := existing.Title
		author := existing.Author
		bookType := existing.Type
		section := existing.Section

		var err error
		if titleFlag != "" {
			if err = validate.Title(titleFlag); err != nil {
				return err
			}
			title = titleFlag
		}
		if authorFlag != "" {
			author = authorFlag
		}
		if typeFlag != "" {
			bookType, err = database.ParseBookType(typeFlag)
			if err != nil {
				return err
			}
		}
		if sectionFlag != "" {
			section, err = database.ParseSection(sectionFlag)
			if err != nil {
				return err
			}
		}

		if ok := ctx.Books.Edit(isbn, title, author, bookType, section); !ok {
			return library.ErrTitleNotFound
		}

		log.Successf("edited %s\n", isbn)

		return nil
	}
}
