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

package profile

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/library"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/output"
	"github.com/biblio/biblio/pkg/cli/session"
	"github.com/biblio/biblio/pkg/cli/ui"
	"github.com/biblio/biblio/pkg/cli/validate"
)

// NewCmd returns a new profile command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your visitor profile",
		RunE:  newRun(ctx),
	}

	cmd.AddCommand(newEditCmd(ctx))

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		s, err := session.RequireVisitor(ctx)
		if err != nil {
			return err
		}

		v := ctx.Visitors.FindByID(s.VisitorID)
		if v == nil {
			return library.ErrVisitorNotFound
		}

		output.VisitorInfo(*v)

		return nil
	}
}

func newEditCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your visitor profile",
		RunE:  newEditRun(ctx),
	}

	return cmd
}

// promptField asks for a new value and keeps the current one on an empty
// answer
func promptField(label, current string, dest *string) error {
	var input string
	if err := ui.PromptInput(fmt.Sprintf("%s (%s)", label, current), &input); err != nil {
		return errors.Wrapf(err, "getting %s input", label)
	}

	if input != "" {
		*dest = input
	}

	return nil
}

func newEditRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		s, err := session.RequireVisitor(ctx)
		if err != nil {
			return err
		}

		v := ctx.Visitors.FindByID(s.VisitorID)
		if v == nil {
			return library.ErrVisitorNotFound
		}

		updated := *v

		if err := promptField("full name", updated.FullName, &updated.FullName); err != nil {
			return err
		}

		var genderInput string
		if err := promptField("gender", string(updated.Gender), &genderInput); err != nil {
			return err
		}
		if genderInput != "" {
			gender, err := database.ParseGender(genderInput)
			if err != nil {
				return err
			}
			updated.Gender = gender
		}

		var ageInput string
		if err := promptField("age", fmt.Sprintf("%d", updated.Age), &ageInput); err != nil {
			return err
		}
		if ageInput != "" {
			age, err := validate.Age(ageInput)
			if err != nil {
				return err
			}
			updated.Age = age
		}

		if err := promptField("phone", updated.Phone, &updated.Phone); err != nil {
			return err
		}
		if err := promptField("address", updated.Address, &updated.Address); err != nil {
			return err
		}

		var password string
		if err := ui.PromptPassword("new password (empty to keep)", &password); err != nil {
			return errors.Wrap(err, "getting password input")
		}
		if password != "" {
			updated.Password = password
		}

		if err := ctx.Library.UpdateProfile(&updated); err != nil {
			return err
		}

		log.Success("profile updated\n")

		return nil
	}
}
