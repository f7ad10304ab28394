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

package register

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/ui"
	"github.com/biblio/biblio/pkg/cli/validate"
)

// NewCmd returns a new register command
func NewCmd(ctx context.BiblioCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new visitor account",
		RunE:  newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.BiblioCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		var username, password, passwordConfirm string
		var fullName, genderInput, ageInput, phone, address string

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
		if err := ui.PromptPassword("confirm password", &passwordConfirm); err != nil {
			return errors.Wrap(err, "getting password confirmation")
		}
		if password != passwordConfirm {
			return errors.New("The passwords do not match")
		}

		if err := ui.PromptInput("full name", &fullName); err != nil {
			return errors.Wrap(err, "getting full name input")
		}
		if err := ui.PromptInput("gender (male/female)", &genderInput); err != nil {
			return errors.Wrap(err, "getting gender input")
		}
		gender, err := database.ParseGender(genderInput)
		if err != nil {
			return err
		}
		if err := ui.PromptInput("age", &ageInput); err != nil {
			return errors.Wrap(err, "getting age input")
		}
		age, err := validate.Age(ageInput)
		if err != nil {
			return err
		}
		if err := ui.PromptInput("phone", &phone); err != nil {
			return errors.Wrap(err, "getting phone input")
		}
		if err := ui.PromptInput("address", &address); err != nil {
			return errors.Wrap(err, "getting address input")
		}

		v := database.NewVisitor(username, password, fullName, gender, age, phone, address)
		if err := ctx.Library.Register(v); err != nil {
			return err
		}

		log.Successf("registered %s with visitor id %d\n", v.Username, v.VisitorID)

		return nil
	}
}
