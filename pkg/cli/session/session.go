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

// Package session persists the current login between command invocations.
// The desktop application keeps the logged-in user in its window state; the
// command line equivalent is a small file in the data home.
package session

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/biblio/biblio/pkg/cli/consts"
	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/utils"
)

// ErrNotLoggedIn is an error for commands that need a login first
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNotAdmin is an error for administrator-only commands
var ErrNotAdmin = errors.New("this command requires an administrator login")

// ErrNotVisitor is an error for visitor-only commands
var ErrNotVisitor = errors.New("this command requires a visitor login")

// Session identifies who is currently logged in
type Session struct {
	Username  string        `yaml:"username"`
	Role      database.Role `yaml:"role"`
	VisitorID int           `yaml:"visitorId,omitempty"`
}

// GetPath returns the path to the session file
func GetPath(ctx context.BiblioCtx) string {
	return fmt.Sprintf("%s/%s/%s", ctx.Paths.Data, consts.BiblioDirName, consts.SessionFilename)
}

// Read loads the current session. It returns nil if nobody is logged in.
func Read(ctx context.BiblioCtx) (*Session, error) {
	path := GetPath(ctx)

	ok, err := utils.FileExists(path)
	if err != nil {
		return nil, errors.Wrap(err, "checking session file")
	}
	if !ok {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading session file")
	}

	var ret Session
	if err := yaml.Unmarshal(b, &ret); err != nil {
		return nil, errors.Wrap(err, "unmarshalling session")
	}

	return &ret, nil
}

// Write saves the session to the session file
func Write(ctx context.BiblioCtx, s Session) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshalling session into YAML")
	}

	if err := os.WriteFile(GetPath(ctx), b, 0600); err != nil {
		return errors.Wrap(err, "writing the session file")
	}

	return nil
}

// Clear removes the session file if it exists
func Clear(ctx context.BiblioCtx) error {
	path := GetPath(ctx)

	ok, err := utils.FileExists(path)
	if err != nil {
		return errors.Wrap(err, "checking session file")
	}
	if !ok {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "removing the session file")
	}

	return nil
}

// RequireAdmin loads the session and checks that an administrator is logged
// in
func RequireAdmin(ctx context.BiblioCtx) (*Session, error) {
	s, err := Read(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNotLoggedIn
	}
	if s.Role != database.RoleAdmin {
		return nil, ErrNotAdmin
	}

	return s, nil
}

// RequireVisitor loads the session and checks that a visitor is logged in
func RequireVisitor(ctx context.BiblioCtx) (*Session, error) {
	s, err := Read(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNotLoggedIn
	}
	if s.Role != database.RoleVisitor {
		return nil, ErrNotVisitor
	}

	return s, nil
}
