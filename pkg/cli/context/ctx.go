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

// Package context defines the biblio runtime context
package context

import (
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/library"
	"github.com/biblio/biblio/pkg/clock"
)

// Paths contain directory definitions
type Paths struct {
	Home    string
	Config  string
	Data    string
	WorkDir string
}

// BiblioCtx is a context holding the information of the current runtime
type BiblioCtx struct {
	Paths    Paths
	Version  string
	Clock    clock.Clock
	Books    *database.BookStore
	Visitors *database.VisitorStore
	Library  *library.Library
}
