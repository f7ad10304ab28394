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

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/infra"
	"github.com/biblio/biblio/pkg/cli/log"

	// commands
	"github.com/biblio/biblio/pkg/cli/cmd/add"
	"github.com/biblio/biblio/pkg/cli/cmd/borrow"
	"github.com/biblio/biblio/pkg/cli/cmd/deregister"
	"github.com/biblio/biblio/pkg/cli/cmd/edit"
	"github.com/biblio/biblio/pkg/cli/cmd/find"
	"github.com/biblio/biblio/pkg/cli/cmd/history"
	"github.com/biblio/biblio/pkg/cli/cmd/login"
	"github.com/biblio/biblio/pkg/cli/cmd/logout"
	"github.com/biblio/biblio/pkg/cli/cmd/ls"
	"github.com/biblio/biblio/pkg/cli/cmd/profile"
	"github.com/biblio/biblio/pkg/cli/cmd/register"
	"github.com/biblio/biblio/pkg/cli/cmd/remove"
	"github.com/biblio/biblio/pkg/cli/cmd/returnbook"
	"github.com/biblio/biblio/pkg/cli/cmd/root"
	"github.com/biblio/biblio/pkg/cli/cmd/version"
	"github.com/biblio/biblio/pkg/cli/cmd/visitors"
)

// versionTag is populated during link time
var versionTag = "master"

// parseDataDir extracts the --dataDir flag value from command line arguments
// regardless of where it appears (before or after subcommand), because the
// stores have to be opened before cobra parses anything.
// Returns empty string if not found.
func parseDataDir(args []string) string {
	for i, arg := range args {
		if strings.HasPrefix(arg, "--dataDir=") {
			return strings.TrimPrefix(arg, "--dataDir=")
		}
		if arg == "--dataDir" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}

func main() {
	dataDir := parseDataDir(os.Args[1:])

	ctx, err := infra.Init(versionTag, dataDir)
	if err != nil {
		panic(errors.Wrap(err, "initializing context"))
	}

	root.Register(login.NewCmd(*ctx))
	root.Register(logout.NewCmd(*ctx))
	root.Register(register.NewCmd(*ctx))
	root.Register(profile.NewCmd(*ctx))
	root.Register(deregister.NewCmd(*ctx))
	root.Register(add.NewCmd(*ctx))
	root.Register(edit.NewCmd(*ctx))
	root.Register(remove.NewCmd(*ctx))
	root.Register(ls.NewCmd(*ctx))
	root.Register(find.NewCmd(*ctx))
	root.Register(borrow.NewCmd(*ctx))
	root.Register(returnbook.NewCmd(*ctx))
	root.Register(visitors.NewCmd(*ctx))
	root.Register(history.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		log.Errorf("%s\n", err.Error())
		os.Exit(1)
	}
}
