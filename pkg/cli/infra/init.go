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

// Package infra provides operations and definitions for the
// local infrastructure for Biblio
package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/biblio/biblio/pkg/cli/config"
	"github.com/biblio/biblio/pkg/cli/consts"
	"github.com/biblio/biblio/pkg/cli/context"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/library"
	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/cli/utils"
	"github.com/biblio/biblio/pkg/clock"
	"github.com/biblio/biblio/pkg/dirs"
)

// RunEFunc is a function type of biblio commands
type RunEFunc func(*cobra.Command, []string) error

func newBaseCtx(versionTag string) (context.BiblioCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		return context.BiblioCtx{}, errors.Wrap(err, "getting working directory")
	}

	ctx := context.BiblioCtx{
		Paths: context.Paths{
			Home:    dirs.Home,
			Config:  dirs.ConfigHome,
			Data:    dirs.DataHome,
			WorkDir: wd,
		},
		Version: versionTag,
		Clock:   clock.New(),
	}

	return ctx, nil
}

// initFiles makes sure the config and data directories exist and that a
// config file is present
func initFiles(ctx context.BiblioCtx) error {
	if err := utils.EnsureDir(fmt.Sprintf("%s/%s", ctx.Paths.Config, consts.BiblioDirName)); err != nil {
		return errors.Wrap(err, "creating the config directory")
	}
	if err := utils.EnsureDir(fmt.Sprintf("%s/%s", ctx.Paths.Data, consts.BiblioDirName)); err != nil {
		return errors.Wrap(err, "creating the data directory")
	}

	configPath := config.GetPath(ctx)
	ok, err := utils.FileExists(configPath)
	if err != nil {
		return errors.Wrap(err, "checking config file")
	}
	if !ok {
		if err := config.Write(ctx, config.Config{}); err != nil {
			return errors.Wrap(err, "writing initial config file")
		}
	}

	return nil
}

// getDataDir resolves where the two database files live. The flag wins over
// the config file; the default is the working directory, which is where the
// desktop application kept them.
func getDataDir(ctx context.BiblioCtx, cf config.Config, customDir string) string {
	if customDir != "" {
		return customDir
	}
	if cf.DataDir != "" {
		return cf.DataDir
	}

	return ctx.Paths.WorkDir
}

// Init initializes the Biblio environment and returns a new biblio context
func Init(versionTag, dataDir string) (*context.BiblioCtx, error) {
	ctx, err := newBaseCtx(versionTag)
	if err != nil {
		return nil, errors.Wrap(err, "initializing a context")
	}

	if err := initFiles(ctx); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	cf, err := config.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reading the config")
	}

	dir := getDataDir(ctx, cf, dataDir)

	books, err := database.OpenBookStore(filepath.Join(dir, consts.BookDatabaseFilename))
	if err != nil {
		return nil, errors.Wrap(err, "opening the book store")
	}
	visitors, err := database.OpenVisitorStore(filepath.Join(dir, consts.VisitorDatabaseFilename), ctx.Clock)
	if err != nil {
		return nil, errors.Wrap(err, "opening the visitor store")
	}

	ctx.Books = books
	ctx.Visitors = visitors
	ctx.Library = library.New(books, visitors)

	log.Debug("data dir: %s\n", dir)

	return &ctx, nil
}
