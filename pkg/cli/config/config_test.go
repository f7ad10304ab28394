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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biblio/biblio/pkg/assert"
	"github.com/biblio/biblio/pkg/cli/consts"
	"github.com/biblio/biblio/pkg/cli/context"
)

func TestReadWrite(t *testing.T) {
	configHome := t.TempDir()
	if err := os.MkdirAll(filepath.Join(configHome, consts.BiblioDirName), 0755); err != nil {
		t.Fatal(err)
	}
	ctx := context.BiblioCtx{
		Paths: context.Paths{Config: configHome},
	}

	if err := Write(ctx, Config{DataDir: "/srv/biblio"}); err != nil {
		t.Fatal(err)
	}

	got, err := Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, got.DataDir, "/srv/biblio", "data dir mismatch")
}

func TestReadMissing(t *testing.T) {
	ctx := context.BiblioCtx{
		Paths: context.Paths{Config: t.TempDir()},
	}

	if _, err := Read(ctx); err == nil {
		t.Fatal("reading a missing config file should fail")
	}
}
