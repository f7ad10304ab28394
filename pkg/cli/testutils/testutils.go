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

// Package testutils provides utilities used in tests
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/consts"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/clock"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// BookDBPath returns the path of the book database file inside the given
// directory
func BookDBPath(dir string) string {
	return filepath.Join(dir, consts.BookDatabaseFilename)
}

// VisitorDBPath returns the path of the visitor database file inside the
// given directory
func VisitorDBPath(dir string) string {
	return filepath.Join(dir, consts.VisitorDatabaseFilename)
}

// MustOpenBookStore opens a book store at the given path and fails the test
// on error
func MustOpenBookStore(t *testing.T, path string) *database.BookStore {
	t.Helper()

	s, err := database.OpenBookStore(path)
	if err != nil {
		t.Fatal(errors.Wrap(err, "opening the book store"))
	}

	return s
}

// MustOpenVisitorStore opens a visitor store at the given path and fails the
// test on error
func MustOpenVisitorStore(t *testing.T, path string, c clock.Clock) *database.VisitorStore {
	t.Helper()

	s, err := database.OpenVisitorStore(path, c)
	if err != nil {
		t.Fatal(errors.Wrap(err, "opening the visitor store"))
	}

	return s
}

// WriteFile writes the given content to the filename inside the directory
func WriteFile(t *testing.T, dir, filename, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing the file"))
	}
}

// ReadJSON decodes the JSON file at the given path into the destination and
// fails the test on error
func ReadJSON(t *testing.T, path string, dest interface{}) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading the file"))
	}
	if err := codec.Unmarshal(data, dest); err != nil {
		t.Fatal(errors.Wrap(err, "unmarshalling the file"))
	}
}
