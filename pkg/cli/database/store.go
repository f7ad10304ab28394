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

// Package database implements the two file-backed stores at the core of
// Biblio: the book catalog and the visitor roster. Each store owns one JSON
// file and rewrites it in full on every successful mutation.
package database

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/utils"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// writeCollection atomically replaces the file at path with the marshaled
// collection by writing to a sibling temp file and renaming it over.
func writeCollection(path string, collection interface{}) error {
	b, err := codec.MarshalIndent(collection, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling collection")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return errors.Wrapf(err, "writing temp file at %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "replacing database file at %s", path)
	}

	return nil
}

// readCollection loads the collection at path. A missing file leaves the
// collection empty, which is equivalent to an empty database.
func readCollection(path string, collection interface{}) error {
	ok, err := utils.FileExists(path)
	if err != nil {
		return errors.Wrapf(err, "checking database file at %s", path)
	}
	if !ok {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading database file at %s", path)
	}

	if err := codec.Unmarshal(b, collection); err != nil {
		return errors.Wrapf(err, "unmarshalling database file at %s", path)
	}

	return nil
}
