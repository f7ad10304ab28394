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

// Package consts provides definitions of constants
package consts

var (
	// BiblioDirName is the name of the directory containing biblio files
	BiblioDirName = "biblio"
	// ConfigFilename is the name of the config file
	ConfigFilename = "bibliorc"
	// SessionFilename is the name of the file holding the current login session
	SessionFilename = "session"
	// BookDatabaseFilename is the file holding the book catalog
	BookDatabaseFilename = "BookDatabase.json"
	// VisitorDatabaseFilename is the file holding the visitor roster
	VisitorDatabaseFilename = "VisitorDatabase.json"
)
