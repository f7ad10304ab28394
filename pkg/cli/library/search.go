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

package library

import (
	"strings"

	"github.com/biblio/biblio/pkg/cli/database"
)

// SearchRow is one copy of a matching title, flattened for display.
type SearchRow struct {
	Title           string
	Author          string
	ISBN            string
	Type            database.BookType
	Section         database.Section
	CopyID          string
	Status          database.BookStatus
	BorrowVisitorID int
}

// Search matches titles whose title, author or isbn contains the trimmed
// query, case-insensitively. An empty query matches everything. Matching
// titles are flattened into one row per copy.
func (l *Library) Search(query string) []SearchRow {
	q := strings.ToLower(strings.TrimSpace(query))

	var rows []SearchRow
	for _, t := range l.Books.ListAll() {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Author), q) &&
			!strings.Contains(strings.ToLower(t.ISBN), q) {
			continue
		}

		for _, c := range t.Copies {
			rows = append(rows, SearchRow{
				Title:           t.Title,
				Author:          t.Author,
				ISBN:            t.ISBN,
				Type:            t.Type,
				Section:         t.Section,
				CopyID:          c.CopyID,
				Status:          c.Status,
				BorrowVisitorID: c.BorrowVisitorID,
			})
		}
	}

	return rows
}
