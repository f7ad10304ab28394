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
	"github.com/biblio/biblio/pkg/cli/database"
)

// Reconcile reconstructs copy status from the union of BORROWED records.
// The two stores write to independent files, so a crash between the two
// writes of a borrow or return can leave them disagreeing. The visitor-side
// records are taken as the truth: a copy referenced by an active record
// becomes UNAVAILABLE with that borrower recorded, and an UNAVAILABLE copy
// nobody claims reverts to AVAILABLE. It returns the number of copies
// corrected.
func (l *Library) Reconcile() int {
	type claim struct {
		visitorID int
	}

	claims := make(map[string]claim)
	for _, v := range l.Visitors.ListAll() {
		for _, r := range v.BorrowRecords {
			if r.Status != database.BorrowStatusBorrowed {
				continue
			}

			key := r.ISBN + "\x00" + r.CopyID
			if _, ok := claims[key]; !ok {
				claims[key] = claim{visitorID: v.VisitorID}
			}
		}
	}

	corrected := 0
	for _, t := range l.Books.ListAll() {
		for _, c := range t.Copies {
			key := t.ISBN + "\x00" + c.CopyID
			cl, claimed := claims[key]

			switch {
			case claimed && (c.Status != database.BookStatusUnavailable || c.BorrowVisitorID != cl.visitorID):
				// The record says the copy is out; make the catalog agree.
				l.Books.Return(t.ISBN, c.CopyID)
				l.Books.Borrow(t.ISBN, c.CopyID, cl.visitorID)
				corrected++
			case !claimed && c.Status == database.BookStatusUnavailable:
				// Nobody holds the copy; bring it back.
				l.Books.Return(t.ISBN, c.CopyID)
				corrected++
			}
		}
	}

	return corrected
}
