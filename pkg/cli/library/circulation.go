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

// Borrow lends a copy to a visitor. The book side is mutated first; if it
// refuses (copy gone or already out) nothing has changed. The visitor side
// append is then expected to succeed because the visitor was resolved up
// front.
func (l *Library) Borrow(isbn, copyID string, visitorID int) error {
	v := l.Visitors.FindByID(visitorID)
	if v == nil {
		return ErrVisitorNotFound
	}
	if v.ActiveBorrows() >= BorrowLimit {
		return ErrBorrowLimit
	}

	if !l.Books.Borrow(isbn, copyID, visitorID) {
		return ErrCopyUnavailable
	}
	l.Visitors.Borrow(isbn, copyID, visitorID)

	return nil
}

// Return takes a copy back. The borrower id is read before the book side is
// mutated, because the store keeps it only as a lookup key. If the borrower
// no longer exists the copy still comes back and there is no visitor side to
// update.
func (l *Library) Return(isbn, copyID string) error {
	c, ok := l.Books.FindCopy(isbn, copyID)
	if !ok {
		return ErrCopyNotFound
	}

	if !l.Books.Return(isbn, copyID) {
		return ErrCopyNotBorrowed
	}

	v := l.Visitors.FindByID(c.BorrowVisitorID)
	if v == nil {
		return nil
	}
	l.Visitors.Return(isbn, copyID, v.VisitorID)

	return nil
}

// RemoveCopy deletes a copy from the catalog. A borrowed copy is never
// deleted.
func (l *Library) RemoveCopy(isbn, copyID string) error {
	c, ok := l.Books.FindCopy(isbn, copyID)
	if !ok {
		return ErrCopyNotFound
	}
	if c.Status == database.BookStatusUnavailable {
		return ErrCopyUnavailable
	}

	if !l.Books.DeleteCopy(isbn, copyID) {
		return ErrCopyNotFound
	}

	return nil
}

// RemoveVisitor deletes a visitor from the roster. A visitor holding
// borrowed copies is never deleted.
func (l *Library) RemoveVisitor(visitorID int) error {
	v := l.Visitors.FindByID(visitorID)
	if v == nil {
		return ErrVisitorNotFound
	}
	if v.ActiveBorrows() > 0 {
		return ErrActiveBorrows
	}

	if !l.Visitors.Delete(visitorID) {
		return ErrVisitorNotFound
	}

	return nil
}
