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
	"testing"

	"github.com/biblio/biblio/pkg/assert"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/testutils"
	"github.com/biblio/biblio/pkg/clock"
)

// newUnreconciledLibrary builds a library without running the startup pass so
// that tests can stage a divergence first.
func newUnreconciledLibrary(t *testing.T) *Library {
	t.Helper()

	dir := t.TempDir()
	books := testutils.MustOpenBookStore(t, testutils.BookDBPath(dir))
	visitors := testutils.MustOpenVisitorStore(t, testutils.VisitorDBPath(dir), clock.NewMock())

	return &Library{Books: books, Visitors: visitors}
}

func TestReconcile(t *testing.T) {
	t.Run("consistent state is untouched", func(t *testing.T) {
		l := newUnreconciledLibrary(t)
		v := registerVisitor(t, l, "alice")
		l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 2)
		l.Books.Borrow("X", "X-1", v.VisitorID)
		l.Visitors.Borrow("X", "X-1", v.VisitorID)

		assert.Equal(t, l.Reconcile(), 0, "nothing should be corrected")
	})

	t.Run("record without catalog state", func(t *testing.T) {
		l := newUnreconciledLibrary(t)
		v := registerVisitor(t, l, "alice")
		l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

		// the visitor side was written but the book side was not
		l.Visitors.Borrow("X", "X-1", v.VisitorID)

		assert.Equal(t, l.Reconcile(), 1, "one copy should be corrected")

		c, _ := l.Books.FindCopy("X", "X-1")
		assert.Equal(t, c.Status, database.BookStatusUnavailable, "the copy should be out")
		assert.Equal(t, c.BorrowVisitorID, v.VisitorID, "borrower mismatch")
	})

	t.Run("catalog state without record", func(t *testing.T) {
		l := newUnreconciledLibrary(t)
		registerVisitor(t, l, "alice")
		l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

		// the book side was written but the visitor side was not
		l.Books.Borrow("X", "X-1", 1001)

		assert.Equal(t, l.Reconcile(), 1, "one copy should be corrected")

		c, _ := l.Books.FindCopy("X", "X-1")
		assert.Equal(t, c.Status, database.BookStatusAvailable, "the unclaimed copy should be back")
	})

	t.Run("wrong borrower recorded", func(t *testing.T) {
		l := newUnreconciledLibrary(t)
		v := registerVisitor(t, l, "alice")
		registerVisitor(t, l, "bob")
		l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

		l.Books.Borrow("X", "X-1", 1002)
		l.Visitors.Borrow("X", "X-1", v.VisitorID)

		assert.Equal(t, l.Reconcile(), 1, "one copy should be corrected")

		c, _ := l.Books.FindCopy("X", "X-1")
		assert.Equal(t, c.BorrowVisitorID, v.VisitorID, "the record's borrower should win")
	})

	t.Run("runs at construction", func(t *testing.T) {
		l := newUnreconciledLibrary(t)
		v := registerVisitor(t, l, "alice")
		l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)
		l.Visitors.Borrow("X", "X-1", v.VisitorID)

		l2 := New(l.Books, l.Visitors)

		c, _ := l2.Books.FindCopy("X", "X-1")
		assert.Equal(t, c.Status, database.BookStatusUnavailable, "the startup pass should repair the catalog")
	})
}
