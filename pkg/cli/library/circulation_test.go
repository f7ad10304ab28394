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
	"fmt"
	"testing"
	"time"

	"github.com/biblio/biblio/pkg/assert"
	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/clock"
)

func TestBorrowReturnRoundTrip(t *testing.T) {
	c := clock.NewMock()
	borrowedAt := time.Date(2020, time.March, 1, 10, 0, 0, 0, time.UTC)
	c.SetNow(borrowedAt)

	l := newTestLibrary(t, c)
	v := registerVisitor(t, l, "alice")
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

	if err := l.Borrow("X", "X-1", v.VisitorID); err != nil {
		t.Fatal(err)
	}

	copy1, _ := l.Books.FindCopy("X", "X-1")
	assert.Equal(t, copy1.Status, database.BookStatusUnavailable, "the copy should be out")
	assert.Equal(t, copy1.BorrowVisitorID, v.VisitorID, "borrower mismatch")

	got := l.Visitors.FindByID(v.VisitorID)
	assert.Equal(t, len(got.BorrowRecords), 1, "record count mismatch")
	assert.Equal(t, got.BorrowRecords[0].ISBN, "X", "record isbn mismatch")
	assert.Equal(t, got.BorrowRecords[0].Status, database.BorrowStatusBorrowed, "record status mismatch")

	c.SetNow(borrowedAt.Add(72 * time.Hour))

	if err := l.Return("X", "X-1"); err != nil {
		t.Fatal(err)
	}

	copy1, _ = l.Books.FindCopy("X", "X-1")
	assert.Equal(t, copy1.Status, database.BookStatusAvailable, "the copy should be back")

	got = l.Visitors.FindByID(v.VisitorID)
	r := got.BorrowRecords[0]
	assert.Equal(t, r.Status, database.BorrowStatusReturned, "record status mismatch")
	assert.True(t, r.ReturnTime >= r.BorrowTime, "the return time should not precede the borrow time")
}

func TestBorrowErrors(t *testing.T) {
	l := newTestLibrary(t, clock.NewMock())
	v := registerVisitor(t, l, "alice")
	other := registerVisitor(t, l, "bob")
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

	t.Run("unknown visitor", func(t *testing.T) {
		assert.Equal(t, l.Borrow("X", "X-1", 9999), ErrVisitorNotFound, "error mismatch")
	})

	t.Run("copy already out", func(t *testing.T) {
		if err := l.Borrow("X", "X-1", v.VisitorID); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, l.Borrow("X", "X-1", other.VisitorID), ErrCopyUnavailable, "error mismatch")

		got := l.Visitors.FindByID(other.VisitorID)
		assert.Equal(t, len(got.BorrowRecords), 0, "a failed borrow should not leave a record")
	})

	t.Run("missing copy", func(t *testing.T) {
		assert.Equal(t, l.Borrow("X", "X-9", v.VisitorID), ErrCopyUnavailable, "error mismatch")
	})
}

func TestBorrowLimit(t *testing.T) {
	l := newTestLibrary(t, clock.NewMock())
	v := registerVisitor(t, l, "alice")
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, BorrowLimit+1)

	for i := 1; i <= BorrowLimit; i++ {
		if err := l.Borrow("X", fmt.Sprintf("X-%d", i), v.VisitorID); err != nil {
			t.Fatal(err)
		}
	}

	copyID := fmt.Sprintf("X-%d", BorrowLimit+1)
	assert.Equal(t, l.Borrow("X", copyID, v.VisitorID), ErrBorrowLimit, "error mismatch")

	c, _ := l.Books.FindCopy("X", copyID)
	assert.Equal(t, c.Status, database.BookStatusAvailable, "the refused copy should stay available")

	// returning one frees a slot
	if err := l.Return("X", "X-1"); err != nil {
		t.Fatal(err)
	}
	if err := l.Borrow("X", copyID, v.VisitorID); err != nil {
		t.Fatal(err)
	}
}

func TestReturnErrors(t *testing.T) {
	l := newTestLibrary(t, clock.NewMock())
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

	assert.Equal(t, l.Return("X", "X-9"), ErrCopyNotFound, "error mismatch")
	assert.Equal(t, l.Return("X", "X-1"), ErrCopyNotBorrowed, "error mismatch")
}

func TestRemoveCopy(t *testing.T) {
	l := newTestLibrary(t, clock.NewMock())
	v := registerVisitor(t, l, "alice")
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 2)

	t.Run("missing copy", func(t *testing.T) {
		assert.Equal(t, l.RemoveCopy("X", "X-9"), ErrCopyNotFound, "error mismatch")
	})

	t.Run("borrowed copy is kept", func(t *testing.T) {
		if err := l.Borrow("X", "X-1", v.VisitorID); err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, l.RemoveCopy("X", "X-1"), ErrCopyUnavailable, "error mismatch")

		if _, ok := l.Books.FindCopy("X", "X-1"); !ok {
			t.Fatal("the copy should still exist")
		}
	})

	t.Run("available copy is removed", func(t *testing.T) {
		if err := l.Return("X", "X-1"); err != nil {
			t.Fatal(err)
		}
		if err := l.RemoveCopy("X", "X-1"); err != nil {
			t.Fatal(err)
		}
		if _, ok := l.Books.FindCopy("X", "X-1"); ok {
			t.Fatal("the copy should be gone")
		}
	})

	t.Run("last copy removes the title", func(t *testing.T) {
		if err := l.RemoveCopy("X", "X-2"); err != nil {
			t.Fatal(err)
		}
		if l.Books.FindByISBN("X") != nil {
			t.Fatal("the title should be gone with its last copy")
		}
	})
}

func TestRemoveVisitor(t *testing.T) {
	l := newTestLibrary(t, clock.NewMock())
	v := registerVisitor(t, l, "alice")
	l.Books.Add("t1", "a1", "X", database.BookTypeTechnology, database.SectionS1, 1)

	t.Run("missing visitor", func(t *testing.T) {
		assert.Equal(t, l.RemoveVisitor(9999), ErrVisitorNotFound, "error mismatch")
	})

	t.Run("visitor with active borrows is kept", func(t *testing.T) {
		if err := l.Borrow("X", "X-1", v.VisitorID); err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, l.RemoveVisitor(v.VisitorID), ErrActiveBorrows, "error mismatch")

		if l.Visitors.FindByID(v.VisitorID) == nil {
			t.Fatal("the visitor should still exist")
		}
	})

	t.Run("visitor without active borrows is removed", func(t *testing.T) {
		if err := l.Return("X", "X-1"); err != nil {
			t.Fatal(err)
		}
		if err := l.RemoveVisitor(v.VisitorID); err != nil {
			t.Fatal(err)
		}
		if l.Visitors.FindByID(v.VisitorID) != nil {
			t.Fatal("the visitor should be gone")
		}
	})
}
