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

package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biblio/biblio/pkg/assert"
)

func newTestBookStore(t *testing.T) *BookStore {
	t.Helper()

	s, err := OpenBookStore(filepath.Join(t.TempDir(), "BookDatabase.json"))
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func TestBookStoreAdd(t *testing.T) {
	t.Run("new title", func(t *testing.T) {
		s := newTestBookStore(t)

		s.Add("The Go Programming Language", "Alan Donovan", "978-0134190440", BookTypeTechnology, SectionS1, 2)

		got := s.FindByISBN("978-0134190440")
		if got == nil {
			t.Fatal("title not found after add")
		}
		assert.Equal(t, got.Title, "The Go Programming Language", "title mismatch")
		assert.Equal(t, len(got.Copies), 2, "copy count mismatch")
		assert.Equal(t, got.Copies[0].CopyID, "978-0134190440-1", "copy id mismatch")
		assert.Equal(t, got.Copies[1].CopyID, "978-0134190440-2", "copy id mismatch")
		assert.Equal(t, got.Copies[0].Status, BookStatusAvailable, "status mismatch")
	})

	t.Run("existing isbn appends copies and keeps metadata", func(t *testing.T) {
		s := newTestBookStore(t)

		s.Add("The Go Programming Language", "Alan Donovan", "978-0134190440", BookTypeTechnology, SectionS1, 2)
		s.Add("Some Other Title", "Someone Else", "978-0134190440", BookTypeFiction, SectionS3, 3)

		got := s.FindByISBN("978-0134190440")
		assert.Equal(t, got.Title, "The Go Programming Language", "metadata should be kept on append")
		assert.Equal(t, got.Author, "Alan Donovan", "metadata should be kept on append")
		assert.Equal(t, got.Type, BookTypeTechnology, "metadata should be kept on append")
		assert.Equal(t, len(got.Copies), 5, "copy count mismatch")
		assert.Equal(t, got.Copies[4].CopyID, "978-0134190440-5", "appended copies should continue the numbering")

		assert.Equal(t, len(s.ListAll()), 1, "a second title should not have been created")
	})

	t.Run("numbering skips malformed copy ids", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "BookDatabase.json")
		fixture := `[{"title":"t","author":"a","isbn":"X","type":"TECHNOLOGY","section":"S1","copies":[{"copyId":"X-2","status":"AVAILABLE","borrowVisitorId":0},{"copyId":"broken","status":"AVAILABLE","borrowVisitorId":0}]}]`
		if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
			t.Fatal(err)
		}

		s, err := OpenBookStore(path)
		if err != nil {
			t.Fatal(err)
		}

		s.Add("", "", "X", "", "", 1)

		got := s.FindByISBN("X")
		assert.Equal(t, len(got.Copies), 3, "copy count mismatch")
		assert.Equal(t, got.Copies[2].CopyID, "X-3", "numbering should continue from the largest valid suffix")
	})
}

func TestBookStoreEdit(t *testing.T) {
	s := newTestBookStore(t)
	s.Add("t1", "a1", "X", BookTypeTechnology, SectionS1, 2)
	s.Borrow("X", "X-1", 1001)

	ok := s.Edit("X", "t2", "a2", BookTypeFiction, SectionS2)
	assert.Equal(t, ok, true, "edit should succeed")

	got := s.FindByISBN("X")
	assert.Equal(t, got.Title, "t2", "title should be updated")
	assert.Equal(t, got.Author, "a2", "author should be updated")
	assert.Equal(t, got.Type, BookTypeFiction, "type should be updated")
	assert.Equal(t, got.Section, SectionS2, "section should be updated")
	assert.Equal(t, got.Copies[0].Status, BookStatusUnavailable, "copies should not be touched")

	assert.Equal(t, s.Edit("Y", "t", "a", BookTypeTechnology, SectionS1), false, "editing a missing title should fail")
}

func TestBookStoreDeleteCopy(t *testing.T) {
	s := newTestBookStore(t)
	s.Add("t1", "a1", "X", BookTypeTechnology, SectionS1, 2)

	t.Run("missing copy", func(t *testing.T) {
		assert.Equal(t, s.DeleteCopy("X", "X-9"), false, "deleting a missing copy should fail")
		assert.Equal(t, s.DeleteCopy("Y", "X-1"), false, "deleting under a missing isbn should fail")
	})

	t.Run("removes the copy", func(t *testing.T) {
		assert.Equal(t, s.DeleteCopy("X", "X-1"), true, "delete should succeed")

		got := s.FindByISBN("X")
		assert.Equal(t, len(got.Copies), 1, "copy count mismatch")
		assert.Equal(t, got.Copies[0].CopyID, "X-2", "the wrong copy was removed")
	})

	t.Run("last copy removes the title", func(t *testing.T) {
		assert.Equal(t, s.DeleteCopy("X", "X-2"), true, "delete should succeed")

		if s.FindByISBN("X") != nil {
			t.Fatal("the title should be gone with its last copy")
		}
		assert.Equal(t, len(s.ListAll()), 0, "catalog should be empty")
	})
}

func TestBookStoreBorrowReturn(t *testing.T) {
	s := newTestBookStore(t)
	s.Add("t1", "a1", "X", BookTypeTechnology, SectionS1, 1)

	assert.Equal(t, s.Borrow("X", "X-1", 1001), true, "borrow should succeed")

	c, ok := s.FindCopy("X", "X-1")
	assert.Equal(t, ok, true, "copy should be found")
	assert.Equal(t, c.Status, BookStatusUnavailable, "copy should be out")
	assert.Equal(t, c.BorrowVisitorID, 1001, "borrower should be recorded")

	assert.Equal(t, s.Borrow("X", "X-1", 1002), false, "borrowing a copy that is out should fail")

	c, _ = s.FindCopy("X", "X-1")
	assert.Equal(t, c.BorrowVisitorID, 1001, "a failed borrow should not change the borrower")

	assert.Equal(t, s.Return("X", "X-1"), true, "return should succeed")

	c, _ = s.FindCopy("X", "X-1")
	assert.Equal(t, c.Status, BookStatusAvailable, "copy should be back")
	assert.Equal(t, c.BorrowVisitorID, 1001, "the last borrower should be kept after return")

	assert.Equal(t, s.Return("X", "X-1"), false, "returning a copy that is not out should fail")
	assert.Equal(t, s.Borrow("X", "X-9", 1001), false, "borrowing a missing copy should fail")
}

func TestBookStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BookDatabase.json")

	s1, err := OpenBookStore(path)
	if err != nil {
		t.Fatal(err)
	}
	s1.Add("t1", "a1", "X", BookTypeTechnology, SectionS1, 2)
	s1.Borrow("X", "X-2", 1001)

	s2, err := OpenBookStore(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.DeepEqual(t, s2.ListAll(), s1.ListAll(), "reloaded catalog mismatch")
}

func TestBookStoreListAllSnapshot(t *testing.T) {
	s := newTestBookStore(t)
	s.Add("t1", "a1", "X", BookTypeTechnology, SectionS1, 1)

	got := s.ListAll()
	got[0].Copies[0].Status = BookStatusUnavailable
	got[0].Title = "changed"

	c, _ := s.FindCopy("X", "X-1")
	assert.Equal(t, c.Status, BookStatusAvailable, "mutating the snapshot should not affect the store")
	assert.Equal(t, s.FindByISBN("X").Title, "t1", "mutating the snapshot should not affect the store")
}

func TestOpenBookStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BookDatabase.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenBookStore(path); err == nil {
		t.Fatal("opening a corrupt file should fail")
	}
}
