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
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/log"
)

// BookStore is the catalog of book titles, persisted as a JSON array in a
// single file. Mutating operations flush the whole catalog on success; a
// flush failure is logged and swallowed, leaving the in-memory state ahead
// of the file until the next successful mutation.
type BookStore struct {
	mu     sync.Mutex
	path   string
	titles []*BookTitle
}

// OpenBookStore loads the catalog from the file at path. A missing file is
// an empty catalog.
func OpenBookStore(path string) (*BookStore, error) {
	s := &BookStore{path: path}
	if err := readCollection(path, &s.titles); err != nil {
		return nil, errors.Wrap(err, "loading book database")
	}

	return s, nil
}

// Path returns the location of the store's database file.
func (s *BookStore) Path() string {
	return s.path
}

func (s *BookStore) flush() {
	if err := writeCollection(s.path, s.titles); err != nil {
		log.Errorf("saving book database: %s\n", err)
	}
}

func (s *BookStore) find(isbn string) *BookTitle {
	for _, t := range s.titles {
		if t.ISBN == isbn {
			return t
		}
	}

	return nil
}

// Add creates a title with quantity fresh copies, or, if a title with the
// same isbn already exists, appends quantity new copies to it. In the append
// case the passed metadata is ignored and the new copies are numbered from
// the largest existing integer suffix plus one.
func (s *BookStore) Add(title, author, isbn string, typ BookType, section Section, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.find(isbn); t != nil {
		next := t.maxCopyNumber() + 1
		for i := 0; i < quantity; i++ {
			t.Copies = append(t.Copies, BookCopy{
				CopyID: fmt.Sprintf("%s-%d", isbn, next+i),
				Status: BookStatusAvailable,
			})
		}
	} else {
		s.titles = append(s.titles, NewBookTitle(title, author, isbn, typ, section, quantity))
	}

	s.flush()
}

// Edit updates the metadata of the title identified by isbn. Copies are not
// touched and the isbn itself is immutable. It reports whether the title was
// found.
func (s *BookStore) Edit(isbn, title, author string, typ BookType, section Section) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(isbn)
	if t == nil {
		return false
	}

	t.Title = title
	t.Author = author
	t.Type = typ
	t.Section = section
	s.flush()

	return true
}

// FindByISBN returns the live title with the given isbn, or nil.
func (s *BookStore) FindByISBN(isbn string) *BookTitle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.find(isbn)
}

// FindCopy returns a snapshot of the identified copy.
func (s *BookStore) FindCopy(isbn, copyID string) (BookCopy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(isbn)
	if t == nil {
		return BookCopy{}, false
	}
	c := t.findCopy(copyID)
	if c == nil {
		return BookCopy{}, false
	}

	return *c, true
}

// ListAll returns a snapshot of the catalog. Callers own the result.
func (s *BookStore) ListAll() []BookTitle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BookTitle, 0, len(s.titles))
	for _, t := range s.titles {
		snapshot := *t
		snapshot.Copies = append([]BookCopy(nil), t.Copies...)
		out = append(out, snapshot)
	}

	return out
}

// DeleteCopy removes the copy matching both keys. When the owning title is
// left with no copies it is removed as well. The caller is responsible for
// checking the copy's status first; this operation does not.
func (s *BookStore) DeleteCopy(isbn, copyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ti, t := range s.titles {
		if t.ISBN != isbn {
			continue
		}

		for ci, c := range t.Copies {
			if c.CopyID != copyID {
				continue
			}

			t.Copies = append(t.Copies[:ci], t.Copies[ci+1:]...)
			if len(t.Copies) == 0 {
				s.titles = append(s.titles[:ti], s.titles[ti+1:]...)
			}
			s.flush()

			return true
		}

		return false
	}

	return false
}

// Borrow marks the identified copy UNAVAILABLE and records the borrower. It
// fails without a state change if the copy is missing or already out.
func (s *BookStore) Borrow(isbn, copyID string, visitorID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(isbn)
	if t == nil {
		return false
	}
	c := t.findCopy(copyID)
	if c == nil || c.Status != BookStatusAvailable {
		return false
	}

	c.Status = BookStatusUnavailable
	c.BorrowVisitorID = visitorID
	s.flush()

	return true
}

// Return marks the identified copy AVAILABLE again. BorrowVisitorID is kept
// so the visitor-side record can still be located. It fails without a state
// change if the copy is missing or not out.
func (s *BookStore) Return(isbn, copyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(isbn)
	if t == nil {
		return false
	}
	c := t.findCopy(copyID)
	if c == nil || c.Status != BookStatusUnavailable {
		return false
	}

	c.Status = BookStatusAvailable
	s.flush()

	return true
}
