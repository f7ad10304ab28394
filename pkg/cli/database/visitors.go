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
	"sync"

	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/log"
	"github.com/biblio/biblio/pkg/clock"
)

// visitorIDFloor is the value below which visitor ids are never allocated.
// The first registered visitor gets visitorIDFloor + 1.
const visitorIDFloor = 1000

// VisitorStore is the roster of registered visitors, persisted as a JSON
// array in a single file. It follows the same flush discipline as BookStore.
type VisitorStore struct {
	mu       sync.Mutex
	path     string
	clock    clock.Clock
	visitors []*Visitor
}

// OpenVisitorStore loads the roster from the file at path. A missing file is
// an empty roster. The clock stamps borrow and return times.
func OpenVisitorStore(path string, c clock.Clock) (*VisitorStore, error) {
	s := &VisitorStore{path: path, clock: c}
	if err := readCollection(path, &s.visitors); err != nil {
		return nil, errors.Wrap(err, "loading visitor database")
	}

	return s, nil
}

// Path returns the location of the store's database file.
func (s *VisitorStore) Path() string {
	return s.path
}

func (s *VisitorStore) flush() {
	if err := writeCollection(s.path, s.visitors); err != nil {
		log.Errorf("saving visitor database: %s\n", err)
	}
}

func (s *VisitorStore) findByID(visitorID int) *Visitor {
	for _, v := range s.visitors {
		if v.VisitorID == visitorID {
			return v
		}
	}

	return nil
}

// nextVisitorID allocates max(current ids, visitorIDFloor) + 1. Only living
// visitors are consulted, so an id can be reused after the current maximum
// is deleted.
func (s *VisitorStore) nextVisitorID() int {
	max := visitorIDFloor
	for _, v := range s.visitors {
		if v.VisitorID > max {
			max = v.VisitorID
		}
	}

	return max + 1
}

// Add allocates a visitor id, assigns it to the passed visitor, appends it
// to the roster and persists. Username uniqueness is the caller's concern.
func (s *VisitorStore) Add(v *Visitor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.VisitorID = s.nextVisitorID()
	s.visitors = append(s.visitors, v)
	s.flush()
}

// Edit replaces the stored record whose visitor id matches the passed one.
// It reports whether such a record existed.
func (s *VisitorStore) Edit(v *Visitor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.visitors {
		if cur.VisitorID == v.VisitorID {
			s.visitors[i] = v
			s.flush()

			return true
		}
	}

	return false
}

// Delete removes the visitor with the given id. The caller is responsible
// for checking that the visitor holds no active borrows; this operation does
// not.
func (s *VisitorStore) Delete(visitorID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.visitors {
		if v.VisitorID == visitorID {
			s.visitors = append(s.visitors[:i], s.visitors[i+1:]...)
			s.flush()

			return true
		}
	}

	return false
}

// FindByID returns the live visitor with the given id, or nil.
func (s *VisitorStore) FindByID(visitorID int) *Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findByID(visitorID)
}

// FindByUsername returns the live visitor with the given username, or nil.
// The match is case-sensitive.
func (s *VisitorStore) FindByUsername(username string) *Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.visitors {
		if v.Username == username {
			return v
		}
	}

	return nil
}

// ListAll returns a snapshot of the roster. Callers own the result.
func (s *VisitorStore) ListAll() []Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Visitor, 0, len(s.visitors))
	for _, v := range s.visitors {
		snapshot := *v
		snapshot.BorrowRecords = append([]BorrowRecord(nil), v.BorrowRecords...)
		out = append(out, snapshot)
	}

	return out
}

// Borrow appends a BORROWED record stamped with the current time to the
// identified visitor's history. It fails if the visitor is not found.
func (s *VisitorStore) Borrow(isbn, copyID string, visitorID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.findByID(visitorID)
	if v == nil {
		return false
	}

	v.BorrowRecords = append(v.BorrowRecords, BorrowRecord{
		ISBN:       isbn,
		CopyID:     copyID,
		Status:     BorrowStatusBorrowed,
		BorrowTime: s.clock.Now().UnixMilli(),
	})
	s.flush()

	return true
}

// Return marks the visitor's first BORROWED record matching (isbn, copyID)
// as RETURNED and stamps the return time. Records already RETURNED are
// skipped. It fails if the visitor or an active matching record is not
// found.
func (s *VisitorStore) Return(isbn, copyID string, visitorID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.findByID(visitorID)
	if v == nil {
		return false
	}

	for i := range v.BorrowRecords {
		r := &v.BorrowRecords[i]
		if r.ISBN != isbn || r.CopyID != copyID || r.Status != BorrowStatusBorrowed {
			continue
		}

		r.Status = BorrowStatusReturned
		r.ReturnTime = s.clock.Now().UnixMilli()
		s.flush()

		return true
	}

	return false
}
