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
	"strconv"
	"strings"
)

// BookTitle is a catalog entry identified by its ISBN. It owns its copies
// exclusively.
type BookTitle struct {
	Title   string     `json:"title"`
	Author  string     `json:"author"`
	ISBN    string     `json:"isbn"`
	Type    BookType   `json:"type"`
	Section Section    `json:"section"`
	Copies  []BookCopy `json:"copies"`
}

// BookCopy is a physical instance of a title, independently borrowable.
// BorrowVisitorID identifies the current borrower while the copy is
// UNAVAILABLE. It is kept after return so that the visitor-side record can
// still be located; it is a lookup key, never ownership.
type BookCopy struct {
	CopyID          string     `json:"copyId"`
	Status          BookStatus `json:"status"`
	BorrowVisitorID int        `json:"borrowVisitorId"`
}

// Visitor is a registered library user together with its borrow history.
type Visitor struct {
	VisitorID     int            `json:"visitorId"`
	Username      string         `json:"username"`
	Password      string         `json:"password"`
	Role          Role           `json:"role"`
	FullName      string         `json:"fullName"`
	Gender        Gender         `json:"gender"`
	Age           int            `json:"age"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	BorrowRecords []BorrowRecord `json:"bookBorrows"`
}

// BorrowRecord is one borrow episode of a specific copy. Timestamps are
// millisecond epochs; ReturnTime is absent until the copy comes back.
type BorrowRecord struct {
	ISBN       string       `json:"isbn"`
	CopyID     string       `json:"copyId"`
	Status     BorrowStatus `json:"status"`
	BorrowTime int64        `json:"borrowTime"`
	ReturnTime int64        `json:"returnTime,omitempty"`
}

// NewBookTitle constructs a title with numCopies fresh copies numbered
// "<isbn>-1" through "<isbn>-<numCopies>", all AVAILABLE.
func NewBookTitle(title, author, isbn string, typ BookType, section Section, numCopies int) *BookTitle {
	t := &BookTitle{
		Title:   title,
		Author:  author,
		ISBN:    isbn,
		Type:    typ,
		Section: section,
	}

	for i := 1; i <= numCopies; i++ {
		t.Copies = append(t.Copies, BookCopy{
			CopyID: fmt.Sprintf("%s-%d", isbn, i),
			Status: BookStatusAvailable,
		})
	}

	return t
}

// NewVisitor constructs an unregistered visitor. The visitor id is assigned
// by the store at insertion.
func NewVisitor(username, password, fullName string, gender Gender, age int, phone, address string) *Visitor {
	return &Visitor{
		Username: username,
		Password: password,
		Role:     RoleVisitor,
		FullName: fullName,
		Gender:   gender,
		Age:      age,
		Phone:    phone,
		Address:  address,
	}
}

// findCopy returns a pointer into the title's copy slice, or nil.
func (t *BookTitle) findCopy(copyID string) *BookCopy {
	for i := range t.Copies {
		if t.Copies[i].CopyID == copyID {
			return &t.Copies[i]
		}
	}

	return nil
}

// maxCopyNumber returns the largest integer suffix among the title's copy
// ids. Copy ids whose suffix does not parse are skipped.
func (t *BookTitle) maxCopyNumber() int {
	max := 0
	for _, c := range t.Copies {
		n, err := copyNumber(c.CopyID)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return max
}

// copyNumber extracts the integer suffix of a copy id of the form "<isbn>-<n>".
func copyNumber(copyID string) (int, error) {
	idx := strings.LastIndex(copyID, "-")
	if idx < 0 {
		return 0, fmt.Errorf("copy id %q has no number suffix", copyID)
	}

	return strconv.Atoi(copyID[idx+1:])
}

// ActiveBorrows counts the visitor's records that are still BORROWED.
func (v *Visitor) ActiveBorrows() int {
	count := 0
	for _, r := range v.BorrowRecords {
		if r.Status == BorrowStatusBorrowed {
			count++
		}
	}

	return count
}
