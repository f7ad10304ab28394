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
	"strings"

	"github.com/pkg/errors"
)

// BookType is the category of a book title.
type BookType string

// The closed set of book types.
const (
	BookTypeTechnology BookType = "TECHNOLOGY"
	BookTypeScience    BookType = "SCIENCE"
	BookTypeLiterature BookType = "LITERATURE"
	BookTypeHistory    BookType = "HISTORY"
	BookTypeArt        BookType = "ART"
	BookTypeFiction    BookType = "FICTION"
)

// BookTypes enumerates all valid book types.
var BookTypes = []BookType{
	BookTypeTechnology,
	BookTypeScience,
	BookTypeLiterature,
	BookTypeHistory,
	BookTypeArt,
	BookTypeFiction,
}

// ParseBookType parses a case-insensitive book type name.
func ParseBookType(s string) (BookType, error) {
	candidate := BookType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range BookTypes {
		if t == candidate {
			return t, nil
		}
	}

	return "", errors.Errorf("unknown book type %q", s)
}

// Section is the library section a title is shelved in.
type Section string

// The closed set of sections.
const (
	SectionS1 Section = "S1"
	SectionS2 Section = "S2"
	SectionS3 Section = "S3"
)

// Sections enumerates all valid sections.
var Sections = []Section{SectionS1, SectionS2, SectionS3}

// ParseSection parses a case-insensitive section name.
func ParseSection(s string) (Section, error) {
	candidate := Section(strings.ToUpper(strings.TrimSpace(s)))
	for _, sec := range Sections {
		if sec == candidate {
			return sec, nil
		}
	}

	return "", errors.Errorf("unknown section %q", s)
}

// BookStatus is the availability state of a single copy.
type BookStatus string

// A copy is AVAILABLE until it is borrowed.
const (
	BookStatusAvailable   BookStatus = "AVAILABLE"
	BookStatusUnavailable BookStatus = "UNAVAILABLE"
)

// BorrowStatus is the state of one borrow episode.
type BorrowStatus string

// A record is created BORROWED and transitions to RETURNED in place.
const (
	BorrowStatusBorrowed BorrowStatus = "BORROWED"
	BorrowStatusReturned BorrowStatus = "RETURNED"
)

// Gender is a visitor profile field.
type Gender string

// The closed set of genders the registration form offers.
const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Genders enumerates all valid genders.
var Genders = []Gender{GenderMale, GenderFemale}

// ParseGender parses a case-insensitive gender name.
func ParseGender(s string) (Gender, error) {
	candidate := Gender(strings.ToUpper(strings.TrimSpace(s)))
	for _, g := range Genders {
		if g == candidate {
			return g, nil
		}
	}

	return "", errors.Errorf("unknown gender %q", s)
}

// Role distinguishes the administrator from registered visitors.
// Administrators are never persisted to the visitor database.
type Role string

// The closed set of roles.
const (
	RoleAdmin   Role = "ADMIN"
	RoleVisitor Role = "VISITOR"
)
