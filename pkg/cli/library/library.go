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

// Package library provides the operations that span both stores: login,
// registration, circulation and search. Everything here composes the store
// primitives; no state lives in this package.
package library

import (
	"github.com/pkg/errors"

	"github.com/biblio/biblio/pkg/cli/database"
)

const (
	// AdminUsername is the fixed administrator login.
	AdminUsername = "admin"
	// AdminPassword is the fixed administrator password. The administrator
	// is never persisted to the visitor database.
	AdminPassword = "123456"
	// BorrowLimit is the maximum number of copies a visitor may hold at once.
	BorrowLimit = 10
)

// Expected operation failures. The stores report bare success or failure;
// these give the presentation layer a reason to show.
var (
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken   = errors.New("the username is already taken")
	ErrVisitorNotFound = errors.New("visitor not found")
	ErrCopyNotFound    = errors.New("book copy not found")
	ErrCopyUnavailable = errors.New("the copy is already borrowed")
	ErrCopyNotBorrowed = errors.New("the copy is not borrowed")
	ErrBorrowLimit     = errors.New("the visitor has reached the borrow limit")
	ErrActiveBorrows   = errors.New("the visitor still holds borrowed copies")
	ErrTitleNotFound   = errors.New("book title not found")
)

// Library ties the two stores together.
type Library struct {
	Books    *database.BookStore
	Visitors *database.VisitorStore
}

// New returns a library over the given stores after running the startup
// reconciliation pass that repairs any divergence between them.
func New(books *database.BookStore, visitors *database.VisitorStore) *Library {
	l := &Library{Books: books, Visitors: visitors}
	l.Reconcile()

	return l
}

// Auth is the outcome of a successful authentication.
type Auth struct {
	Role      database.Role
	Username  string
	VisitorID int
}

// Authenticate checks the fixed administrator credentials first and falls
// back to a visitor lookup by username with a plain-text password
// comparison. It is read-only.
func (l *Library) Authenticate(username, password string) (Auth, error) {
	if username == AdminUsername && password == AdminPassword {
		return Auth{Role: database.RoleAdmin, Username: username}, nil
	}

	v := l.Visitors.FindByUsername(username)
	if v == nil || v.Password != password {
		return Auth{}, ErrBadCredentials
	}

	return Auth{Role: database.RoleVisitor, Username: v.Username, VisitorID: v.VisitorID}, nil
}

// Register adds a new visitor after checking that the username is free among
// living visitors. On success the visitor carries its allocated id.
func (l *Library) Register(v *database.Visitor) error {
	if l.Visitors.FindByUsername(v.Username) != nil {
		return ErrUsernameTaken
	}

	l.Visitors.Add(v)

	return nil
}

// UpdateProfile replaces the stored record of the visitor carrying the same
// id. The visitor id itself is immutable.
func (l *Library) UpdateProfile(v *database.Visitor) error {
	if !l.Visitors.Edit(v) {
		return ErrVisitorNotFound
	}

	return nil
}
