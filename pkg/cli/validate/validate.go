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

// Package validate checks user input before it reaches the stores
package validate

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUsernameEmpty is an error for an empty username
var ErrUsernameEmpty = errors.New("The username is empty")

// ErrPasswordEmpty is an error for an empty password
var ErrPasswordEmpty = errors.New("The password is empty")

// ErrISBNEmpty is an error for an empty isbn
var ErrISBNEmpty = errors.New("The isbn is empty")

// ErrTitleEmpty is an error for an empty book title
var ErrTitleEmpty = errors.New("The title is empty")

// ErrQuantityInvalid is an error for a quantity that is not a positive number
var ErrQuantityInvalid = errors.New("The quantity must be a positive number")

// ErrAgeInvalid is an error for an age that is not a non-negative number
var ErrAgeInvalid = errors.New("The age must be a non-negative number")

// Username validates a visitor username
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// Password validates a visitor password
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordEmpty
	}

	return nil
}

// ISBN validates an isbn
func ISBN(isbn string) error {
	if strings.TrimSpace(isbn) == "" {
		return ErrISBNEmpty
	}

	return nil
}

// Title validates a book title
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleEmpty
	}

	return nil
}

// Quantity parses a copy quantity, rejecting non-numeric and non-positive
// values
func Quantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return 0, ErrQuantityInvalid
	}

	return n, nil
}

// Age parses a visitor age, rejecting non-numeric and negative values
func Age(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return 0, ErrAgeInvalid
	}

	return n, nil
}
