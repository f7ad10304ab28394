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

package validate

import (
	"testing"

	"github.com/biblio/biblio/pkg/assert"
)

func TestUsername(t *testing.T) {
	testCases := []struct {
		input    string
		expected error
	}{
		{input: "alice", expected: nil},
		{input: "", expected: ErrUsernameEmpty},
		{input: "   ", expected: ErrUsernameEmpty},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, Username(tc.input), tc.expected, "error mismatch")
		})
	}
}

func TestPassword(t *testing.T) {
	assert.Equal(t, Password("pw"), nil, "error mismatch")
	assert.Equal(t, Password(""), ErrPasswordEmpty, "error mismatch")
}

func TestISBN(t *testing.T) {
	assert.Equal(t, ISBN("978-0134190440"), nil, "error mismatch")
	assert.Equal(t, ISBN(" "), ErrISBNEmpty, "error mismatch")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, Title("The Go Programming Language"), nil, "error mismatch")
	assert.Equal(t, Title(""), ErrTitleEmpty, "error mismatch")
}

func TestQuantity(t *testing.T) {
	testCases := []struct {
		input       string
		expected    int
		expectedErr error
	}{
		{input: "1", expected: 1},
		{input: " 25 ", expected: 25},
		{input: "0", expectedErr: ErrQuantityInvalid},
		{input: "-3", expectedErr: ErrQuantityInvalid},
		{input: "five", expectedErr: ErrQuantityInvalid},
		{input: "", expectedErr: ErrQuantityInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Quantity(tc.input)
			assert.Equal(t, err, tc.expectedErr, "error mismatch")
			assert.Equal(t, got, tc.expected, "value mismatch")
		})
	}
}

func TestAge(t *testing.T) {
	testCases := []struct {
		input       string
		expected    int
		expectedErr error
	}{
		{input: "0", expected: 0},
		{input: "42", expected: 42},
		{input: "-1", expectedErr: ErrAgeInvalid},
		{input: "old", expectedErr: ErrAgeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Age(tc.input)
			assert.Equal(t, err, tc.expectedErr, "error mismatch")
			assert.Equal(t, got, tc.expected, "value mismatch")
		})
	}
}
