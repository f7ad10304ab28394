/* Copyright 2026 Biblio Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package assert provides assertion helpers for tests
package assert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal fails the test if the two comparable values differ
func Equal(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if actual != expected {
		t.Errorf("%s: got %+v, want %+v", message, actual, expected)
	}
}

// NotEqual fails the test if the two comparable values are the same
func NotEqual(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if actual == expected {
		t.Errorf("%s: got %+v, want something else", message, actual)
	}
}

// DeepEqual fails the test if the two values are not deeply equal
func DeepEqual(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", message, diff)
	}
}

// True fails the test if the given condition does not hold
func True(t *testing.T, condition bool, message string) {
	t.Helper()

	if !condition {
		t.Errorf("%s: condition is false", message)
	}
}
