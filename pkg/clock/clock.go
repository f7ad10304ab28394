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

// Package clock abstracts the system time so that borrow and return
// timestamps can be controlled in tests.
package clock

import (
	"sync"
	"time"
)

// Clock tells the current time. Production code uses the real clock;
// tests inject a Mock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

// New returns a clock backed by the standard time package.
func New() Clock {
	return &systemClock{}
}

// Mock is a clock frozen at a settable instant.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// SetNow moves the mock clock to t.
func (c *Mock) SetNow(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Now returns the instant the mock clock is set to.
func (c *Mock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// NewMock returns a mock clock set to an arbitrary fixed instant.
func NewMock() *Mock {
	return &Mock{
		now: time.Date(2020, time.January, 2, 15, 4, 5, 0, time.UTC),
	}
}
