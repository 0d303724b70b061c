// Package clock provides ports.Clock implementations: the wall clock and a
// manually driven clock for tests and replays.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock in local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Manual returns a fixed time until it is moved.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set moves the clock to now.
func (m *Manual) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
