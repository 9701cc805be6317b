package mocks

import (
	"time"

	"github.com/dpetrucci/hackfest/internal/dependencies/clock"
)

// MockClock is a Clock frozen at a settable instant.
type MockClock struct {
	now time.Time
}

var _ clock.Clock = (*MockClock)(nil)

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *MockClock) Set(t time.Time) {
	c.now = t
}
