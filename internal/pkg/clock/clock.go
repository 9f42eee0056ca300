// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Time time.Time
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.Time
}
