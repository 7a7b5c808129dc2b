// Package clock abstracts wall-clock access so date-sensitive logic
// (schedule locking, session elapsed time) can be tested deterministically.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Test use.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
