// Package clock abstracts wall time so filenames and sample dates are testable.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns the system clock.
func New() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }
