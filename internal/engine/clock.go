package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Callers use it to supply the "today" highlighted in month panels.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the clock's current instant as a DateValue.
func Today(c Clock) DateValue {
	if c == nil {
		c = RealClock{}
	}
	return FromTime(c.Now())
}
