package gaze

import "time"

// Clock supplies the current time to the state machines. All elapsed-time
// checks go through a Clock so hold and timeout logic is testable without
// sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
