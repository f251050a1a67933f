// Package gaze decodes a noisy one-dimensional gaze-position signal into
// discrete up/down events. The detector consumes one sample per video frame
// (nominally 30Hz) and reports direction, fire-once transitions, and
// press-and-hold state through a single Event value. It performs no I/O and
// spawns no goroutines; the caller drives it one tick at a time.
package gaze

import "time"

// Direction is the decoded gaze direction. The empty value means neutral.
type Direction string

const (
	// DirectionUp means the eyes moved up past the entry threshold.
	DirectionUp Direction = "UP"
	// DirectionDown means the eyes moved down past the entry threshold.
	DirectionDown Direction = "DOWN"
	// DirectionNone means neutral (resting) gaze.
	DirectionNone Direction = ""
)

// Reason explains why direction output is suppressed for a tick.
// The empty value means output is not suppressed.
type Reason string

const (
	// ReasonRecalibrating: head motion invalidated the baseline and a new
	// one is being collected.
	ReasonRecalibrating Reason = "RECALIBRATING"
	// ReasonSettling: head motion stopped, waiting for the head to settle
	// before recollecting the baseline.
	ReasonSettling Reason = "SETTLING"
	// ReasonBlinking: eyes are closed this tick.
	ReasonBlinking Reason = "BLINKING"
	// ReasonBlinkRecovery: cooldown window after a blink ended.
	ReasonBlinkRecovery Reason = "BLINK_RECOVERY"
	// ReasonStabilizing: baseline was just established and has not yet
	// been stable for the settle window.
	ReasonStabilizing Reason = "STABILIZING"
	// ReasonReadingMovement: eye velocity looks like reading rather than
	// an intentional excursion.
	ReasonReadingMovement Reason = "READING_MOVEMENT"
)

// Event is the decoder output for a single tick.
//
// Fired is true for exactly one tick per excursion: the tick the physical
// state entered a gazing direction. Continuous becomes true once the same
// excursion has been held past the hold threshold and stays true until the
// gaze returns to neutral. Direction reports the ongoing physical state on
// every tick, fired or not, so downstream hold timers can run.
type Event struct {
	Direction     Direction
	Fired         bool
	Continuous    bool
	Duration      time.Duration // time spent in the current direction
	Offset        float64       // baseline - position; positive = looking up
	Velocity      float64       // mean |Δposition| over the recent window
	BaselineReady bool
	Reason        Reason
}

// Suppressed reports whether direction output was disabled this tick.
func (e Event) Suppressed() bool {
	return e.Reason != ""
}
