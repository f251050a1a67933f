// Package sequence matches fixed-length gaze gesture patterns against a
// registry of named commands. Directions are collected incrementally; a full
// match completes the gesture, a dead end restarts with the newest direction,
// and a timeout clears a stalled attempt.
package sequence

import (
	"time"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

// DefaultTimeout is how long an attempt may run before it is cleared.
const DefaultTimeout = 3000 * time.Millisecond

// Pattern is a registered gesture: a named, fixed-length ordered list of
// directions.
type Pattern struct {
	Name       string
	Directions []gaze.Direction
}

// DefaultPatterns returns the built-in gesture registry.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "mode_switch", Directions: []gaze.Direction{gaze.DirectionUp, gaze.DirectionDown, gaze.DirectionUp, gaze.DirectionDown}},
		{Name: "enter", Directions: []gaze.Direction{gaze.DirectionDown, gaze.DirectionUp, gaze.DirectionDown, gaze.DirectionUp}},
		{Name: "escape", Directions: []gaze.Direction{gaze.DirectionUp, gaze.DirectionUp, gaze.DirectionDown, gaze.DirectionDown}},
		{Name: "windows", Directions: []gaze.Direction{gaze.DirectionDown, gaze.DirectionDown, gaze.DirectionUp, gaze.DirectionUp}},
	}
}

// Status describes the outcome of adding a direction.
type Status int

const (
	// Continuing: the attempt is a strict prefix of at least one pattern.
	Continuing Status = iota
	// Completed: the attempt fully matched a pattern and was cleared.
	Completed
	// Reset: no pattern had the attempt as a prefix; the attempt restarted
	// with the newest direction.
	Reset
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Completed:
		return "completed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Result reports the matcher state after one direction was added.
type Result struct {
	Status  Status
	Name    string           // completed pattern name, Completed only
	Partial []gaze.Direction // in-progress attempt after this addition
}

// Matcher incrementally matches directions against the registry. Not safe
// for concurrent use; one caller drives it per tick.
type Matcher struct {
	patterns []Pattern
	timeout  time.Duration
	clock    gaze.Clock

	attempt []gaze.Direction
	started time.Time
}

// NewMatcher creates a matcher over the given patterns.
func NewMatcher(patterns []Pattern) *Matcher {
	return NewMatcherWithClock(patterns, DefaultTimeout, gaze.SystemClock{})
}

// NewMatcherWithClock creates a matcher with an explicit timeout and clock.
func NewMatcherWithClock(patterns []Pattern, timeout time.Duration, clock gaze.Clock) *Matcher {
	return &Matcher{patterns: patterns, timeout: timeout, clock: clock}
}

// Partial returns a copy of the in-progress attempt.
func (m *Matcher) Partial() []gaze.Direction {
	out := make([]gaze.Direction, len(m.attempt))
	copy(out, m.attempt)
	return out
}

// Clear drops the in-progress attempt.
func (m *Matcher) Clear() {
	m.attempt = m.attempt[:0]
	m.started = time.Time{}
}

// Add appends a direction to the attempt and matches it against every
// registered pattern.
func (m *Matcher) Add(dir gaze.Direction) Result {
	now := m.clock.Now()

	if len(m.attempt) == 0 {
		m.started = now
	}
	m.attempt = append(m.attempt, dir)

	// Every pattern is checked; several may share a prefix with the
	// attempt and any one of them keeps it alive.
	for _, p := range m.patterns {
		if len(m.attempt) == len(p.Directions) && equal(m.attempt, p.Directions) {
			m.Clear()
			return Result{Status: Completed, Name: p.Name}
		}
	}
	for _, p := range m.patterns {
		if len(m.attempt) < len(p.Directions) && equal(m.attempt, p.Directions[:len(m.attempt)]) {
			return Result{Status: Continuing, Partial: m.Partial()}
		}
	}

	// Dead end: restart with the direction that just arrived.
	m.attempt = m.attempt[:0]
	m.attempt = append(m.attempt, dir)
	m.started = now
	return Result{Status: Reset, Partial: m.Partial()}
}

// CheckTimeout clears a stalled attempt. Callers invoke it once per tick,
// independent of whether a direction arrived.
func (m *Matcher) CheckTimeout() bool {
	if len(m.attempt) == 0 {
		return false
	}
	if m.clock.Now().Sub(m.started) > m.timeout {
		m.Clear()
		return true
	}
	return false
}

func equal(a, b []gaze.Direction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
