// Package session records what happened during one run: gaze counts,
// submitted text, and completed gestures. The recorder is a passive sink;
// the control loop feeds it and the web layer reads its summary.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

// Submission is one piece of text the user submitted, with when.
type Submission struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Gesture is one completed gesture, with when.
type Gesture struct {
	Name string    `json:"name"`
	At   time.Time `json:"at"`
}

// Summary is a point-in-time snapshot of a session.
type Summary struct {
	ID          string       `json:"id"`
	StartedAt   time.Time    `json:"started_at"`
	UpGazes     int          `json:"up_gazes"`
	DownGazes   int          `json:"down_gazes"`
	Submissions []Submission `json:"submissions"`
	Gestures    []Gesture    `json:"gestures"`
}

// Recorder accumulates session activity. Safe for concurrent use; the
// capture loop writes while web handlers read.
type Recorder struct {
	mu          sync.Mutex
	id          string
	startedAt   time.Time
	clock       gaze.Clock
	upGazes     int
	downGazes   int
	submissions []Submission
	gestures    []Gesture
}

// NewRecorder starts a new session with a fresh id.
func NewRecorder() *Recorder {
	return NewRecorderWithClock(gaze.SystemClock{})
}

// NewRecorderWithClock starts a session with an injectable clock.
func NewRecorderWithClock(clock gaze.Clock) *Recorder {
	return &Recorder{
		id:        uuid.New().String(),
		startedAt: clock.Now(),
		clock:     clock,
	}
}

// ID returns the session id.
func (r *Recorder) ID() string {
	return r.id
}

// RecordGaze counts one fired gaze.
func (r *Recorder) RecordGaze(dir gaze.Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch dir {
	case gaze.DirectionUp:
		r.upGazes++
	case gaze.DirectionDown:
		r.downGazes++
	}
}

// RecordSubmission stores one submitted text.
func (r *Recorder) RecordSubmission(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, Submission{Text: text, At: r.clock.Now()})
}

// RecordGesture stores one completed gesture.
func (r *Recorder) RecordGesture(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gestures = append(r.gestures, Gesture{Name: name, At: r.clock.Now()})
}

// Summary returns a copy of the session state.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := make([]Submission, len(r.submissions))
	copy(subs, r.submissions)
	gests := make([]Gesture, len(r.gestures))
	copy(gests, r.gestures)

	return Summary{
		ID:          r.id,
		StartedAt:   r.startedAt,
		UpGazes:     r.upGazes,
		DownGazes:   r.downGazes,
		Submissions: subs,
		Gestures:    gests,
	}
}
