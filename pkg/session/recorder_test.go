package session

import (
	"testing"
	"time"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestRecorder_Counts(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := NewRecorderWithClock(clock)

	r.RecordGaze(gaze.DirectionUp)
	r.RecordGaze(gaze.DirectionUp)
	r.RecordGaze(gaze.DirectionDown)
	r.RecordGaze(gaze.DirectionNone)

	s := r.Summary()
	if s.UpGazes != 2 {
		t.Errorf("up gazes = %d, want 2", s.UpGazes)
	}
	if s.DownGazes != 1 {
		t.Errorf("down gazes = %d, want 1", s.DownGazes)
	}
}

func TestRecorder_SubmissionsAndGestures(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := NewRecorderWithClock(clock)

	r.RecordSubmission("HELLO")
	clock.now = clock.now.Add(5 * time.Second)
	r.RecordGesture("enter")

	s := r.Summary()
	if len(s.Submissions) != 1 || s.Submissions[0].Text != "HELLO" {
		t.Errorf("submissions = %v, want one HELLO", s.Submissions)
	}
	if len(s.Gestures) != 1 || s.Gestures[0].Name != "enter" {
		t.Errorf("gestures = %v, want one enter", s.Gestures)
	}
	if !s.Gestures[0].At.After(s.Submissions[0].At) {
		t.Error("gesture timestamp not after submission timestamp")
	}
}

func TestRecorder_SummaryIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSubmission("A")

	s := r.Summary()
	s.Submissions[0].Text = "mutated"

	if got := r.Summary().Submissions[0].Text; got != "A" {
		t.Errorf("summary mutation leaked into recorder: %q", got)
	}
}

func TestRecorder_UniqueIDs(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	if a.ID() == b.ID() {
		t.Error("two recorders share a session id")
	}
	if a.ID() == "" {
		t.Error("empty session id")
	}
}
