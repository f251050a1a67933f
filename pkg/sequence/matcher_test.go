package sequence

import (
	"testing"
	"time"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestMatcher() (*Matcher, *fakeClock) {
	clock := newFakeClock()
	return NewMatcherWithClock(DefaultPatterns(), DefaultTimeout, clock), clock
}

const (
	up   = gaze.DirectionUp
	down = gaze.DirectionDown
)

func TestMatcher_Completion(t *testing.T) {
	m, c := newTestMatcher()

	for i, dir := range []gaze.Direction{up, down, up} {
		c.advance(200 * time.Millisecond)
		res := m.Add(dir)
		if res.Status != Continuing {
			t.Fatalf("step %d: status = %v, want continuing", i, res.Status)
		}
		if len(res.Partial) != i+1 {
			t.Fatalf("step %d: partial length = %d, want %d", i, len(res.Partial), i+1)
		}
	}

	c.advance(200 * time.Millisecond)
	res := m.Add(down)
	if res.Status != Completed {
		t.Fatalf("status = %v, want completed", res.Status)
	}
	if res.Name != "mode_switch" {
		t.Errorf("name = %q, want mode_switch", res.Name)
	}
	if len(m.Partial()) != 0 {
		t.Errorf("attempt not cleared after completion: %v", m.Partial())
	}
}

func TestMatcher_SharedPrefixes(t *testing.T) {
	// UP,UP is a prefix of escape only; UP,DOWN a prefix of mode_switch
	// only; a single UP is a prefix of both and must continue.
	m, _ := newTestMatcher()

	if res := m.Add(up); res.Status != Continuing {
		t.Fatalf("status = %v, want continuing", res.Status)
	}
	if res := m.Add(up); res.Status != Continuing {
		t.Fatalf("status = %v, want continuing", res.Status)
	}
	if res := m.Add(down); res.Status != Continuing {
		t.Fatalf("status = %v, want continuing", res.Status)
	}
	res := m.Add(down)
	if res.Status != Completed || res.Name != "escape" {
		t.Errorf("got %v %q, want completed escape", res.Status, res.Name)
	}
}

func TestMatcher_ResetOnDeadEnd(t *testing.T) {
	m, _ := newTestMatcher()

	m.Add(up)
	m.Add(down)
	m.Add(up)

	// UP,DOWN,UP,UP prefixes nothing; the attempt restarts with the
	// newest direction, which itself prefixes two patterns.
	res := m.Add(up)
	if res.Status != Reset {
		t.Fatalf("status = %v, want reset", res.Status)
	}
	if len(res.Partial) != 1 || res.Partial[0] != up {
		t.Errorf("partial = %v, want [UP]", res.Partial)
	}

	// The restarted attempt is usable immediately.
	m.Add(up)
	m.Add(down)
	if res := m.Add(down); res.Status != Completed || res.Name != "escape" {
		t.Errorf("got %v %q after reset, want completed escape", res.Status, res.Name)
	}
}

func TestMatcher_Timeout(t *testing.T) {
	m, c := newTestMatcher()

	m.Add(up)
	c.advance(DefaultTimeout + time.Millisecond)

	if !m.CheckTimeout() {
		t.Fatal("CheckTimeout did not fire")
	}
	if len(m.Partial()) != 0 {
		t.Errorf("attempt not cleared on timeout: %v", m.Partial())
	}

	// A fresh direction after the timeout starts a new attempt rather
	// than continuing the old one.
	m.Add(down)
	m.Add(up)
	m.Add(down)
	if res := m.Add(up); res.Status != Completed || res.Name != "enter" {
		t.Errorf("got %v %q, want completed enter", res.Status, res.Name)
	}
}

func TestMatcher_TimeoutNotTriggeredEarly(t *testing.T) {
	m, c := newTestMatcher()

	m.Add(up)
	c.advance(DefaultTimeout - time.Millisecond)
	if m.CheckTimeout() {
		t.Error("CheckTimeout fired before the timeout elapsed")
	}
	if len(m.Partial()) != 1 {
		t.Errorf("attempt lost: %v", m.Partial())
	}
}

func TestMatcher_EmptyAttemptNeverTimesOut(t *testing.T) {
	m, c := newTestMatcher()
	c.advance(10 * DefaultTimeout)
	if m.CheckTimeout() {
		t.Error("CheckTimeout fired with no attempt in progress")
	}
}
