package command

import (
	"errors"
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

// mockSender records sent keys.
type mockSender struct {
	keys []Key
}

func (m *mockSender) Send(key Key) error {
	m.keys = append(m.keys, key)
	return nil
}

func (m *mockSender) last() Key {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[len(m.keys)-1]
}

func newTestRouter() (*Router, *mockSender, *fakeClock) {
	sender := &mockSender{}
	clock := newFakeClock()
	return NewRouterWithClock(sender, clock), sender, clock
}

func TestRouter_GestureBindings(t *testing.T) {
	tests := []struct {
		gesture string
		want    Key
	}{
		{"enter", KeyEnter},
		{"escape", KeyEscape},
		{"windows", KeySuper},
	}

	for _, tt := range tests {
		t.Run(tt.gesture, func(t *testing.T) {
			r, sender, _ := newTestRouter()
			if err := r.HandleGesture(tt.gesture); err != nil {
				t.Fatalf("HandleGesture() error = %v", err)
			}
			if sender.last() != tt.want {
				t.Errorf("sent %q, want %q", sender.last(), tt.want)
			}
		})
	}
}

func TestRouter_UnknownGesture(t *testing.T) {
	r, _, _ := newTestRouter()
	if err := r.HandleGesture("somersault"); !errors.Is(err, ErrUnknownGesture) {
		t.Errorf("error = %v, want ErrUnknownGesture", err)
	}
}

func TestRouter_GazeByMode(t *testing.T) {
	r, sender, _ := newTestRouter()

	// TAB mode is the default.
	r.HandleGaze(gaze.DirectionUp)
	if sender.last() != KeyTab {
		t.Errorf("sent %q in TAB mode, want tab", sender.last())
	}
	r.HandleGaze(gaze.DirectionDown)
	if sender.last() != KeyShiftTab {
		t.Errorf("sent %q in TAB mode, want shift_tab", sender.last())
	}

	// mode_switch opens the prompt; an up gaze picks SCROLL.
	r.HandleGesture("mode_switch")
	if r.Mode() != ModePrompt {
		t.Fatalf("mode = %q, want PROMPT", r.Mode())
	}
	sent := len(sender.keys)
	r.HandleGaze(gaze.DirectionUp)
	if len(sender.keys) != sent {
		t.Error("prompt selection sent a key command")
	}
	if r.Mode() != ModeScroll {
		t.Fatalf("mode = %q, want SCROLL", r.Mode())
	}

	r.HandleGaze(gaze.DirectionDown)
	if sender.last() != KeyArrowDown {
		t.Errorf("sent %q in SCROLL mode, want arrow_down", sender.last())
	}
}

func TestRouter_PromptTimeout(t *testing.T) {
	r, _, clock := newTestRouter()

	var modes []Mode
	r.OnModeChange(func(m Mode) { modes = append(modes, m) })

	r.HandleGesture("mode_switch")
	clock.advance(DefaultPromptTimeout / 2)
	if r.CheckPromptTimeout() {
		t.Error("prompt timed out early")
	}

	clock.advance(DefaultPromptTimeout)
	if !r.CheckPromptTimeout() {
		t.Fatal("prompt did not time out")
	}
	if r.Mode() != ModeTab {
		t.Errorf("mode = %q after timeout, want TAB", r.Mode())
	}
	if len(modes) != 2 || modes[1] != ModeTab {
		t.Errorf("mode changes = %v, want [PROMPT TAB]", modes)
	}
}
