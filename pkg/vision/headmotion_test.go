package vision

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

const frame = 33 * time.Millisecond

func faceAt(cx, cy, w float64) Detection {
	return Detection{X: cx - w/2, Y: cy - w/2, W: w, H: w, Confidence: 0.95}
}

func newTestHeadMotion() (*HeadMotionDetector, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	return NewHeadMotionDetectorWithClock(DefaultHeadMotionConfig(), clock), clock
}

func feed(h *HeadMotionDetector, c *fakeClock, det Detection, frames int) bool {
	moving := h.Moving()
	for i := 0; i < frames; i++ {
		c.advance(frame)
		moving = h.Update(det)
	}
	return moving
}

func TestHeadMotion_StillHead(t *testing.T) {
	h, c := newTestHeadMotion()
	if moving := feed(h, c, faceAt(0.5, 0.5, 0.3), 30); moving {
		t.Error("motion reported for a still head")
	}
}

func TestHeadMotion_DebouncedOnset(t *testing.T) {
	h, c := newTestHeadMotion()
	feed(h, c, faceAt(0.5, 0.5, 0.3), 10)

	// A large horizontal jump: over the on threshold, but not reported
	// until it persists past the on debounce.
	moved := faceAt(0.6, 0.5, 0.3)
	c.advance(frame)
	if h.Update(moved) {
		t.Error("motion reported on the first displaced frame")
	}
	if moving := feed(h, c, moved, 6); !moving {
		t.Error("motion not reported after the on debounce")
	}
}

func TestHeadMotion_DebouncedRelease(t *testing.T) {
	h, c := newTestHeadMotion()
	still := faceAt(0.5, 0.5, 0.3)
	feed(h, c, still, 10)
	feed(h, c, faceAt(0.6, 0.5, 0.3), 10)
	if !h.Moving() {
		t.Fatal("motion not established")
	}

	// Back at the reference: clears only after the off debounce.
	c.advance(frame)
	if !h.Update(still) {
		t.Error("motion cleared on the first quiet frame")
	}
	if moving := feed(h, c, still, 14); moving {
		t.Error("motion not cleared after the off debounce")
	}
}

func TestHeadMotion_ScaleChange(t *testing.T) {
	h, c := newTestHeadMotion()
	feed(h, c, faceAt(0.5, 0.5, 0.3), 10)

	// Leaning in grows the face box past the scale threshold.
	if moving := feed(h, c, faceAt(0.5, 0.5, 0.34), 10); !moving {
		t.Error("scale change not reported as motion")
	}
}

func TestHeadMotion_Reset(t *testing.T) {
	h, c := newTestHeadMotion()
	feed(h, c, faceAt(0.5, 0.5, 0.3), 10)
	feed(h, c, faceAt(0.6, 0.5, 0.3), 10)
	if !h.Moving() {
		t.Fatal("motion not established")
	}

	h.Reset()
	if h.Moving() {
		t.Error("moving after Reset")
	}
	// The first frame after a reset only seeds the reference.
	if moving := feed(h, c, faceAt(0.7, 0.5, 0.3), 10); moving {
		t.Error("motion reported against a stale reference after Reset")
	}
}
