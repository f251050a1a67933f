package vision

import (
	"math"
	"time"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

// HeadMotionConfig tunes the head motion detector. Each axis has an on and
// an off threshold; the off threshold is lower so borderline frames do not
// flap the state.
type HeadMotionConfig struct {
	Alpha float64 // EMA smoothing factor for the reference pose

	TranslateXOn  float64 // Horizontal shift, fraction of face width
	TranslateXOff float64
	TranslateYOn  float64 // Vertical shift, fraction of face height
	TranslateYOff float64
	ScaleOn       float64 // Relative face width change
	ScaleOff      float64

	OnDebounce  time.Duration // Motion must persist this long to report
	OffDebounce time.Duration // Quiet must persist this long to clear
}

// DefaultHeadMotionConfig returns production defaults.
func DefaultHeadMotionConfig() HeadMotionConfig {
	return HeadMotionConfig{
		Alpha:         0.4,
		TranslateXOn:  0.20,
		TranslateXOff: 0.12,
		TranslateYOn:  0.16,
		TranslateYOff: 0.10,
		ScaleOn:       0.10,
		ScaleOff:      0.06,
		OnDebounce:    150 * time.Millisecond,
		OffDebounce:   400 * time.Millisecond,
	}
}

// HeadMotionDetector reports whether the head is moving, by comparing each
// face box against an exponentially smoothed reference pose. Not safe for
// concurrent use.
type HeadMotionDetector struct {
	config HeadMotionConfig
	clock  gaze.Clock

	hasRef            bool
	refX, refY, refW  float64
	moving            bool
	candidateSince    time.Time
	hasCandidate      bool
	candidateIsMoving bool
}

// NewHeadMotionDetector creates a detector with the system clock.
func NewHeadMotionDetector(cfg HeadMotionConfig) *HeadMotionDetector {
	return NewHeadMotionDetectorWithClock(cfg, gaze.SystemClock{})
}

// NewHeadMotionDetectorWithClock creates a detector with an injectable clock.
func NewHeadMotionDetectorWithClock(cfg HeadMotionConfig, clock gaze.Clock) *HeadMotionDetector {
	return &HeadMotionDetector{config: cfg, clock: clock}
}

// Update feeds one face detection and returns the debounced moving state.
func (h *HeadMotionDetector) Update(det Detection) bool {
	if det.W <= 0 || det.H <= 0 {
		return h.moving
	}

	cx, cy := det.Center()

	if !h.hasRef {
		h.refX, h.refY, h.refW = cx, cy, det.W
		h.hasRef = true
		return h.moving
	}

	dx := math.Abs(cx-h.refX) / h.refW
	dy := math.Abs(cy-h.refY) / h.refW
	ds := math.Abs(det.W-h.refW) / h.refW

	var raw bool
	if h.moving {
		// Exiting uses the lower thresholds
		raw = dx > h.config.TranslateXOff || dy > h.config.TranslateYOff || ds > h.config.ScaleOff
	} else {
		raw = dx > h.config.TranslateXOn || dy > h.config.TranslateYOn || ds > h.config.ScaleOn
	}

	h.debounce(raw)

	// The reference tracks slow drift but must not chase active motion,
	// or the deviation would vanish mid-move.
	if !raw {
		a := h.config.Alpha
		h.refX = a*cx + (1-a)*h.refX
		h.refY = a*cy + (1-a)*h.refY
		h.refW = a*det.W + (1-a)*h.refW
	}

	return h.moving
}

// Moving returns the current debounced state.
func (h *HeadMotionDetector) Moving() bool {
	return h.moving
}

// Reset forgets the reference pose and clears the state.
func (h *HeadMotionDetector) Reset() {
	h.hasRef = false
	h.moving = false
	h.hasCandidate = false
}

func (h *HeadMotionDetector) debounce(raw bool) {
	now := h.clock.Now()

	if raw == h.moving {
		h.hasCandidate = false
		return
	}

	if !h.hasCandidate || h.candidateIsMoving != raw {
		h.hasCandidate = true
		h.candidateIsMoving = raw
		h.candidateSince = now
		return
	}

	hold := h.config.OnDebounce
	if !raw {
		hold = h.config.OffDebounce
	}
	if now.Sub(h.candidateSince) >= hold {
		h.moving = raw
		h.hasCandidate = false
	}
}
