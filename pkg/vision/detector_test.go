package vision

import (
	"testing"
)

func TestSelectBest_Empty(t *testing.T) {
	if got := SelectBest(nil); got != nil {
		t.Errorf("SelectBest(nil) = %v, want nil", got)
	}
}

func TestSelectBest_Single(t *testing.T) {
	dets := []Detection{{X: 0.1, Y: 0.1, W: 0.2, H: 0.2, Confidence: 0.9}}
	got := SelectBest(dets)
	if got == nil {
		t.Fatal("SelectBest() returned nil for one detection")
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
}

func TestSelectBest_PrefersConfidentFace(t *testing.T) {
	dets := []Detection{
		{X: 0.0, Y: 0.0, W: 0.5, H: 0.5, Confidence: 0.55}, // Large but marginal
		{X: 0.4, Y: 0.4, W: 0.2, H: 0.2, Confidence: 0.95}, // Small but confident
	}

	got := SelectBest(dets)
	if got == nil {
		t.Fatal("SelectBest() returned nil")
	}
	if got.Confidence != 0.95 {
		t.Errorf("selected confidence = %v, want the 0.95 face", got.Confidence)
	}
}

func TestDetection_Center(t *testing.T) {
	d := Detection{X: 0.2, Y: 0.4, W: 0.2, H: 0.2}
	cx, cy := d.Center()
	if cx != 0.3 || cy != 0.5 {
		t.Errorf("Center() = (%v, %v), want (0.3, 0.5)", cx, cy)
	}
}
