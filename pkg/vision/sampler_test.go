package vision

import (
	"math"
	"testing"
)

func TestSampler_NoFace(t *testing.T) {
	s := NewSampler(DefaultSamplerConfig())
	sample := s.Sample(nil)
	if sample.OK {
		t.Error("sample OK with no detections")
	}
}

func TestSampler_Position(t *testing.T) {
	s := NewSampler(DefaultSamplerConfig())

	// Face box y 0.2..0.6, eyes at y 0.36: 40% down the box.
	det := Detection{
		X: 0.3, Y: 0.2, W: 0.3, H: 0.4,
		RightEye:   Point{X: 0.38, Y: 0.36},
		LeftEye:    Point{X: 0.52, Y: 0.36},
		Confidence: 0.95,
	}

	sample := s.Sample([]Detection{det})
	if !sample.OK {
		t.Fatal("sample not OK")
	}
	if sample.Blinking {
		t.Error("blink reported for a confident face")
	}
	if math.Abs(sample.Position-0.4) > 1e-9 {
		t.Errorf("position = %v, want 0.4", sample.Position)
	}
}

func TestSampler_BlinkOnConfidenceDip(t *testing.T) {
	s := NewSampler(DefaultSamplerConfig())

	det := Detection{
		X: 0.3, Y: 0.2, W: 0.3, H: 0.4,
		RightEye:   Point{X: 0.38, Y: 0.36},
		LeftEye:    Point{X: 0.52, Y: 0.36},
		Confidence: 0.6,
	}

	sample := s.Sample([]Detection{det})
	if !sample.OK {
		t.Fatal("sample not OK")
	}
	if !sample.Blinking {
		t.Error("low-confidence face not reported as a blink")
	}
}
