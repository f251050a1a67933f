package vision

// Sample is one per-frame gaze measurement derived from a detection.
type Sample struct {
	Position float64 // Vertical eye position relative to the face box (0-1)
	Blinking bool
	OK       bool // False when no face was usable this frame
}

// SamplerConfig tunes detection-to-sample conversion.
type SamplerConfig struct {
	// BlinkConfidence marks a frame as a blink when the face score dips
	// below it. Closed eyes degrade the YuNet score before the face is
	// lost entirely.
	BlinkConfidence float64
}

// DefaultSamplerConfig returns production defaults.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		BlinkConfidence: 0.8,
	}
}

// Sampler converts face detections into normalized gaze samples.
type Sampler struct {
	config SamplerConfig
}

// NewSampler creates a sampler.
func NewSampler(cfg SamplerConfig) *Sampler {
	return &Sampler{config: cfg}
}

// Sample derives a gaze sample from the best face in a frame's detections.
func (s *Sampler) Sample(dets []Detection) Sample {
	best := SelectBest(dets)
	if best == nil || best.H <= 0 {
		return Sample{}
	}

	if best.Confidence < s.config.BlinkConfidence {
		return Sample{Blinking: true, OK: true}
	}

	// Vertical pupil position as a fraction of the face box. Measuring
	// relative to the box keeps the value stable when the whole head
	// shifts in the frame.
	eyeY := (best.RightEye.Y + best.LeftEye.Y) / 2
	position := (eyeY - best.Y) / best.H

	return Sample{Position: position, OK: true}
}
