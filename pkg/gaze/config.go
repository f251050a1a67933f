package gaze

import "time"

// Config holds all tunable parameters for the gaze detector.
//
// The thresholds and durations are empirically tuned against real users, not
// derived from a model. Treat them as starting points.
type Config struct {
	// Entry thresholds, as a fraction of face height. Down is more
	// sensitive than up because downward excursions are physically
	// smaller.
	ThresholdUp   float64
	ThresholdDown float64

	// HysteresisExit relaxes the exit threshold to this fraction of the
	// entry threshold once a direction is active, so noise near the
	// boundary cannot flicker the state.
	HysteresisExit float64

	// Calibration
	BaselineSamples int           // samples averaged into the baseline
	StabilizeWindow time.Duration // suppress output after (re)calibration

	// Recalibration after head motion
	SettleWindow time.Duration // wait after head motion stops

	// Blink handling
	BlinkRecovery time.Duration // suppress output after a blink ends

	// Continuous-hold detection
	HoldThreshold time.Duration // excursion duration before Continuous

	// Velocity-based reading rejection
	VelocityWindow    int     // samples in the rolling velocity buffer
	VelocityThreshold float64 // mean |Δposition| above this is reading
	VelocityFilter    bool    // disable to accept fast movements
}

// DefaultConfig returns the tuned defaults for a seated user at ~30fps.
func DefaultConfig() Config {
	return Config{
		ThresholdUp:    0.012, // 1.2% of face height
		ThresholdDown:  0.005, // 0.5% of face height, more sensitive
		HysteresisExit: 0.4,

		BaselineSamples: 15,
		StabilizeWindow: 300 * time.Millisecond,

		SettleWindow: 1000 * time.Millisecond,

		BlinkRecovery: 400 * time.Millisecond,

		HoldThreshold: 1000 * time.Millisecond,

		VelocityWindow:    10, // ~300ms at 30fps
		VelocityThreshold: 0.17,
		VelocityFilter:    true,
	}
}
