package gaze

// Decoder is the capability interface shared by gaze decoder variants.
// Pipelines program against this so a scripted decoder can stand in for the
// real one when there is no camera. The variant is chosen at construction
// time, never probed at call time.
type Decoder interface {
	// Update advances the decoder by one tick.
	Update(position float64, headMoving, blinking bool) Event

	// Baseline returns the established baseline, if any.
	Baseline() (float64, bool)

	// Reset clears all decoder state.
	Reset()
}

var (
	_ Decoder = (*Detector)(nil)
	_ Decoder = (*Scripted)(nil)
)
