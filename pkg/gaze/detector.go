package gaze

import "time"

// Detector is the gaze event decoder state machine. It consumes one position
// sample per tick and produces a single Event describing direction, fire-once
// transitions, and hold state.
//
// The detector owns a baseline (the resting gaze position, the mean of the
// first BaselineSamples non-blink samples) and compares each sample against
// it. Head motion invalidates the baseline and triggers recalibration; blinks
// and reading-speed movements suppress output without touching state.
//
// A Detector is not safe for concurrent use; it expects exactly one caller
// driving it once per frame.
type Detector struct {
	config Config
	clock  Clock

	// Baseline state
	baseline    float64
	hasBaseline bool
	samples     []float64
	stableSince time.Time

	// Blink state
	lastBlink time.Time

	// Recalibration state
	recalibrating bool
	headWasMoving bool
	headSettledAt time.Time

	// Physical gaze state
	state     Direction
	fired     bool
	gazeStart time.Time

	// Velocity window for reading-movement rejection
	positions []float64
}

// NewDetector creates a detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	return NewDetectorWithClock(cfg, SystemClock{})
}

// NewDetectorWithClock creates a detector with an injectable clock.
func NewDetectorWithClock(cfg Config, clock Clock) *Detector {
	return &Detector{
		config:    cfg,
		clock:     clock,
		samples:   make([]float64, 0, cfg.BaselineSamples),
		positions: make([]float64, 0, cfg.VelocityWindow),
	}
}

// Baseline returns the current baseline and whether one is established.
func (d *Detector) Baseline() (float64, bool) {
	return d.baseline, d.hasBaseline
}

// Reset clears all detector state, including the baseline.
func (d *Detector) Reset() {
	d.baseline = 0
	d.hasBaseline = false
	d.samples = d.samples[:0]
	d.stableSince = time.Time{}
	d.lastBlink = time.Time{}
	d.recalibrating = false
	d.headWasMoving = false
	d.headSettledAt = time.Time{}
	d.state = DirectionNone
	d.fired = false
	d.gazeStart = time.Time{}
	d.positions = d.positions[:0]
}

// Update advances the state machine by one tick. position is the vertical
// pupil offset relative to face height in [0,1]. It never blocks and never
// fails; suppressed ticks carry a Reason instead.
func (d *Detector) Update(position float64, headMoving, blinking bool) Event {
	now := d.clock.Now()

	// Head motion invalidates the baseline immediately and starts the
	// recalibration process.
	if headMoving {
		if !d.recalibrating {
			d.recalibrating = true
			d.hasBaseline = false
			d.samples = d.samples[:0]
			d.state = DirectionNone
			d.fired = false
			d.positions = d.positions[:0]
		}
		d.headWasMoving = true
		return Event{Reason: ReasonRecalibrating}
	}
	if d.headWasMoving {
		// Head just stopped; start the settle timer.
		d.headWasMoving = false
		d.headSettledAt = now
	}

	if d.recalibrating {
		return d.recalibrate(position, now)
	}

	if blinking {
		d.lastBlink = now
		return Event{BaselineReady: d.hasBaseline, Reason: ReasonBlinking}
	}
	if !d.lastBlink.IsZero() && now.Sub(d.lastBlink) < d.config.BlinkRecovery {
		return Event{BaselineReady: d.hasBaseline, Reason: ReasonBlinkRecovery}
	}

	// Initial calibration: average the first N samples.
	if !d.hasBaseline {
		d.samples = append(d.samples, position)
		if len(d.samples) >= d.config.BaselineSamples {
			d.baseline = mean(d.samples)
			d.hasBaseline = true
			d.stableSince = now
		}
		// Not ready this tick even when the buffer just filled; the
		// stabilize window still has to pass.
		return Event{}
	}

	offset := d.baseline - position

	// Hold output until the fresh baseline has settled.
	if now.Sub(d.stableSince) < d.config.StabilizeWindow {
		return Event{BaselineReady: true, Offset: offset, Reason: ReasonStabilizing}
	}

	d.pushPosition(position)
	velocity := d.velocity()

	if d.config.VelocityFilter && velocity > d.config.VelocityThreshold {
		return Event{
			BaselineReady: true,
			Offset:        offset,
			Velocity:      velocity,
			Reason:        ReasonReadingMovement,
		}
	}

	physical := d.physicalState(offset)

	if physical != d.state {
		d.state = physical
		d.fired = false
		d.gazeStart = now
	}

	var duration time.Duration
	continuous := false
	if d.state != DirectionNone {
		duration = now.Sub(d.gazeStart)
		continuous = duration >= d.config.HoldThreshold
	}

	ev := Event{
		Direction:     d.state,
		Continuous:    continuous,
		Duration:      duration,
		Offset:        offset,
		Velocity:      velocity,
		BaselineReady: true,
	}

	// Fire exactly once per excursion, on the entry tick.
	if d.state != DirectionNone && !d.fired {
		d.fired = true
		ev.Fired = true
	}

	return ev
}

// recalibrate waits for the head to settle, then recollects a full set of
// baseline samples.
func (d *Detector) recalibrate(position float64, now time.Time) Event {
	if !d.headSettledAt.IsZero() && now.Sub(d.headSettledAt) < d.config.SettleWindow {
		return Event{Reason: ReasonSettling}
	}

	d.samples = append(d.samples, position)
	if len(d.samples) >= d.config.BaselineSamples {
		d.baseline = mean(d.samples)
		d.hasBaseline = true
		d.stableSince = now
		d.recalibrating = false
		d.headSettledAt = time.Time{}
		d.samples = d.samples[:0]
	}
	return Event{Reason: ReasonRecalibrating}
}

// physicalState applies the entry thresholds with hysteresis: once a
// direction is active, it only exits when the offset falls below
// HysteresisExit times the entry threshold.
func (d *Detector) physicalState(offset float64) Direction {
	switch d.state {
	case DirectionUp:
		if offset > d.config.ThresholdUp*d.config.HysteresisExit {
			return DirectionUp
		}
	case DirectionDown:
		if offset < -d.config.ThresholdDown*d.config.HysteresisExit {
			return DirectionDown
		}
	default:
		if offset > d.config.ThresholdUp {
			return DirectionUp
		}
		if offset < -d.config.ThresholdDown {
			return DirectionDown
		}
	}
	return DirectionNone
}

func (d *Detector) pushPosition(p float64) {
	if len(d.positions) == d.config.VelocityWindow {
		copy(d.positions, d.positions[1:])
		d.positions = d.positions[:len(d.positions)-1]
	}
	d.positions = append(d.positions, p)
}

// velocity is the mean absolute per-frame position change over the window.
// Fewer than three samples is not enough to call it movement.
func (d *Detector) velocity() float64 {
	if len(d.positions) < 3 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(d.positions); i++ {
		diff := d.positions[i] - d.positions[i-1]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum / float64(len(d.positions)-1)
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
