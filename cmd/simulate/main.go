// Simulate - runs a scripted gaze session through the real decoders.
//
// No camera or server involved: positions are synthesized, the clock is
// stepped one frame at a time, and the decoded output is logged. Useful for
// verifying tuning changes end to end.
package main

import (
	"time"

	"github.com/Paddy-93/Navigaze/internal/config"
	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/gaze"
	"github.com/Paddy-93/Navigaze/pkg/morse"
	"github.com/Paddy-93/Navigaze/pkg/sequence"
)

const framePeriod = 33 * time.Millisecond

// stepClock advances only when the script says so.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) step() {
	c.now = c.now.Add(framePeriod)
}

// segment holds one gaze position for a number of frames.
type segment struct {
	label    string
	position float64
	frames   int
}

func holdFrames(d time.Duration) int {
	return int(d/framePeriod) + 2
}

func main() {
	log.Init(config.LogLevel())

	const baseline = 0.5
	up := baseline - 0.02   // Above the up threshold
	down := baseline + 0.01 // Below the down threshold

	gazeCfg := gaze.DefaultConfig()
	morseCfg := morse.DefaultConfig()

	// Calibrate, spell "I" (two dots), submit, then gesture escape.
	script := []segment{
		{"calibration", baseline, gazeCfg.BaselineSamples + holdFrames(gazeCfg.StabilizeWindow)},
		{"dot", up, 3},
		{"gap", baseline, 6},
		{"dot", up, 3},
		{"letter gap", baseline, holdFrames(morseCfg.NeutralHoldTime)},
		{"submit hold", baseline, holdFrames(morseCfg.SubmitHoldTime)},
		{"gesture U", up, 3},
		{"gap", baseline, 6},
		{"gesture U", up, 3},
		{"gap", baseline, 6},
		{"gesture D", down, 3},
		{"gap", baseline, 6},
		{"gesture D", down, 3},
		{"gap", baseline, 6},
	}

	clock := &stepClock{now: time.Now()}
	detector := gaze.NewDetectorWithClock(gazeCfg, clock)
	decoder := morse.NewDecoderWithClock(morseCfg, clock)
	matcher := sequence.NewMatcherWithClock(sequence.DefaultPatterns(), sequence.DefaultTimeout, clock)

	decoder.OnSubmit(func(text string) {
		log.Info("submitted", "text", text)
	})

	for _, seg := range script {
		log.Debug("segment", "label", seg.label, "frames", seg.frames)
		for i := 0; i < seg.frames; i++ {
			clock.step()
			ev := detector.Update(seg.position, false, false)
			decoder.Update(ev, false)

			if ev.Fired {
				log.Info("gaze fired", "direction", string(ev.Direction), "offset", ev.Offset)
				res := matcher.Add(ev.Direction)
				if res.Status == sequence.Completed {
					log.Info("gesture completed", "name", res.Name)
				}
			}
			matcher.CheckTimeout()
		}
	}

	base, ok := detector.Baseline()
	log.Info("simulation finished",
		"baseline", base,
		"baseline_ready", ok,
		"text", decoder.Text(),
		"buffer", decoder.Morse(),
	)
}
