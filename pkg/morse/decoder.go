package morse

import (
	"strings"
	"time"

	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

// Config holds the hold durations for Morse entry.
//
// The durations are tuned for comfortable eye control; a faster user can
// shorten them.
type Config struct {
	UpHoldTime      time.Duration // up hold converts the dot to a space
	DownHoldTime    time.Duration // down hold converts the dash to clear/backspace
	NeutralHoldTime time.Duration // neutral hold completes the current letter
	SubmitHoldTime  time.Duration // longer neutral hold submits the text
}

// DefaultConfig returns the tuned hold durations.
func DefaultConfig() Config {
	return Config{
		UpHoldTime:      1000 * time.Millisecond,
		DownHoldTime:    1000 * time.Millisecond,
		NeutralHoldTime: 1000 * time.Millisecond,
		SubmitHoldTime:  3000 * time.Millisecond,
	}
}

// Submission is returned when a neutral hold submits the accumulated text.
type Submission struct {
	Text string
}

// Decoder turns gaze events into Morse symbols, characters, and submitted
// text. It consumes decoder events, not raw samples, and advances once per
// tick. Not safe for concurrent use.
type Decoder struct {
	config Config
	clock  gaze.Clock

	text   string
	buffer Sequence

	// Directional hold state
	holdDirection gaze.Direction
	holdStart     time.Time
	holdFired     bool

	// The symbol speculatively appended when the current gaze began.
	// Retracted if the gaze matures into a hold action, but only while it
	// is still the buffer tail.
	pending    Symbol
	hasPending bool

	// Neutral hold state
	neutralStart    time.Time
	letterCompleted bool

	onSubmit func(text string)
}

// NewDecoder creates a Morse decoder with the given configuration.
func NewDecoder(cfg Config) *Decoder {
	return NewDecoderWithClock(cfg, gaze.SystemClock{})
}

// NewDecoderWithClock creates a Morse decoder with an injectable clock.
func NewDecoderWithClock(cfg Config, clock gaze.Clock) *Decoder {
	return &Decoder{config: cfg, clock: clock}
}

// OnSubmit sets the callback invoked with submitted text.
func (d *Decoder) OnSubmit(fn func(text string)) {
	d.onSubmit = fn
}

// Text returns the accumulated text not yet submitted.
func (d *Decoder) Text() string {
	return d.text
}

// Morse returns the in-progress symbol buffer as a dot/dash string.
func (d *Decoder) Morse() string {
	return d.buffer.String()
}

// Reset clears all text, buffered symbols, and timers.
func (d *Decoder) Reset() {
	d.text = ""
	d.buffer = d.buffer[:0]
	d.clearHold()
	d.neutralStart = time.Time{}
	d.letterCompleted = false
}

// Update advances the decoder by one tick. It returns a Submission only on
// the tick that submits text; every other tick returns nil.
func (d *Decoder) Update(ev gaze.Event, headMoving bool) *Submission {
	now := d.clock.Now()

	// Head repositioning pauses the hold timers without destroying the
	// in-progress buffer.
	if headMoving {
		d.clearHold()
		d.neutralStart = time.Time{}
		return nil
	}

	if !ev.BaselineReady {
		return nil
	}

	d.updateHold(ev, now)

	if ev.Direction == gaze.DirectionNone {
		return d.checkNeutralHold(now)
	}
	d.neutralStart = time.Time{}
	d.letterCompleted = false
	return nil
}

// updateHold tracks the directional hold timer and appends symbols on fired
// events.
func (d *Decoder) updateHold(ev gaze.Event, now time.Time) {
	if ev.Direction != d.holdDirection {
		if ev.Direction != gaze.DirectionNone {
			d.holdDirection = ev.Direction
			d.holdStart = now
		} else {
			d.holdDirection = gaze.DirectionNone
			d.holdStart = time.Time{}
		}
		d.holdFired = false
		d.hasPending = false
	}

	if ev.Fired {
		switch ev.Direction {
		case gaze.DirectionUp:
			d.append(Dot)
		case gaze.DirectionDown:
			d.append(Dash)
		}
	}

	if d.holdStart.IsZero() || d.holdFired {
		return
	}
	held := now.Sub(d.holdStart)

	switch {
	case d.holdDirection == gaze.DirectionUp && held >= d.config.UpHoldTime:
		d.retract(Dot)
		d.addSpace()
		d.holdFired = true
		d.hasPending = false

	case d.holdDirection == gaze.DirectionDown && held >= d.config.DownHoldTime:
		d.retract(Dash)
		if len(d.buffer) > 0 {
			d.buffer = d.buffer[:0]
		} else {
			d.backspace()
		}
		d.holdFired = true
		d.hasPending = false
	}
}

// checkNeutralHold runs the letter-completion and submission timers while
// the gaze rests at neutral.
func (d *Decoder) checkNeutralHold(now time.Time) *Submission {
	if d.neutralStart.IsZero() {
		d.neutralStart = now
		d.letterCompleted = false
		return nil
	}
	held := now.Sub(d.neutralStart)

	// Letter completion fires once per neutral hold.
	if held >= d.config.NeutralHoldTime && !d.letterCompleted && len(d.buffer) > 0 {
		d.completeBuffer()
		d.letterCompleted = true
	}

	if held >= d.config.SubmitHoldTime {
		d.completeBuffer()
		submitted := d.text
		d.text = ""
		d.neutralStart = time.Time{}
		d.letterCompleted = false
		if d.onSubmit != nil {
			d.onSubmit(submitted)
		}
		return &Submission{Text: submitted}
	}
	return nil
}

func (d *Decoder) append(sym Symbol) {
	d.buffer = append(d.buffer, sym)
	d.pending = sym
	d.hasPending = true
}

// retract removes the speculatively appended symbol, but only if it is still
// the buffer tail; symbols appended since then must not be disturbed.
func (d *Decoder) retract(sym Symbol) {
	if !d.hasPending || d.pending != sym {
		return
	}
	if n := len(d.buffer); n > 0 && d.buffer[n-1] == sym {
		d.buffer = d.buffer[:n-1]
	}
}

func (d *Decoder) addSpace() {
	d.completeBuffer()
	if d.text != "" && !strings.HasSuffix(d.text, " ") {
		d.text += " "
	}
}

func (d *Decoder) backspace() {
	if len(d.buffer) > 0 {
		d.buffer = d.buffer[:len(d.buffer)-1]
	} else if d.text != "" {
		d.text = d.text[:len(d.text)-1]
	}
}

// completeBuffer resolves the symbol buffer into a character or command.
// Unknown sequences are dropped; they are never an error.
func (d *Decoder) completeBuffer() {
	if len(d.buffer) == 0 {
		return
	}
	seq := d.buffer.String()
	if ch, ok := Code[seq]; ok {
		d.text += ch
	} else if cmd, ok := Commands[seq]; ok {
		d.runCommand(cmd)
	}
	d.buffer = d.buffer[:0]
}

func (d *Decoder) runCommand(cmd Command) {
	if cmd == CommandClearAll {
		d.text = ""
	}
}

func (d *Decoder) clearHold() {
	d.holdDirection = gaze.DirectionNone
	d.holdStart = time.Time{}
	d.holdFired = false
	d.hasPending = false
}
