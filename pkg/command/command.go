// Package command routes completed gestures and per-mode gazes to symbolic
// key commands. It decides WHICH command a gesture means; actually injecting
// OS key events is the sink's concern, behind the Sender interface.
package command

import (
	"errors"
	"time"

	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/gaze"
)

// Key is a symbolic key command.
type Key string

const (
	KeyTab       Key = "tab"
	KeyShiftTab  Key = "shift_tab"
	KeyArrowUp   Key = "arrow_up"
	KeyArrowDown Key = "arrow_down"
	KeyEnter     Key = "enter"
	KeyEscape    Key = "escape"
	KeySuper     Key = "super"
)

// Sender receives symbolic key commands. Implementations may inject OS
// events, forward over the network, or just log.
type Sender interface {
	Send(key Key) error
}

// LogSender logs commands without executing them.
type LogSender struct{}

// Send logs the key command.
func (LogSender) Send(key Key) error {
	log.Info("key command", "key", string(key))
	return nil
}

// Mode selects how plain gazes are interpreted between gestures.
type Mode string

const (
	// ModeTab: up is Tab, down is Shift+Tab.
	ModeTab Mode = "TAB"
	// ModeScroll: up and down are arrow keys.
	ModeScroll Mode = "SCROLL"
	// ModePrompt: waiting for the user to pick a mode after mode_switch.
	ModePrompt Mode = "PROMPT"
)

// DefaultPromptTimeout is how long the mode prompt stays open.
const DefaultPromptTimeout = 5000 * time.Millisecond

// ErrUnknownGesture is returned for a gesture name with no binding.
var ErrUnknownGesture = errors.New("command: unknown gesture")

// Router maps gestures and per-mode gazes to key commands. Not safe for
// concurrent use.
type Router struct {
	sender        Sender
	clock         gaze.Clock
	mode          Mode
	promptStart   time.Time
	promptTimeout time.Duration

	onModeChange func(Mode)
}

// NewRouter creates a router starting in TAB mode.
func NewRouter(sender Sender) *Router {
	return NewRouterWithClock(sender, gaze.SystemClock{})
}

// NewRouterWithClock creates a router with an injectable clock.
func NewRouterWithClock(sender Sender, clock gaze.Clock) *Router {
	return &Router{
		sender:        sender,
		clock:         clock,
		mode:          ModeTab,
		promptTimeout: DefaultPromptTimeout,
	}
}

// OnModeChange sets a callback invoked whenever the mode changes.
func (r *Router) OnModeChange(fn func(Mode)) {
	r.onModeChange = fn
}

// Mode returns the current mode.
func (r *Router) Mode() Mode {
	return r.mode
}

// HandleGesture routes a completed gesture by name.
func (r *Router) HandleGesture(name string) error {
	switch name {
	case "mode_switch":
		r.setMode(ModePrompt)
		r.promptStart = r.clock.Now()
		return nil
	case "enter":
		return r.sender.Send(KeyEnter)
	case "escape":
		return r.sender.Send(KeyEscape)
	case "windows":
		return r.sender.Send(KeySuper)
	default:
		return ErrUnknownGesture
	}
}

// HandleGaze routes a fired gaze according to the current mode.
func (r *Router) HandleGaze(dir gaze.Direction) error {
	switch r.mode {
	case ModePrompt:
		// The prompt asks: up for SCROLL, down for TAB.
		switch dir {
		case gaze.DirectionUp:
			r.setMode(ModeScroll)
		case gaze.DirectionDown:
			r.setMode(ModeTab)
		}
		return nil
	case ModeScroll:
		switch dir {
		case gaze.DirectionUp:
			return r.sender.Send(KeyArrowUp)
		case gaze.DirectionDown:
			return r.sender.Send(KeyArrowDown)
		}
	case ModeTab:
		switch dir {
		case gaze.DirectionUp:
			return r.sender.Send(KeyTab)
		case gaze.DirectionDown:
			return r.sender.Send(KeyShiftTab)
		}
	}
	return nil
}

// CheckPromptTimeout closes an expired mode prompt, falling back to TAB.
// Callers invoke it once per tick.
func (r *Router) CheckPromptTimeout() bool {
	if r.mode != ModePrompt {
		return false
	}
	if r.clock.Now().Sub(r.promptStart) > r.promptTimeout {
		r.setMode(ModeTab)
		return true
	}
	return false
}

func (r *Router) setMode(m Mode) {
	if m == r.mode {
		return
	}
	r.mode = m
	if r.onModeChange != nil {
		r.onModeChange(m)
	}
}
