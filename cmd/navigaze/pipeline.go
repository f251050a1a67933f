package main

import (
	"sync"

	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/command"
	"github.com/Paddy-93/Navigaze/pkg/gaze"
	"github.com/Paddy-93/Navigaze/pkg/morse"
	"github.com/Paddy-93/Navigaze/pkg/protocol"
	"github.com/Paddy-93/Navigaze/pkg/sequence"
	"github.com/Paddy-93/Navigaze/pkg/session"
	"github.com/Paddy-93/Navigaze/pkg/web"
)

// pipeline drives one sample through the decoders and publishes the results.
// The camera loop and the remote ingest endpoint both feed it, so Tick takes
// a lock; the decoders themselves are single-threaded.
type pipeline struct {
	mu       sync.Mutex
	detector *gaze.Detector
	morse    *morse.Decoder
	matcher  *sequence.Matcher
	router   *command.Router
	recorder *session.Recorder
	server   *web.Server

	lastReason gaze.Reason
	lastBuffer string
	lastText   string
}

func newPipeline(server *web.Server, recorder *session.Recorder) *pipeline {
	p := &pipeline{
		detector: gaze.NewDetector(gaze.DefaultConfig()),
		morse:    morse.NewDecoder(morse.DefaultConfig()),
		matcher:  sequence.NewMatcher(sequence.DefaultPatterns()),
		router:   command.NewRouter(command.LogSender{}),
		recorder: recorder,
		server:   server,
	}

	p.morse.OnSubmit(func(text string) {
		log.Info("text submitted", "text", text)
	})
	p.router.OnModeChange(func(m command.Mode) {
		p.server.UpdateState(func(s *web.State) { s.Mode = string(m) })
		if msg, err := protocol.NewModeMessage(string(m)); err == nil {
			p.server.BroadcastMessage(msg)
		}
	})

	return p
}

// Tick processes one per-frame sample.
func (p *pipeline) Tick(position float64, headMoving, blinking bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ev := p.detector.Update(position, headMoving, blinking)
	sub := p.morse.Update(ev, headMoving)

	if ev.Fired {
		p.recorder.RecordGaze(ev.Direction)
		p.router.HandleGaze(ev.Direction)

		res := p.matcher.Add(ev.Direction)
		if res.Status == sequence.Completed {
			p.recorder.RecordGesture(res.Name)
			if err := p.router.HandleGesture(res.Name); err != nil {
				log.Warn("gesture not routed", "gesture", res.Name, "error", err)
			}
		}
		p.broadcastGesture(res)
	}

	p.matcher.CheckTimeout()
	p.router.CheckPromptTimeout()

	if sub != nil {
		p.recorder.RecordSubmission(sub.Text)
	}
	p.publish(ev, sub)
}

// Idle runs the per-tick timer checks for frames with no usable sample.
func (p *pipeline) Idle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.matcher.CheckTimeout()
	p.router.CheckPromptTimeout()
}

func (p *pipeline) publish(ev gaze.Event, sub *morse.Submission) {
	p.server.UpdateState(func(s *web.State) {
		s.BaselineReady = ev.BaselineReady
		s.Direction = string(ev.Direction)
		s.Reason = string(ev.Reason)
		s.MorseBuffer = p.morse.Morse()
		s.Text = p.morse.Text()
	})

	// Gaze events stream on edges, not every tick.
	if ev.Fired || ev.Continuous || ev.Reason != p.lastReason {
		p.lastReason = ev.Reason
		msg, err := protocol.NewGazeMessage(protocol.GazeEventData{
			Direction:     string(ev.Direction),
			Fired:         ev.Fired,
			Continuous:    ev.Continuous,
			DurationMs:    ev.Duration.Milliseconds(),
			Offset:        ev.Offset,
			Velocity:      ev.Velocity,
			BaselineReady: ev.BaselineReady,
			Reason:        string(ev.Reason),
		})
		if err == nil {
			p.server.BroadcastMessage(msg)
		}
	}

	buffer, text := p.morse.Morse(), p.morse.Text()
	submitted := ""
	if sub != nil {
		submitted = sub.Text
	}
	if buffer != p.lastBuffer || text != p.lastText || submitted != "" {
		p.lastBuffer, p.lastText = buffer, text
		if msg, err := protocol.NewMorseMessage(buffer, text, submitted); err == nil {
			p.server.BroadcastMessage(msg)
		}
	}
}

func (p *pipeline) broadcastGesture(res sequence.Result) {
	partial := make([]string, len(res.Partial))
	for i, d := range res.Partial {
		partial[i] = string(d)
	}
	if msg, err := protocol.NewGestureMessage(res.Status.String(), res.Name, partial); err == nil {
		p.server.BroadcastMessage(msg)
	}
}
