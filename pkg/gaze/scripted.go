package gaze

// Scripted is a decoder variant that replays a queue of prepared events,
// ignoring its inputs. Harnesses use it to exercise the downstream decoders
// without a camera or a real signal.
type Scripted struct {
	queue    []Event
	baseline float64
	played   int
}

// NewScripted creates a scripted decoder that will replay events in order.
// Once the queue is exhausted it reports neutral, baseline-ready events.
func NewScripted(baseline float64, events ...Event) *Scripted {
	return &Scripted{queue: events, baseline: baseline}
}

// Push appends more events to the replay queue.
func (s *Scripted) Push(events ...Event) {
	s.queue = append(s.queue, events...)
}

// Update returns the next queued event, or a neutral ready event when the
// queue is exhausted.
func (s *Scripted) Update(_ float64, _, _ bool) Event {
	if s.played < len(s.queue) {
		ev := s.queue[s.played]
		s.played++
		return ev
	}
	return Event{BaselineReady: true}
}

// Remaining reports how many queued events have not been played yet.
func (s *Scripted) Remaining() int {
	return len(s.queue) - s.played
}

// Baseline returns the configured baseline. A scripted decoder is always
// calibrated.
func (s *Scripted) Baseline() (float64, bool) {
	return s.baseline, true
}

// Reset rewinds the replay queue.
func (s *Scripted) Reset() {
	s.played = 0
}
