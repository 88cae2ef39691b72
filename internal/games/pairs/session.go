package pairs

import (
	"time"

	"github.com/vovakirdan/tui-pairs/internal/clock"
)

// EventKind identifies what happened in a session.
type EventKind int

const (
	EventPairMatched EventKind = iota + 1 // A pair was found; Face is set
	EventMismatch                         // Two different faces are up; Cards is set
	EventUnflipped                        // A mismatched pair was turned back down
	EventCompleted                        // The last pair was found
	EventAutoReset                        // The finished game is about to be dealt again
	EventReset                            // A fresh deck was dealt
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventPairMatched:
		return "pair_matched"
	case EventMismatch:
		return "mismatch"
	case EventUnflipped:
		return "unflipped"
	case EventCompleted:
		return "completed"
	case EventAutoReset:
		return "auto_reset"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is published by a Session to its listener.
type Event struct {
	Kind  EventKind
	Face  Face   // EventPairMatched
	Cards [2]int // EventPairMatched, EventMismatch
}

// Timings configures the deferred actions of a session.
type Timings struct {
	MismatchDelay time.Duration // Mismatched pair stays up this long
	ResetDelay    time.Duration // Finished game is dealt again after this long
	TickInterval  time.Duration // One game-clock second
}

// DefaultTimings returns the standard delays.
func DefaultTimings() Timings {
	return Timings{
		MismatchDelay: time.Second,
		ResetDelay:    5 * time.Second,
		TickInterval:  time.Second,
	}
}

// Session drives an Engine with the timers it needs: the per-second game
// clock, the delayed unflip after a mismatch and the delayed new deal after
// the last pair is found. Reset cancels all of them, so a timer armed in one
// game can never act on the next one.
//
// A Session is not safe for concurrent use. It must be driven from the
// goroutine that advances its scheduler.
type Session struct {
	engine  *Engine
	sched   clock.Scheduler
	timings Timings

	generation  uint64
	ticker      clock.Handle
	unflip      clock.Handle
	autoReset   clock.Handle
	autoResetAt time.Duration

	listener func(Event)
}

// NewSession wraps engine. The engine is used as dealt; call Reset for a new deck.
func NewSession(engine *Engine, sched clock.Scheduler, timings Timings) *Session {
	return &Session{
		engine:  engine,
		sched:   sched,
		timings: timings,
	}
}

// OnEvent registers the listener for session events, replacing any previous one.
func (s *Session) OnEvent(fn func(Event)) {
	s.listener = fn
}

// Engine returns the engine for read access.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Generation returns a counter bumped by every Reset.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Reset cancels every pending timer and deals a new game.
func (s *Session) Reset() {
	s.cancelAll()
	s.generation++
	s.engine.Reset()
	s.emit(Event{Kind: EventReset})
}

// FlipCard forwards a flip to the engine and arms the timers its result calls for.
func (s *Session) FlipCard(id int) Result {
	res := s.engine.FlipCard(id)
	if !res.Accepted {
		return res
	}

	if res.Started {
		s.startTicker()
	}

	switch {
	case res.Matched != nil:
		s.emit(Event{Kind: EventPairMatched, Face: *res.Matched, Cards: s.lastPair(id)})
	case res.Mismatch:
		flipped := s.engine.Flipped()
		s.emit(Event{Kind: EventMismatch, Cards: [2]int{flipped[0], flipped[1]}})
		s.scheduleUnflip()
	}

	if res.Completed {
		s.stopTicker()
		s.emit(Event{Kind: EventCompleted})
		s.scheduleAutoReset()
	}

	return res
}

// Tick advances the game clock by one second. The session ticker calls it;
// it is exported for platforms that keep their own clock.
func (s *Session) Tick() bool {
	return s.engine.Tick()
}

// Pending reports which deferred actions are armed.
func (s *Session) Pending() (ticker, unflip, autoReset bool) {
	return pending(s.ticker), pending(s.unflip), pending(s.autoReset)
}

// ResetIn returns how long until the automatic new deal, if one is armed.
func (s *Session) ResetIn() (time.Duration, bool) {
	if !pending(s.autoReset) {
		return 0, false
	}
	return s.autoResetAt - s.sched.Now(), true
}

func (s *Session) startTicker() {
	if pending(s.ticker) {
		return
	}
	gen := s.generation

	var tick func()
	tick = func() {
		if gen != s.generation || !s.engine.Running() {
			return
		}
		s.engine.Tick()
		s.ticker = s.sched.AfterFunc(s.timings.TickInterval, tick)
	}
	s.ticker = s.sched.AfterFunc(s.timings.TickInterval, tick)
}

func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Cancel()
	}
}

func (s *Session) scheduleUnflip() {
	if s.unflip != nil {
		s.unflip.Cancel()
	}
	gen := s.generation
	s.unflip = s.sched.AfterFunc(s.timings.MismatchDelay, func() {
		if gen != s.generation {
			return
		}
		if s.engine.Unflip() {
			s.emit(Event{Kind: EventUnflipped})
		}
	})
}

func (s *Session) scheduleAutoReset() {
	if s.autoReset != nil {
		s.autoReset.Cancel()
	}
	gen := s.generation
	s.autoResetAt = s.sched.Now() + s.timings.ResetDelay
	s.autoReset = s.sched.AfterFunc(s.timings.ResetDelay, func() {
		if gen != s.generation {
			return
		}
		s.emit(Event{Kind: EventAutoReset})
		s.Reset()
	})
}

func (s *Session) cancelAll() {
	for _, h := range []clock.Handle{s.ticker, s.unflip, s.autoReset} {
		if h != nil {
			h.Cancel()
		}
	}
	s.ticker, s.unflip, s.autoReset = nil, nil, nil
}

// lastPair returns the two ids of the pair that id just completed.
func (s *Session) lastPair(id int) [2]int {
	card, _ := s.engine.Card(id)
	for _, other := range s.engine.cards {
		if other.ID != id && other.Face.ID == card.Face.ID {
			return [2]int{other.ID, id}
		}
	}
	return [2]int{id, id}
}

func (s *Session) emit(ev Event) {
	if s.listener != nil {
		s.listener(ev)
	}
}

func pending(h clock.Handle) bool {
	return h != nil && h.Pending()
}
