// Package session runs the timer-driven state of one widget session: the
// delayed initial count, the clock, the glitch scheduler and the count
// incrementer.
package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tinytelemetry/xpostwatch/internal/model"
	"go.uber.org/zap"
)

// Rand is the randomness a session draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Options configures a Session. Zero fields take defaults.
type Options struct {
	Timings model.Timings
	Clock   Clock
	Rand    Rand
	Logger  *zap.Logger
	ID      string
}

// Session owns one DisplayState and the timers that mutate it. Every
// callback runs under mu, so tasks mutate state one at a time.
type Session struct {
	mu      sync.Mutex
	id      string
	timings model.Timings
	clock   Clock
	rng     Rand
	log     *zap.Logger

	state   model.DisplayState
	started bool
	closed  bool

	// One scope per task. resets holds the short glitch-off timers, which
	// only teardown may cancel so a pulse can never stick.
	initial   *scope
	ticker    *scope
	glitches  *scope
	increment *scope
	resets    *scope

	subscribers []chan model.DisplayState
}

// New creates a session in the loading state. Nothing is scheduled until Start.
func New(opts Options) *Session {
	if opts.Timings == (model.Timings{}) {
		opts.Timings = model.DefaultTimings()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}

	return &Session{
		id:      opts.ID,
		timings: opts.Timings,
		clock:   opts.Clock,
		rng:     opts.Rand,
		log:     opts.Logger.With(zap.String("session", opts.ID)),
		state: model.DisplayState{
			IsLoading:   true,
			CurrentTime: opts.Clock.Now(),
		},
		initial:   newScope(),
		ticker:    newScope(),
		glitches:  newScope(),
		increment: newScope(),
		resets:    newScope(),
	}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// Start arms every task. Calling it again, or after Stop, does nothing.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.closed {
		return
	}
	s.started = true
	s.state.CurrentTime = s.clock.Now()

	s.armInitialCount()
	s.armClock()
	s.armGlitch()
	s.rearmIncrement()

	s.log.Info("session started", zap.Duration("initial_delay", s.timings.InitialDelay))
	s.publishLocked()
}

// Stop cancels every pending timer and closes all subscriptions. Once Stop
// returns the state is frozen.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	for _, sc := range s.scopes() {
		sc.cancel()
	}
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil

	s.log.Info("session stopped", zap.Int("count", s.state.Count), zap.Bool("loading", s.state.IsLoading))
}

// State returns a copy of the current display state.
func (s *Session) State() model.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that receives the state after every change.
// The channel holds only the latest value and is closed by Stop.
func (s *Session) Subscribe() <-chan model.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan model.DisplayState, 1)
	if s.closed {
		close(ch)
		return ch
	}
	ch <- s.state
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// pendingTimers counts timers still owned by the session's scopes.
func (s *Session) pendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sc := range s.scopes() {
		n += sc.pending()
	}
	return n
}

func (s *Session) scopes() []*scope {
	return []*scope{s.initial, s.ticker, s.glitches, s.increment, s.resets}
}

// after schedules fn on sc's behalf. The callback re-checks, under mu, that
// the session is open and that sc still owns the timer, so a timer that was
// already dispatched when its scope got cancelled never mutates state.
// Callers hold mu.
func (s *Session) after(sc *scope, d time.Duration, fn func()) {
	var t Timer
	t = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || !sc.release(t) {
			return
		}
		fn()
		s.publishLocked()
	})
	sc.track(t)
}

func (s *Session) publishLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- s.state:
		default:
			// Drop the stale value; only the session sends, so the retry lands.
			select {
			case <-ch:
			default:
			}
			ch <- s.state
		}
	}
}
