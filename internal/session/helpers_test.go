package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tinytelemetry/xpostwatch/internal/model"
)

var epoch = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

// fixedRand returns the same float for every draw and records IntN calls.
type fixedRand struct {
	f        float64
	intCalls int
}

func (r *fixedRand) IntN(n int) int {
	r.intCalls++
	return n - 1
}

func (r *fixedRand) Float64() float64 { return r.f }

func newTestSession(clock Clock, rng Rand) *Session {
	return New(Options{Clock: clock, Rand: rng, ID: "test"})
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// capturingClock hands out timers whose Stop always loses the race, as if
// each callback had already been dispatched.
type capturingClock struct {
	mu  sync.Mutex
	fns []func()
}

type lateTimer struct{ n int }

func (*lateTimer) Stop() bool { return false }

func (c *capturingClock) AfterFunc(_ time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, f)
	return &lateTimer{n: len(c.fns)}
}

func (c *capturingClock) Now() time.Time { return epoch }

func (c *capturingClock) captured() []func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]func(){}, c.fns...)
}

func quickTimings() model.Timings {
	return model.Timings{
		InitialDelay:       5 * time.Millisecond,
		ClockInterval:      2 * time.Millisecond,
		GlitchMin:          time.Millisecond,
		GlitchMax:          3 * time.Millisecond,
		GlitchDuration:     time.Millisecond,
		IncrementInterval:  3 * time.Millisecond,
		IncrementThreshold: 0,
		PulseDuration:      time.Millisecond,
		CountMin:           model.DefaultCountMin,
		CountMax:           model.DefaultCountMax,
	}
}
