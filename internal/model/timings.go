package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidTimings is wrapped by every error returned from Timings.Validate.
var ErrInvalidTimings = errors.New("invalid timings")

// Timings holds the schedule of every session task.
type Timings struct {
	InitialDelay       time.Duration // delay before the count arrives
	ClockInterval      time.Duration
	GlitchMin          time.Duration // glitch delay is drawn from [GlitchMin, GlitchMax)
	GlitchMax          time.Duration
	GlitchDuration     time.Duration
	IncrementInterval  time.Duration
	IncrementThreshold float64 // increment when a uniform [0,1) draw exceeds this
	PulseDuration      time.Duration
	CountMin           int // inclusive
	CountMax           int // inclusive
}

// DefaultTimings returns the stock schedule.
func DefaultTimings() Timings {
	return Timings{
		InitialDelay:       DefaultInitialDelay,
		ClockInterval:      DefaultClockInterval,
		GlitchMin:          DefaultGlitchMin,
		GlitchMax:          DefaultGlitchMax,
		GlitchDuration:     DefaultGlitchDuration,
		IncrementInterval:  DefaultIncrementInterval,
		IncrementThreshold: DefaultIncrementThreshold,
		PulseDuration:      DefaultPulseDuration,
		CountMin:           DefaultCountMin,
		CountMax:           DefaultCountMax,
	}
}

// Validate reports the first malformed field.
func (t Timings) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"initial-delay", t.InitialDelay},
		{"clock-interval", t.ClockInterval},
		{"glitch-min", t.GlitchMin},
		{"glitch-max", t.GlitchMax},
		{"glitch-duration", t.GlitchDuration},
		{"increment-interval", t.IncrementInterval},
		{"pulse-duration", t.PulseDuration},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidTimings, d.name, d.d)
		}
	}
	if t.GlitchMax <= t.GlitchMin {
		return fmt.Errorf("%w: glitch-max (%s) must exceed glitch-min (%s)", ErrInvalidTimings, t.GlitchMax, t.GlitchMin)
	}
	if t.IncrementThreshold < 0 || t.IncrementThreshold > 1 {
		return fmt.Errorf("%w: increment-threshold must be within [0,1], got %v", ErrInvalidTimings, t.IncrementThreshold)
	}
	if t.CountMin < 0 {
		return fmt.Errorf("%w: count-min must be non-negative, got %d", ErrInvalidTimings, t.CountMin)
	}
	if t.CountMax < t.CountMin {
		return fmt.Errorf("%w: count-max (%d) is below count-min (%d)", ErrInvalidTimings, t.CountMax, t.CountMin)
	}
	// The initial draw takes CountMax-CountMin+1 values, which must fit an int.
	if t.CountMax-t.CountMin >= math.MaxInt {
		return fmt.Errorf("%w: count range [%d, %d] is too wide", ErrInvalidTimings, t.CountMin, t.CountMax)
	}
	return nil
}
