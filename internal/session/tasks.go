package session

import (
	"time"

	"go.uber.org/zap"
)

// armInitialCount schedules the one-shot draw of the starting count.
func (s *Session) armInitialCount() {
	s.after(s.initial, s.timings.InitialDelay, func() {
		n := s.timings.CountMin + s.rng.IntN(s.timings.CountMax-s.timings.CountMin+1)
		s.state.Count = n
		s.setLoadingLocked(false)
		s.log.Info("count initialized", zap.Int("count", n))
	})
}

func (s *Session) armClock() {
	s.after(s.ticker, s.timings.ClockInterval, func() {
		s.state.CurrentTime = s.clock.Now()
		s.armClock()
	})
}

// armGlitch schedules the next glitch after a fresh delay in
// [GlitchMin, GlitchMax).
func (s *Session) armGlitch() {
	window := s.timings.GlitchMax - s.timings.GlitchMin
	delay := s.timings.GlitchMin + time.Duration(s.rng.Float64()*float64(window))
	s.after(s.glitches, delay, func() {
		s.log.Debug("glitch", zap.Duration("hold", s.timings.GlitchDuration))
		s.pulseLocked(s.timings.GlitchDuration)
		s.armGlitch()
	})
}

func (s *Session) armIncrement() {
	s.after(s.increment, s.timings.IncrementInterval, func() {
		if s.rng.Float64() > s.timings.IncrementThreshold {
			s.state.Count++
			s.log.Debug("count incremented", zap.Int("count", s.state.Count))
			s.pulseLocked(s.timings.PulseDuration)
		}
		s.armIncrement()
	})
}

// rearmIncrement restarts the incrementer against the current loading flag:
// cancelled always, armed only once loading has finished.
func (s *Session) rearmIncrement() {
	s.increment.cancel()
	if !s.state.IsLoading {
		s.armIncrement()
	}
}

// setLoadingLocked is the only writer of IsLoading. A change restarts the
// incrementer, which depends on it.
func (s *Session) setLoadingLocked(loading bool) {
	if s.state.IsLoading == loading {
		return
	}
	s.state.IsLoading = loading
	s.rearmIncrement()
}

// pulseLocked raises the glitch flag and arms its reset.
func (s *Session) pulseLocked(hold time.Duration) {
	s.state.GlitchActive = true
	s.after(s.resets, hold, func() {
		s.state.GlitchActive = false
	})
}
