package model

import "time"

// DisplayState is everything the widget shows that changes over a session.
// A session owns exactly one; readers get copies.
type DisplayState struct {
	Count        int
	IsLoading    bool
	CurrentTime  time.Time
	GlitchActive bool
}

// Loaded reports whether the initial count has arrived.
func (s DisplayState) Loaded() bool {
	return !s.IsLoading
}
