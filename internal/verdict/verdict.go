// Package verdict classifies a post count into one of four fixed labels.
package verdict

import "math"

// Verdict is the label and display color for a count.
type Verdict struct {
	Label string
	Color string
}

// Band is a half-open count range [Min, Max) mapped to a verdict.
type Band struct {
	Min     int
	Max     int
	Verdict Verdict
}

var (
	Quiet     = Verdict{Label: "SUSPICIOUSLY QUIET", Color: "#ffcc00"}
	Normal    = Verdict{Label: "NORMAL BEHAVIOR", Color: "#00ff88"}
	Elevated  = Verdict{Label: "ELEVATED POSTING", Color: "#ff9500"}
	Overdrive = Verdict{Label: "MAXIMUM OVERDRIVE", Color: "#ff0044"}
)

// bands are ordered; each Min equals the previous Max.
var bands = []Band{
	{Min: math.MinInt, Max: 50, Verdict: Quiet},
	{Min: 50, Max: 80, Verdict: Normal},
	{Min: 80, Max: 100, Verdict: Elevated},
	{Min: 100, Max: math.MaxInt, Verdict: Overdrive},
}

// Bands returns a copy of the classification table in ascending order.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

// Contains reports whether n falls inside the band. The last band also
// includes math.MaxInt.
func (b Band) Contains(n int) bool {
	if b.Max == math.MaxInt {
		return n >= b.Min
	}
	return n >= b.Min && n < b.Max
}

// Classify maps a count to its verdict.
func Classify(count int) Verdict {
	for _, b := range bands {
		if b.Contains(count) {
			return b.Verdict
		}
	}
	return Overdrive
}
