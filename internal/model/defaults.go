package model

import "time"

// Shared defaults used by the session scheduler and the CLI.
const (
	DefaultInitialDelay       = 2 * time.Second
	DefaultClockInterval      = time.Second
	DefaultGlitchMin          = 3 * time.Second
	DefaultGlitchMax          = 8 * time.Second
	DefaultGlitchDuration     = 150 * time.Millisecond
	DefaultIncrementInterval  = 8 * time.Second
	DefaultIncrementThreshold = 0.7
	DefaultPulseDuration      = 100 * time.Millisecond
	DefaultCountMin           = 47
	DefaultCountMax           = 126

	DefaultSubject = "ELON MUSK"
	DefaultSkin    = "terminal"
)

// DefaultTickerMessages scroll across the top of the screen.
var DefaultTickerMessages = []string{
	"MONITORING X HEADQUARTERS",
	"REAL-TIME POST SURVEILLANCE ACTIVE",
	"DISCLAIMER: NUMBERS ARE SATIRICAL",
	"TOUCH GRASS RECOMMENDED",
}
