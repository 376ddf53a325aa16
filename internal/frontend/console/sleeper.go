package console

import "time"

// Sleeper blocks between animation frames.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

var (
	// SystemSleeper pauses on the wall clock.
	SystemSleeper Sleeper = SleeperFunc(time.Sleep)
	// NopSleeper returns immediately. Tests use it to play animations with
	// zero elapsed time.
	NopSleeper Sleeper = SleeperFunc(func(time.Duration) {})
)
