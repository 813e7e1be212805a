package sway

import (
	"math"
	"time"
)

// Clock provides wall-clock time for the global activity clock. The default
// implementation uses system time. Tests can inject a fake clock via SetClock
// to control activity timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the global clock. Returns the previous clock so callers
// can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// GlobalTime returns the current global time: the clock's Unix time expressed
// as a duration since the epoch. Every start time, stop time, and step time in
// this package is measured on this clock.
func GlobalTime() time.Duration {
	return time.Duration(clock.Now().UnixNano())
}

const (
	// Forever is the duration of an activity that never stops on its own.
	Forever time.Duration = -1

	// Never is returned by ProcessStep once an activity has finished.
	Never time.Duration = -1

	// LoopForever makes an interpolating activity repeat until terminated.
	LoopForever = math.MaxInt

	// DefaultStepRate is the minimum interval between steps of a new activity.
	DefaultStepRate = 20 * time.Millisecond

	// DefaultFrameDelay is the interval of the scheduler's host timer.
	DefaultFrameDelay = 10 * time.Millisecond

	// maxTime is the latest representable global time.
	maxTime = time.Duration(math.MaxInt64)
)
