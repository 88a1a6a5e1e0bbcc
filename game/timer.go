package game

import (
	"math"
	"time"
)

// Timer is a countdown that reports when it finishes.
// A repeating timer wraps around and keeps counting; a one-shot timer stays finished until Reset.
type Timer struct {
	duration  time.Duration
	elapsed   time.Duration
	repeating bool

	// finished is true while a one-shot timer has run out, or on the tick a repeating timer wrapped
	finished bool

	// timesFinished is how many times the timer completed during the last Tick
	timesFinished int
}

// NewTimer creates a timer with the given period.
// A non-positive duration is treated as one nanosecond so repeating timers stay well-defined.
func NewTimer(d time.Duration, repeating bool) *Timer {
	if d <= 0 {
		d = 1
	}
	return &Timer{
		duration:  d,
		repeating: repeating,
	}
}

// Tick advances the timer by d and returns it for chaining
func (t *Timer) Tick(d time.Duration) *Timer {
	if d < 0 {
		d = 0
	}

	if t.finished && !t.repeating {
		// A spent one-shot timer no longer produces edges
		t.timesFinished = 0
		return t
	}

	// Whole periods are counted apart from the remainder so elapsed+d cannot overflow
	periods := d / t.duration
	t.elapsed += d % t.duration
	periods += t.elapsed / t.duration
	t.elapsed %= t.duration
	t.finished = periods > 0

	if !t.finished {
		t.timesFinished = 0
		return t
	}

	if t.repeating {
		t.timesFinished = int(periods)
	} else {
		t.timesFinished = 1
		t.elapsed = t.duration
	}
	return t
}

// JustFinished reports whether the last Tick completed the timer at least once
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished returns how many periods the last Tick completed
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Finished reports whether the timer is in the finished state
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer to zero elapsed time
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Elapsed returns time accumulated in the current period
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the timer period
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Repeating reports whether the timer restarts after finishing
func (t *Timer) Repeating() bool {
	return t.repeating
}

// secondsToDuration converts a frame delta in seconds to a Duration,
// saturating at the largest representable Duration
func secondsToDuration(dt float64) time.Duration {
	ns := dt * float64(time.Second)
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}
