// Package timer provides the clock abstraction murmur schedules against,
// plus the live REC clock label.
package timer

import (
	"time"
)

// ClockPrefix labels the live clock display.
const ClockPrefix = "REC"

// Handle is a pending one-shot timer.
type Handle interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was already stopped.
	Stop() bool
}

// Clock supplies the current time and one-shot timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Handle
}

// Real is the wall clock.
type Real struct{}

// Now returns time.Now.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc. f runs on its own goroutine.
func (Real) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

// System is the default wall clock.
var System Clock = Real{}

// FormatClock renders the live clock label as "REC HH:MM:SS" in local time.
func FormatClock(t time.Time) string {
	return ClockPrefix + " " + t.Local().Format("15:04:05")
}

// FormatRecorded renders a creation time for the whisper overlay date line.
func FormatRecorded(t time.Time) string {
	return "RECORDED: " + t.Local().Format("2006-01-02 15:04:05")
}
