package core

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped before it fires.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// Clock provides the current time and one-shot timers.
// Tests replace it with a fake via SetClock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var (
	clockMu sync.RWMutex
	clock   Clock = systemClock{}
)

// SetClock installs c as the framework clock and returns the previous one.
// Passing nil restores the system clock.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the framework clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}

// AfterFunc schedules f on the framework clock. f runs on the clock's
// goroutine; hop to the UI thread with platform.Dispatch before touching state.
func AfterFunc(d time.Duration, f func()) Timer {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.AfterFunc(d, f)
}
