package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
)

// FakeClock provides controllable time and timers for deterministic tests.
// Timers scheduled with AfterFunc fire synchronously from Advance or Set, on
// the calling goroutine, in deadline order.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	seq    int
}

var _ core.Clock = (*FakeClock)(nil)

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) core.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	timer := &fakeTimer{clock: c, deadline: c.now.Add(d), fn: f, seq: c.seq}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves the clock forward by d, firing every timer that falls due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()
	c.Set(target)
}

// Set sets the clock to an exact time, firing every timer that falls due.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	var due []*fakeTimer
	kept := c.timers[:0]
	for _, timer := range c.timers {
		if !timer.deadline.After(t) {
			due = append(due, timer)
		} else {
			kept = append(kept, timer)
		}
	}
	c.timers = kept
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, timer := range due {
		timer.fn()
	}
}

// PendingTimers returns the number of timers that have not fired or been stopped.
func (c *FakeClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	fn       func()
	seq      int
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, timer := range c.timers {
		if timer == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
