package timer

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock that only moves when told to. Timers fire synchronously
// inside Advance, in deadline order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	timers []*ManualTimer
}

// ManualTimer is a timer created by a Manual clock.
type ManualTimer struct {
	clock   *Manual
	when    time.Time
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &ManualTimer{clock: m, when: m.now.Add(d), delay: d, fn: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers created while firing are honored if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.when
		next.fired = true
		m.mu.Unlock()

		next.fn()
	}
}

func (m *Manual) nextDueLocked(target time.Time) *ManualTimer {
	var due []*ManualTimer
	for _, t := range m.timers {
		if !t.stopped && !t.fired && !t.when.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].when.Before(due[j].when) })
	return due[0]
}

// Pending returns timers that have neither fired nor been stopped.
func (m *Manual) Pending() []*ManualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ManualTimer
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// Timers returns every timer ever created, oldest first.
func (m *Manual) Timers() []*ManualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*ManualTimer(nil), m.timers...)
}

// Stop implements Handle.
func (t *ManualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the callback now, even if the timer was stopped. It simulates a
// timer whose callback was already on its way when Stop was called.
func (t *ManualTimer) Fire() {
	t.clock.mu.Lock()
	t.fired = true
	t.clock.mu.Unlock()
	t.fn()
}

// Delay returns the duration the timer was armed with.
func (t *ManualTimer) Delay() time.Duration {
	return t.delay
}

// Stopped reports whether Stop succeeded on this timer.
func (t *ManualTimer) Stopped() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stopped
}

// Fired reports whether the callback has run.
func (t *ManualTimer) Fired() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.fired
}
