package timer

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)

// =============================================================================
// Real clock Tests
// =============================================================================

func TestRealAfterFunc(t *testing.T) {
	done := make(chan struct{})
	h := System.AfterFunc(10*time.Millisecond, func() { close(done) })
	require.NotNil(t, h)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	assert.False(t, h.Stop())
}

func TestRealStopBeforeFire(t *testing.T) {
	var fired atomic.Bool
	h := Real{}.AfterFunc(time.Hour, func() { fired.Store(true) })
	assert.True(t, h.Stop())
	assert.False(t, fired.Load())
}

// =============================================================================
// Manual clock Tests
// =============================================================================

func TestManualAdvanceFiresDueTimers(t *testing.T) {
	m := NewManual(epoch)
	var order []string

	m.AfterFunc(3*time.Second, func() { order = append(order, "b") })
	m.AfterFunc(time.Second, func() { order = append(order, "a") })
	m.AfterFunc(10*time.Second, func() { order = append(order, "c") })

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, epoch.Add(5*time.Second), m.Now())
	assert.Len(t, m.Pending(), 1)

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Empty(t, m.Pending())
}

func TestManualNowDuringCallback(t *testing.T) {
	m := NewManual(epoch)
	var seen time.Time
	m.AfterFunc(2*time.Second, func() { seen = m.Now() })

	m.Advance(time.Minute)
	assert.Equal(t, epoch.Add(2*time.Second), seen)
}

func TestManualRescheduleInsideCallback(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	var tick func()
	tick = func() {
		count++
		m.AfterFunc(time.Second, tick)
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, count)
	assert.Len(t, m.Pending(), 1)
}

func TestManualStop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	h := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, h.Stop())
	assert.False(t, h.Stop())

	m.Advance(time.Hour)
	assert.False(t, fired)

	mt := h.(*ManualTimer)
	assert.True(t, mt.Stopped())
	assert.False(t, mt.Fired())
	assert.Equal(t, time.Second, mt.Delay())
}

func TestManualFireAfterStop(t *testing.T) {
	m := NewManual(epoch)
	fired := 0
	h := m.AfterFunc(time.Second, func() { fired++ })
	h.Stop()

	h.(*ManualTimer).Fire()
	assert.Equal(t, 1, fired)
	assert.True(t, h.(*ManualTimer).Fired())
	assert.False(t, h.Stop())
	assert.Len(t, m.Timers(), 1)
}

// =============================================================================
// Formatting Tests
// =============================================================================

func TestFormatClock(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 9, 0, time.Local)
	assert.Equal(t, "REC 07:05:09", FormatClock(ts))
}

func TestFormatRecorded(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 9, 0, time.Local)
	out := FormatRecorded(ts)
	assert.True(t, strings.HasPrefix(out, "RECORDED: "))
	assert.Contains(t, out, "2024-03-09 07:05:09")
}
