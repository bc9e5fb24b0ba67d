package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_RunsInDueOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.ScheduleOnce(30*time.Second, true, func() { order = append(order, "idle") })
	m.ScheduleOnce(2*time.Second, false, func() { order = append(order, "followup") })

	m.Advance(time.Second)
	assert.Empty(t, order)

	m.Advance(time.Minute)
	assert.Equal(t, []string{"followup", "idle"}, order)
	assert.Equal(t, 61*time.Second, m.Now())
	assert.Zero(t, m.Pending())
}

func TestManual_Cancel(t *testing.T) {
	m := NewManual()
	fired := 0

	h := m.ScheduleOnce(time.Second, true, func() { fired++ })
	assert.True(t, m.Cancel(h))
	assert.False(t, m.Cancel(h), "second cancel is a no-op")

	forget := m.ScheduleOnce(time.Second, false, func() { fired++ })
	assert.False(t, m.Cancel(forget), "fire-and-forget timers ignore Cancel")

	m.Advance(2 * time.Second)
	assert.Equal(t, 1, fired)
}

func TestManual_NestedSchedule(t *testing.T) {
	m := NewManual()
	var at []time.Duration

	m.ScheduleOnce(time.Second, false, func() {
		at = append(at, m.Now())
		m.ScheduleOnce(time.Second, false, func() { at = append(at, m.Now()) })
	})

	m.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
}

func TestReal_CancelAndFire(t *testing.T) {
	s := NewReal()
	var fired atomic.Int32

	h := s.ScheduleOnce(time.Hour, true, func() { fired.Add(1) })
	assert.Equal(t, 1, s.Pending())
	assert.True(t, s.Cancel(h))
	assert.Zero(t, s.Pending())

	done := make(chan struct{})
	s.ScheduleOnce(time.Millisecond, true, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "timer did not fire")
	}
	assert.Zero(t, fired.Load())
}
