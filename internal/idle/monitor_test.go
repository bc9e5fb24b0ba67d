package idle

import (
	"testing"
	"time"

	"github.com/aretw0/trackline/pkg/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestMonitor_FiresOnceAfterTimeout(t *testing.T) {
	clock := scheduler.NewManual()
	var fired []uint64
	m := NewMonitor(clock, 30*time.Second, func(gen uint64) { fired = append(fired, gen) })

	gen := m.Reset()
	clock.Advance(29 * time.Second)
	assert.Empty(t, fired)
	assert.True(t, m.Armed())

	clock.Advance(time.Second)
	assert.Equal(t, []uint64{gen}, fired)
	assert.False(t, m.Armed())

	clock.Advance(time.Hour)
	assert.Len(t, fired, 1, "monitor must not re-arm itself")
}

func TestMonitor_ResetCancelsPending(t *testing.T) {
	clock := scheduler.NewManual()
	fired := 0
	m := NewMonitor(clock, 30*time.Second, func(uint64) { fired++ })

	m.Reset()
	clock.Advance(29 * time.Second)
	m.Reset()
	clock.Advance(29 * time.Second)
	assert.Zero(t, fired, "reset at window-1 must cancel the reminder")
	assert.Equal(t, 1, clock.Pending(), "only one reminder may be pending")

	clock.Advance(time.Second)
	assert.Equal(t, 1, fired)
}

func TestMonitor_Stop(t *testing.T) {
	clock := scheduler.NewManual()
	fired := 0
	m := NewMonitor(clock, time.Second, func(uint64) { fired++ })

	m.Reset()
	m.Stop()
	clock.Advance(time.Minute)
	assert.Zero(t, fired)
	assert.Zero(t, clock.Pending())
}
