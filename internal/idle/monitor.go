// Package idle implements the inactivity reminder armed after every turn.
package idle

import (
	"sync"
	"time"

	"github.com/aretw0/trackline/pkg/scheduler"
)

// Monitor fires a callback once when no Reset happens within the timeout.
// It never re-arms itself.
type Monitor struct {
	mu         sync.Mutex
	sched      scheduler.Scheduler
	timeout    time.Duration
	onIdle     func(generation uint64)
	handle     scheduler.Handle
	armed      bool
	generation uint64
}

// NewMonitor creates a disarmed monitor. onIdle receives the generation that was
// armed so callers can discard a reminder that raced with a newer Reset.
func NewMonitor(sched scheduler.Scheduler, timeout time.Duration, onIdle func(generation uint64)) *Monitor {
	return &Monitor{
		sched:   sched,
		timeout: timeout,
		onIdle:  onIdle,
	}
}

// Reset cancels any pending reminder and schedules a new one.
// It returns the generation of the newly armed reminder.
func (m *Monitor) Reset() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
	m.generation++
	gen := m.generation
	m.handle = m.sched.ScheduleOnce(m.timeout, true, func() {
		m.mu.Lock()
		current := m.armed && m.generation == gen
		if current {
			m.armed = false
		}
		m.mu.Unlock()

		if current {
			m.onIdle(gen)
		}
	})
	m.armed = true
	return gen
}

// Stop cancels the pending reminder, if any, without re-arming.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// Generation returns the generation of the most recent Reset.
func (m *Monitor) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// Armed reports whether a reminder is pending.
func (m *Monitor) Armed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}

func (m *Monitor) stopLocked() {
	if !m.armed {
		return
	}
	m.sched.Cancel(m.handle)
	m.armed = false
}
