package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic Scheduler whose clock only moves when Advance is called.
// Due callbacks run synchronously on the caller's goroutine, in due-time order
// (ties in scheduling order).
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	next    Handle
	pending []*manualTimer
}

type manualTimer struct {
	handle     Handle
	due        time.Duration
	cancelable bool
	fn         func()
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) ScheduleOnce(delay time.Duration, cancelable bool, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	m.pending = append(m.pending, &manualTimer{
		handle:     m.next,
		due:        m.now + delay,
		cancelable: cancelable,
		fn:         fn,
	})
	return m.next
}

func (m *Manual) Cancel(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.pending {
		if t.handle != h {
			continue
		}
		if !t.cancelable {
			return false
		}
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		return true
	}
	return false
}

// Advance moves the clock forward by d, running every callback that becomes due.
// Callbacks may schedule further callbacks; those run too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.popDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.due
		m.mu.Unlock()

		t.fn()
	}
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Manual) popDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		return m.pending[i].due < m.pending[j].due
	})
	first := m.pending[0]
	if first.due > target {
		return nil
	}
	m.pending = m.pending[1:]
	return first
}
