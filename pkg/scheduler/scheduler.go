// Package scheduler abstracts deferred callbacks so timer semantics are explicit:
// cancelable timers (the idle reminder) and fire-and-forget timers (the handoff
// follow-up) share one contract and can be driven by a manual clock in tests.
package scheduler

import (
	"sync"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	// ScheduleOnce runs fn once after delay. If cancelable is false, Cancel
	// has no effect on the returned handle.
	ScheduleOnce(delay time.Duration, cancelable bool, fn func()) Handle

	// Cancel stops a pending cancelable callback. It reports whether the
	// callback was stopped before running.
	Cancel(h Handle) bool
}

// Real is a Scheduler backed by time.AfterFunc. Callbacks run on their own goroutine.
type Real struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewReal creates a wall-clock scheduler.
func NewReal() *Real {
	return &Real{timers: make(map[Handle]*time.Timer)}
}

func (s *Real) ScheduleOnce(delay time.Duration, cancelable bool, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	if !cancelable {
		time.AfterFunc(delay, fn)
		return h
	}

	s.timers[h] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, h)
		s.mu.Unlock()
		fn()
	})
	return h
}

func (s *Real) Cancel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[h]
	if !ok {
		return false
	}
	delete(s.timers, h)
	return t.Stop()
}

// Pending returns the number of cancelable timers that have not fired yet.
func (s *Real) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
