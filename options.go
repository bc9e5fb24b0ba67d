package trackline

import (
	"log/slog"
	"time"

	"github.com/aretw0/trackline/internal/runtime"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/scheduler"
)

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithSessionID sets the identifier used in logs and events (default: random UUID).
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithScheduler injects the timer implementation (default: wall clock).
func WithScheduler(sched scheduler.Scheduler) Option {
	return func(s *Session) {
		s.sched = sched
	}
}

// WithLogger sets a custom structured logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls merge.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithClock overrides the timestamp source for turns and events.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIdleTimeout sets the inactivity window before the reminder fires.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithHandoffFollowup sets the delay of the message sent after a handoff is accepted.
func WithHandoffFollowup(d time.Duration) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, runtime.WithHandoffFollowup(d))
	}
}

// WithMaxTrackingErrors sets how many invalid tracking numbers trigger escalation.
func WithMaxTrackingErrors(n int) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, runtime.WithMaxTrackingErrors(n))
	}
}
