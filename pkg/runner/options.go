package runner

import (
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithTypingDelay sets the pause before each submission.
func WithTypingDelay(d time.Duration) Option {
	return func(r *Runner) {
		r.TypingDelay = d
	}
}

// WithLinger sets how long to keep delivering timer messages after the input ends.
func WithLinger(d time.Duration) Option {
	return func(r *Runner) {
		r.Linger = d
	}
}
