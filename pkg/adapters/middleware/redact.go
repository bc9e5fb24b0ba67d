// Package middleware wraps transcript sinks to add behavior.
package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
)

// Mask replaces every redacted match.
const Mask = "***"

// EmailPattern matches email addresses anywhere in a turn.
var EmailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)

// Middleware allows wrapping a TranscriptSink to add behavior.
type Middleware func(ports.TranscriptSink) ports.TranscriptSink

// Chain applies middlewares so that the first one sees the turn first.
func Chain(sink ports.TranscriptSink, mws ...Middleware) ports.TranscriptSink {
	for i := len(mws) - 1; i >= 0; i-- {
		sink = mws[i](sink)
	}
	return sink
}

// NewRedactMiddleware masks matches of the patterns in user turns before they
// reach the next sink. Bot turns are forwarded unchanged.
func NewRedactMiddleware(patterns ...*regexp.Regexp) Middleware {
	return func(next ports.TranscriptSink) ports.TranscriptSink {
		return ports.SinkFunc(func(ctx context.Context, turn domain.Turn) error {
			if turn.Speaker == domain.SpeakerUser {
				// Turn is a value; the caller's copy keeps the original text.
				for _, p := range patterns {
					turn.Text = p.ReplaceAllString(turn.Text, Mask)
				}
			}
			return next.Append(ctx, turn)
		})
	}
}
