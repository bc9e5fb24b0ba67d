package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
)

// Runner handles the read-submit loop of a conversation using the provided IOHandler.
// This allows for easy testing and integration with different frontends (CLI, NDJSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// TypingDelay is waited between reading an utterance and submitting it.
	TypingDelay time.Duration

	// Linger keeps the runner alive after EOF so delayed follow-ups still reach the handler.
	Linger time.Duration
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the conversation and feeds it until the user types exit or quit,
// the input ends, or ctx is cancelled. Cancellation is not an error.
// The handler must already be wired as (or into) the conversation's sink.
func (r *Runner) Run(ctx context.Context, conv ports.Conversation) error {
	handler := r.resolveHandler()

	if _, err := conv.Start(ctx); err != nil {
		return fmt.Errorf("start error: %w", err)
	}

	for {
		text, err := handler.Input(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				r.Logger.Debug("input closed")
				r.wait(ctx, r.Linger)
				return nil
			case ctx.Err() != nil:
				r.Logger.Debug("runner interrupted", "err", ctx.Err())
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if isExit(text) {
			r.Logger.Debug("exit requested")
			return nil
		}

		if r.TypingDelay > 0 {
			if err := handler.Signal(ctx, SignalTyping); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			if !r.wait(ctx, r.TypingDelay) {
				return nil
			}
		}

		reply, err := conv.Submit(ctx, text)
		if err != nil {
			if errors.Is(err, domain.ErrSessionClosed) {
				return nil
			}
			return fmt.Errorf("submit error: %w", err)
		}
		r.Logger.Debug("turn processed", "step", reply.State.Step, "guard", reply.Guard, "messages", len(reply.Messages))
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

// wait sleeps for d unless ctx ends first. It reports whether the full delay elapsed.
func (r *Runner) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func isExit(text string) bool {
	switch strings.ToLower(text) {
	case "exit", "quit":
		return true
	}
	return false
}
