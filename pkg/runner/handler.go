package runner

import (
	"context"

	"github.com/aretw0/trackline/pkg/ports"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Append presents a transcript turn. It may be called from timer goroutines
	// while Input is blocked.
	ports.TranscriptSink

	// Input reads the next utterance. It returns io.EOF when the stream ends.
	Input(ctx context.Context) (string, error)

	// Signal notifies the handler of a transient event (e.g. "typing").
	Signal(ctx context.Context, name string) error

	// SystemOutput presents a meta-message that is not part of the transcript.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms bot text before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the runner to a library.
type ContentRenderer func(string) (string, error)

// SignalTyping is sent while the typing delay elapses.
const SignalTyping = "typing"
