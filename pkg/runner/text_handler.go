package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/trackline/pkg/domain"
)

// Prompt is printed before each read.
const Prompt = "> "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer       io.Writer
	Renderer     ContentRenderer
	MaxInputSize int

	// EchoUser also prints user turns, for piped input where nothing is typed on screen.
	EchoUser bool

	lines *lineReader
	mu    sync.Mutex
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerMaxInputSize sets the limit passed to SanitizeInput.
func WithTextHandlerMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = n
	}
}

// WithTextHandlerEcho prints user turns as well as bot turns.
func WithTextHandlerEcho(echo bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.EchoUser = echo
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		lines:  newLineReader(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append prints a turn. Bot text goes through the Renderer when one is set.
func (h *TextHandler) Append(ctx context.Context, turn domain.Turn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch turn.Speaker {
	case domain.SpeakerBot:
		output := turn.Text
		if h.Renderer != nil {
			if rendered, err := h.Renderer(turn.Text); err == nil {
				output = rendered
			}
		}
		_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
		return err
	case domain.SpeakerUser:
		if h.EchoUser {
			_, err := fmt.Fprintf(h.Writer, "%s%s\n", Prompt, turn.Text)
			return err
		}
	}
	return nil
}

// Input reads one line. Lines that fail sanitisation are reported and re-read;
// empty lines are returned as is.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !h.EchoUser {
			h.write(Prompt)
		}

		line, err := h.lines.next(ctx)
		if err != nil {
			return "", err
		}

		clean, err := SanitizeInput(strings.TrimSpace(line), h.MaxInputSize)
		if err != nil {
			h.write(fmt.Sprintf("Error: %v. Please try again.\n", err))
			continue
		}
		return clean, nil
	}
}

// Signal is a no-op: the pause itself is the typing indicator on a terminal.
func (h *TextHandler) Signal(ctx context.Context, name string) error {
	return nil
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	h.write(fmt.Sprintf("\n[System] %s\n", msg))
	return nil
}

func (h *TextHandler) write(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprint(h.Writer, s)
}
