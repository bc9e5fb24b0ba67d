package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/trackline/pkg/domain"
)

// JSONLine is one line of the NDJSON output stream. Exactly one of the
// groups (turn, event, system, error) is set.
type JSONLine struct {
	Speaker domain.Speaker `json:"speaker,omitempty"`
	Text    string         `json:"text,omitempty"`
	At      *time.Time     `json:"at,omitempty"`

	Event  string `json:"event,omitempty"`
	System string `json:"system,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonInput is the object form of an input line.
type jsonInput struct {
	Text string `json:"text"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	MaxInputSize int

	lines   *lineReader
	mu      sync.Mutex
	encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		lines:   newLineReader(r),
		encoder: json.NewEncoder(w),
	}
}

// Append emits every turn, user turns included, as one JSON line.
func (h *JSONHandler) Append(ctx context.Context, turn domain.Turn) error {
	at := turn.At
	return h.emit(JSONLine{Speaker: turn.Speaker, Text: turn.Text, At: &at})
}

// Input accepts a JSON string ("yes"), an object ({"text":"yes"}) or plain text.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		line, err := h.lines.next(ctx)
		if err != nil {
			return "", err
		}
		text := decodeInput(strings.TrimSpace(line))

		clean, err := SanitizeInput(text, h.MaxInputSize)
		if err != nil {
			if emitErr := h.emit(JSONLine{Error: err.Error()}); emitErr != nil {
				return "", emitErr
			}
			continue
		}
		return clean, nil
	}
}

func decodeInput(line string) string {
	var s string
	if err := json.Unmarshal([]byte(line), &s); err == nil {
		return s
	}
	var obj jsonInput
	if strings.HasPrefix(line, "{") {
		if err := json.Unmarshal([]byte(line), &obj); err == nil {
			return obj.Text
		}
	}
	return line
}

func (h *JSONHandler) Signal(ctx context.Context, name string) error {
	return h.emit(JSONLine{Event: name})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.emit(JSONLine{System: msg})
}

func (h *JSONHandler) emit(line JSONLine) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoder.Encode(line)
}
