// Package http exposes a single conversation over HTTP: turns are posted as JSON,
// the transcript can be read back or followed as Server-Sent Events.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/trackline"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/aretw0/trackline/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodySize bounds request bodies before the input sanitiser sees them.
const maxBodySize = 1 << 20

// TranscriptFeed is the transcript as the server needs it: readable and followable.
type TranscriptFeed interface {
	ports.TranscriptReader
	Subscribe(ctx context.Context) <-chan domain.Turn
}

// TurnRequest is the body of POST /turns.
type TurnRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves one conversation.
type Server struct {
	Conversation ports.Conversation
	Transcript   TranscriptFeed
	Metrics      http.Handler
	Logger       *slog.Logger
	MaxInputSize int
}

// Option configures the Server.
type Option func(*Server)

// WithTranscript enables GET /transcript and GET /events.
func WithTranscript(feed TranscriptFeed) Option {
	return func(s *Server) {
		s.Transcript = feed
	}
}

// WithMetrics mounts a handler (usually promhttp) on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMaxInputSize sets the limit passed to runner.SanitizeInput.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.MaxInputSize = n
	}
}

// NewHandler creates the HTTP handler for a conversation.
func NewHandler(conv ports.Conversation, opts ...Option) http.Handler {
	s := &Server{
		Conversation: conv,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/state", s.GetState)
	r.Post("/turns", s.PostTurn)
	if s.Transcript != nil {
		r.Get("/transcript", s.GetTranscript)
		r.Get("/events", s.SubscribeEvents)
	}
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": trackline.Version,
	})
}

// GetState handles GET /state.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Conversation.State())
}

// PostTurn handles POST /turns. An empty text is a valid (if unhelpful) utterance.
func (s *Server) PostTurn(w http.ResponseWriter, r *http.Request) {
	var body TurnRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		s.Logger.Warn("PostTurn: invalid request body", "err", err)
		return
	}

	text, err := runner.SanitizeInput(body.Text, s.MaxInputSize)
	if err != nil {
		s.writeError(w, statusFor(err), err.Error())
		s.Logger.Warn("PostTurn: input rejected", "err", err, "size", len(body.Text))
		return
	}

	reply, err := s.Conversation.Submit(r.Context(), text)
	if err != nil {
		s.writeError(w, statusFor(err), fmt.Sprintf("submit: %v", err))
		s.Logger.Error("PostTurn: submit failed", "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, reply)
}

// GetTranscript handles GET /transcript.
func (s *Server) GetTranscript(w http.ResponseWriter, r *http.Request) {
	turns, err := s.Transcript.Turns(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("transcript: %v", err))
		s.Logger.Error("GetTranscript failed", "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, turns)
}

// SubscribeEvents handles GET /events (SSE). Every turn appended after the
// client connects is sent as a "turn" event.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "streaming not supported")
		s.Logger.Error("SubscribeEvents: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	turns := s.Transcript.Subscribe(r.Context())
	s.Logger.Info("SSE: client subscribed")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE: client disconnected")
			return
		case turn, ok := <-turns:
			if !ok {
				return
			}
			data, err := json.Marshal(turn)
			if err != nil {
				s.Logger.Error("SSE: encode failed", "err", err)
				continue
			}
			fmt.Fprintf(w, "event: turn\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}
