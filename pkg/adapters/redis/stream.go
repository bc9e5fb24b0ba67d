// Package redis mirrors the transcript into a Redis stream so external renderers
// can follow a conversation with XREAD. It stores no dialogue state.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

const (
	fieldSpeaker = "speaker"
	fieldText    = "text"
	fieldAt      = "at"
)

// Stream implements ports.TranscriptSink and ports.TranscriptReader on top of XADD/XRANGE.
type Stream struct {
	client    *backend.Client
	sessionID string
	prefix    string
	maxLen    int64
	ttl       time.Duration
}

var _ ports.TranscriptStore = (*Stream)(nil)

type Option func(*Stream)

// WithPrefix sets the key prefix for streams.
func WithPrefix(prefix string) Option {
	return func(s *Stream) {
		s.prefix = prefix
	}
}

// WithMaxLen caps the stream length. Zero means unbounded.
func WithMaxLen(n int64) Option {
	return func(s *Stream) {
		s.maxLen = n
	}
}

// WithTTL sets an expiration that is refreshed on every append.
func WithTTL(ttl time.Duration) Option {
	return func(s *Stream) {
		s.ttl = ttl
	}
}

// New creates a stream sink with its own client.
func New(address, password string, db int, sessionID string, opts ...Option) *Stream {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, sessionID, opts...)
}

// NewFromClient creates a stream sink from an existing client.
func NewFromClient(client *backend.Client, sessionID string, opts ...Option) *Stream {
	s := &Stream{
		client:    client,
		sessionID: sessionID,
		prefix:    "trackline:",
		maxLen:    1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the stream key of this session.
func (s *Stream) Key() string {
	return s.prefix + "transcript:" + s.sessionID
}

// Ping checks connectivity.
func (s *Stream) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *Stream) Close() error {
	return s.client.Close()
}

// Append adds the turn to the stream, trimming and refreshing the TTL in one transaction.
func (s *Stream) Append(ctx context.Context, turn domain.Turn) error {
	args := &backend.XAddArgs{
		Stream: s.Key(),
		MaxLen: s.maxLen,
		Values: map[string]any{
			fieldSpeaker: string(turn.Speaker),
			fieldText:    turn.Text,
			fieldAt:      turn.At.UTC().Format(time.RFC3339Nano),
		},
	}

	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.XAdd(ctx, args)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.Key(), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis xadd %s: %w", s.Key(), err)
	}
	return nil
}

// Turns reads the whole stream back, oldest first.
func (s *Stream) Turns(ctx context.Context) ([]domain.Turn, error) {
	msgs, err := s.client.XRange(ctx, s.Key(), "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("redis xrange %s: %w", s.Key(), err)
	}

	turns := make([]domain.Turn, 0, len(msgs))
	for _, msg := range msgs {
		turn, err := decodeTurn(msg.Values)
		if err != nil {
			return nil, fmt.Errorf("decode entry %s: %w", msg.ID, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func decodeTurn(values map[string]any) (domain.Turn, error) {
	speaker, _ := values[fieldSpeaker].(string)
	text, _ := values[fieldText].(string)
	rawAt, _ := values[fieldAt].(string)

	at, err := time.Parse(time.RFC3339Nano, rawAt)
	if err != nil {
		return domain.Turn{}, fmt.Errorf("parse timestamp: %w", err)
	}
	return domain.NewTurn(domain.Speaker(speaker), text, at), nil
}
