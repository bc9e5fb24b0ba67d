package ports

import (
	"context"
	"errors"

	"github.com/aretw0/trackline/pkg/domain"
)

// TranscriptSink accepts turns in the order they happen.
// Implementations must accept synchronously or queue internally; there is no backpressure.
type TranscriptSink interface {
	Append(ctx context.Context, turn domain.Turn) error
}

// TranscriptReader returns the turns accepted so far, oldest first.
type TranscriptReader interface {
	Turns(ctx context.Context) ([]domain.Turn, error)
}

// SinkFunc adapts a function to TranscriptSink.
type SinkFunc func(ctx context.Context, turn domain.Turn) error

func (f SinkFunc) Append(ctx context.Context, turn domain.Turn) error {
	return f(ctx, turn)
}

// Tee fans a turn out to every sink. All sinks are attempted; errors are joined.
func Tee(sinks ...TranscriptSink) TranscriptSink {
	return SinkFunc(func(ctx context.Context, turn domain.Turn) error {
		var errs []error
		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.Append(ctx, turn); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
