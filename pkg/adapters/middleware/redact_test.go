package middleware_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/aretw0/trackline/pkg/adapters/memory"
	"github.com/aretw0/trackline/pkg/adapters/middleware"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactMiddleware(t *testing.T) {
	store := memory.NewTranscript()
	sink := middleware.NewRedactMiddleware(middleware.EmailPattern)(store)
	ctx := context.Background()
	now := time.Now()

	user := domain.NewTurn(domain.SpeakerUser, "it's jane.doe@example.com thanks", now)
	require.NoError(t, sink.Append(ctx, user))
	require.NoError(t, sink.Append(ctx, domain.NewTurn(domain.SpeakerBot, "write to help@example.com", now)))

	turns, err := store.Turns(ctx)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "it's *** thanks", turns[0].Text)
	assert.Equal(t, "write to help@example.com", turns[1].Text, "bot turns are not redacted")
	assert.Equal(t, "it's jane.doe@example.com thanks", user.Text)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.TranscriptSink) ports.TranscriptSink {
			return ports.SinkFunc(func(ctx context.Context, turn domain.Turn) error {
				order = append(order, name)
				return next.Append(ctx, turn)
			})
		}
	}

	store := memory.NewTranscript()
	sink := middleware.Chain(store, tag("first"), tag("second"), middleware.NewRedactMiddleware(regexp.MustCompile(`[0-9]{9}`)))
	require.NoError(t, sink.Append(context.Background(), domain.NewTurn(domain.SpeakerUser, "AB123456789CD", time.Now())))

	assert.Equal(t, []string{"first", "second"}, order)
	turns, _ := store.Turns(context.Background())
	assert.Equal(t, "AB***CD", turns[0].Text)
}
