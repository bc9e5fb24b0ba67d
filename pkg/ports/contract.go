package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TranscriptStore is a sink that can read back what it accepted.
type TranscriptStore interface {
	TranscriptSink
	TranscriptReader
}

// RunTranscriptSinkContract runs a suite of tests to verify that a sink
// implementation keeps turns immutable and in order. The store must be empty.
func RunTranscriptSinkContract(t *testing.T, store TranscriptStore) {
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		turns, err := store.Turns(ctx)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})

	t.Run("Append Preserves Order", func(t *testing.T) {
		want := []domain.Turn{
			domain.NewTurn(domain.SpeakerBot, "Do you have a tracking number? (yes/no)", base),
			domain.NewTurn(domain.SpeakerUser, "yes", base.Add(time.Second)),
			domain.NewTurn(domain.SpeakerBot, "📦 Good news!", base.Add(2*time.Second)),
		}
		for i := 0; i < 20; i++ {
			want = append(want, domain.NewTurn(domain.SpeakerUser, fmt.Sprintf("turn %d", i), base.Add(time.Duration(i+3)*time.Second)))
		}

		for _, turn := range want {
			require.NoError(t, store.Append(ctx, turn))
		}

		got, err := store.Turns(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Speaker, got[i].Speaker, "turn %d", i)
			assert.Equal(t, want[i].Text, got[i].Text, "turn %d", i)
			assert.True(t, want[i].At.Equal(got[i].At), "turn %d timestamp", i)
		}
	})

	t.Run("Read Returns Copy", func(t *testing.T) {
		got, err := store.Turns(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		got[0].Text = "mutated"

		again, err := store.Turns(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again[0].Text)
	})
}
