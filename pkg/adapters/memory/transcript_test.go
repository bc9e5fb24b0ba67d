package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/trackline/pkg/adapters/memory"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_Contract(t *testing.T) {
	ports.RunTranscriptSinkContract(t, memory.NewTranscript())
}

func TestTranscript_Subscribe(t *testing.T) {
	transcript := memory.NewTranscript()
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, transcript.Append(ctx, domain.Turn{Speaker: domain.SpeakerBot, Text: "before"}))
	turns := transcript.Subscribe(ctx)
	require.NoError(t, transcript.Append(ctx, domain.Turn{Speaker: domain.SpeakerBot, Text: "after"}))

	select {
	case turn := <-turns:
		assert.Equal(t, "after", turn.Text, "subscribers only see new turns")
	case <-time.After(time.Second):
		require.FailNow(t, "no turn delivered")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-turns
		return !open
	}, time.Second, 10*time.Millisecond)
}

func TestTranscript_SlowSubscriberDoesNotBlock(t *testing.T) {
	transcript := memory.NewTranscript()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = transcript.Subscribe(ctx)
	for i := 0; i < memory.SubscriberBuffer+5; i++ {
		require.NoError(t, transcript.Append(ctx, domain.Turn{Speaker: domain.SpeakerUser, Text: "spam"}))
	}

	assert.Equal(t, memory.SubscriberBuffer+5, transcript.Len())
	assert.Equal(t, 5, transcript.Dropped())
}
