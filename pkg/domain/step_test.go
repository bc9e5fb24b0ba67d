package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_JSON(t *testing.T) {
	data, err := json.Marshal(State{Step: StepAwaitTrackingNumber, ErrorCount: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":"await_tracking_number","error_count":2}`, string(data))

	var s State
	err = json.Unmarshal([]byte(`{"step":"teleport"}`), &s)
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestStep_Terminal(t *testing.T) {
	for _, step := range Steps {
		assert.True(t, step.Valid(), step)
		assert.Equal(t, step == StepDone, step.IsTerminal(), step)
	}
	assert.False(t, Step("").Valid())
	assert.False(t, NewState().Terminated())
}

func TestGraph_OnlyKnownSteps(t *testing.T) {
	for _, edge := range Graph() {
		assert.True(t, edge.From.Valid(), "from %q", edge.From)
		assert.True(t, edge.To.Valid(), "to %q", edge.To)
		assert.False(t, edge.From.IsTerminal(), "terminal step %q has an outgoing edge", edge.From)
	}
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{OnGuard: func(context.Context, *GuardEvent) { calls = append(calls, "a") }}
	b := LifecycleHooks{
		OnGuard: func(context.Context, *GuardEvent) { calls = append(calls, "b") },
		OnTurn:  func(context.Context, *TurnEvent) { calls = append(calls, "turn") },
	}

	merged := a.Merge(b)
	merged.OnGuard(context.Background(), &GuardEvent{})
	merged.OnTurn(context.Background(), &TurnEvent{})

	assert.Equal(t, []string{"a", "b", "turn"}, calls)
	assert.Nil(t, merged.OnIdleReminder)
}
