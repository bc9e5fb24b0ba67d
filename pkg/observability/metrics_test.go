package observability_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnTurn(ctx, &domain.TurnEvent{Turn: domain.Turn{Speaker: domain.SpeakerBot}})
	hooks.OnTurn(ctx, &domain.TurnEvent{Turn: domain.Turn{Speaker: domain.SpeakerBot}})
	hooks.OnTurn(ctx, &domain.TurnEvent{Turn: domain.Turn{Speaker: domain.SpeakerUser}})
	hooks.OnGuard(ctx, &domain.GuardEvent{Guard: domain.GuardRude})
	hooks.OnTransition(ctx, &domain.TransitionEvent{From: domain.StepAwaitTrackingNumber, To: domain.StepAwaitHumanHandoff})
	hooks.OnEscalation(ctx, &domain.EscalationEvent{Reason: "too_many_errors"})
	hooks.OnIdleReminder(ctx, &domain.IdleEvent{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Turns.WithLabelValues("bot")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Turns.WithLabelValues("user")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guards.WithLabelValues("rude")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("await_tracking_number", "await_human_handoff")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Escalations.WithLabelValues("too_many_errors")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdleReminders))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CurrentStep.WithLabelValues("await_human_handoff")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CurrentStep.WithLabelValues("greeting")))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.IdleReminders.Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "trackline_idle_reminders_total 1"))
}

func TestMetrics_Isolated(t *testing.T) {
	a := observability.NewMetrics()
	b := observability.NewMetrics()
	a.IdleReminders.Inc()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.IdleReminders))
}
