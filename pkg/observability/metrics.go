package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trackline"

// Metrics holds the session counters.
type Metrics struct {
	registry *prometheus.Registry

	Turns         *prometheus.CounterVec
	Guards        *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Escalations   *prometheus.CounterVec
	IdleReminders prometheus.Counter
	CurrentStep   *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a fresh registry, alongside the Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Transcript turns appended, by speaker.",
		}, []string{"speaker"}),
		Guards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guards_total",
			Help:      "Utterances rejected by a conversational guard.",
		}, []string{"guard"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Processed turns by source and target step.",
		}, []string{"from", "to"}),
		Escalations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalations_total",
			Help:      "Offers to connect the user with a human agent, by reason.",
		}, []string{"reason"}),
		IdleReminders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idle_reminders_total",
			Help:      "Inactivity reminders sent.",
		}),
		CurrentStep: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_step",
			Help:      "1 for the step the dialogue is waiting in, 0 otherwise.",
		}, []string{"step"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Turns, m.Guards, m.Transitions, m.Escalations, m.IdleReminders, m.CurrentStep,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks returns lifecycle hooks that record every event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(_ context.Context, e *domain.TurnEvent) {
			m.Turns.WithLabelValues(string(e.Turn.Speaker)).Inc()
		},
		OnGuard: func(_ context.Context, e *domain.GuardEvent) {
			m.Guards.WithLabelValues(string(e.Guard)).Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(string(e.From), string(e.To)).Inc()
			m.setStep(e.To)
		},
		OnEscalation: func(_ context.Context, e *domain.EscalationEvent) {
			m.Escalations.WithLabelValues(e.Reason).Inc()
		},
		OnIdleReminder: func(context.Context, *domain.IdleEvent) {
			m.IdleReminders.Inc()
		},
	}
}

func (m *Metrics) setStep(current domain.Step) {
	for _, s := range domain.Steps {
		v := 0.0
		if s == current {
			v = 1
		}
		m.CurrentStep.WithLabelValues(string(s)).Set(v)
	}
}
