package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTurn         EventType = "turn"
	EventGuard        EventType = "guard"
	EventTransition   EventType = "transition"
	EventEscalation   EventType = "escalation"
	EventIdleReminder EventType = "idle_reminder"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// TurnEvent is emitted for every turn appended to the transcript.
type TurnEvent struct {
	EventBase
	Turn Turn `json:"turn"`
}

// GuardEvent is emitted when a guard short-circuits a turn.
type GuardEvent struct {
	EventBase
	Step  Step  `json:"step"`
	Guard Guard `json:"guard"`
}

// TransitionEvent is emitted once per processed turn, including self-transitions.
type TransitionEvent struct {
	EventBase
	From       Step `json:"from"`
	To         Step `json:"to"`
	ErrorCount int  `json:"error_count"`
}

// EscalationEvent is emitted when the dialogue moves to the human handoff step.
type EscalationEvent struct {
	EventBase
	From   Step   `json:"from"`
	Reason string `json:"reason"`
}

// IdleEvent is emitted when the idle reminder fires.
type IdleEvent struct {
	EventBase
	Step Step `json:"step"`
}

// LifecycleHooks defines callbacks for session observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnTurn         func(context.Context, *TurnEvent)
	OnGuard        func(context.Context, *GuardEvent)
	OnTransition   func(context.Context, *TransitionEvent)
	OnEscalation   func(context.Context, *EscalationEvent)
	OnIdleReminder func(context.Context, *IdleEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTurn:         chain(h.OnTurn, other.OnTurn),
		OnGuard:        chain(h.OnGuard, other.OnGuard),
		OnTransition:   chain(h.OnTransition, other.OnTransition),
		OnEscalation:   chain(h.OnEscalation, other.OnEscalation),
		OnIdleReminder: chain(h.OnIdleReminder, other.OnIdleReminder),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
