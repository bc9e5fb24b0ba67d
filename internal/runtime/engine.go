package runtime

import (
	"time"

	"github.com/aretw0/trackline/pkg/classify"
	"github.com/aretw0/trackline/pkg/domain"
)

// Default limits, overridable through Config.
const (
	DefaultMaxTrackingErrors = 3
	DefaultHandoffFollowup   = 2 * time.Second
)

// Escalation reasons reported in Result.Escalation.
const (
	EscalationNoResults     = "no_results"
	EscalationInactive      = "inactive"
	EscalationTooManyErrors = "too_many_errors"
	EscalationNotFound      = "not_found"
	EscalationNotDelivered  = "not_delivered"
)

// Config holds the tunables of the dialogue.
type Config struct {
	MaxTrackingErrors int
	HandoffFollowup   time.Duration
}

// Result is the outcome of one turn.
type Result struct {
	State    domain.State
	Messages []domain.Message

	// Guard is set when a guard short-circuited the turn; State is then unchanged.
	Guard domain.Guard

	// Escalation is set when this turn moved the dialogue into the handoff step.
	Escalation string
}

// Engine is the dialogue state machine. It holds no session state:
// Step is a pure function of (state, raw input).
type Engine struct {
	cfg Config
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithMaxTrackingErrors sets how many invalid tracking numbers trigger escalation.
func WithMaxTrackingErrors(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.MaxTrackingErrors = n
		}
	}
}

// WithHandoffFollowup sets the delay of the "employee will call you" follow-up.
func WithHandoffFollowup(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.cfg.HandoffFollowup = d
		}
	}
}

// NewEngine creates an engine with default limits.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		cfg: Config{
			MaxTrackingErrors: DefaultMaxTrackingErrors,
			HandoffFollowup:   DefaultHandoffFollowup,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Step consumes one utterance. Guards run first and short-circuit with a fixed
// message; otherwise the handler of the current step decides the transition.
func (e *Engine) Step(state domain.State, raw string) Result {
	input := classify.Normalize(raw)

	if guard, msg := checkGuards(state, raw, input); guard != domain.GuardNone {
		return Result{
			State:    state,
			Messages: []domain.Message{domain.Say(msg)},
			Guard:    guard,
		}
	}

	return e.dispatch(state, raw, input)
}

// dispatch routes the turn to the handler of the current step.
func (e *Engine) dispatch(state domain.State, raw, input string) Result {
	switch state.Step {
	case domain.StepGreeting:
		return e.greet(state)
	case domain.StepAwaitHasTracking:
		return e.hasTracking(state, input)
	case domain.StepAwaitTrackingNumber:
		return e.trackingNumber(state, raw)
	case domain.StepAwaitAlternateID:
		return e.alternateID(state, raw)
	case domain.StepAwaitHumanHandoff:
		return e.humanHandoff(state, input)
	case domain.StepAwaitDeliveryConfirmation:
		return e.deliveryConfirmation(state, input)
	case domain.StepDone:
		return stay(state, MsgClosing)
	default:
		// Unknown steps behave like Done so a bad edit can never wedge a session.
		return stay(state, MsgClosing)
	}
}

func stay(state domain.State, msgs ...string) Result {
	return Result{State: state, Messages: say(msgs...)}
}

func moveTo(step domain.Step, msgs ...string) Result {
	return Result{State: domain.State{Step: step}, Messages: say(msgs...)}
}

func escalate(reason string, msgs ...string) Result {
	r := moveTo(domain.StepAwaitHumanHandoff, msgs...)
	r.Escalation = reason
	return r
}

func say(msgs ...string) []domain.Message {
	out := make([]domain.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, domain.Say(m))
	}
	return out
}
