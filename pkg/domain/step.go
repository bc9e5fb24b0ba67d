package domain

import "fmt"

// Step identifies the current node in the dialogue graph.
type Step string

const (
	StepGreeting                  Step = "greeting"
	StepAwaitHasTracking          Step = "await_has_tracking"
	StepAwaitTrackingNumber       Step = "await_tracking_number"
	StepAwaitAlternateID          Step = "await_alternate_id"
	StepAwaitHumanHandoff         Step = "await_human_handoff"
	StepAwaitDeliveryConfirmation Step = "await_delivery_confirmation"
	StepDone                      Step = "done"
)

// Steps lists every step in dialogue order.
var Steps = []Step{
	StepGreeting,
	StepAwaitHasTracking,
	StepAwaitTrackingNumber,
	StepAwaitAlternateID,
	StepAwaitHumanHandoff,
	StepAwaitDeliveryConfirmation,
	StepDone,
}

func (s Step) String() string {
	return string(s)
}

// Valid reports whether s is one of the enumerated steps.
func (s Step) Valid() bool {
	for _, known := range Steps {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the step accepts no further transitions.
func (s Step) IsTerminal() bool {
	return s == StepDone
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown steps.
func (s *Step) UnmarshalText(text []byte) error {
	step := Step(text)
	if !step.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStep, string(text))
	}
	*s = step
	return nil
}
