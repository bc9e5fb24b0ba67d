package domain

// State represents the current snapshot of the dialogue.
// It is a value type: transitions return a new State instead of mutating one.
type State struct {
	// Step is the current node in the dialogue graph.
	Step Step `json:"step"`

	// ErrorCount counts consecutive invalid tracking numbers.
	// Only meaningful while Step == StepAwaitTrackingNumber; reset on entry.
	ErrorCount int `json:"error_count"`
}

// NewState creates a clean state at the Greeting step.
func NewState() State {
	return State{Step: StepGreeting}
}

// Terminated reports whether the dialogue has reached its sink state.
func (s State) Terminated() bool {
	return s.Step.IsTerminal()
}
