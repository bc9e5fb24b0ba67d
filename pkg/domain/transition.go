package domain

// Transition is an edge of the dialogue graph.
type Transition struct {
	From Step `json:"from" yaml:"from"`
	To   Step `json:"to" yaml:"to"`

	// Condition describes what input takes this edge. Empty means unconditional.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// Graph returns the static dialogue graph. Guard short-circuits and
// re-prompts are self-transitions and are not listed.
func Graph() []Transition {
	return []Transition{
		{From: StepGreeting, To: StepAwaitHasTracking},
		{From: StepAwaitHasTracking, To: StepAwaitTrackingNumber, Condition: "yes"},
		{From: StepAwaitHasTracking, To: StepAwaitAlternateID, Condition: "no"},
		{From: StepAwaitTrackingNumber, To: StepAwaitHasTracking, Condition: "cancel"},
		{From: StepAwaitTrackingNumber, To: StepAwaitDeliveryConfirmation, Condition: "valid"},
		{From: StepAwaitTrackingNumber, To: StepAwaitHumanHandoff, Condition: "no results"},
		{From: StepAwaitTrackingNumber, To: StepAwaitHumanHandoff, Condition: "too many errors"},
		{From: StepAwaitAlternateID, To: StepDone, Condition: "found"},
		{From: StepAwaitAlternateID, To: StepAwaitHumanHandoff, Condition: "not found"},
		{From: StepAwaitHumanHandoff, To: StepDone},
		{From: StepAwaitDeliveryConfirmation, To: StepDone, Condition: "yes"},
		{From: StepAwaitDeliveryConfirmation, To: StepAwaitHumanHandoff, Condition: "no"},
	}
}
