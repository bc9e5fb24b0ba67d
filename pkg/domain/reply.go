package domain

// Reply summarises what one submitted turn did.
type Reply struct {
	// State is the dialogue state after the turn.
	State State `json:"state"`

	// Messages are the bot messages the turn produced, immediate ones first
	// in emission order. Deferred messages carry their Delay.
	Messages []Message `json:"messages"`

	// Guard is set when a guard short-circuited the turn.
	Guard Guard `json:"guard,omitempty"`
}
