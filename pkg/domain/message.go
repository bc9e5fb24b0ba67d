package domain

import "time"

// Message is a bot message requested by a transition.
type Message struct {
	Text string `json:"text"`

	// Delay postpones delivery. Zero means deliver with the current turn;
	// a positive delay is a fire-and-forget follow-up that is never cancelled.
	Delay time.Duration `json:"delay,omitempty"`
}

// Say builds an immediate message.
func Say(text string) Message {
	return Message{Text: text}
}

// SayLater builds a delayed follow-up message.
func SayLater(text string, delay time.Duration) Message {
	return Message{Text: text, Delay: delay}
}

// Deferred reports whether the message is scheduled rather than immediate.
func (m Message) Deferred() bool {
	return m.Delay > 0
}
