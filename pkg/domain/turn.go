package domain

import "time"

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Turn is one entry of the transcript. Never mutated after creation.
type Turn struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// NewTurn stamps a turn with the given time.
func NewTurn(speaker Speaker, text string, at time.Time) Turn {
	return Turn{Speaker: speaker, Text: text, At: at}
}
