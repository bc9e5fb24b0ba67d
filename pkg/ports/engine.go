package ports

import (
	"context"

	"github.com/aretw0/trackline/pkg/domain"
)

// Conversation is what an Input Source drives: one session, one turn at a time.
type Conversation interface {
	// Start delivers the initial empty turn that produces the greeting.
	Start(ctx context.Context) (domain.Reply, error)

	// Submit processes one utterance.
	Submit(ctx context.Context, raw string) (domain.Reply, error)

	// State returns a snapshot of the dialogue state.
	State() domain.State
}
