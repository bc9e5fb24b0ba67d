package memory

import (
	"context"
	"sync"

	"github.com/aretw0/trackline/pkg/domain"
)

// SubscriberBuffer is the per-subscriber channel capacity.
const SubscriberBuffer = 64

// Transcript implements ports.TranscriptSink in memory and fans new turns out
// to subscribers. Safe for concurrent use.
type Transcript struct {
	mu      sync.RWMutex
	turns   []domain.Turn
	subs    map[int]chan domain.Turn
	nextSub int
	dropped int
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		subs: make(map[int]chan domain.Turn),
	}
}

// Append records the turn and notifies subscribers.
// A subscriber whose buffer is full misses the turn; it can resync with Turns.
func (t *Transcript) Append(ctx context.Context, turn domain.Turn) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.turns = append(t.turns, turn)
	for _, ch := range t.subs {
		select {
		case ch <- turn:
		default:
			t.dropped++
		}
	}
	return nil
}

// Turns returns a copy of every recorded turn, oldest first.
func (t *Transcript) Turns(ctx context.Context) ([]domain.Turn, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.Turn, len(t.turns))
	copy(out, t.turns)
	return out, nil
}

// Len returns the number of recorded turns.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Subscribe streams turns appended after the call until ctx is done.
func (t *Transcript) Subscribe(ctx context.Context) <-chan domain.Turn {
	ch := make(chan domain.Turn, SubscriberBuffer)

	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = ch
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		t.mu.Lock()
		delete(t.subs, id)
		close(ch)
		t.mu.Unlock()
	}()

	return ch
}

// Dropped returns how many subscriber deliveries were skipped because a buffer was full.
func (t *Transcript) Dropped() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dropped
}
