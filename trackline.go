package trackline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/trackline/internal/idle"
	"github.com/aretw0/trackline/internal/runtime"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/aretw0/trackline/pkg/scheduler"
	"github.com/google/uuid"
)

// DefaultIdleTimeout is how long the session waits before reminding the user.
const DefaultIdleTimeout = 30 * time.Second

// Session is the high-level entry point: one conversation with one user.
// It owns the dialogue state, serialises turns, delivers bot messages to the
// transcript sink and runs the idle and handoff timers.
type Session struct {
	id     string
	sink   ports.TranscriptSink
	engine *runtime.Engine
	sched  scheduler.Scheduler
	idle   *idle.Monitor
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time

	idleTimeout time.Duration
	engineOpts  []runtime.EngineOption
	idleMessage string

	mu     sync.Mutex
	state  domain.State
	closed bool
}

var _ ports.Conversation = (*Session)(nil)

// New creates a session at the Greeting step. Nothing is emitted until Start.
func New(sink ports.TranscriptSink, opts ...Option) (*Session, error) {
	if sink == nil {
		return nil, fmt.Errorf("transcript sink is required")
	}

	s := &Session{
		sink:        sink,
		idleTimeout: DefaultIdleTimeout,
		idleMessage: runtime.MsgIdleReminder,
		now:         time.Now,
		state:       domain.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.sched == nil {
		s.sched = scheduler.NewReal()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = s.logger.With("session_id", s.id)

	s.engine = runtime.NewEngine(s.engineOpts...)
	s.idle = idle.NewMonitor(s.sched, s.idleTimeout, s.remind)
	return s, nil
}

// ID returns the session identifier used in logs, events and stream keys.
func (s *Session) ID() string {
	return s.id
}

// Start submits the initial empty turn that triggers the greeting.
func (s *Session) Start(ctx context.Context) (domain.Reply, error) {
	return s.Submit(ctx, "")
}

// Submit processes one utterance end to end: the idle timer is re-armed, the
// user's text is echoed to the transcript, the engine runs, and the resulting
// bot messages are appended (or scheduled, for delayed follow-ups).
func (s *Session) Submit(ctx context.Context, raw string) (domain.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Reply{}, domain.ErrSessionClosed
	}

	s.idle.Reset()

	text := strings.TrimSpace(raw)
	if text != "" {
		if err := s.appendLocked(ctx, domain.SpeakerUser, text); err != nil {
			return domain.Reply{}, fmt.Errorf("append user turn: %w", err)
		}
	}

	from := s.state
	res := s.engine.Step(from, text)
	s.state = res.State
	s.observe(ctx, from, res)

	for _, msg := range res.Messages {
		if msg.Deferred() {
			s.scheduleFollowup(msg)
			continue
		}
		if err := s.appendLocked(ctx, domain.SpeakerBot, msg.Text); err != nil {
			return domain.Reply{}, fmt.Errorf("append bot turn: %w", err)
		}
	}

	return domain.Reply{State: res.State, Messages: res.Messages, Guard: res.Guard}, nil
}

// State returns a snapshot of the dialogue state.
func (s *Session) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops the idle reminder and rejects further turns.
// Pending follow-ups still fire but are not delivered.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.idle.Stop()
	s.logger.Debug("session closed", "step", s.state.Step)
	return nil
}

func (s *Session) appendLocked(ctx context.Context, speaker domain.Speaker, text string) error {
	turn := domain.NewTurn(speaker, text, s.now())
	if err := s.sink.Append(ctx, turn); err != nil {
		return err
	}
	if s.hooks.OnTurn != nil {
		s.hooks.OnTurn(ctx, &domain.TurnEvent{EventBase: s.event(domain.EventTurn), Turn: turn})
	}
	return nil
}

// scheduleFollowup registers a fire-and-forget message. It is delivered even
// if the dialogue has moved on by the time it fires.
func (s *Session) scheduleFollowup(msg domain.Message) {
	s.logger.Debug("follow-up scheduled", "delay", msg.Delay)
	s.sched.ScheduleOnce(msg.Delay, false, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			s.logger.Debug("follow-up dropped, session closed")
			return
		}
		if err := s.appendLocked(context.Background(), domain.SpeakerBot, msg.Text); err != nil {
			s.logger.Warn("failed to deliver follow-up", "err", err)
		}
	})
}

// remind is the idle monitor callback.
func (s *Session) remind(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A turn that started after the timer fired owns a newer generation.
	if s.closed || generation != s.idle.Generation() {
		return
	}

	ctx := context.Background()
	if err := s.appendLocked(ctx, domain.SpeakerBot, s.idleMessage); err != nil {
		s.logger.Warn("failed to deliver idle reminder", "err", err)
		return
	}
	s.logger.Debug("idle reminder sent", "step", s.state.Step)
	if s.hooks.OnIdleReminder != nil {
		s.hooks.OnIdleReminder(ctx, &domain.IdleEvent{EventBase: s.event(domain.EventIdleReminder), Step: s.state.Step})
	}
}

func (s *Session) observe(ctx context.Context, from domain.State, res runtime.Result) {
	if res.Guard != domain.GuardNone {
		s.logger.Debug("turn guarded", "step", from.Step, "guard", res.Guard)
		if s.hooks.OnGuard != nil {
			s.hooks.OnGuard(ctx, &domain.GuardEvent{EventBase: s.event(domain.EventGuard), Step: from.Step, Guard: res.Guard})
		}
		return
	}

	s.logger.Debug("transition", "from", from.Step, "to", res.State.Step, "error_count", res.State.ErrorCount)
	if s.hooks.OnTransition != nil {
		s.hooks.OnTransition(ctx, &domain.TransitionEvent{
			EventBase:  s.event(domain.EventTransition),
			From:       from.Step,
			To:         res.State.Step,
			ErrorCount: res.State.ErrorCount,
		})
	}

	if res.Escalation != "" {
		s.logger.Info("escalated to human agent", "from", from.Step, "reason", res.Escalation)
		if s.hooks.OnEscalation != nil {
			s.hooks.OnEscalation(ctx, &domain.EscalationEvent{EventBase: s.event(domain.EventEscalation), From: from.Step, Reason: res.Escalation})
		}
	}
}

func (s *Session) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: s.now(), Type: t, SessionID: s.id}
}
