package runner_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/trackline"
	"github.com/aretw0/trackline/internal/runtime"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/runner"
	"github.com/aretw0/trackline/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, handler runner.IOHandler) *trackline.Session {
	t.Helper()
	sess, err := trackline.New(handler, trackline.WithScheduler(scheduler.NewManual()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	return sess
}

func TestRunner_TextConversation(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader("yes\nAB123456789CD\nyes\n"), out)
	sess := newSession(t, handler)

	r := runner.NewRunner(runner.WithInputHandler(handler))
	require.NoError(t, r.Run(context.Background(), sess))

	got := out.String()
	for _, msg := range []string{runtime.MsgGreeting, runtime.MsgAskTrackingNumber, runtime.MsgDelivered, runtime.MsgGladToHear} {
		assert.Contains(t, got, msg)
	}
	assert.Equal(t, domain.StepDone, sess.State().Step)
}

func TestRunner_EmptyLineIsSubmitted(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader("\n"), out)
	sess := newSession(t, handler)

	require.NoError(t, runner.NewRunner(runner.WithInputHandler(handler)).Run(context.Background(), sess))
	assert.Contains(t, out.String(), runtime.MsgDidNotCatch)
}

func TestRunner_ExitStops(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewTextHandler(strings.NewReader("no\nQUIT\nyes\n"), out)
	sess := newSession(t, handler)

	require.NoError(t, runner.NewRunner(runner.WithInputHandler(handler)).Run(context.Background(), sess))
	assert.Equal(t, domain.StepAwaitAlternateID, sess.State().Step, "lines after quit are not read")
}

func TestRunner_ClosedSession(t *testing.T) {
	handler := runner.NewTextHandler(strings.NewReader("yes\n"), &bytes.Buffer{})
	sess := newSession(t, handler)
	_, err := sess.Start(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	err = runner.NewRunner(runner.WithInputHandler(handler)).Run(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrSessionClosed, "Start on a closed session is reported")
}

func TestRunner_TypingSignal(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader(`"yes"`+"\n"), out)
	sess := newSession(t, handler)

	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithTypingDelay(time.Millisecond))
	require.NoError(t, r.Run(context.Background(), sess))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"speaker":"bot"`)
	assert.Equal(t, `{"event":"typing"}`, lines[1])
	assert.Contains(t, lines[2], `"speaker":"user"`)
	assert.Contains(t, lines[3], runtime.MsgAskTrackingNumber)
}

func TestRunner_Cancelled(t *testing.T) {
	handler := runner.NewTextHandler(strings.NewReader("yes\n"), &bytes.Buffer{})
	sess := newSession(t, handler)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(runner.WithInputHandler(handler), runner.WithTypingDelay(time.Hour))
	assert.NoError(t, r.Run(ctx, sess))
	assert.Equal(t, domain.StepAwaitHasTracking, sess.State().Step)
}
