package cli

import (
	"context"
	"os"

	"github.com/aretw0/trackline"
	"github.com/aretw0/trackline/internal/presentation/tui"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/aretw0/trackline/pkg/runner"
)

// RunChat runs one conversation on Stdin/Stdout until exit, EOF or a signal.
func RunChat(opts ChatOptions) error {
	cfg, err := loadConfig(opts.CommonOptions)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	interactive := IsTerminal(os.Stdin)
	handler := createHandler(opts, cfg.Session.MaxInputSize, interactive)

	sessionID := resolveSessionID(opts.SessionID)
	sinks := []ports.TranscriptSink{handler}
	stream, err := openStream(sigCtx, cfg.Redis, sessionID, logger)
	if err != nil {
		return err
	}
	if stream != nil {
		defer stream.Close()
		sinks = append(sinks, mirrorSink(stream, cfg.Redis))
	}

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	sess, err := newSession(cfg, sessionID, logger, hooks, sinks...)
	if err != nil {
		return err
	}
	defer sess.Close()

	runnerOpts := []runner.Option{
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
		runner.WithTypingDelay(cfg.Session.TypingDelay),
	}
	if !interactive {
		// Piped input ends long before a handoff follow-up is due.
		runnerOpts = append(runnerOpts, runner.WithLinger(cfg.Session.HandoffFollowup))
	}

	runErr := runner.NewRunner(runnerOpts...).Run(sigCtx, sess)

	if !opts.JSON {
		if sig := sigCtx.Signal(); sig != nil {
			printSystemMessage(os.Stdout, "Interrupted at '%s' step.", sess.State().Step)
		} else if interactive {
			printSystemMessage(os.Stdout, "Session ended at '%s' step.", sess.State().Step)
		}
	}
	return handleExecutionError(runErr)
}

func createHandler(opts ChatOptions, maxInputSize int, interactive bool) runner.IOHandler {
	if opts.JSON {
		h := runner.NewJSONHandler(os.Stdin, os.Stdout)
		h.MaxInputSize = maxInputSize
		return h
	}

	textOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerMaxInputSize(maxInputSize),
		runner.WithTextHandlerEcho(!interactive),
	}
	if IsTerminal(os.Stdout) {
		if !opts.NoBanner {
			tui.PrintBanner(os.Stdout, trackline.Version)
		}
		if render, err := tui.NewRenderer(opts.Style, terminalWidth(os.Stdout)); err == nil {
			textOpts = append(textOpts, runner.WithTextHandlerRenderer(render))
		}
	}
	return runner.NewTextHandler(os.Stdin, os.Stdout, textOpts...)
}
