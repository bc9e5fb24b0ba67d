package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/trackline/pkg/adapters/memory"
	"github.com/aretw0/trackline/pkg/observability"
	"github.com/aretw0/trackline/pkg/ports"

	httpAdapter "github.com/aretw0/trackline/pkg/adapters/http"
)

// ShutdownTimeout is the grace period given to in-flight requests.
const ShutdownTimeout = 5 * time.Second

// RunServe exposes one conversation over HTTP until a signal arrives.
func RunServe(opts ServeOptions) error {
	cfg, err := loadConfig(opts.CommonOptions)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	logger, err := createServerLogger(opts.Debug, cfg.Log)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	sessionID := resolveSessionID(opts.SessionID)
	transcript := memory.NewTranscript()
	sinks := []ports.TranscriptSink{transcript}
	stream, err := openStream(sigCtx, cfg.Redis, sessionID, logger)
	if err != nil {
		return err
	}
	if stream != nil {
		defer stream.Close()
		sinks = append(sinks, mirrorSink(stream, cfg.Redis))
	}

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}
	sess, err := newSession(cfg, sessionID, logger, hooks, sinks...)
	if err != nil {
		return err
	}
	defer sess.Close()

	if _, err := sess.Start(sigCtx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: httpAdapter.NewHandler(sess,
			httpAdapter.WithTranscript(transcript),
			httpAdapter.WithMetrics(metrics.Handler()),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMaxInputSize(cfg.Session.MaxInputSize),
		),
		ReadHeaderTimeout: 5 * time.Second,
		// SSE handlers only return when their request context ends.
		BaseContext: func(net.Listener) context.Context { return sigCtx },
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(os.Stdout, "Starting trackline server on %s (session %s)", srv.Addr, sessionID)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		printSystemMessage(os.Stdout, "Start shutdown... Signal: %v", sigCtx.Signal())

		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(os.Stdout, "trackline server stopped gracefully")
		return nil
	}
}
