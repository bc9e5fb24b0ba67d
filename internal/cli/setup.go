package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/trackline"
	"github.com/aretw0/trackline/internal/config"
	"github.com/aretw0/trackline/pkg/adapters/middleware"
	"github.com/aretw0/trackline/pkg/adapters/redis"
	"github.com/aretw0/trackline/pkg/domain"
	"github.com/aretw0/trackline/pkg/ports"
	"github.com/google/uuid"
)

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(opts CommonOptions) (config.Config, error) {
	cfg, err := config.Load(config.Options{Path: opts.ConfigPath, EnvFile: opts.EnvFile})
	if err != nil {
		return config.Config{}, err
	}
	if opts.RedisAddr != "" {
		cfg.Redis.Addr = opts.RedisAddr
	}
	return cfg, nil
}

// resolveSessionID returns the requested id or a fresh UUID. It is resolved
// here rather than in trackline.New because the Redis stream key needs it first.
func resolveSessionID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// openStream connects the transcript mirror when Redis is configured.
// It returns nil, nil when Redis is disabled.
func openStream(ctx context.Context, cfg config.RedisConfig, sessionID string, logger *slog.Logger) (*redis.Stream, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	stream := redis.New(cfg.Addr, "", 0, sessionID,
		redis.WithPrefix(cfg.Prefix),
		redis.WithMaxLen(cfg.MaxLen),
		redis.WithTTL(cfg.StreamTTL),
	)
	if err := stream.Ping(ctx); err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	logger.Info("Transcript mirrored to Redis", "addr", cfg.Addr, "stream", stream.Key())
	return stream, nil
}

// mirrorSink wraps the Redis stream with the configured middleware.
func mirrorSink(stream *redis.Stream, cfg config.RedisConfig) ports.TranscriptSink {
	var mws []middleware.Middleware
	if cfg.RedactEmails {
		mws = append(mws, middleware.NewRedactMiddleware(middleware.EmailPattern))
	}
	return middleware.Chain(stream, mws...)
}

// newSession wires a session from the config, fanning turns out to every sink.
func newSession(cfg config.Config, sessionID string, logger *slog.Logger, hooks domain.LifecycleHooks, sinks ...ports.TranscriptSink) (*trackline.Session, error) {
	sess, err := trackline.New(ports.Tee(sinks...),
		trackline.WithSessionID(sessionID),
		trackline.WithLogger(logger),
		trackline.WithLifecycleHooks(hooks),
		trackline.WithIdleTimeout(cfg.Session.IdleTimeout),
		trackline.WithHandoffFollowup(cfg.Session.HandoffFollowup),
		trackline.WithMaxTrackingErrors(cfg.Session.MaxTrackingErrors),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing session: %w", err)
	}
	return sess, nil
}
