// Package config loads trackline settings from an optional YAML file, an optional .env file
// and TRACKLINE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "TRACKLINE_"

// Config is the full runtime configuration.
type Config struct {
	Session SessionConfig `yaml:"session" mapstructure:"session"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// SessionConfig holds the dialogue timings and limits.
type SessionConfig struct {
	IdleTimeout       time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	HandoffFollowup   time.Duration `yaml:"handoff_followup" mapstructure:"handoff_followup"`
	MaxTrackingErrors int           `yaml:"max_tracking_errors" mapstructure:"max_tracking_errors"`
	TypingDelay       time.Duration `yaml:"typing_delay" mapstructure:"typing_delay"`
	MaxInputSize      int           `yaml:"max_input_size" mapstructure:"max_input_size"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// RedisConfig enables the transcript stream mirror when Addr is set.
type RedisConfig struct {
	Addr      string        `yaml:"addr" mapstructure:"addr"`
	Prefix    string        `yaml:"prefix" mapstructure:"prefix"`
	MaxLen    int64         `yaml:"max_len" mapstructure:"max_len"`
	StreamTTL time.Duration `yaml:"stream_ttl" mapstructure:"stream_ttl"`
	// RedactEmails masks email addresses in user turns before they are mirrored.
	RedactEmails bool `yaml:"redact_emails" mapstructure:"redact_emails"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Session: SessionConfig{
			IdleTimeout:       30 * time.Second,
			HandoffFollowup:   2 * time.Second,
			MaxTrackingErrors: 3,
			TypingDelay:       600 * time.Millisecond,
			MaxInputSize:      4096,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Redis: RedisConfig{
			Prefix:       "trackline:",
			MaxLen:       1000,
			RedactEmails: true,
		},
	}
}

// Options controls where Load looks.
type Options struct {
	// Path of a YAML file. Empty means no file.
	Path string
	// EnvFile is loaded into the process environment before overrides are read.
	// Variables already set in the environment win.
	EnvFile string
}

// Load builds a Config from defaults, the YAML file, and the environment.
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	raw := map[string]any{}
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", opts.Path, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", opts.Path, err)
		}
	}
	applyEnv(raw, os.Environ())

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var sections = map[string]bool{"session": true, "log": true, "server": true, "redis": true}

// applyEnv maps TRACKLINE_SECTION_KEY=value onto raw["section"]["key"].
// The first underscore after the prefix separates the section from the key;
// variables that do not name a known section are ignored.
func applyEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || key == "" || !sections[section] {
			continue
		}
		sub, ok := raw[section].(map[string]any)
		if !ok {
			sub = map[string]any{}
			raw[section] = sub
		}
		sub[key] = value
	}
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Validate rejects settings the session cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Session.IdleTimeout <= 0 {
		errs = append(errs, errors.New("session.idle_timeout must be positive"))
	}
	if c.Session.HandoffFollowup <= 0 {
		errs = append(errs, errors.New("session.handoff_followup must be positive"))
	}
	if c.Session.MaxTrackingErrors <= 0 {
		errs = append(errs, errors.New("session.max_tracking_errors must be positive"))
	}
	if c.Session.TypingDelay < 0 {
		errs = append(errs, errors.New("session.typing_delay must not be negative"))
	}
	if c.Session.MaxInputSize <= 0 {
		errs = append(errs, errors.New("session.max_input_size must be positive"))
	}
	if c.Redis.MaxLen < 0 {
		errs = append(errs, errors.New("redis.max_len must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
