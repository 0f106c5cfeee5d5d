// Package config provides the run configuration of the circuit tools.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/wiresim/core"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by validation errors.
var ErrInvalid = errors.New("invalid config")

// Config describes one run.
type Config struct {
	// Target is the wire whose signal is reported.
	Target string `yaml:"target"`
	// Feedback, when set, reruns the circuit with the target's signal
	// forced onto this wire.
	Feedback string `yaml:"feedback,omitempty"`
	// Overrides preset wires before evaluation.
	Overrides map[string]uint16 `yaml:"overrides,omitempty"`
	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool `yaml:"strict"`
	// Clocked runs the circuit on the ticking board.
	Clocked bool    `yaml:"clocked"`
	FreqGHz float64 `yaml:"freq_ghz"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Target:  "a",
		FreqGHz: 1,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration for values no run can use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("%w: target wire is empty", ErrInvalid)
	}

	if strings.ContainsAny(c.Target, " \t") {
		return fmt.Errorf("%w: target wire %q contains whitespace", ErrInvalid, c.Target)
	}

	if c.Feedback != "" && c.Feedback == c.Target {
		return fmt.Errorf("%w: feedback wire equals target %q", ErrInvalid, c.Target)
	}

	if c.Clocked && c.FreqGHz <= 0 {
		return fmt.Errorf("%w: freq_ghz must be positive, got %v", ErrInvalid, c.FreqGHz)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Freq returns the board frequency.
func (c *Config) Freq() sim.Freq {
	return sim.Freq(c.FreqGHz) * sim.GHz
}

// SlogLevel returns the configured log level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps a level name to a slog level. "trace" maps to
// core.LevelTrace.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, name)
	}
}
