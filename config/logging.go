package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       c.SlogLevel(),
		ReplaceAttr: renameTraceLevel,
	}

	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// renameTraceLevel prints core.LevelTrace as TRACE instead of DEBUG-4.
func renameTraceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) != 0 {
		return a
	}

	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl < slog.LevelDebug {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}
