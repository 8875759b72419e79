// SPDX-License-Identifier: MIT

// Package logging provides the leveled slog.Logger used by the spine command.
// Library packages never log on their own; the command hands this logger to
// spine.WithLogger when collapse traces are requested.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// LevelTrace sits below Debug for the most verbose output. Like Debug, it
// enables the reducers' per-collapse traces.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a level name to a slog.Level.
// Supported values: "error", "warn", "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled text logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// CollapseTraces reports whether l is enabled at slog.LevelDebug, the level
// the reducers log every collapse and rescan at, i.e. whether the command
// should forward it to them through spine.WithLogger.
func CollapseTraces(l *slog.Logger) bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}
