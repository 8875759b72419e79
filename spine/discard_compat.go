package spine

import (
	"context"
	"log/slog"
)

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains:
// every level is disabled and no record is emitted.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
