// Package stagekit is the runtime glue between a platform multimedia
// backend and a scene/stage engine: it resolves raw device input into
// abstract per-user actions and manages loaded assets behind opaque,
// type-safe tickets.
package stagekit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with logging from the frame loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for stagekit and all its sub-packages.
// By default stagekit produces no log output. Pass nil to restore the
// silent default.
//
// Levels used by stagekit:
//   - slog.LevelWarn: recoverable per-frame conditions (stale action
//     index, resource not loaded, borrow conflicts, no active scenes)
//   - slog.LevelError: configuration and backend failures surfaced
//     during initialization
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share
// one logger configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
