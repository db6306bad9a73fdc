// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger for the backend. The backend is silent by
// default; nil restores that.
//
// Levels:
//   - [slog.LevelDebug]: context selection and extension fallbacks
//   - [slog.LevelInfo]: instance and adapter lifecycle
//   - [slog.LevelWarn]: GL debug output of medium severity
//   - [slog.LevelError]: failed native calls
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
