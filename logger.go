package gl2d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gl2d and its sub-packages.
// By default gl2d produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by gl2d:
//   - [slog.LevelDebug]: per-frame statistics (culled glyphs, buffer sizes)
//   - [slog.LevelInfo]: load-time events (fonts parsed, glyph meshes built)
//   - [slog.LevelWarn]: recoverable problems (glyphs skipped at load time)
//
// Example:
//
//	gl2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gl2d.
// Sub-packages (text/, backend/) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
