package softras

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards everything; Enabled returning false means messages are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by softras and its sub-packages. By default nothing is logged; pass nil to go back to that.
//
// Log levels used:
//   - [slog.LevelDebug]: render pass summaries, skipped faces and triangles
//   - [slog.LevelWarn]: loader input that was ignored (unknown OBJ statements, missing textures)
//
// Nothing is ever logged per pixel.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It's safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
