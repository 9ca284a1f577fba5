package px

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never
// format the attributes of a disabled Debug call.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger sets the logger used by px and its sub-packages. px is silent
// until SetLogger is called; passing nil makes it silent again. It is safe
// to call while other goroutines are logging.
//
// px logs only at [slog.LevelDebug]: canvas creation, flood fill pixel
// counts and scene rendering.
//
//	px.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger. The scene package logs
// through it so one call configures the whole module.
func Logger() *slog.Logger {
	return current.Load()
}
