package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseLevel parses a --log-level value.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// newLogger returns a text logger on w. When color is set, records are
// printed as a colored level tag followed by the message and attributes.
func newLogger(w io.Writer, level slog.Level, color bool) *slog.Logger {
	if !color {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))
	}
	return slog.New(&consoleHandler{w: w, level: level, mu: &sync.Mutex{}})
}

// consoleHandler writes one colored line per record.
type consoleHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	color := colorCyan
	switch {
	case r.Level >= slog.LevelError:
		color = colorRed
	case r.Level >= slog.LevelWarn:
		color = colorYellow
	case r.Level < slog.LevelInfo:
		color = colorGray
	}
	fmt.Fprintf(&buf, "%s%-5s%s %s", color, r.Level.String(), colorReset, r.Message)

	write := func(a slog.Attr) {
		fmt.Fprintf(&buf, " %s%s=%s%v", colorGray, a.Key, colorReset, a.Value.Resolve())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.qualify(a))
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, h.qualify(a))
	}
	return &h2
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = strings.TrimPrefix(h.group+"."+name, ".")
	return &h2
}

// qualify prefixes the attribute key with the handler's group.
func (h *consoleHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}
