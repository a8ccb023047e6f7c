package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// cliHandler is a minimal slog.Handler for terminal output: one line per
// record, "msg: key=val key=val", no timestamps.
type cliHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

func newCLIHandler(w io.Writer, level slog.Level) *cliHandler {
	return &cliHandler{writer: w, level: level}
}

func (h *cliHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *cliHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value))

		return true
	})

	msg := r.Message
	if len(parts) > 0 {
		msg = msg + ": " + strings.Join(parts, " ")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)

	return err
}

func (h *cliHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := newCLIHandler(h.writer, h.level)
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return next
}

func (h *cliHandler) WithGroup(string) slog.Handler {
	// Groups are flattened; the CLI output has no nesting to express.
	return h
}
