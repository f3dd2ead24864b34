package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller location to records at or above a level.
// Wrapped handlers must be built with AddSource disabled.
type sourceHandler struct {
	next     slog.Handler
	minLevel slog.Leveler
}

// NewSourceHandler wraps next so that only records with level >= minLevel
// carry a source attribute. Debug mode passes slog.LevelDebug to annotate everything.
func NewSourceHandler(next slog.Handler, minLevel slog.Leveler) slog.Handler {
	return &sourceHandler{next: next, minLevel: minLevel}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel.Level() {
		// skip runtime.Callers, Handle and the slog frame that invoked it
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), minLevel: h.minLevel}
}
