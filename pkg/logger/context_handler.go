package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context. The second return
// reports whether the context carried a value at all.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler runs the registered extractors on every record before
// delegating, so request-scoped values (request ids, tenant ids) land on
// each log line without the call sites naming them. It sits outermost in
// the handler chain: attributes it adds still pass through the sanitizing
// handler underneath.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next with context attribute extraction.
// Nil extractors are dropped; with none left the wrapper still delegates
// correctly and costs one method call.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs extraction per log call so fresh request-scoped values are
// captured rather than stale cached ones.
func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
