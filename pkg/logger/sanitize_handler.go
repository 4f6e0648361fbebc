package logger

import (
	"context"
	"log/slog"

	"github.com/DevFelipeRT/logmask/pkg/sanitizer"
)

// SanitizeHandler wraps a slog.Handler and routes every record through the
// sanitization service before it reaches the underlying handler: the
// message goes through the string pipeline, sensitive attribute keys mask
// their value wholesale, string and composite attribute values are
// sanitized recursively, and groups are rewritten member by member.
type SanitizeHandler struct {
	next slog.Handler
	svc  *sanitizer.Service
}

// NewSanitizeHandler decorates next with sanitization. A nil service
// returns next unchanged rather than a handler that silently does nothing.
func NewSanitizeHandler(next slog.Handler, svc *sanitizer.Service) slog.Handler {
	if svc == nil {
		return next
	}
	return &SanitizeHandler{next: next, svc: svc}
}

func (h *SanitizeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rebuilds the record with sanitized message and attributes. The
// original record is left untouched; slog records are value types shared
// with the caller.
func (h *SanitizeHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, h.svc.SanitizeString(rec.Message), rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

// WithAttrs pre-sanitizes static attributes once, at registration time,
// instead of on every record.
func (h *SanitizeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, h.sanitizeAttr(a))
	}
	return &SanitizeHandler{next: h.next.WithAttrs(clean), svc: h.svc}
}

func (h *SanitizeHandler) WithGroup(name string) slog.Handler {
	return &SanitizeHandler{next: h.next.WithGroup(name), svc: h.svc}
}

// sanitizeAttr rewrites one attribute. LogValuer values are resolved first
// so sanitization sees the final value, not the lazy wrapper.
func (h *SanitizeHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	if h.svc.IsSensitiveKey(a.Key) {
		return slog.String(a.Key, h.svc.MaskToken())
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, h.svc.SanitizeString(v.String()))
	case slog.KindGroup:
		members := v.Group()
		clean := make([]slog.Attr, 0, len(members))
		for _, m := range members {
			clean = append(clean, h.sanitizeAttr(m))
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}
	case slog.KindAny:
		return slog.Any(a.Key, h.svc.Sanitize(v.Any()))
	default:
		// Numbers, booleans, times and durations carry no maskable text.
		return a
	}
}
