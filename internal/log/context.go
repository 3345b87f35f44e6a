package log

import (
	"context"
	"log/slog"
)

type ctxAttrsKey struct{}

func ctxAttrs(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	return attrs
}

// ContextWithAttrs returns a copy of ctx carrying attrs in addition to any
// attrs already carried by ctx. Records logged through a handler created by
// NewContextLogHandler with the returned context include them.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	parent := ctxAttrs(ctx)
	// copy so that sibling contexts never share a backing array
	merged := make([]slog.Attr, 0, len(parent)+len(attrs))
	merged = append(merged, parent...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxAttrsKey{}, merged)
}

// AttrsFromContext returns the attrs added to ctx with ContextWithAttrs.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	return append([]slog.Attr(nil), ctxAttrs(ctx)...)
}

// contextHandler adds the attrs carried by the context of each record before
// passing it on.
type contextHandler struct {
	next slog.Handler
}

// NewContextLogHandler wraps next so that attrs stored with ContextWithAttrs
// are logged by the *Context logging functions.
func NewContextLogHandler(next slog.Handler) slog.Handler {
	return &contextHandler{next: next}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := ctxAttrs(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name)}
}
