package provenance

import (
	"context"

	"github.com/warp/valuecalc/policyctx"
)

// SpanFrame is one entry on the span stack opened by Span/WithSpan.
type SpanFrame struct {
	Name  string
	Attrs map[string]any
}

var spanSlot = policyctx.NewSlot[[]SpanFrame]()

// Span derives a context with a new innermost span frame pushed. Frames
// accumulate in-order as callers nest Span/WithSpan calls, and - being
// context-scoped like every stack in policyctx - never leak back to the
// parent once the derived context goes out of scope.
func Span(ctx context.Context, name string, attrs map[string]any) context.Context {
	prev, _ := spanSlot.From(ctx)
	next := make([]SpanFrame, len(prev)+1)
	copy(next, prev)
	next[len(prev)] = SpanFrame{Name: name, Attrs: attrs}
	return spanSlot.Use(ctx, next)
}

// WithSpan runs fn with a new innermost span frame pushed.
func WithSpan(ctx context.Context, name string, attrs map[string]any, fn func(context.Context) error) error {
	return fn(Span(ctx, name, attrs))
}

// spanMeta returns the meta fields a recorded Node should carry for the
// currently open span stack, or nil if no span is open. See spec.md §4.7:
// "meta.span = name, meta.span_hierarchy = [outer, ..., inner],
// meta.span_depth, meta.span_attrs = attrs".
func spanMeta(ctx context.Context) map[string]any {
	frames, ok := spanSlot.From(ctx)
	if !ok || len(frames) == 0 {
		return nil
	}
	hierarchy := make([]string, len(frames))
	for i, f := range frames {
		hierarchy[i] = f.Name
	}
	inner := frames[len(frames)-1]
	return map[string]any{
		"span":           inner.Name,
		"span_hierarchy": hierarchy,
		"span_depth":     len(frames),
		"span_attrs":     inner.Attrs,
	}
}
