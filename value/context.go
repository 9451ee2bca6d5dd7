/*
context.go - the current-Policy stack

This is the one spec.md §4.2 stack that has to live in package value rather
than policyctx: it is typed on value.Policy, and policyctx intentionally
carries no dependency on value (see policyctx's doc.go). Mechanically it is
nothing more than a policyctx.Slot[Policy].
*/
package value

import (
	"context"

	"github.com/warp/valuecalc/policyctx"
)

var policySlot = policyctx.NewSlot[Policy]()

// UsePolicy derives a context with p as the active context Policy, for
// ResolutionContext-mode binary ops to pick up.
func UsePolicy(ctx context.Context, p Policy) context.Context {
	return policySlot.Use(ctx, p)
}

// PolicyFromContext returns the active context Policy, if one has been
// pushed with UsePolicy.
func PolicyFromContext(ctx context.Context) (Policy, bool) {
	return policySlot.From(ctx)
}

// WithPolicy runs fn with p pushed as the active context Policy.
func WithPolicy(ctx context.Context, p Policy, fn func(context.Context) error) error {
	return policySlot.With(ctx, p, fn)
}
