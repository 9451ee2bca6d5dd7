package reduce

import (
	"context"

	"github.com/warp/valuecalc/policyctx"
)

// Option overrides a reducer's default mode resolution for a single call,
// the "unless overridden by argument" clause of spec.md §4.3.
type Option func(*options)

type options struct {
	mode    policyctx.ReductionMode
	hasMode bool
}

// WithMode overrides the ReductionMode that would otherwise come from the
// active policyctx.NullBehavior.
func WithMode(m policyctx.ReductionMode) Option {
	return func(o *options) { o.mode = m; o.hasMode = true }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o options) resolveMode(ctx context.Context) policyctx.ReductionMode {
	if o.hasMode {
		return o.mode
	}
	return policyctx.NullBehaviorFrom(ctx).Reduction
}
