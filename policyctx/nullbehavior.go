/*
nullbehavior.go - NullBehavior and the reduction-only presets

NullBehavior has two independent fields: how binary arithmetic treats a
none operand, and how reductions treat a none element. spec.md §4.1 and
§4.3 each consult one half of this struct.
*/
package policyctx

import "context"

// BinaryMode selects how a binary arithmetic op treats a none operand.
type BinaryMode string

const (
	BinaryPropagate BinaryMode = "propagate"
	BinaryRaise     BinaryMode = "raise"
)

// ReductionMode selects how a reduction treats a none element.
type ReductionMode string

const (
	ReductionSkip      ReductionMode = "skip"
	ReductionPropagate ReductionMode = "propagate"
	ReductionZero      ReductionMode = "zero"
	ReductionRaise     ReductionMode = "raise"
)

// NullBehavior bundles the binary and reduction none-handling modes.
type NullBehavior struct {
	Binary    BinaryMode
	Reduction ReductionMode
}

var (
	// DefaultNulls is the library default: propagate through arithmetic,
	// skip over none elements in reductions.
	DefaultNulls = NullBehavior{Binary: BinaryPropagate, Reduction: ReductionSkip}

	// StrictRaise fails loudly on any none operand or element.
	StrictRaise = NullBehavior{Binary: BinaryRaise, Reduction: ReductionRaise}

	// SumZero is a reduction-only preset: treat none as zero in sums.
	SumZero = NullBehavior{Binary: BinaryPropagate, Reduction: ReductionZero}

	// SumPropagate is a reduction-only preset: any none collapses the sum.
	SumPropagate = NullBehavior{Binary: BinaryPropagate, Reduction: ReductionPropagate}

	// SumRaise is a reduction-only preset: any none fails the sum.
	SumRaise = NullBehavior{Binary: BinaryPropagate, Reduction: ReductionRaise}
)

var nullBehaviorSlot = NewSlot[NullBehavior]()

// UseNullBehavior derives a context with nb as the active NullBehavior.
func UseNullBehavior(ctx context.Context, nb NullBehavior) context.Context {
	return nullBehaviorSlot.Use(ctx, nb)
}

// NullBehaviorFrom returns the active NullBehavior, or DefaultNulls if none
// has been pushed.
func NullBehaviorFrom(ctx context.Context) NullBehavior {
	return nullBehaviorSlot.FromOrDefault(ctx, DefaultNulls)
}

// WithNullBehavior is the decorator-style scoped-call form: it runs fn with
// nb pushed as the active NullBehavior.
func WithNullBehavior(ctx context.Context, nb NullBehavior, fn func(context.Context) error) error {
	return nullBehaviorSlot.With(ctx, nb, fn)
}
