/*
equality.go - context-scoped equality granularity

The original metricengine package lets callers pick how loosely two
values compare equal via a context-scoped EqualityMode (VALUE_ONLY,
VALUE_AND_UNIT, VALUE_UNIT_AND_POLICY), rather than fixing one comparison
rule for every caller. package value exposes the three fixed-granularity
methods directly (Equals, EqualsValueOnly, SamePolicyEquals); this stack
lets a caller pick the active one by context instead of by method name,
for code that compares values generically without knowing which
granularity the surrounding scope wants.
*/
package policyctx

import "context"

// EqualityMode selects how loosely two Values compare equal.
type EqualityMode string

const (
	// EqualityValueOnly compares amount alone, ignoring unit and policy.
	EqualityValueOnly EqualityMode = "value_only"
	// EqualityValueAndUnit compares amount and unit, ignoring policy. This
	// is the library default, matching value.Value.Equals.
	EqualityValueAndUnit EqualityMode = "value_and_unit"
	// EqualityValueUnitAndPolicy additionally requires identical policy
	// signatures, matching value.Value.SamePolicyEquals.
	EqualityValueUnitAndPolicy EqualityMode = "value_unit_and_policy"
)

// DefaultEqualityMode is the library default: amount and unit, ignoring
// policy.
var DefaultEqualityMode = EqualityValueAndUnit

var equalityModeSlot = NewSlot[EqualityMode]()

// UseEqualityMode derives a context with mode as the active EqualityMode.
func UseEqualityMode(ctx context.Context, mode EqualityMode) context.Context {
	return equalityModeSlot.Use(ctx, mode)
}

// EqualityModeFrom returns the active EqualityMode, or DefaultEqualityMode
// if none has been pushed.
func EqualityModeFrom(ctx context.Context) EqualityMode {
	return equalityModeSlot.FromOrDefault(ctx, DefaultEqualityMode)
}

// WithEqualityMode runs fn with mode pushed as the active EqualityMode.
func WithEqualityMode(ctx context.Context, mode EqualityMode, fn func(context.Context) error) error {
	return equalityModeSlot.With(ctx, mode, fn)
}
