/*
resolution.go - PolicyResolution mode stack

PolicyResolution selects which of the four rules in spec.md §4.1's binary
policy-resolution cascade governs a given arithmetic call. The cascade
itself is implemented in package value (it needs to inspect value.Policy),
this file only carries the mode.
*/
package policyctx

import "context"

// Resolution selects how a binary op resolves the policy to attach to its
// result.
type Resolution string

const (
	// ResolutionContext: if a context policy is set (via value.UsePolicy),
	// use it.
	ResolutionContext Resolution = "context"

	// ResolutionLeftOperand: use the left operand's policy.
	ResolutionLeftOperand Resolution = "left_operand"

	// ResolutionStrictMatch: require identical policy signatures on both
	// operands, else fail with PolicyConflict.
	ResolutionStrictMatch Resolution = "strict_match"

	// ResolutionDefault: always use the library default policy.
	ResolutionDefault Resolution = "default"
)

var resolutionSlot = NewSlot[Resolution]()

// UseResolution derives a context with r as the active PolicyResolution.
func UseResolution(ctx context.Context, r Resolution) context.Context {
	return resolutionSlot.Use(ctx, r)
}

// ResolutionFrom returns the active PolicyResolution, or ResolutionLeftOperand
// if none has been pushed.
func ResolutionFrom(ctx context.Context) Resolution {
	return resolutionSlot.FromOrDefault(ctx, ResolutionLeftOperand)
}

// WithResolution runs fn with r pushed as the active PolicyResolution.
func WithResolution(ctx context.Context, r Resolution, fn func(context.Context) error) error {
	return resolutionSlot.With(ctx, r, fn)
}
