/*
conversion.go - ConversionPolicy stack

ConversionPolicy governs value.ConversionRegistry.Convert's behavior when no
direct edge exists between two units - see spec.md §4.4.
*/
package policyctx

import "context"

// ConversionPolicy controls path search and missing-path behavior for unit
// conversion. Defaults: Strict=true, AllowPaths=true.
type ConversionPolicy struct {
	Strict     bool
	AllowPaths bool
}

// DefaultConversionPolicy is spec.md §4.4's stated default.
var DefaultConversionPolicy = ConversionPolicy{Strict: true, AllowPaths: true}

var conversionPolicySlot = NewSlot[ConversionPolicy]()

// UseConversionPolicy derives a context with cp as the active ConversionPolicy.
func UseConversionPolicy(ctx context.Context, cp ConversionPolicy) context.Context {
	return conversionPolicySlot.Use(ctx, cp)
}

// ConversionPolicyFrom returns the active ConversionPolicy, or
// DefaultConversionPolicy if none has been pushed.
func ConversionPolicyFrom(ctx context.Context) ConversionPolicy {
	return conversionPolicySlot.FromOrDefault(ctx, DefaultConversionPolicy)
}

// WithConversionPolicy runs fn with cp pushed as the active ConversionPolicy.
func WithConversionPolicy(ctx context.Context, cp ConversionPolicy, fn func(context.Context) error) error {
	return conversionPolicySlot.With(ctx, cp, fn)
}
