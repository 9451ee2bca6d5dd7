/*
reduce.go - Sum and Mean

Both fold value.Add over their elements after resolving unit/policy and
applying the active ReductionMode; Mean additionally divides by a count
Value built the same way the engine lifts a raw number (see calc's
liftContextValue) so the division goes through the ordinary unit algebra.
*/
package reduce

import (
	"context"
	"strconv"

	"github.com/warp/valuecalc/policyctx"
	"github.com/warp/valuecalc/value"
)

// Sum folds value.Add over values, honoring the active (or overridden)
// ReductionMode. An empty input, or an input that reduces to empty under
// skip mode, returns a None Value.
func Sum(ctx context.Context, values []value.Value, opts ...Option) (value.Value, error) {
	unit, policy, err := selectUnitPolicy(ctx, values)
	if err != nil {
		return value.Value{}, err
	}
	mode := resolveOptions(opts).resolveMode(ctx)

	elements, ok, err := applyMode(ctx, "sum", mode, values, unit, policy)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.None(unit, policy), nil
	}
	if len(elements) == 0 {
		return value.None(unit, policy), nil
	}

	acc := elements[0]
	for _, v := range elements[1:] {
		acc, err = value.Add(ctx, acc, v)
		if err != nil {
			return value.Value{}, err
		}
	}
	return acc, nil
}

// Mean divides Sum's result by the count of elements that counted as
// present: in skip mode that excludes dropped Nones, in zero mode it
// includes them (spec.md §4.3: "element counts as present").
func Mean(ctx context.Context, values []value.Value, opts ...Option) (value.Value, error) {
	unit, policy, err := selectUnitPolicy(ctx, values)
	if err != nil {
		return value.Value{}, err
	}
	mode := resolveOptions(opts).resolveMode(ctx)

	elements, ok, err := applyMode(ctx, "mean", mode, values, unit, policy)
	if err != nil {
		return value.Value{}, err
	}
	if !ok || len(elements) == 0 {
		return value.None(unit, policy), nil
	}

	sum := elements[0]
	for _, v := range elements[1:] {
		sum, err = value.Add(ctx, sum, v)
		if err != nil {
			return value.Value{}, err
		}
	}
	count, err := value.FromLiteral(ctx, strconv.Itoa(len(elements)), value.Dimensionless(), policy)
	if err != nil {
		return value.Value{}, err
	}
	return value.Divide(ctx, sum, count)
}

// applyMode filters/validates values per mode, returning ok=false when the
// whole reduction must short-circuit to None (propagate mode hitting a
// None).
func applyMode(ctx context.Context, op string, mode policyctx.ReductionMode, values []value.Value, unit value.Unit, policy value.Policy) ([]value.Value, bool, error) {
	switch mode {
	case policyctx.ReductionSkip:
		return filterNone(values), true, nil
	case policyctx.ReductionPropagate:
		if anyNone(values) {
			return nil, false, nil
		}
		return values, true, nil
	case policyctx.ReductionZero:
		return zeroFilled(ctx, values, unit, policy), true, nil
	case policyctx.ReductionRaise:
		if anyNone(values) {
			return nil, false, &NullInReductionError{Op: op}
		}
		return values, true, nil
	default:
		return filterNone(values), true, nil
	}
}
