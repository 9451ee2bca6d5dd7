package reduce

import (
	"context"

	"github.com/warp/valuecalc/value"
)

// selectUnitPolicy implements spec.md §4.3's unit/policy selection: the
// result unit is the first non-None element's unit, or Dimensionless if
// every element is None; every other non-None element must be SameUnit with
// it, except that Ratio and Percent are interchangeable ("ratioish") here as
// everywhere else in the unit algebra. The result policy is the first
// non-None element's policy, falling back to the active context policy,
// then value.Default().
func selectUnitPolicy(ctx context.Context, values []value.Value) (value.Unit, value.Policy, error) {
	var unit value.Unit
	var policy value.Policy
	found := false

	for _, v := range values {
		if v.IsNone() {
			continue
		}
		if !found {
			unit = v.Unit()
			policy = v.Policy()
			found = true
			continue
		}
		compatible := v.Unit().SameUnit(unit) || (v.Unit().IsRatioish() && unit.IsRatioish())
		if !compatible {
			return value.Unit{}, value.Policy{}, &value.IncompatibleUnitsError{Left: unit, Op: "reduce", Right: v.Unit()}
		}
	}
	if found {
		return unit, policy, nil
	}
	if p, ok := value.PolicyFromContext(ctx); ok {
		return value.Dimensionless(), p, nil
	}
	return value.Dimensionless(), value.Default(), nil
}

func anyNone(values []value.Value) bool {
	for _, v := range values {
		if v.IsNone() {
			return true
		}
	}
	return false
}

func filterNone(values []value.Value) []value.Value {
	out := make([]value.Value, 0, len(values))
	for _, v := range values {
		if !v.IsNone() {
			out = append(out, v)
		}
	}
	return out
}

// zeroFilled replaces every None element with a Zero Value of unit/policy,
// so the element still counts as present for Mean's denominator.
func zeroFilled(ctx context.Context, values []value.Value, unit value.Unit, policy value.Policy) []value.Value {
	out := make([]value.Value, len(values))
	for i, v := range values {
		if v.IsNone() {
			out[i] = value.Zero(ctx, unit, policy)
			continue
		}
		out[i] = v
	}
	return out
}
