package reduce

import (
	"context"

	"github.com/warp/valuecalc/policyctx"
	"github.com/warp/valuecalc/value"
)

// WeightedMean computes sum(values[i]*weights[i]) / sum(weights). A length
// mismatch between values and weights, or a zero weight sum under
// non-strict arithmetic, degrades to a None Value rather than an error
// (spec.md §4.3).
func WeightedMean(ctx context.Context, values []value.Value, weights []value.Value, opts ...Option) (value.Value, error) {
	unit, policy, err := selectUnitPolicy(ctx, values)
	if err != nil {
		return value.Value{}, err
	}
	if len(values) != len(weights) {
		return value.None(unit, policy), nil
	}

	mode := resolveOptions(opts).resolveMode(ctx)
	pairedValues, pairedWeights, ok, err := applyPairMode(ctx, mode, values, weights, unit, policy)
	if err != nil {
		return value.Value{}, err
	}
	if !ok || len(pairedValues) == 0 {
		return value.None(unit, policy), nil
	}

	var numerator, denominator value.Value
	for i, v := range pairedValues {
		weighted, err := value.Multiply(ctx, v, pairedWeights[i])
		if err != nil {
			return value.Value{}, err
		}
		if i == 0 {
			numerator = weighted
			denominator = pairedWeights[i]
			continue
		}
		numerator, err = value.Add(ctx, numerator, weighted)
		if err != nil {
			return value.Value{}, err
		}
		denominator, err = value.Add(ctx, denominator, pairedWeights[i])
		if err != nil {
			return value.Value{}, err
		}
	}

	if !policy.ArithmeticStrict && denominator.IsZero() {
		return value.None(unit, policy), nil
	}
	return value.Divide(ctx, numerator, denominator)
}

// applyPairMode is WeightedMean's per-mode filtering: skip drops a pair if
// either half is None, propagate/raise look at both halves together.
func applyPairMode(ctx context.Context, mode policyctx.ReductionMode, values, weights []value.Value, unit value.Unit, policy value.Policy) ([]value.Value, []value.Value, bool, error) {
	switch mode {
	case policyctx.ReductionSkip:
		vs := make([]value.Value, 0, len(values))
		ws := make([]value.Value, 0, len(values))
		for i, v := range values {
			if v.IsNone() || weights[i].IsNone() {
				continue
			}
			vs = append(vs, v)
			ws = append(ws, weights[i])
		}
		return vs, ws, true, nil
	case policyctx.ReductionPropagate:
		for i, v := range values {
			if v.IsNone() || weights[i].IsNone() {
				return nil, nil, false, nil
			}
		}
		return values, weights, true, nil
	case policyctx.ReductionZero:
		vs := zeroFilled(ctx, values, unit, policy)
		ws := zeroFilled(ctx, weights, value.Dimensionless(), policy)
		return vs, ws, true, nil
	case policyctx.ReductionRaise:
		for i, v := range values {
			if v.IsNone() || weights[i].IsNone() {
				return nil, nil, false, &NullInReductionError{Op: "weighted_mean"}
			}
		}
		return values, weights, true, nil
	default:
		return applyPairMode(ctx, policyctx.ReductionSkip, values, weights, unit, policy)
	}
}
