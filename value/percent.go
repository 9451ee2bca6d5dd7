package value

import "context"

// AsPercentage reinterprets a Ratio Value as a Percent Value of the same
// underlying proportion: the stored amount is carried over exactly (0.5
// stays 0.5), only the unit tag changes, so
// v.AsPercentage().AsRatio() == v exactly (spec.md §8 Testable Property
// 4). Neither quantization nor Policy.CapPercentageAt applies here -
// cap_percentage_at clamps at percent-scale display time, in
// textformat's percent formatter, the same layer the original
// implementation applies it in (Policy.format_percent). v must carry the
// Ratio unit.
func AsPercentage(ctx context.Context, v Value) (Value, error) {
	if v.isNone {
		return None(Percent(), v.policy), nil
	}
	if v.unit.Category != CategoryRatio {
		return Value{}, &IncompatibleUnitsError{Left: v.unit, Op: OpAsPercentage, Right: v.unit}
	}
	id := recordOp(ctx, OpAsPercentage, []Value{v}, v.policy, nil)
	return Value{amount: v.amount, unit: Percent(), policy: v.policy, provenanceID: id}, nil
}

// AsRatio reinterprets a Percent Value as a Ratio Value of the same
// underlying proportion: the stored amount is carried over exactly (0.5
// stays 0.5), only the unit tag changes. v must carry the Percent unit.
func AsRatio(ctx context.Context, v Value) (Value, error) {
	if v.isNone {
		return None(Ratio(), v.policy), nil
	}
	if v.unit.Category != CategoryPercent {
		return Value{}, &IncompatibleUnitsError{Left: v.unit, Op: OpAsRatio, Right: v.unit}
	}
	id := recordOp(ctx, OpAsRatio, []Value{v}, v.policy, nil)
	return Value{amount: v.amount, unit: Ratio(), policy: v.policy, provenanceID: id}, nil
}
