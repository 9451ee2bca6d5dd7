/*
arithmetic.go - binary/unary operators, policy resolution, null propagation

Every operator here follows the same four-stage pipeline:
 1. null propagation (§4.3): a None operand under BinaryPropagate mode short
    circuits to a None result carrying the resolved policy and the unit
    algebra's result unit (left's unit when the algebra has none), so an
    incompatible-unit failure is never raised for it; under BinaryRaise it
    fails with ErrInvalidOperand.
 2. unit algebra (unitalgebra.go): resultUnit(left, op, right) decides the
    result's Unit or fails with ErrIncompatibleUnits.
 3. policy resolution (resolvePolicy, §4.1's four-step cascade).
 4. quantization: the raw decimal result is quantized under the resolved
    policy before being wrapped into the result Value, and (if enabled)
    recorded as a provenance op node.
*/
package value

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/warp/valuecalc/policyctx"
	"github.com/warp/valuecalc/provenance"
)

// resolvePolicy implements spec.md §4.1's binary policy-resolution cascade:
//  1. ResolutionContext: if a context policy is set (value.UsePolicy), use it.
//  2. ResolutionLeftOperand: use left's policy (the default mode).
//  3. ResolutionStrictMatch: require left and right to share a signature,
//     else PolicyConflictError.
//  4. ResolutionDefault: always value.Default().
func resolvePolicy(ctx context.Context, left, right Policy) (Policy, error) {
	switch policyctx.ResolutionFrom(ctx) {
	case policyctx.ResolutionContext:
		if p, ok := PolicyFromContext(ctx); ok {
			return p, nil
		}
		return left, nil
	case policyctx.ResolutionStrictMatch:
		if !SamePolicySignature(left, right) {
			return Policy{}, &PolicyConflictError{LeftSignature: left.Signature(), RightSignature: right.Signature()}
		}
		return left, nil
	case policyctx.ResolutionDefault:
		return Default(), nil
	case policyctx.ResolutionLeftOperand:
		fallthrough
	default:
		return left, nil
	}
}

// binaryNullResult implements spec.md §4.3's BinaryMode: under
// BinaryPropagate a None operand makes the whole op return a None Value of
// the not-yet-computed result unit; under BinaryRaise it fails with
// ErrInvalidOperand. ok=false means neither operand was None and the caller
// should proceed with ordinary arithmetic.
func binaryNullResult(ctx context.Context, left, right Value, unit Unit, policy Policy) (Value, bool, error) {
	if !left.isNone && !right.isNone {
		return Value{}, false, nil
	}
	switch policyctx.NullBehaviorFrom(ctx).Binary {
	case policyctx.BinaryRaise:
		return Value{}, true, ErrInvalidOperand
	default:
		return None(unit, policy), true, nil
	}
}

func recordOp(ctx context.Context, op Op, inputs []Value, policy Policy, extraMeta map[string]any) provenance.NodeID {
	ids := make([]provenance.NodeID, len(inputs))
	for i, v := range inputs {
		ids[i] = v.provenanceID
	}
	meta := map[string]any{}
	for k, v := range extraMeta {
		meta[k] = v
	}
	id, _ := provenance.Default().Record(ctx, provenance.KindOp, string(op), ids, meta, policy.Signature())
	return id
}

func binaryOp(ctx context.Context, left Value, op Op, right Value, rawFn func(a, b decimal.Decimal) (decimal.Decimal, error)) (Value, error) {
	// Null propagation is keyed on the operand units alone; pick a
	// placeholder result unit for the None short-circuit and let the real
	// unit algebra run once we know both operands are non-None.
	if left.isNone || right.isNone {
		provisional, ok := resultUnit(left.unit, op, right.unit)
		if !ok {
			provisional = left.unit
		}
		policy, perr := resolvePolicy(ctx, left.policy, right.policy)
		if perr != nil {
			return Value{}, perr
		}
		if v, handled, err := binaryNullResult(ctx, left, right, provisional, policy); handled {
			return v, err
		}
	}

	unit, ok := resultUnit(left.unit, op, right.unit)
	if !ok {
		return Value{}, &IncompatibleUnitsError{Left: left.unit, Op: op, Right: right.unit}
	}
	policy, err := resolvePolicy(ctx, left.policy, right.policy)
	if err != nil {
		return Value{}, err
	}

	raw, err := rawFn(left.amount, right.amount)
	if err == errDivideByZeroNone {
		return None(unit, policy), nil
	}
	if err != nil {
		return Value{}, err
	}
	quantized := policy.Quantize(raw)
	id := recordOp(ctx, op, []Value{left, right}, policy, nil)
	return Value{amount: quantized, unit: unit, policy: policy, provenanceID: id}, nil
}

// Add returns left + right.
func Add(ctx context.Context, left, right Value) (Value, error) {
	return binaryOp(ctx, left, OpAdd, right, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Add(b), nil
	})
}

// Subtract returns left - right.
func Subtract(ctx context.Context, left, right Value) (Value, error) {
	return binaryOp(ctx, left, OpSub, right, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Sub(b), nil
	})
}

// Multiply returns left * right.
func Multiply(ctx context.Context, left, right Value) (Value, error) {
	return binaryOp(ctx, left, OpMul, right, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Mul(b), nil
	})
}

// Divide returns left / right. Division by zero fails with
// ErrDivisionByZero when the resolved policy is ArithmeticStrict, and
// otherwise returns None.
func Divide(ctx context.Context, left, right Value) (Value, error) {
	return binaryOp(ctx, left, OpDiv, right, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		if b.IsZero() {
			policy, err := resolvePolicy(ctx, left.policy, right.policy)
			if err != nil {
				return decimal.Decimal{}, err
			}
			if policy.ArithmeticStrict {
				return decimal.Decimal{}, ErrDivisionByZero
			}
			return decimal.Decimal{}, errDivideByZeroNone
		}
		return a.Div(b), nil
	})
}

// errDivideByZeroNone is an internal sentinel that binaryOp's Divide path
// turns into a None Value rather than surfacing as an error to the caller.
var errDivideByZeroNone = &divideByZeroNoneSignal{}

type divideByZeroNoneSignal struct{}

func (*divideByZeroNoneSignal) Error() string { return "value: divide by zero (non-strict)" }

// Power returns left ^ right, where right must be a dimensionless,
// non-negative integer exponent.
func Power(ctx context.Context, left, right Value) (Value, error) {
	return binaryOp(ctx, left, OpPow, right, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		exp := b.IntPart()
		return a.Pow(decimal.NewFromInt(exp)), nil
	})
}

func unaryOp(ctx context.Context, v Value, op Op, rawFn func(decimal.Decimal) decimal.Decimal) (Value, error) {
	if v.isNone {
		switch policyctx.NullBehaviorFrom(ctx).Binary {
		case policyctx.BinaryRaise:
			return Value{}, ErrInvalidOperand
		default:
			return None(v.unit, v.policy), nil
		}
	}
	unit, ok := resultUnit(v.unit, op, v.unit)
	if !ok {
		return Value{}, &IncompatibleUnitsError{Left: v.unit, Op: op, Right: v.unit}
	}
	quantized := v.policy.Quantize(rawFn(v.amount))
	id := recordOp(ctx, op, []Value{v}, v.policy, nil)
	return Value{amount: quantized, unit: unit, policy: v.policy, provenanceID: id}, nil
}

// Negate returns -v.
func Negate(ctx context.Context, v Value) (Value, error) {
	return unaryOp(ctx, v, OpNeg, func(d decimal.Decimal) decimal.Decimal { return d.Neg() })
}

// Absolute returns |v|.
func Absolute(ctx context.Context, v Value) (Value, error) {
	return unaryOp(ctx, v, OpAbs, func(d decimal.Decimal) decimal.Decimal { return d.Abs() })
}
