package value

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/valuecalc/policyctx"
	"github.com/warp/valuecalc/provenance"
)

// Value is an immutable decimal amount carrying a Unit and a Policy. The
// zero Value is not meaningful; always construct through FromLiteral, None,
// or Zero, or by composing existing Values with package value's operators.
type Value struct {
	amount       decimal.Decimal
	isNone       bool
	unit         Unit
	policy       Policy
	provenanceID provenance.NodeID
}

// FromLiteral parses raw as a decimal amount and wraps it as a Value,
// recording a provenance literal node (spec.md §4.7) unless provenance is
// disabled. A non-numeric raw fails with InvalidLiteralError only when
// policy.ArithmeticStrict; otherwise it degrades to a None Value of unit
// (spec.md §4.1).
func FromLiteral(ctx context.Context, raw string, unit Unit, policy Policy) (Value, error) {
	amt, err := decimal.NewFromString(raw)
	if err != nil {
		if policy.ArithmeticStrict {
			return Value{}, &InvalidLiteralError{Raw: raw}
		}
		return None(unit, policy), nil
	}
	id, provErr := provenance.Default().Record(ctx, provenance.KindLiteral, string(OpLiteral), nil,
		map[string]any{"raw": raw, "unit": unit.String()}, policy.Signature())
	if provErr != nil {
		return Value{}, provErr
	}
	return Value{amount: amt, unit: unit, policy: policy, provenanceID: id}, nil
}

// None returns the null Value for unit/policy: spec.md §4.3's propagation
// rules key off IsNone, not off any sentinel amount.
func None(unit Unit, policy Policy) Value {
	return Value{isNone: true, unit: unit, policy: policy}
}

// Zero returns the additive identity for unit under policy.
func Zero(ctx context.Context, unit Unit, policy Policy) Value {
	v, err := FromLiteral(ctx, "0", unit, policy)
	if err != nil {
		// "0" always parses; a FromLiteral failure here can only be a
		// provenance error surfaced under Config.FailOnError, so fall back to
		// a zero Value without provenance.
		return Value{amount: decimal.Zero, unit: unit, policy: policy}
	}
	return v
}

// IsNone reports whether v is the null value.
func (v Value) IsNone() bool { return v.isNone }

// IsNegative reports whether v's amount is strictly negative. A None value
// is never negative.
func (v Value) IsNegative() bool {
	return !v.isNone && v.amount.Sign() < 0
}

// IsZero reports whether v's amount is zero. A None value is never zero.
func (v Value) IsZero() bool {
	return !v.isNone && v.amount.IsZero()
}

// Unit returns v's unit tag.
func (v Value) Unit() Unit { return v.unit }

// Policy returns v's policy.
func (v Value) Policy() Policy { return v.policy }

// ProvenanceID returns the id of the provenance Node describing how v was
// produced, or "" if provenance was not recorded for v.
func (v Value) ProvenanceID() provenance.NodeID { return v.provenanceID }

// WithProvenanceID returns a copy of v carrying id as its provenance id.
// Package calc uses this to attach a "calc:<name>" node to a calculation
// function's returned Value without calc needing access to Value's private
// fields.
func (v Value) WithProvenanceID(id provenance.NodeID) Value {
	v.provenanceID = id
	return v
}

// AmountAsDecimal returns v's raw decimal amount. Calling this on a None
// value returns decimal.Zero; check IsNone first if the distinction
// matters.
func (v Value) AmountAsDecimal() decimal.Decimal {
	if v.isNone {
		return decimal.Zero
	}
	return v.amount
}

// Equals reports whether v and other carry the same unit and amount,
// ignoring policy. Two None values of the same unit are equal; a None and a
// non-None value are never equal.
func (v Value) Equals(other Value) bool {
	if !v.unit.SameUnit(other.unit) {
		return false
	}
	if v.isNone != other.isNone {
		return false
	}
	if v.isNone {
		return true
	}
	return v.amount.Equal(other.amount)
}

// SamePolicyEquals additionally requires v and other's policies to carry
// the same signature.
func (v Value) SamePolicyEquals(other Value) bool {
	return v.Equals(other) && SamePolicySignature(v.policy, other.policy)
}

// EqualsValueOnly reports whether v and other carry the same amount,
// ignoring unit and policy entirely - the loosest of the three equality
// granularities package value offers alongside Equals and
// SamePolicyEquals.
func (v Value) EqualsValueOnly(other Value) bool {
	if v.isNone != other.isNone {
		return false
	}
	if v.isNone {
		return true
	}
	return v.amount.Equal(other.amount)
}

// EqualUnderContext compares a and b at the equality granularity selected
// by the policyctx.EqualityMode active on ctx, letting generic code defer
// the choice of granularity to its caller instead of hardcoding Equals or
// SamePolicyEquals.
func EqualUnderContext(ctx context.Context, a, b Value) bool {
	switch policyctx.EqualityModeFrom(ctx) {
	case policyctx.EqualityValueOnly:
		return a.EqualsValueOnly(b)
	case policyctx.EqualityValueUnitAndPolicy:
		return a.SamePolicyEquals(b)
	default:
		return a.Equals(b)
	}
}

// Compare orders v against other, giving the total order spec.md §4.1's
// Predicates section requires: None sorts before any non-None value, and two
// None values compare equal regardless of unit. Comparing two non-None
// Values still panics if they don't share a unit - callers must guard with
// Unit.SameUnit first, the same discipline spec.md §4.3 requires of binary
// arithmetic.
func (v Value) Compare(other Value) int {
	if v.isNone && other.isNone {
		return 0
	}
	if v.isNone {
		return -1
	}
	if other.isNone {
		return 1
	}
	if !v.unit.SameUnit(other.unit) {
		panic(fmt.Sprintf("value: Compare called across units %s and %s", v.unit, other.unit))
	}
	return v.amount.Cmp(other.amount)
}

// String renders v for debugging - not a display formatter. Use package
// textformat's Formatter for user-facing output.
func (v Value) String() string {
	if v.isNone {
		return fmt.Sprintf("None(%s)", v.unit)
	}
	return fmt.Sprintf("%s %s", v.amount.String(), v.unit)
}
