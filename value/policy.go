/*
policy.go - Policy definitions and quantization

PURPOSE:
  A Policy is the immutable bundle of rounding, display and strictness
  rules attached to every Value. Any operation that returns a Value attaches
  exactly one resolved Policy - see arithmetic.go's resolvePolicy for the
  resolution order.

QUANTIZATION:
  Every result amount is quantized before being stored, using
  QuantizerFactory(DecimalPlaces) to get a "quantum" (the smallest
  representable increment, e.g. 0.01) and Rounding to decide how an amount
  between two multiples of the quantum rounds.

DISPLAY POLICY:
  DisplayPolicy is carried on Policy but consumed only by the Formatter
  collaborator (see format.go) - the value package never reads it.

SIGNATURE:
  Two Policy values are policy-identical iff Signature() matches. The
  signature is computed over the enumerated option fields only - it
  deliberately excludes QuantizerFactory (a function value has no stable
  hash) and is computed from a flattened plain-field snapshot so that
  hashstructure never has to walk into shopspring/decimal's internal
  *big.Int representation.
*/
package value

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/shopspring/decimal"
)

// Rounding selects how Policy.Quantize breaks ties and handles the
// remainder after dividing an amount by its quantum.
type Rounding string

const (
	RoundHalfUp   Rounding = "half_up"
	RoundHalfEven Rounding = "half_even"
	RoundDown     Rounding = "down"
	RoundUp       Rounding = "up"
	RoundCeiling  Rounding = "ceiling"
	RoundFloor    Rounding = "floor"
)

// PercentDisplay selects whether a Formatter should render a Percent-unit
// Value scaled by 100 with a "%" suffix, or as a bare ratio.
type PercentDisplay string

const (
	PercentDisplayPercent PercentDisplay = "percent"
	PercentDisplayRatio   PercentDisplay = "ratio"
)

// QuantizerFactory maps a decimal-places count to the quantum amount results
// are rounded to a multiple of, e.g. DefaultQuantizerFactory(2) == 0.01.
type QuantizerFactory func(places int) decimal.Decimal

// DefaultQuantizerFactory returns 10^-places, i.e. ordinary decimal rounding
// to `places` fractional digits.
func DefaultQuantizerFactory(places int) decimal.Decimal {
	if places < 0 {
		places = 0
	}
	return decimal.New(1, int32(-places))
}

// DisplayPolicy is consumed only by a Formatter (see format.go); the value
// package never inspects it.
type DisplayPolicy struct {
	Locale            string
	CurrencyCode      string
	MinFractionDigits int
	MaxFractionDigits int
	Grouping          bool
	CurrencyStyle     string // "symbol" | "code" | "name"
	NegativeInParens  bool
}

// Policy is the immutable bundle of rounding, display and strictness rules
// attached to every Value.
type Policy struct {
	DecimalPlaces          int
	Rounding               Rounding
	NoneText               string
	ThousandsSeparator     bool
	NegativeInParentheses  bool
	PercentDisplay         PercentDisplay
	ArithmeticStrict       bool
	CapPercentageAt        *decimal.Decimal // percent scale (100 means 100%); applied by a Formatter, not stored arithmetic
	QuantizerFactory       QuantizerFactory
	Display                *DisplayPolicy
}

var defaultPolicy = Policy{
	DecimalPlaces:    2,
	Rounding:         RoundHalfUp,
	NoneText:         "—",
	PercentDisplay:   PercentDisplayPercent,
	QuantizerFactory: DefaultQuantizerFactory,
}

// Default returns the library-wide default policy: 2 decimal places,
// half-up rounding, non-strict arithmetic.
func Default() Policy { return defaultPolicy }

func (p Policy) quantizer() QuantizerFactory {
	if p.QuantizerFactory != nil {
		return p.QuantizerFactory
	}
	return DefaultQuantizerFactory
}

// Quantize rounds amt to the nearest multiple of p's quantum using p's
// rounding mode.
func (p Policy) Quantize(amt decimal.Decimal) decimal.Decimal {
	quantum := p.quantizer()(p.DecimalPlaces)
	if quantum.IsZero() {
		return amt
	}
	quotient := amt.Div(quantum)
	rounded := roundWithMode(quotient, p.Rounding)
	return rounded.Mul(quantum)
}

func roundWithMode(d decimal.Decimal, mode Rounding) decimal.Decimal {
	switch mode {
	case RoundHalfEven:
		return d.RoundBank(0)
	case RoundDown:
		return d.RoundDown(0)
	case RoundUp:
		return d.RoundUp(0)
	case RoundCeiling:
		return d.RoundCeil(0)
	case RoundFloor:
		return d.RoundFloor(0)
	case RoundHalfUp:
		fallthrough
	default:
		return d.Round(0)
	}
}

// policySignatureFields is the plain-typed snapshot hashstructure hashes to
// produce Policy.Signature(). Keeping this separate from Policy means the
// hash never has to deal with QuantizerFactory (a func value) or
// decimal.Decimal's internal *big.Int.
type policySignatureFields struct {
	DecimalPlaces         int
	Rounding              string
	NoneText              string
	ThousandsSeparator    bool
	NegativeInParentheses bool
	PercentDisplay        string
	ArithmeticStrict      bool
	CapPercentageAt       string
	Display               displaySignatureFields
}

type displaySignatureFields struct {
	Locale            string
	CurrencyCode      string
	MinFractionDigits int
	MaxFractionDigits int
	Grouping          bool
	CurrencyStyle     string
	NegativeInParens  bool
}

// Signature returns a stable hex hash over Policy's enumerated option
// fields. Two Policy values with the same options have the same signature
// regardless of which QuantizerFactory closure they happen to carry.
func (p Policy) Signature() string {
	fields := policySignatureFields{
		DecimalPlaces:         p.DecimalPlaces,
		Rounding:              string(p.Rounding),
		NoneText:              p.NoneText,
		ThousandsSeparator:    p.ThousandsSeparator,
		NegativeInParentheses: p.NegativeInParentheses,
		PercentDisplay:        string(p.PercentDisplay),
		ArithmeticStrict:      p.ArithmeticStrict,
	}
	if p.CapPercentageAt != nil {
		fields.CapPercentageAt = p.CapPercentageAt.String()
	}
	if p.Display != nil {
		fields.Display = displaySignatureFields{
			Locale:            p.Display.Locale,
			CurrencyCode:      p.Display.CurrencyCode,
			MinFractionDigits: p.Display.MinFractionDigits,
			MaxFractionDigits: p.Display.MaxFractionDigits,
			Grouping:          p.Display.Grouping,
			CurrencyStyle:     p.Display.CurrencyStyle,
			NegativeInParens:  p.Display.NegativeInParens,
		}
	}

	h, err := hashstructure.Hash(fields, hashstructure.FormatV2, nil)
	if err != nil {
		// hashstructure only fails on unsupported kinds (channels, funcs) in
		// the hashed value; policySignatureFields contains neither, so this
		// is unreachable in practice. Fall back to a stable-but-coarser
		// signature rather than panicking.
		return fmt.Sprintf("policy-hash-error:%v", err)
	}
	return strconv.FormatUint(h, 16)
}

// SamePolicySignature reports whether two policies have identical option
// signatures.
func SamePolicySignature(a, b Policy) bool { return a.Signature() == b.Signature() }
