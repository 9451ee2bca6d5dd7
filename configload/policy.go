package configload

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/valuecalc/value"
)

// PolicyJSON is the JSON representation of a value.Policy.
type PolicyJSON struct {
	DecimalPlaces         int          `json:"decimal_places"`
	Rounding              string       `json:"rounding,omitempty"`
	NoneText              string       `json:"none_text,omitempty"`
	ThousandsSeparator    bool         `json:"thousands_separator,omitempty"`
	NegativeInParentheses bool         `json:"negative_in_parentheses,omitempty"`
	PercentDisplay        string       `json:"percent_display,omitempty"`
	ArithmeticStrict      bool         `json:"arithmetic_strict,omitempty"`
	CapPercentageAt       string       `json:"cap_percentage_at,omitempty"`
	Display               *DisplayJSON `json:"display,omitempty"`
}

// DisplayJSON is the JSON representation of a value.DisplayPolicy.
type DisplayJSON struct {
	Locale            string `json:"locale,omitempty"`
	CurrencyCode      string `json:"currency_code,omitempty"`
	MinFractionDigits int    `json:"min_fraction_digits,omitempty"`
	MaxFractionDigits int    `json:"max_fraction_digits,omitempty"`
	Grouping          bool   `json:"grouping,omitempty"`
	CurrencyStyle     string `json:"currency_style,omitempty"`
	NegativeInParens  bool   `json:"negative_in_parens,omitempty"`
}

// ParsePolicy parses a JSON string into a value.Policy, starting from
// value.Default() and applying FromJSON's override rules: decimal_places
// and the boolean fields are always taken from the JSON (absent means 0 or
// false), every other field only when present.
func ParsePolicy(jsonStr string) (value.Policy, error) {
	var pj PolicyJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return value.Policy{}, fmt.Errorf("configload: failed to parse policy JSON: %w", err)
	}
	return FromJSON(pj)
}

// FromJSON converts PolicyJSON into a value.Policy. Fields left at their
// JSON zero value fall back to value.Default()'s corresponding field,
// except DecimalPlaces, which is always taken from pj since the zero value
// is itself a meaningful value ("0 decimal places"), and the boolean
// fields, which are always taken from pj.
func FromJSON(pj PolicyJSON) (value.Policy, error) {
	policy := value.Default()
	policy.DecimalPlaces = pj.DecimalPlaces

	if pj.Rounding != "" {
		rounding, err := parseRounding(pj.Rounding)
		if err != nil {
			return value.Policy{}, err
		}
		policy.Rounding = rounding
	}
	if pj.NoneText != "" {
		policy.NoneText = pj.NoneText
	}
	policy.ThousandsSeparator = pj.ThousandsSeparator
	policy.NegativeInParentheses = pj.NegativeInParentheses
	policy.ArithmeticStrict = pj.ArithmeticStrict

	if pj.PercentDisplay != "" {
		policy.PercentDisplay = value.PercentDisplay(pj.PercentDisplay)
	}
	if pj.CapPercentageAt != "" {
		cap, err := decimal.NewFromString(pj.CapPercentageAt)
		if err != nil {
			return value.Policy{}, fmt.Errorf("configload: invalid cap_percentage_at %q: %w", pj.CapPercentageAt, err)
		}
		policy.CapPercentageAt = &cap
	}
	if pj.Display != nil {
		policy.Display = &value.DisplayPolicy{
			Locale:            pj.Display.Locale,
			CurrencyCode:      pj.Display.CurrencyCode,
			MinFractionDigits: pj.Display.MinFractionDigits,
			MaxFractionDigits: pj.Display.MaxFractionDigits,
			Grouping:          pj.Display.Grouping,
			CurrencyStyle:     pj.Display.CurrencyStyle,
			NegativeInParens:  pj.Display.NegativeInParens,
		}
	}
	return policy, nil
}

// ToJSON converts a value.Policy back into its JSON representation.
func ToJSON(policy value.Policy) PolicyJSON {
	pj := PolicyJSON{
		DecimalPlaces:         policy.DecimalPlaces,
		Rounding:              string(policy.Rounding),
		NoneText:              policy.NoneText,
		ThousandsSeparator:    policy.ThousandsSeparator,
		NegativeInParentheses: policy.NegativeInParentheses,
		PercentDisplay:        string(policy.PercentDisplay),
		ArithmeticStrict:      policy.ArithmeticStrict,
	}
	if policy.CapPercentageAt != nil {
		pj.CapPercentageAt = policy.CapPercentageAt.String()
	}
	if policy.Display != nil {
		pj.Display = &DisplayJSON{
			Locale:            policy.Display.Locale,
			CurrencyCode:      policy.Display.CurrencyCode,
			MinFractionDigits: policy.Display.MinFractionDigits,
			MaxFractionDigits: policy.Display.MaxFractionDigits,
			Grouping:          policy.Display.Grouping,
			CurrencyStyle:     policy.Display.CurrencyStyle,
			NegativeInParens:  policy.Display.NegativeInParens,
		}
	}
	return pj
}

func parseRounding(s string) (value.Rounding, error) {
	switch value.Rounding(s) {
	case value.RoundHalfUp, value.RoundHalfEven, value.RoundDown, value.RoundUp, value.RoundCeiling, value.RoundFloor:
		return value.Rounding(s), nil
	default:
		return "", &UnknownRoundingError{Value: s}
	}
}
