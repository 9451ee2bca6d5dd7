package textformat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/warp/valuecalc/value"
)

var hundred = decimal.NewFromInt(100)

// DefaultFormatter is the reference value.Formatter implementation.
type DefaultFormatter struct{}

// Format renders v using v.Policy()'s DisplayPolicy, PercentDisplay,
// NoneText, ThousandsSeparator, and NegativeInParentheses fields.
func (DefaultFormatter) Format(v value.Value) (string, error) {
	policy := v.Policy()
	if v.IsNone() {
		return policy.NoneText, nil
	}

	locale := resolveLocale(policy)
	printer := message.NewPrinter(locale)

	var rendered string
	var err error
	switch {
	case v.Unit().IsMoney():
		rendered, err = formatMoney(printer, v, policy)
	case v.Unit().Category == value.CategoryPercent:
		rendered, err = formatPercent(printer, v, policy)
	default:
		rendered, err = formatPlain(printer, v, policy)
	}
	if err != nil {
		return "", err
	}
	return applyNegativeParens(rendered, v, policy), nil
}

func resolveLocale(policy value.Policy) language.Tag {
	if policy.Display == nil || policy.Display.Locale == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(policy.Display.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func numberOptions(policy value.Policy) []number.Option {
	opts := []number.Option{number.Scale(policy.DecimalPlaces)}
	if !policy.ThousandsSeparator {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

func formatMoney(p *message.Printer, v value.Value, policy value.Policy) (string, error) {
	code := v.Unit().Code
	if policy.Display != nil && policy.Display.CurrencyCode != "" {
		code = policy.Display.CurrencyCode
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("textformat: unrecognized currency code %q: %w", code, err)
	}

	amount := unit.Amount(v.AmountAsDecimal().Abs().InexactFloat64())
	kind := currencyKind(policy)
	return strings.TrimSpace(p.Sprint(kind(amount))), nil
}

func currencyKind(policy value.Policy) currency.Formatter {
	style := ""
	if policy.Display != nil {
		style = policy.Display.CurrencyStyle
	}
	switch style {
	case "code":
		return currency.ISO
	case "name":
		return currency.NarrowSymbol
	default:
		return currency.Symbol
	}
}

// formatPercent renders a Percent Value. The stored amount is the same
// underlying ratio a Ratio Value would carry (0.4 for "40%"); percent
// display scales it by 100 here, at render time, per value.Percent's
// storage contract. Policy.CapPercentageAt, expressed at percent scale
// (e.g. 100 for "100%"), clamps here too - display time, not storage
// time, matching Policy.format_percent in the implementation this
// module's percent semantics were grounded on.
func formatPercent(p *message.Printer, v value.Value, policy value.Policy) (string, error) {
	amount := v.AmountAsDecimal().Abs()
	if policy.PercentDisplay == value.PercentDisplayRatio {
		rendered := p.Sprintf("%v", number.Decimal(amount.InexactFloat64(), numberOptions(policy)...))
		return rendered, nil
	}
	amount = amount.Mul(hundred)
	if policy.CapPercentageAt != nil && amount.GreaterThan(*policy.CapPercentageAt) {
		amount = *policy.CapPercentageAt
	}
	rendered := p.Sprintf("%v", number.Decimal(amount.InexactFloat64(), numberOptions(policy)...))
	return rendered + "%", nil
}

func formatPlain(p *message.Printer, v value.Value, policy value.Policy) (string, error) {
	amount := v.AmountAsDecimal().Abs().InexactFloat64()
	return p.Sprintf("%v", number.Decimal(amount, numberOptions(policy)...)), nil
}

func applyNegativeParens(rendered string, v value.Value, policy value.Policy) string {
	if !v.IsNegative() {
		return rendered
	}
	if policy.NegativeInParentheses {
		return "(" + rendered + ")"
	}
	return "-" + rendered
}
