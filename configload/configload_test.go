package configload_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/configload"
	"github.com/warp/valuecalc/value"
)

func TestParsePolicyOverridesOnlyPresentFields(t *testing.T) {
	policy, err := configload.ParsePolicy(`{
		"decimal_places": 4,
		"rounding": "half_even",
		"none_text": "N/A",
		"negative_in_parentheses": true,
		"display": {"locale": "en-GB", "currency_code": "GBP", "currency_style": "code"}
	}`)
	require.NoError(t, err)

	require.Equal(t, 4, policy.DecimalPlaces)
	require.Equal(t, value.RoundHalfEven, policy.Rounding)
	require.Equal(t, "N/A", policy.NoneText)
	require.True(t, policy.NegativeInParentheses)
	require.NotNil(t, policy.Display)
	require.Equal(t, "GBP", policy.Display.CurrencyCode)
	// Unset field falls back to the default policy's PercentDisplay.
	require.Equal(t, value.Default().PercentDisplay, policy.PercentDisplay)
}

func TestParsePolicyRejectsUnknownRounding(t *testing.T) {
	_, err := configload.ParsePolicy(`{"rounding": "sideways"}`)
	require.Error(t, err)
	var unknown *configload.UnknownRoundingError
	require.ErrorAs(t, err, &unknown)
}

func TestParsePolicyParsesCapPercentageAt(t *testing.T) {
	policy, err := configload.ParsePolicy(`{"cap_percentage_at": "1.50"}`)
	require.NoError(t, err)
	require.NotNil(t, policy.CapPercentageAt)
	require.Equal(t, "1.5", policy.CapPercentageAt.String())
}

func TestToJSONRoundTrips(t *testing.T) {
	original := value.Default()
	original.DecimalPlaces = 3
	original.NegativeInParentheses = true

	roundTripped, err := configload.FromJSON(configload.ToJSON(original))
	require.NoError(t, err)
	require.Equal(t, original.DecimalPlaces, roundTripped.DecimalPlaces)
	require.Equal(t, original.NegativeInParentheses, roundTripped.NegativeInParentheses)
}

func TestParseCalculationSetRegistersDependencyChain(t *testing.T) {
	reg := calc.NewRegistry()
	names, err := configload.ParseCalculationSet(reg, `{
		"namespace": "pricing",
		"calculations": [
			{"name": "gross_profit", "op": "subtract", "dependencies": ["sales", "cost"]},
			{"name": "gross_margin_ratio", "op": "divide", "dependencies": ["gross_profit", "sales"]}
		]
	}`)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"pricing.gross_profit", "pricing.gross_margin_ratio"}, names)

	engine := calc.NewEngine(reg)
	result, err := engine.Calculate(context.Background(), "pricing.gross_margin_ratio", map[string]any{
		"sales": 1000,
		"cost":  650,
	})
	require.NoError(t, err)
	require.Equal(t, "0.35", result.AmountAsDecimal().String())
}

func TestParseCalculationSetRejectsUnknownOp(t *testing.T) {
	reg := calc.NewRegistry()
	_, err := configload.ParseCalculationSet(reg, `{
		"namespace": "pricing",
		"calculations": [{"name": "x", "op": "xor", "dependencies": ["a", "b"]}]
	}`)
	require.Error(t, err)
	var unknown *configload.UnknownOpError
	require.ErrorAs(t, err, &unknown)
}

func TestParseCalculationSetRejectsArityMismatch(t *testing.T) {
	reg := calc.NewRegistry()
	_, err := configload.ParseCalculationSet(reg, `{
		"namespace": "pricing",
		"calculations": [{"name": "x", "op": "negate", "dependencies": ["a", "b"]}]
	}`)
	require.Error(t, err)
	var mismatch *configload.ArityMismatchError
	require.ErrorAs(t, err, &mismatch)
}
