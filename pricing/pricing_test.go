package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/pricing"
	"github.com/warp/valuecalc/textformat"
	"github.com/warp/valuecalc/value"
)

func moneyValue(t *testing.T, amount string) value.Value {
	t.Helper()
	v, err := value.FromLiteral(context.Background(), amount, value.Money("USD"), value.Default())
	require.NoError(t, err)
	return v
}

// Scenario A from spec.md §8.
func TestGrossMarginScenario(t *testing.T) {
	reg := calc.NewRegistry()
	require.NoError(t, calc.Load(reg, pricing.Register))
	engine := calc.NewEngine(reg)
	ctx := context.Background()

	callContext := map[string]any{
		"sales": moneyValue(t, "1000"),
		"cost":  moneyValue(t, "600"),
	}

	result, err := engine.Calculate(ctx, "pricing.gross_profit", callContext)
	require.NoError(t, err)
	require.Equal(t, "400", result.AmountAsDecimal().String())
	require.True(t, result.Unit().SameUnit(value.Money("USD")))

	ratio, err := engine.Calculate(ctx, "pricing.gross_margin_ratio", callContext)
	require.NoError(t, err)
	require.Equal(t, "0.4", ratio.AmountAsDecimal().String())
	require.True(t, ratio.Unit().SameUnit(value.Ratio()))

	percent, err := pricing.GrossMarginPercent(ctx, engine, callContext)
	require.NoError(t, err)

	rendered, err := (textformat.DefaultFormatter{}).Format(percent)
	require.NoError(t, err)
	require.Equal(t, "40.00%", rendered)
}

func TestRegisterTwiceFailsWithDuplicate(t *testing.T) {
	reg := calc.NewRegistry()
	require.NoError(t, pricing.Register(reg))
	err := pricing.Register(reg)
	require.Error(t, err)
	var dup *calc.DuplicateCalculationError
	require.ErrorAs(t, err, &dup)
}

func TestGrossProfitRecordsProvenance(t *testing.T) {
	reg := calc.NewRegistry()
	require.NoError(t, pricing.Register(reg))
	engine := calc.NewEngine(reg)

	result, err := engine.Calculate(context.Background(), "pricing.gross_profit", map[string]any{
		"sales": 1000,
		"cost":  600,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.ProvenanceID())
}
