package calc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/value"
)

func newPricingRegistry(t *testing.T) *calc.Registry {
	t.Helper()
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	err := pricing.Register("gross_profit", []string{"sales", "cost"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return value.Subtract(ctx, args[0], args[1])
	})
	require.NoError(t, err)

	err = pricing.Register("gross_margin_ratio", []string{"gross_profit", "sales"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return value.Divide(ctx, args[0], args[1])
	})
	require.NoError(t, err)

	return reg
}

// Scenario F from spec.md §8.
func TestCalculateResolvesDependencyChain(t *testing.T) {
	reg := newPricingRegistry(t)
	engine := calc.NewEngine(reg)
	ctx := context.Background()

	result, err := engine.Calculate(ctx, "pricing.gross_margin_ratio", map[string]any{
		"sales": 1000,
		"cost":  650,
	})
	require.NoError(t, err)
	require.Equal(t, "0.35", result.AmountAsDecimal().String())
}

func TestDependenciesIncludesTransitiveContextLeaves(t *testing.T) {
	reg := newPricingRegistry(t)
	engine := calc.NewEngine(reg)

	deps, err := engine.Dependencies("pricing.gross_margin_ratio")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"pricing.gross_profit", "sales", "cost"}, deps)
}

func TestCalculateManySharesEvaluationCache(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")
	calls := 0
	require.NoError(t, pricing.Register("shared", []string{"base"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		calls++
		return args[0], nil
	}))
	require.NoError(t, pricing.Register("a", []string{"shared"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return args[0], nil
	}))
	require.NoError(t, pricing.Register("b", []string{"shared"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return args[0], nil
	}))

	engine := calc.NewEngine(reg)
	_, err := engine.CalculateMany(context.Background(), []string{"pricing.a", "pricing.b"}, map[string]any{"base": 5})
	require.NoError(t, err)
	require.Equal(t, 1, calls, "expected shared dependency to be evaluated exactly once per call")
}

// Scenario G from spec.md §8.
func TestValidateDetectsCycle(t *testing.T) {
	reg := calc.NewRegistry()
	top := reg.Namespace("")
	require.NoError(t, top.Register(":A", []string{"B"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return args[0], nil
	}))
	require.NoError(t, top.Register(":B", []string{"A"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return args[0], nil
	}))

	engine := calc.NewEngine(reg)
	err := engine.Validate("A")
	require.Error(t, err)
	var cycle *calc.CircularDependencyError
	require.ErrorAs(t, err, &cycle)

	_, err = engine.Calculate(context.Background(), "A", map[string]any{})
	require.Error(t, err)
	require.ErrorAs(t, err, &cycle)
}

func TestUnknownTopLevelCalculationFails(t *testing.T) {
	reg := calc.NewRegistry()
	engine := calc.NewEngine(reg)

	_, err := engine.Calculate(context.Background(), "nonexistent", map[string]any{})
	require.Error(t, err)
	var unknown *calc.UnknownCalculationError
	require.ErrorAs(t, err, &unknown)
}

func TestMissingInputFailsClosedWithoutAllowPartial(t *testing.T) {
	reg := newPricingRegistry(t)
	engine := calc.NewEngine(reg)

	_, err := engine.Calculate(context.Background(), "pricing.gross_margin_ratio", map[string]any{"sales": 1000})
	require.Error(t, err)
	var missing *calc.MissingInputError
	require.ErrorAs(t, err, &missing)
}

func TestAllowPartialSubstitutesNoneForMissingInput(t *testing.T) {
	reg := newPricingRegistry(t)
	engine := calc.NewEngine(reg)

	result, err := engine.Calculate(context.Background(), "pricing.gross_margin_ratio", map[string]any{"sales": 1000}, calc.AllowPartial())
	require.NoError(t, err)
	require.True(t, result.IsNone())
}

func TestContextValueLiftedAsLiteralValue(t *testing.T) {
	reg := calc.NewRegistry()
	top := reg.Namespace("")
	require.NoError(t, top.Register(":passthrough", []string{"x"}, func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return args[0], nil
	}))

	engine := calc.NewEngine(reg)
	v, err := value.FromLiteral(context.Background(), "42.5", value.Money("USD"), value.Default())
	require.NoError(t, err)

	result, err := engine.Calculate(context.Background(), "passthrough", map[string]any{"x": v})
	require.NoError(t, err)
	require.True(t, result.Unit().SameUnit(value.Money("USD")))
	require.Equal(t, "42.5", result.AmountAsDecimal().String())
}
