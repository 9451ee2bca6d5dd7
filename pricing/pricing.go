package pricing

import (
	"context"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/value"
)

// Namespace is the calc namespace pricing's calculations register under.
const Namespace = "pricing"

// Register adds pricing's calculations to reg under the "pricing"
// namespace:
//
//	pricing.gross_profit(sales, cost)        = sales - cost
//	pricing.gross_margin_ratio(gross_profit, sales) = gross_profit / sales
//
// Calling Register twice on the same Registry fails with
// DuplicateCalculationError, matching every other calc.Collection.Register
// call.
func Register(reg *calc.Registry) error {
	collection := reg.Namespace(Namespace)

	if err := collection.Register("gross_profit", []string{"sales", "cost"}, grossProfit,
		calc.WithInputUnits(value.Money(""), value.Money("")),
	); err != nil {
		return err
	}

	if err := collection.Register("gross_margin_ratio", []string{"gross_profit", "sales"}, grossMarginRatio,
		calc.WithReturnUnit(value.Ratio()),
	); err != nil {
		return err
	}

	return nil
}

func grossProfit(ctx context.Context, args ...value.Value) (value.Value, error) {
	sales, cost := args[0], args[1]
	return value.Subtract(ctx, sales, cost)
}

func grossMarginRatio(ctx context.Context, args ...value.Value) (value.Value, error) {
	grossProfit, sales := args[0], args[1]
	return value.Divide(ctx, grossProfit, sales)
}

// GrossMarginPercent runs the pricing.gross_margin_ratio calculation
// through engine and reinterprets the result as a Percent Value, the
// Scenario A "as_percentage()" step spec.md describes as a caller-side
// conversion rather than part of the calculation itself.
func GrossMarginPercent(ctx context.Context, engine *calc.Engine, callContext map[string]any, opts ...calc.Option) (value.Value, error) {
	ratio, err := engine.Calculate(ctx, Namespace+".gross_margin_ratio", callContext, opts...)
	if err != nil {
		return value.Value{}, err
	}
	return value.AsPercentage(ctx, ratio)
}
