package calc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/warp/valuecalc/value"
)

// liftContextValue converts a raw context entry into a value.Value per
// spec.md §4.6 step 5: a value.Value passes through unchanged (keeping its
// own unit and provenance); everything else is lifted as Dimensionless
// under policy, with a None raw lifting to a None Value.
func liftContextValue(ctx context.Context, raw any, policy value.Policy) (value.Value, error) {
	switch r := raw.(type) {
	case nil:
		return value.None(value.Dimensionless(), policy), nil
	case value.Value:
		return r, nil
	case string:
		return value.FromLiteral(ctx, r, value.Dimensionless(), policy)
	case int:
		return value.FromLiteral(ctx, strconv.Itoa(r), value.Dimensionless(), policy)
	case int64:
		return value.FromLiteral(ctx, strconv.FormatInt(r, 10), value.Dimensionless(), policy)
	case float64:
		return value.FromLiteral(ctx, strconv.FormatFloat(r, 'f', -1, 64), value.Dimensionless(), policy)
	case decimal.Decimal:
		return value.FromLiteral(ctx, r.String(), value.Dimensionless(), policy)
	default:
		return value.FromLiteral(ctx, fmt.Sprint(r), value.Dimensionless(), policy)
	}
}
