package calc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/value"
)

func echoFunc(v value.Value) calc.Func {
	return func(ctx context.Context, args ...value.Value) (value.Value, error) {
		return v, nil
	}
}

func TestRegisterQualifiesLocalNameWithNamespace(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	err := pricing.Register("gross_profit", []string{"sales", "cost"}, echoFunc(value.Value{}))
	require.NoError(t, err)

	_, ok := reg.Lookup("pricing.gross_profit")
	require.True(t, ok)
}

func TestRegisterAbsoluteNameIsNotPrefixed(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	require.NoError(t, pricing.Register("top.level_name", nil, echoFunc(value.Value{})))
	_, ok := reg.Lookup("top.level_name")
	require.True(t, ok)
	_, prefixed := reg.Lookup("pricing.top.level_name")
	require.False(t, prefixed)
}

func TestRegisterSigilStripsPrefixAndStaysAbsolute(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	require.NoError(t, pricing.Register(":shared_total", nil, echoFunc(value.Value{})))
	_, ok := reg.Lookup("shared_total")
	require.True(t, ok)
}

func TestRegisterDuplicateFullyQualifiedNameFails(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	require.NoError(t, pricing.Register("gross_profit", nil, echoFunc(value.Value{})))
	err := pricing.Register("gross_profit", nil, echoFunc(value.Value{}))
	require.Error(t, err)
	var dup *calc.DuplicateCalculationError
	require.ErrorAs(t, err, &dup)
}

func TestRegisterInvalidNameFails(t *testing.T) {
	reg := calc.NewRegistry()
	pricing := reg.Namespace("pricing")

	err := pricing.Register(":", nil, echoFunc(value.Value{}))
	require.Error(t, err)
	var invalid *calc.InvalidNameError
	require.ErrorAs(t, err, &invalid)
}
