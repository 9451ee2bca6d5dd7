package value_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/valuecalc/value"
)

func TestRegisterRateConvertsDirectEdge(t *testing.T) {
	ctx := context.Background()
	reg := value.NewConversionRegistry(nil)
	reg.RegisterRate(value.Money("USD"), value.Money("EUR"), decimal.NewFromFloat(0.9))

	usd := mustLiteral(t, ctx, "100.00", value.Money("USD"))
	eur, err := reg.Convert(ctx, usd, value.Money("EUR"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eur.AmountAsDecimal().String() != "90" {
		t.Fatalf("expected 90, got %s", eur.AmountAsDecimal())
	}
}

func TestConvertMultiHopPath(t *testing.T) {
	ctx := context.Background()
	reg := value.NewConversionRegistry(nil)
	reg.RegisterRate(value.Money("USD"), value.Money("EUR"), decimal.NewFromFloat(0.9))
	reg.RegisterRate(value.Money("EUR"), value.Money("GBP"), decimal.NewFromFloat(0.8))

	usd := mustLiteral(t, ctx, "100.00", value.Money("USD"))
	gbp, err := reg.Convert(ctx, usd, value.Money("GBP"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gbp.AmountAsDecimal().String() != "72" {
		t.Fatalf("expected 72, got %s", gbp.AmountAsDecimal())
	}
}

func TestConvertPassesConversionContextToRegisteredFunc(t *testing.T) {
	ctx := context.Background()
	reg := value.NewConversionRegistry(nil)

	// A registered conversion may need out-of-band data - here, a
	// point-in-time rate that depends on the ConversionContext's
	// Timestamp, per spec.md §3/§4.4 and §5's "may perform I/O" case.
	rates := map[int64]decimal.Decimal{
		2024: decimal.NewFromFloat(0.9),
		2025: decimal.NewFromFloat(0.85),
	}
	reg.Register(value.Money("USD"), value.Money("EUR"), func(amount decimal.Decimal, cctx value.ConversionContext) decimal.Decimal {
		year := int64(2024)
		if cctx.Timestamp != nil {
			year = int64(cctx.Timestamp.Year())
		}
		return amount.Mul(rates[year])
	})

	usd := mustLiteral(t, ctx, "100.00", value.Money("USD"))
	ts := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	eur, err := reg.Convert(ctx, usd, value.Money("EUR"), value.ConversionContext{Timestamp: &ts})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eur.AmountAsDecimal().String() != "85" {
		t.Fatalf("expected 85 using the 2025 rate, got %s", eur.AmountAsDecimal())
	}

	eurDefault, err := reg.Convert(ctx, usd, value.Money("EUR"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eurDefault.AmountAsDecimal().String() != "90" {
		t.Fatalf("expected 90 using the zero-value (2024) ConversionContext, got %s", eurDefault.AmountAsDecimal())
	}
}

func TestConvertSameUnitIsNoop(t *testing.T) {
	ctx := context.Background()
	usd := mustLiteral(t, ctx, "42.00", value.Money("USD"))
	out, err := value.DefaultRegistry().Convert(ctx, usd, value.Money("USD"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equals(usd) {
		t.Fatal("expected same-unit Convert to return the input unchanged")
	}
}

func TestConvertMissingPathStrictFails(t *testing.T) {
	ctx := context.Background()
	reg := value.NewConversionRegistry(nil)
	usd := mustLiteral(t, ctx, "10.00", value.Money("USD"))

	if _, err := reg.Convert(ctx, usd, value.Money("JPY")); err == nil {
		t.Fatal("expected MissingConversionError under the default strict policy")
	}
}
