package textformat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/warp/valuecalc/textformat"
	"github.com/warp/valuecalc/value"
)

func TestFormatMoneyIncludesFormattedAmount(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "1234.50", value.Money("USD"), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := (textformat.DefaultFormatter{}).Format(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1,234.50") && !strings.Contains(out, "1234.50") {
		t.Fatalf("expected formatted amount, got %q", out)
	}
}

func TestFormatNoneUsesPolicyNoneText(t *testing.T) {
	policy := value.Default()
	policy.NoneText = "N/A"
	n := value.None(value.Money("USD"), policy)

	out, err := (textformat.DefaultFormatter{}).Format(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "N/A" {
		t.Fatalf("expected %q, got %q", "N/A", out)
	}
}

func TestFormatPercentAppendsSign(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "0.40", value.Percent(), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := (textformat.DefaultFormatter{}).Format(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, "%") {
		t.Fatalf("expected percent suffix, got %q", out)
	}
	if !strings.HasPrefix(out, "40") {
		t.Fatalf("expected stored ratio 0.40 to render scaled to 40%%, got %q", out)
	}
}

func TestFormatPercentRatioDisplayKeepsStoredScale(t *testing.T) {
	policy := value.Default()
	policy.PercentDisplay = value.PercentDisplayRatio
	v, err := value.FromLiteral(context.Background(), "0.40", value.Percent(), policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := (textformat.DefaultFormatter{}).Format(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasSuffix(out, "%") {
		t.Fatalf("ratio display should not append a percent sign, got %q", out)
	}
	if !strings.HasPrefix(out, "0.40") {
		t.Fatalf("expected ratio display to keep stored scale, got %q", out)
	}
}

func TestFormatNegativeInParentheses(t *testing.T) {
	policy := value.Default()
	policy.NegativeInParentheses = true
	v, err := value.FromLiteral(context.Background(), "-50.00", value.Money("USD"), policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := (textformat.DefaultFormatter{}).Format(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "(") || !strings.HasSuffix(out, ")") {
		t.Fatalf("expected parenthesized negative, got %q", out)
	}
}
