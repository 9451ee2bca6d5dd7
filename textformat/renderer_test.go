package textformat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/warp/valuecalc/textformat"
	"github.com/warp/valuecalc/value"
)

func TestListRenderersIncludesBuiltins(t *testing.T) {
	names := textformat.ListRenderers()
	for _, want := range []string{"text", "html", "markdown"} {
		found := false
		for _, got := range names {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q among registered renderers, got %v", want, names)
		}
	}
}

func TestGetRendererUnknownNameFails(t *testing.T) {
	if _, err := textformat.GetRenderer("nope"); err == nil {
		t.Fatal("expected an error for an unregistered renderer name")
	}
}

func TestHTMLRendererWrapsInSpanWithClasses(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "-5.00", value.Money("USD"), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := textformat.GetRenderer("html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(v, textformat.RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "<span ") || !strings.HasSuffix(out, "</span>") {
		t.Fatalf("expected a span element, got %q", out)
	}
	if !strings.Contains(out, "negative") {
		t.Fatalf("expected negative class, got %q", out)
	}
	if !strings.Contains(out, `data-currency="USD"`) {
		t.Fatalf("expected currency data attribute, got %q", out)
	}
}

func TestMarkdownRendererEmboldensNegativeByDefault(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "-5.00", value.Money("USD"), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := textformat.GetRenderer("markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(v, textformat.RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "**") || !strings.HasSuffix(out, "**") {
		t.Fatalf("expected bold markdown, got %q", out)
	}
}

func TestMarkdownRendererBoldDisabled(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "-5.00", value.Money("USD"), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := textformat.GetRenderer("markdown")
	disabled := false
	out, err := r.Render(v, textformat.RenderOptions{Bold: &disabled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "**") {
		t.Fatalf("expected bold to be disabled, got %q", out)
	}
}

func TestTextRendererMatchesDefaultFormatter(t *testing.T) {
	v, err := value.FromLiteral(context.Background(), "1234.50", value.Money("USD"), value.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, _ := textformat.GetRenderer("text")
	out, err := r.Render(v, textformat.RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := (textformat.DefaultFormatter{}).Format(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != want {
		t.Fatalf("expected text renderer to match DefaultFormatter, got %q want %q", out, want)
	}
}
