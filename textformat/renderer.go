/*
renderer.go - a pluggable, named Renderer registry

The reference Formatter is one output shape: plain text. Some callers need
HTML or Markdown instead without forking package textformat, so this file
adds a second, complementary axis: a process-wide name -> Renderer
registry, in the shape of a small plugin system rather than a single fixed
interface. RegisterRenderer/GetRenderer/ListRenderers manage the registry;
TextRenderer, HTMLRenderer, and MarkdownRenderer are registered under
"text", "html", and "markdown" at package init.
*/
package textformat

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/warp/valuecalc/value"
)

// Renderer renders a Value to a string under a named output format,
// consulting opts for format-specific customization.
type Renderer interface {
	Render(v value.Value, opts RenderOptions) (string, error)
}

// RenderOptions customizes a Renderer's output. Not every field applies to
// every renderer; each Renderer documents which it consumes.
type RenderOptions struct {
	// CSSClasses are appended to HTMLRenderer's class list.
	CSSClasses []string
	// Attributes are appended to HTMLRenderer's tag as name="value" pairs.
	Attributes map[string]string
	// Tag is the HTML element HTMLRenderer wraps the value in. Defaults to
	// "span".
	Tag string
	// Bold controls whether MarkdownRenderer emboldens a negative amount.
	// Defaults to true; set explicitly to false to disable.
	Bold *bool
	// Italic makes MarkdownRenderer wrap a Percent value in emphasis.
	Italic bool
	// Code wraps MarkdownRenderer's output in an inline code span.
	Code bool
}

func (o RenderOptions) bold() bool {
	return o.Bold == nil || *o.Bold
}

var (
	renderersMu sync.RWMutex
	renderers   = map[string]Renderer{}
)

// RegisterRenderer adds renderer under name, replacing any renderer
// previously registered under the same name.
func RegisterRenderer(name string, renderer Renderer) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	renderers[name] = renderer
}

// GetRenderer looks up a renderer previously registered with
// RegisterRenderer.
func GetRenderer(name string) (Renderer, error) {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("textformat: no renderer registered with name %q", name)
	}
	return r, nil
}

// ListRenderers returns every registered renderer name, sorted.
func ListRenderers() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterRenderer("text", TextRenderer{})
	RegisterRenderer("html", HTMLRenderer{})
	RegisterRenderer("markdown", MarkdownRenderer{})
}

// TextRenderer renders through DefaultFormatter, ignoring opts entirely.
type TextRenderer struct{}

func (TextRenderer) Render(v value.Value, _ RenderOptions) (string, error) {
	return DefaultFormatter{}.Format(v)
}

// HTMLRenderer wraps DefaultFormatter's output in a tag carrying CSS
// classes describing the Value: "fv", "none"/"negative"/"positive", a
// "unit-<category>" class, and "percentage" for Percent values.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(v value.Value, opts RenderOptions) (string, error) {
	rendered, err := DefaultFormatter{}.Format(v)
	if err != nil {
		return "", err
	}

	classes := []string{"fv"}
	switch {
	case v.IsNone():
		classes = append(classes, "none")
	case v.IsNegative():
		classes = append(classes, "negative")
	default:
		classes = append(classes, "positive")
	}
	classes = append(classes, "unit-"+string(v.Unit().Category))
	if v.Unit().Category == value.CategoryPercent {
		classes = append(classes, "percentage")
	}
	classes = append(classes, opts.CSSClasses...)

	attrs := []string{fmt.Sprintf(`class="%s"`, strings.Join(classes, " "))}
	if v.Unit().IsMoney() {
		attrs = append(attrs, fmt.Sprintf(`data-currency="%s"`, v.Unit().Code))
	}
	attrNames := make([]string, 0, len(opts.Attributes))
	for name := range opts.Attributes {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	for _, name := range attrNames {
		attrs = append(attrs, fmt.Sprintf(`%s="%s"`, name, opts.Attributes[name]))
	}

	tag := opts.Tag
	if tag == "" {
		tag = "span"
	}
	return fmt.Sprintf("<%s %s>%s</%s>", tag, strings.Join(attrs, " "), rendered, tag), nil
}

// MarkdownRenderer wraps DefaultFormatter's output in Markdown emphasis:
// bold for a negative amount (opts.Bold, default true), italic for a
// Percent value (opts.Italic), and an inline code span (opts.Code).
type MarkdownRenderer struct{}

func (MarkdownRenderer) Render(v value.Value, opts RenderOptions) (string, error) {
	rendered, err := DefaultFormatter{}.Format(v)
	if err != nil {
		return "", err
	}

	text := rendered
	if opts.Code {
		text = "`" + text + "`"
	}
	if opts.Italic && v.Unit().Category == value.CategoryPercent {
		text = "*" + text + "*"
	}
	if opts.bold() && v.IsNegative() {
		text = "**" + text + "**"
	}
	return text, nil
}
