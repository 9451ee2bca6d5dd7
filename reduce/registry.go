/*
registry.go - custom reducer registration

spec.md §4.3 mentions "registration of custom reducers" in passing;
SPEC_FULL.md §1.4 specifies it fully, mirroring package calc's namespacing
rules: a local name without "." is prefixed with the collection's
namespace, a dotted name or a leading ":" sigil is absolute, and a
duplicate fully-qualified name fails at registration time.
*/
package reduce

import (
	"context"
	"strings"
	"sync"

	"github.com/warp/valuecalc/value"
)

// Func is a custom reducer's signature: the same shape as Sum/Mean, minus
// WeightedMean's second slice.
type Func func(ctx context.Context, values []value.Value, opts ...Option) (value.Value, error)

// Registry is a process-wide, namespaced map of custom reducers.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Collection is a namespaced view over a Registry, returned by
// Registry.Namespace.
type Collection struct {
	registry  *Registry
	namespace string
}

// Namespace returns a Collection that auto-prefixes unqualified names with
// ns.
func (r *Registry) Namespace(ns string) *Collection {
	return &Collection{registry: r, namespace: ns}
}

// Register adds fn under localName, qualified the same way calc.Collection
// qualifies a calculation name (see qualifyReducerName in this file).
func (c *Collection) Register(localName string, fn Func) error {
	return c.registry.register(qualifyReducerName(c.namespace, localName), fn)
}

func (r *Registry) register(name string, fn Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.funcs[name]; exists {
		return &DuplicateReducerError{Name: name}
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the reducer registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Apply looks up name and invokes it, or fails with UnknownReducerError.
func (r *Registry) Apply(ctx context.Context, name string, values []value.Value, opts ...Option) (value.Value, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return value.Value{}, &UnknownReducerError{Name: name}
	}
	return fn(ctx, values, opts...)
}

func qualifyReducerName(namespace, name string) string {
	if stripped, ok := strings.CutPrefix(name, ":"); ok {
		return stripped
	}
	if strings.Contains(name, ".") {
		return name
	}
	return namespace + "." + name
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the package-level Registry that Register/Lookup
// below operate against.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds fn under name to the default Registry.
func Register(name string, fn Func) error {
	return defaultRegistry.register(name, fn)
}

// Lookup returns the reducer registered under name in the default Registry.
func Lookup(name string) (Func, bool) {
	return defaultRegistry.Lookup(name)
}
