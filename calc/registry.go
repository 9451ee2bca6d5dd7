package calc

import (
	"context"
	"strings"
	"sync"

	"github.com/warp/valuecalc/value"
)

// Func is a calculation function. Arguments are resolved positionally in
// the order the Descriptor declared its Dependencies.
type Func func(ctx context.Context, args ...value.Value) (value.Value, error)

// Descriptor is spec.md §4.5's Calculation Descriptor: a fully-qualified
// name, its ordered dependency names, the function itself, and optional
// documentation-only unit declarations.
type Descriptor struct {
	Name         string
	Dependencies []string
	Fn           Func
	ReturnUnit   *value.Unit
	InputUnits   []value.Unit
}

// Registry is the process-wide fully-qualified-name -> Descriptor map.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Namespace returns a Collection that auto-prefixes unqualified local names
// registered through it with ns.
func (r *Registry) Namespace(ns string) *Collection {
	return &Collection{registry: r, namespace: ns}
}

func (r *Registry) register(d *Descriptor) error {
	if err := validateName(d.Name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.descriptors[d.Name]; exists {
		return &DuplicateCalculationError{Name: d.Name}
	}
	r.descriptors[d.Name] = d
	return nil
}

// Lookup returns the Descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[name]
	return d, ok
}

// Names returns every registered fully-qualified name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.descriptors))
	for n := range r.descriptors {
		out = append(out, n)
	}
	return out
}

// Collection is a namespaced view over a Registry, returned by
// Registry.Namespace.
type Collection struct {
	registry  *Registry
	namespace string
}

// RegisterOption customizes a Register call with the Descriptor's optional,
// documentation-only unit fields.
type RegisterOption func(*Descriptor)

// WithReturnUnit documents a calculation's declared return unit. It is
// never consulted by the engine - only by introspection callers.
func WithReturnUnit(u value.Unit) RegisterOption {
	return func(d *Descriptor) { d.ReturnUnit = &u }
}

// WithInputUnits documents a calculation's declared input units.
func WithInputUnits(units ...value.Unit) RegisterOption {
	return func(d *Descriptor) { d.InputUnits = units }
}

// Register adds fn under localName with the given dependency names,
// qualified per spec.md §4.5: a local name without "." is prefixed with
// c's namespace; a dotted name or one with a leading ":" sigil (stripped)
// is stored absolute. Duplicate fully-qualified registration fails.
func (c *Collection) Register(localName string, dependencies []string, fn Func, opts ...RegisterOption) error {
	d := &Descriptor{
		Name:         qualify(c.namespace, localName),
		Dependencies: append([]string{}, dependencies...),
		Fn:           fn,
	}
	for _, apply := range opts {
		apply(d)
	}
	return c.registry.register(d)
}

func qualify(namespace, name string) string {
	if stripped, ok := strings.CutPrefix(name, ":"); ok {
		return stripped
	}
	if strings.Contains(name, ".") {
		return name
	}
	return namespace + "." + name
}

func validateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	}
	if strings.ContainsAny(name, " \t\n") {
		return &InvalidNameError{Name: name, Reason: "name contains whitespace"}
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return &InvalidNameError{Name: name, Reason: "name has a leading or trailing dot"}
	}
	return nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide Registry package pricing and
// other domain packages register against by default.
func DefaultRegistry() *Registry { return defaultRegistry }

// Load runs each loader against reg in order, materializing every
// calculation before any Calculate call - the explicit loader step spec.md
// §4.5 requires in place of init()-time side effects. A domain package's
// exported Register(*Registry) func is a loader.
func Load(reg *Registry, loaders ...func(*Registry) error) error {
	for _, l := range loaders {
		if err := l(reg); err != nil {
			return err
		}
	}
	return nil
}
