package calc

import (
	"context"

	"github.com/warp/valuecalc/provenance"
	"github.com/warp/valuecalc/value"
)

// Option customizes a single Calculate/CalculateMany call.
type Option func(*callOptions)

type callOptions struct {
	policy       *value.Policy
	allowPartial bool
}

// WithPolicy pins the call policy, taking precedence over any context
// policy (see callOptions.resolvePolicy).
func WithPolicy(p value.Policy) Option {
	return func(o *callOptions) { o.policy = &p }
}

// AllowPartial makes missing context inputs lift to None Values instead of
// failing the call with MissingInputError (spec.md §4.6).
func AllowPartial() Option {
	return func(o *callOptions) { o.allowPartial = true }
}

func resolveCallOptions(opts []Option) callOptions {
	var o callOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o callOptions) resolvePolicy(ctx context.Context) value.Policy {
	if o.policy != nil {
		return *o.policy
	}
	if p, ok := value.PolicyFromContext(ctx); ok {
		return p
	}
	return value.Default()
}

// Engine evaluates named calculations against a Registry. The zero value is
// not usable; construct with NewEngine.
type Engine struct {
	registry *Registry
}

// NewEngine constructs an Engine bound to reg. A nil reg uses
// DefaultRegistry.
func NewEngine(reg *Registry) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Engine{registry: reg}
}

// Calculate evaluates name against context, returning its resulting Value.
func (e *Engine) Calculate(ctx context.Context, name string, callContext map[string]any, opts ...Option) (value.Value, error) {
	results, err := e.CalculateMany(ctx, []string{name}, callContext, opts...)
	if err != nil {
		return value.Value{}, err
	}
	return results[name], nil
}

// CalculateMany evaluates every name in names against one shared context
// and per-call evaluation cache - each overlapping dependency is resolved
// and invoked at most once across the whole batch (spec.md §4.6 caching
// semantics).
func (e *Engine) CalculateMany(ctx context.Context, names []string, callContext map[string]any, opts ...Option) (map[string]value.Value, error) {
	o := resolveCallOptions(opts)
	policy := o.resolvePolicy(ctx)

	for _, n := range names {
		if _, inContext := callContext[n]; inContext {
			continue
		}
		if _, ok := e.registry.Lookup(n); !ok {
			return nil, &UnknownCalculationError{Name: n}
		}
	}

	b := newSubgraphBuilder(e.registry, callContext, o.allowPartial)
	for _, n := range names {
		if err := b.visit(n); err != nil {
			return nil, err
		}
	}

	cache, err := e.evaluate(ctx, b, callContext, policy)
	if err != nil {
		return nil, err
	}

	results := make(map[string]value.Value, len(names))
	for _, n := range names {
		results[n] = cache[n]
	}
	return results, nil
}

// evaluate seeds the per-call cache from context leaves and missing-but-
// tolerated names, then runs every calc node in topological order exactly
// once, resolving its positional arguments from the cache.
func (e *Engine) evaluate(ctx context.Context, b *subgraphBuilder, callContext map[string]any, policy value.Policy) (map[string]value.Value, error) {
	cache := make(map[string]value.Value, len(b.kind))

	for name, kind := range b.kind {
		switch kind {
		case kindLeaf:
			v, err := liftContextValue(ctx, callContext[name], policy)
			if err != nil {
				return nil, err
			}
			cache[name] = v
		case kindMissing:
			cache[name] = value.None(value.Dimensionless(), policy)
		}
	}

	for _, name := range b.order {
		d, _ := e.registry.Lookup(name)
		args := make([]value.Value, len(d.Dependencies))
		inputIDs := make([]provenance.NodeID, len(d.Dependencies))
		for i, dep := range d.Dependencies {
			args[i] = cache[dep]
			inputIDs[i] = args[i].ProvenanceID()
		}

		result, err := d.Fn(ctx, args...)
		if err != nil {
			return nil, err
		}

		id, _ := provenance.Default().Record(ctx, provenance.KindCalculation, string(value.CalcOp(name)), inputIDs,
			map[string]any{"calculation": name, "input_names": d.Dependencies}, result.Policy().Signature())
		cache[name] = result.WithProvenanceID(id)
	}
	return cache, nil
}

// Dependencies returns name's full transitive dependency set (calculations
// and context leaves alike), deduplicated, in discovery order.
func (e *Engine) Dependencies(name string) ([]string, error) {
	if _, ok := e.registry.Lookup(name); !ok {
		return nil, &UnknownCalculationError{Name: name}
	}
	seen := make(map[string]bool)
	var result []string
	var walk func(string)
	walk = func(n string) {
		d, ok := e.registry.Lookup(n)
		if !ok {
			return
		}
		for _, dep := range d.Dependencies {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			result = append(result, dep)
			walk(dep)
		}
	}
	walk(name)
	return result, nil
}

// Validate builds name's dependency subgraph without evaluating it,
// surfacing UnknownCalculation or CircularDependency structurally.
func (e *Engine) Validate(name string) error {
	if _, ok := e.registry.Lookup(name); !ok {
		return &UnknownCalculationError{Name: name}
	}
	b := newSubgraphBuilder(e.registry, map[string]any{}, true)
	return b.visit(name)
}
