package calc

// nodeKind classifies every name a subgraphBuilder visits.
type nodeKind int

const (
	kindLeaf    nodeKind = iota // resolved from the call's context map
	kindCalc                    // a registered calculation
	kindMissing                 // absent from both, tolerated under AllowPartial
)

type visitColor int

const (
	white visitColor = iota
	grey
	black
)

// subgraphBuilder implements spec.md §4.6 steps 2-4: resolving every name
// reachable from the requested target(s) as a context leaf, a registered
// calculation, or missing; detecting cycles with grey/black coloring during
// the DFS; and recording non-leaf names in topological (post-)order.
// Sharing one builder across CalculateMany's multiple targets deduplicates
// their overlapping subgraphs for free.
type subgraphBuilder struct {
	registry     *Registry
	context      map[string]any
	allowPartial bool

	color map[string]visitColor
	kind  map[string]nodeKind
	deps  map[string][]string
	order []string
	path  []string
}

func newSubgraphBuilder(reg *Registry, context map[string]any, allowPartial bool) *subgraphBuilder {
	return &subgraphBuilder{
		registry:     reg,
		context:      context,
		allowPartial: allowPartial,
		color:        make(map[string]visitColor),
		kind:         make(map[string]nodeKind),
		deps:         make(map[string][]string),
	}
}

func (b *subgraphBuilder) visit(name string) error {
	switch b.color[name] {
	case black:
		return nil
	case grey:
		cycle := append(append([]string{}, b.path...), name)
		return &CircularDependencyError{Path: cycle}
	}

	b.color[name] = grey
	b.path = append(b.path, name)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	if _, ok := b.context[name]; ok {
		b.kind[name] = kindLeaf
		b.color[name] = black
		return nil
	}
	if d, ok := b.registry.Lookup(name); ok {
		b.kind[name] = kindCalc
		b.deps[name] = d.Dependencies
		for _, dep := range d.Dependencies {
			if err := b.visit(dep); err != nil {
				return err
			}
		}
		b.order = append(b.order, name)
		b.color[name] = black
		return nil
	}
	if b.allowPartial {
		b.kind[name] = kindMissing
		b.color[name] = black
		return nil
	}
	return &MissingInputError{Name: name}
}
