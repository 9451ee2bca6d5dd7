/*
Package calc implements the named-calculation registry and dependency
engine from spec.md §4.5/§4.6: calculations declare string dependencies on
other calculations or on context input names, and Engine resolves,
topologically orders, and evaluates the resulting subgraph per call.

REGISTRATION (registry.go):
  Registry is the process-wide fully-qualified-name -> Descriptor map.
  Collection is a namespaced view over it: Register("gross_profit", ...)
  on a Collection namespaced "pricing" stores "pricing.gross_profit"; a
  dotted name or a leading ":" sigil is stored absolute instead. There is
  no init()-time side-effect registration - domain packages expose an
  exported Register(*Registry) func (see pricing.Register) that a caller
  invokes explicitly, satisfying spec.md §4.5's "no lazy import side
  effects."

EVALUATION (engine.go):
  Engine.Calculate resolves one name's transitive dependency subgraph by
  DFS, classifying every name as a context leaf, a registered calculation,
  or missing; detects cycles with grey/black coloring; evaluates the
  subgraph in the resulting topological order against a per-call cache
  that is never shared or reused across calls.
*/
package calc
