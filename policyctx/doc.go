/*
Package policyctx implements the context-scoped stacks spec.md §4.2
describes as thread-local: current PolicyResolution mode, current
NullBehavior, and current ConversionPolicy. (The current-Policy stack
itself lives in package value, as value/context.go, built on the generic
Slot primitive here - value.Policy is the one typed stack that would
otherwise force this package to depend on value, and value already depends
on policyctx for resolution/null-behavior, so the Policy-typed instantiation
has to live on value's side of that edge.)

SCOPED ACQUISITION:
  context.Context is already an immutable, hierarchically-scoped value
  store, so "push a stack frame, guarantee pop on every exit path" falls
  out for free: Use derives a child context carrying the new top-of-stack
  entry, and the parent is never touched. When the scope function returns
  (however it returns - normally, via panic recovery upstream, or via an
  error return), the derived context simply stops being referenced. There
  is nothing to unwind.

  With(ctx, v, fn) is the decorator-style form spec.md §4.2 asks for: it
  runs fn with v pushed, and is exactly Use followed by a call.

CONCURRENCY:
  Context chains are themselves per-goroutine by convention once you stop
  sharing a ctx value across goroutines without re-deriving, which is the
  normal Go calling convention. Mutating one goroutine's derived context
  can never affect a sibling's, satisfying spec.md §4.2's "mutation in one
  context never affects another."
*/
package policyctx
