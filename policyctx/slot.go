package policyctx

import "context"

// slotKey is a distinct comparable type per Slot instance, so two Slot[T]
// values (even with the same T) never collide in a context.Value lookup.
type slotKey struct{ _ byte }

// Slot is a single context-scoped stack frame for a value of type T. The
// "stack" is the context.Context chain itself: Use derives a new context
// with the frame pushed, and popping is implicit in no longer holding a
// reference to the derived context.
type Slot[T any] struct {
	key *slotKey
}

// NewSlot allocates a new, independent Slot[T].
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{key: new(slotKey)}
}

// Use returns a child context with v pushed as the new top-of-stack value
// for this slot.
func (s *Slot[T]) Use(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, s.key, v)
}

// From returns the top-of-stack value for this slot, or the zero value and
// false if nothing has been pushed on ctx's chain.
func (s *Slot[T]) From(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(s.key).(T)
	return v, ok
}

// FromOrDefault returns the top-of-stack value, or def if unset.
func (s *Slot[T]) FromOrDefault(ctx context.Context, def T) T {
	if v, ok := s.From(ctx); ok {
		return v
	}
	return def
}

// With runs fn with v pushed onto this slot, then returns fn's error. The
// pushed value is only ever visible to fn and whatever fn calls - it never
// leaks back into ctx.
func (s *Slot[T]) With(ctx context.Context, v T, fn func(context.Context) error) error {
	return fn(s.Use(ctx, v))
}
