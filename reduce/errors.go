package reduce

import (
	"errors"
	"fmt"
)

var (
	// ErrNullInReduction is returned when ReductionRaise mode encounters a
	// None element.
	ErrNullInReduction = errors.New("reduce: null in reduction")

	// ErrDuplicateReducer is returned when Register is called twice for the
	// same fully-qualified reducer name.
	ErrDuplicateReducer = errors.New("reduce: duplicate reducer")

	// ErrUnknownReducer is returned when Lookup or Apply cannot find a
	// registered reducer by name.
	ErrUnknownReducer = errors.New("reduce: unknown reducer")
)

// NullInReductionError carries the reducer op name that encountered a None
// element under ReductionRaise.
type NullInReductionError struct {
	Op string
}

func (e *NullInReductionError) Error() string {
	return fmt.Sprintf("reduce: null element in %s under raise mode", e.Op)
}

func (e *NullInReductionError) Unwrap() error { return ErrNullInReduction }

// DuplicateReducerError carries the name that was already registered.
type DuplicateReducerError struct {
	Name string
}

func (e *DuplicateReducerError) Error() string {
	return fmt.Sprintf("reduce: duplicate reducer %q", e.Name)
}

func (e *DuplicateReducerError) Unwrap() error { return ErrDuplicateReducer }

// UnknownReducerError carries the name that could not be resolved.
type UnknownReducerError struct {
	Name string
}

func (e *UnknownReducerError) Error() string {
	return fmt.Sprintf("reduce: unknown reducer %q", e.Name)
}

func (e *UnknownReducerError) Unwrap() error { return ErrUnknownReducer }
