package calc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCalculation is returned when a requested top-level name is
	// neither a registered calculation nor present in the call's context.
	ErrUnknownCalculation = errors.New("calc: unknown calculation")

	// ErrDuplicateCalculation is returned by Register when the fully
	// qualified name is already taken.
	ErrDuplicateCalculation = errors.New("calc: duplicate calculation")

	// ErrInvalidName is returned by Register for an empty or malformed name.
	ErrInvalidName = errors.New("calc: invalid name")

	// ErrCircularDependency is returned when the declared dependency graph
	// contains a cycle reachable from the requested name.
	ErrCircularDependency = errors.New("calc: circular dependency")

	// ErrMissingInput is returned when a transitive dependency resolves to
	// neither a context entry nor a registered calculation, and the call
	// did not set AllowPartial.
	ErrMissingInput = errors.New("calc: missing input")
)

// UnknownCalculationError carries the unresolved top-level name.
type UnknownCalculationError struct {
	Name string
}

func (e *UnknownCalculationError) Error() string {
	return fmt.Sprintf("calc: unknown calculation %q", e.Name)
}

func (e *UnknownCalculationError) Unwrap() error { return ErrUnknownCalculation }

// DuplicateCalculationError carries the fully qualified name already
// registered.
type DuplicateCalculationError struct {
	Name string
}

func (e *DuplicateCalculationError) Error() string {
	return fmt.Sprintf("calc: duplicate calculation %q", e.Name)
}

func (e *DuplicateCalculationError) Unwrap() error { return ErrDuplicateCalculation }

// InvalidNameError carries the rejected name and why it was rejected.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("calc: invalid name %q: %s", e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// CircularDependencyError carries the cycle as a name path, e.g.
// ["A", "B", "A"].
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("calc: circular dependency: %s", strings.Join(e.Path, " -> "))
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// MissingInputError carries the dependency name that could not be resolved.
type MissingInputError struct {
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("calc: missing input %q", e.Name)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }
