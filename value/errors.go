/*
errors.go - Centralized error types for the value package

Mirrors the sentinel + structured-error shape used throughout this module:
sentinel errors for errors.Is() checks, structured types carrying the
offending unit/operand/path for callers that need detail.
*/
package value

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLiteral is returned when a raw literal cannot be parsed as a decimal
	// under a strict policy. Under a non-strict policy the same condition yields a
	// none-Value instead of this error.
	ErrInvalidLiteral = errors.New("value: invalid literal")

	// ErrInvalidOperand is returned when an operand is none under raise binary mode.
	ErrInvalidOperand = errors.New("value: invalid operand")

	// ErrIncompatibleUnits is returned when the unit algebra has no result for
	// the given (left, op, right) triple.
	ErrIncompatibleUnits = errors.New("value: incompatible units")

	// ErrPolicyConflict is returned by strict_match policy resolution when the
	// two operands carry different policy signatures.
	ErrPolicyConflict = errors.New("value: policy conflict")

	// ErrDivisionByZero is returned by arithmetic-strict division by zero.
	ErrDivisionByZero = errors.New("value: division by zero")

	// ErrMissingConversion is returned when no conversion path exists and the
	// active ConversionPolicy is strict.
	ErrMissingConversion = errors.New("value: missing conversion path")
)

// IncompatibleUnitsError carries the operand units and operator that the
// unit algebra rejected.
type IncompatibleUnitsError struct {
	Left  Unit
	Op    Op
	Right Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("value: incompatible units: %s %s %s", e.Left, e.Op, e.Right)
}

func (e *IncompatibleUnitsError) Unwrap() error { return ErrIncompatibleUnits }

// PolicyConflictError carries the conflicting policy signatures.
type PolicyConflictError struct {
	LeftSignature  string
	RightSignature string
}

func (e *PolicyConflictError) Error() string {
	return fmt.Sprintf("value: policy conflict: %s != %s", e.LeftSignature, e.RightSignature)
}

func (e *PolicyConflictError) Unwrap() error { return ErrPolicyConflict }

// InvalidLiteralError carries the raw literal that failed to parse.
type InvalidLiteralError struct {
	Raw any
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("value: invalid literal %v", e.Raw)
}

func (e *InvalidLiteralError) Unwrap() error { return ErrInvalidLiteral }

// MissingConversionError carries the units a conversion was attempted between.
type MissingConversionError struct {
	From Unit
	To   Unit
}

func (e *MissingConversionError) Error() string {
	return fmt.Sprintf("value: no conversion path from %s to %s", e.From, e.To)
}

func (e *MissingConversionError) Unwrap() error { return ErrMissingConversion }
