/*
Package value implements the immutable Value type: a decimal amount paired
with a unit tag and a policy, the foundational type this module builds on.

KEY CONCEPTS IN THIS PACKAGE:
  - Value: immutable (amount, unit, policy, provenance id) triple
  - Unit: category + optional code (Money/USD, Ratio, Percent, Dimensionless, ...)
  - Policy: immutable bundle of rounding, display and strictness rules
  - ConversionRegistry: registered (from, to) conversion edges with path search

DESIGN PRINCIPLES:
  1. Immutability: every operation returns a new Value; none mutate receivers.
  2. Precision: all amounts are shopspring/decimal.Decimal, never float64.
  3. Null propagation: a "none" Value carries no amount but keeps its unit
     and policy, and binary ops consult policyctx.NullBehavior to decide
     whether to propagate or raise.
  4. Provenance: FromLiteral, Zero and every operator record a node in the
     default provenance graph unless tracking is disabled; None records
     nothing.

SEE ALSO:
  - policy.go: Policy fields and the resolution rules in arithmetic.go
  - unitalgebra.go: the (left, op, right) -> result unit dispatch table
  - convert.go: the pluggable unit-conversion subsystem
*/
package value
