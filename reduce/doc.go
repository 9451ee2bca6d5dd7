/*
Package reduce implements the fold-like operations from spec.md §4.3: Sum,
Mean, and WeightedMean over a sequence of value.Values, plus registration of
custom reducers.

NONE HANDLING:
  Every reducer consults policyctx.NullBehavior.Reduction unless a caller
  overrides it with WithMode:
    skip      - drop None elements before folding
    propagate - any None element collapses the whole result to None
    zero      - replace a None element's amount with zero; it still counts
                as present for Mean's denominator
    raise     - any None element fails with NullInReductionError

UNIT AND POLICY SELECTION:
  The result unit is the first non-None element's unit (Dimensionless if
  every element is None); mixing SameUnit-incompatible elements fails with
  IncompatibleUnitsError, except that Ratio and Percent elements may be
  mixed. The result policy is the first non-None element's
  policy, falling back to the active context policy, then value.Default().

CUSTOM REDUCERS:
  Register/Lookup let a caller add a domain reducer (e.g. "median") to the
  process-wide registry without forking this package, mirroring package
  calc's namespacing rules (see registry.go).
*/
package reduce
