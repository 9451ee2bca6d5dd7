/*
Package provenance implements the content-addressed provenance graph from
spec.md §4.7: every constructor and operator in package value optionally
records a Node describing how a Value was computed, and this package
exports the resulting DAG as JSON, a text tree, or a raw node map.

CONTENT ADDRESSING:
  A Node's ID is a stable hash over (op, ordered input ids, canonicalized
  meta, policy signature) - see hash.go. Equal inputs always yield equal
  ids, so two independently-constructed Values built the same way carry
  the same provenance id (spec.md §8 property 8).

APPEND-ONLY, DEDUPLICATED STORAGE:
  Graph is deliberately shaped like the teacher's Ledger/Store contract -
  Append-only, no Update, no Delete - except here the "idempotency key" IS
  the content hash, so writing a Node that already exists is not an error,
  it is an intentional intern hit: the existing Node is reused and its
  storage is shared (spec.md §4.7's "id interning").

DEGRADE-ON-ERROR:
  A provenance failure never aborts the arithmetic that triggered it -
  Record logs via the configured *zap.Logger and returns an empty NodeID
  unless Config.FailOnError is set, per spec.md §4.7 and §7.

SEE ALSO:
  - config.go: the toggles from spec.md §4.7's first paragraph
  - span.go: the context-scoped span stack
  - export.go: ToTraceJSON / Closure and the truncation/size-limit walk
    they share, plus Explain, which walks the graph without those limits
*/
package provenance
