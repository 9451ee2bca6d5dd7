/*
convert.go - the conversion registry from spec.md §4.4

ConversionRegistry holds a directed edge graph of registered unit
conversions. Edges are stored behind an atomic.Pointer so that Convert -
called from arbitrary goroutines, possibly concurrently with Register -
always sees one complete, consistent snapshot of the graph rather than a
partially-updated map; this mirrors the copy-on-write registries elsewhere
in the teacher's codebase (factory/policy.go builds one fixed table per
call rather than mutating shared state in place).

When no direct edge exists, Convert searches for a path breadth-first over
the snapshot and composes each hop's conversion function in turn. A missing
path fails closed (MissingConversionError) under a strict
policyctx.ConversionPolicy, or degrades to a logged None under a
non-strict one.
*/
package value

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/valuecalc/policyctx"
)

// ConversionContext carries optional out-of-band data a registered
// ConvertFunc may need - spec.md §3's example is a point-in-time rate
// lookup, so Timestamp lets a fn choose which rate was in effect. Metadata
// is open-ended for anything else a fn needs (e.g. a source system tag).
// CorrelationID ties a Convert call to its log record and provenance node;
// a zero CorrelationID is replaced with a fresh uuid.New() by Convert.
type ConversionContext struct {
	Timestamp     *time.Time
	Metadata      map[string]any
	CorrelationID uuid.UUID
}

// ConvertFunc maps an amount in one unit to the equivalent amount in
// another, given the ConversionContext the caller supplied to Convert.
// Registered per directed (from, to) edge.
type ConvertFunc func(amount decimal.Decimal, cctx ConversionContext) decimal.Decimal

type edge struct {
	to      Unit
	convert ConvertFunc
}

// ConversionRegistry is a directed graph of registered unit conversions.
// The zero value is not usable; construct with NewConversionRegistry.
type ConversionRegistry struct {
	edges  atomic.Pointer[map[Unit][]edge]
	logger *zap.Logger
}

// NewConversionRegistry constructs an empty registry. A nil logger is
// replaced with zap.NewNop().
func NewConversionRegistry(logger *zap.Logger) *ConversionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ConversionRegistry{logger: logger}
	empty := map[Unit][]edge{}
	r.edges.Store(&empty)
	return r
}

// RegisterRate registers a direct, linear (amount * rate) conversion edge
// from -> to. It does not register the inverse edge; call RegisterRate
// again with the reciprocal rate if both directions are needed.
func (r *ConversionRegistry) RegisterRate(from, to Unit, rate decimal.Decimal) {
	r.Register(from, to, func(amt decimal.Decimal, _ ConversionContext) decimal.Decimal {
		return amt.Mul(rate)
	})
}

// Register adds a direct conversion edge from -> to. Readers (Convert)
// never observe a partially-updated graph: the new edge set is built from a
// clone of the current snapshot and swapped in atomically.
func (r *ConversionRegistry) Register(from, to Unit, convert ConvertFunc) {
	for {
		oldPtr := r.edges.Load()
		cloned := make(map[Unit][]edge, len(*oldPtr)+1)
		for k, v := range *oldPtr {
			cloned[k] = v
		}
		existing := cloned[from]
		next := make([]edge, len(existing)+1)
		copy(next, existing)
		next[len(existing)] = edge{to: to, convert: convert}
		cloned[from] = next
		if r.edges.CompareAndSwap(oldPtr, &cloned) {
			return
		}
	}
}

// Convert converts v to unit `to`, recording a provenance "convert" node on
// success. ctx carries the active policyctx.ConversionPolicy (default:
// strict, paths allowed). cctx is optional; callers that need a
// registered ConvertFunc to see a ConversionContext (e.g. a point-in-time
// rate lookup) pass exactly one. Omitting it passes the zero
// ConversionContext along each hop.
func (r *ConversionRegistry) Convert(ctx context.Context, v Value, to Unit, cctx ...ConversionContext) (Value, error) {
	if v.unit.SameUnit(to) {
		return v, nil
	}
	if v.isNone {
		return None(to, v.policy), nil
	}

	var conversionContext ConversionContext
	if len(cctx) > 0 {
		conversionContext = cctx[0]
	}
	if conversionContext.CorrelationID == uuid.Nil {
		conversionContext.CorrelationID = uuid.New()
	}
	correlationID := conversionContext.CorrelationID
	snapshot := *r.edges.Load()

	amount, found := convertAlongPath(snapshot, v.unit, to, v.amount, conversionContext, policyctx.ConversionPolicyFrom(ctx).AllowPaths)
	if !found {
		policy := policyctx.ConversionPolicyFrom(ctx)
		r.logger.Warn("value: no conversion path",
			zap.String("correlation_id", correlationID.String()),
			zap.String("from", v.unit.String()),
			zap.String("to", to.String()),
		)
		if policy.Strict {
			return Value{}, &MissingConversionError{From: v.unit, To: to}
		}
		return None(to, v.policy), nil
	}

	quantized := v.policy.Quantize(amount)
	id := recordOp(ctx, OpConvert, []Value{v}, v.policy, map[string]any{
		"from":           v.unit.String(),
		"to":             to.String(),
		"correlation_id": correlationID.String(),
	})
	return Value{amount: quantized, unit: to, policy: v.policy, provenanceID: id}, nil
}

// convertAlongPath breadth-first searches the snapshot for a path from
// -> to, composing each hop's ConvertFunc. A direct edge is always tried
// first regardless of allowPaths; multi-hop search only runs when
// allowPaths is true.
func convertAlongPath(snapshot map[Unit][]edge, from, to Unit, amount decimal.Decimal, cctx ConversionContext, allowPaths bool) (decimal.Decimal, bool) {
	for _, e := range snapshot[from] {
		if e.to.SameUnit(to) {
			return e.convert(amount, cctx), true
		}
	}
	if !allowPaths {
		return decimal.Decimal{}, false
	}

	type frontierEntry struct {
		unit   Unit
		amount decimal.Decimal
	}
	visited := map[Unit]bool{from: true}
	queue := []frontierEntry{{from, amount}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range snapshot[cur.unit] {
			if visited[e.to] {
				continue
			}
			next := e.convert(cur.amount, cctx)
			if e.to.SameUnit(to) {
				return next, true
			}
			visited[e.to] = true
			queue = append(queue, frontierEntry{e.to, next})
		}
	}
	return decimal.Decimal{}, false
}

// defaultRegistry is the package-level registry Convert helpers below
// operate against when callers have no private registry of their own.
var defaultRegistry = NewConversionRegistry(nil)

// DefaultRegistry returns the package-level ConversionRegistry.
func DefaultRegistry() *ConversionRegistry { return defaultRegistry }

// Convert converts v to unit `to` using the default registry.
func Convert(ctx context.Context, v Value, to Unit, cctx ...ConversionContext) (Value, error) {
	return defaultRegistry.Convert(ctx, v, to, cctx...)
}
