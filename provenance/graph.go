package provenance

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Graph is the in-memory provenance DAG: an append-only, content-addressed
// node store, modeled on the teacher's Ledger/Store append-only contract
// (see generic/ledger.go) but keyed by hash rather than by a caller-chosen
// idempotency key.
type Graph struct {
	mu     sync.RWMutex
	nodes  map[NodeID]Node
	cfg    Config
	logger *zap.Logger
}

// NewGraph constructs an empty Graph. A nil logger is replaced with
// zap.NewNop().
func NewGraph(cfg Config, logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		nodes:  make(map[NodeID]Node),
		cfg:    cfg,
		logger: logger,
	}
}

// Configure replaces the Graph's Config.
func (g *Graph) Configure(cfg Config) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg = cfg
}

// SetLogger replaces the Graph's logger.
func (g *Graph) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
}

// Record hashes (op, inputs, meta, policySignature) into a NodeID and
// stores the Node, unless kind's tracking toggle or Config.Enabled is off,
// in which case it returns ("", nil) - callers always get a valid,
// possibly-empty id back and never need to special-case provenance being
// turned off.
func (g *Graph) Record(ctx context.Context, kind Kind, op string, inputs []NodeID, meta map[string]any, policySignature string) (NodeID, error) {
	g.mu.RLock()
	cfg := g.cfg
	g.mu.RUnlock()

	if !cfg.Enabled {
		return "", nil
	}
	switch kind {
	case KindLiteral:
		if !cfg.TrackLiterals {
			return "", nil
		}
	case KindOp:
		if !cfg.TrackOps {
			return "", nil
		}
	case KindCalculation:
		if !cfg.TrackCalculations {
			return "", nil
		}
	}

	merged := cloneMeta(meta)
	if cfg.TrackSpans {
		for k, v := range spanMeta(ctx) {
			merged[k] = v
		}
	}

	id, err := computeID(op, inputs, merged, policySignature)
	if err != nil {
		return g.degrade(cfg, "compute id", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if cfg.InternIDs {
		if _, exists := g.nodes[id]; exists {
			return id, nil
		}
	}
	g.nodes[id] = Node{
		ID:     id,
		Op:     op,
		Inputs: append([]NodeID{}, inputs...),
		Meta:   merged,
	}
	return id, nil
}

func (g *Graph) degrade(cfg Config, step string, err error) (NodeID, error) {
	if cfg.FailOnError {
		return "", err
	}
	g.logger.Warn("provenance: degrading to absent provenance", zap.String("step", step), zap.Error(err))
	return "", nil
}

// Get returns a stored Node by id.
func (g *Graph) Get(id NodeID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}
