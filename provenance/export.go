package provenance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// closure walks root's transitive inputs breadth-first, applying the two
// export-time limits from Config: a literal more than MaxHistoryDepth hops
// from root is dropped (spec.md §4.7's history truncation), and exceeding
// MaxGraphSize nodes fails the whole export rather than returning a
// silently-truncated graph.
func (g *Graph) closure(root NodeID) (map[NodeID]Node, error) {
	g.mu.RLock()
	cfg := g.cfg
	g.mu.RUnlock()

	type item struct {
		id    NodeID
		depth int
	}
	visited := make(map[NodeID]Node)
	queue := []item{{root, 0}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if _, seen := visited[it.id]; seen {
			continue
		}
		node, ok := g.Get(it.id)
		if !ok {
			continue
		}
		if cfg.MaxHistoryDepth > 0 && node.Op == string(KindLiteral) && it.depth > cfg.MaxHistoryDepth {
			continue
		}
		visited[it.id] = node
		if cfg.MaxGraphSize > 0 && len(visited) > cfg.MaxGraphSize {
			return nil, &GraphTooLargeError{Root: root, Limit: cfg.MaxGraphSize}
		}
		for _, in := range node.Inputs {
			queue = append(queue, item{in, it.depth + 1})
		}
	}
	return visited, nil
}

// TraceExport is the JSON shape returned by ToTraceJSON. Field order is
// fixed and map keys are sorted by encoding/json, so two exports of the
// same closure always serialize byte-identically.
type TraceExport struct {
	Root  NodeID                `json:"root"`
	Nodes map[NodeID]NodeExport `json:"nodes"`
}

type NodeExport struct {
	ID     NodeID         `json:"id"`
	Op     string         `json:"op"`
	Inputs []NodeID       `json:"inputs"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// ToTraceJSON renders root's closure as deterministic JSON.
func (g *Graph) ToTraceJSON(root NodeID) ([]byte, error) {
	closure, err := g.closure(root)
	if err != nil {
		return nil, err
	}
	export := TraceExport{Root: root, Nodes: make(map[NodeID]NodeExport, len(closure))}
	for id, n := range closure {
		export.Nodes[id] = NodeExport{ID: n.ID, Op: n.Op, Inputs: n.Inputs, Meta: n.Meta}
	}
	return json.Marshal(export)
}

// Closure returns root's closure as a raw node map, for callers that want
// to walk the DAG themselves instead of consuming JSON.
func (g *Graph) Closure(root NodeID) (map[NodeID]Node, error) {
	return g.closure(root)
}

// Explain renders root's closure as an indented text tree, descending at
// most maxDepth levels (0 means unlimited). It walks the graph directly:
// Config.MaxHistoryDepth and Config.MaxGraphSize do not apply to it.
func (g *Graph) Explain(root NodeID, maxDepth int) string {
	var b strings.Builder
	var walk func(id NodeID, depth int, indent string)
	walk = func(id NodeID, depth int, indent string) {
		node, ok := g.Get(id)
		if !ok {
			fmt.Fprintf(&b, "%s<unknown %s>\n", indent, id)
			return
		}
		label := string(id)
		if len(label) > 8 {
			label = label[:8]
		}
		fmt.Fprintf(&b, "%s%s (%s)\n", indent, node.Op, label)
		if node.Op == string(KindLiteral) || (maxDepth > 0 && depth >= maxDepth) {
			return
		}
		for _, in := range node.Inputs {
			walk(in, depth+1, indent+"  ")
		}
	}
	walk(root, 0, "")
	return b.String()
}
