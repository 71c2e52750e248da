// File: methods_adjacent.go
// Role: Neighbourhood queries (AdjacentNodes, Predecessors, Successors, Degree)
// and edge enumeration.
//
// Determinism:
//   - Neighbour lists follow the insertion order of the node set.
//   - Edges() is ordered by the insertion index of U, then of V.
package core

import "fmt"

// AdjacentNodes returns the words connected to node by an edge, in insertion order.
//
// Returns:
//   - []string: a fresh slice; empty (non-nil) for an isolated word.
//   - error: ErrNodeNotFound if node was never included.
//
// Complexity: O(d).
func (g *WordGraph) AdjacentNodes(node string) ([]string, error) {
	id, ok := g.ids[node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, node)
	}

	out := make([]string, len(g.adj[id]))
	for i, n := range g.adj[id] {
		out[i] = g.words[n]
	}

	return out, nil
}

// Predecessors is AdjacentNodes; the graph is undirected.
func (g *WordGraph) Predecessors(node string) ([]string, error) {
	return g.AdjacentNodes(node)
}

// Successors is AdjacentNodes; the graph is undirected.
func (g *WordGraph) Successors(node string) ([]string, error) {
	return g.AdjacentNodes(node)
}

// Degree returns the number of neighbours of node.
func (g *WordGraph) Degree(node string) (int, error) {
	id, ok := g.ids[node]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, node)
	}
	return len(g.adj[id]), nil
}

// HasEdgeConnecting reports whether u and v are both included and adjacent.
// Unknown words yield false rather than an error.
func (g *WordGraph) HasEdgeConnecting(u, v string) bool {
	ui, ok := g.ids[u]
	if !ok {
		return false
	}
	vi, ok := g.ids[v]
	if !ok {
		return false
	}
	// scan the shorter list
	if len(g.adj[vi]) < len(g.adj[ui]) {
		ui, vi = vi, ui
	}
	for _, n := range g.adj[ui] {
		if n == vi {
			return true
		}
	}

	return false
}

// Edges lists every edge exactly once, with U included before V.
//
// Complexity: O(V + E).
func (g *WordGraph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if v > u {
				out = append(out, Edge{U: g.words[u], V: g.words[v]})
			}
		}
	}

	return out
}
