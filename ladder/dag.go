package ladder

import "github.com/katalvlaran/wordladder/core"

// shortestPathDAG is the subgraph of edges that raise BFS distance by one,
// restricted to vertices from which target is still reachable along such
// edges. Every walk from the source inside it reaches target.
type shortestPathDAG struct {
	g      *core.WordGraph
	depth  map[string]int
	useful map[string]bool
}

// newShortestPathDAG sweeps backwards from target one layer at a time,
// keeping the neighbours exactly one layer closer to the source.
//
// depth must be exact for every vertex closer than target; vertices at
// target's depth other than target may be missing, which a BFS stopped at
// target guarantees.
func newShortestPathDAG(g *core.WordGraph, depth map[string]int, target string) *shortestPathDAG {
	useful := map[string]bool{target: true}
	frontier := []string{target}
	for d := depth[target]; d > 0; d-- {
		var prev []string
		for _, v := range frontier {
			nbrs, err := g.AdjacentNodes(v)
			if err != nil {
				continue
			}
			for _, u := range nbrs {
				if du, ok := depth[u]; ok && du == d-1 && !useful[u] {
					useful[u] = true
					prev = append(prev, u)
				}
			}
		}
		frontier = prev
	}

	return &shortestPathDAG{g: g, depth: depth, useful: useful}
}

// neighbours lists the graph neighbours of u in insertion order.
func (d *shortestPathDAG) neighbours(u string) []string {
	nbrs, err := d.g.AdjacentNodes(u)
	if err != nil {
		return nil
	}
	return nbrs
}

// forward reports whether u → v is a DAG edge.
func (d *shortestPathDAG) forward(u, v string) bool {
	return d.useful[v] && d.depth[v] == d.depth[u]+1
}
