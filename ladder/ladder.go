package ladder

import (
	"context"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
)

// AllShortestPaths returns every simple path of minimum length from source
// to target.
//
// Implementation:
//   - Stage 1: Absent source or target → empty; source == target → [source].
//   - Stage 2: BFS from source in adjacency order, stopping once target is
//     discovered. Unreached target → empty.
//   - Stage 3: Shortest-path DAG: u → v iff {u,v} is an edge and
//     dist[v] = dist[u]+1, pruned to vertices that still reach target.
//   - Stage 4: Depth-first backtracking over the word graph, following only
//     DAG edges, neighbours in insertion order; every path that reaches
//     target is emitted.
//
// Determinism:
//   - The same graph built with the same inclusion order yields the same
//     ladders in the same order.
//
// Complexity:
//   - BFS O(V+E); after that O(L) per emitted ladder of length L, since the
//     pruned DAG has no dead ends.
func AllShortestPaths(g *core.WordGraph, source, target string, opts ...Option) *Sequence {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Sequence{g: g, source: source, target: target, opts: o}
}

// run drives one enumeration into yield.
func (s *Sequence) run(yield func(Ladder) bool) {
	g := s.g
	if g == nil || !g.HasNode(s.source) || !g.HasNode(s.target) {
		return
	}
	if s.source == s.target {
		yield(Ladder{s.source})
		return
	}

	res, err := bfs.BFS(g, s.source, s.bfsOptions()...)
	if err != nil {
		s.err = err
		return
	}
	if !res.Reached(s.target) {
		return
	}

	dist := res.Depth[s.target]
	dag := newShortestPathDAG(g, res.Depth, s.target)
	paths := dfs.AllPaths(dag.neighbours, s.source, s.target,
		dfs.WithContext(s.opts.ctx),
		dfs.WithMaxDepth(dist),
		dfs.WithFilterNeighbor(dag.forward),
	)
	for p := range paths {
		if !yield(Ladder(p)) {
			return
		}
	}
	s.err = s.opts.ctx.Err()
}

func (s *Sequence) bfsOptions() []bfs.Option {
	opts := []bfs.Option{
		bfs.WithTarget(s.target),
		bfs.WithContext(s.opts.ctx),
		bfs.WithMaxDepth(s.opts.maxLength),
	}
	if fn := s.opts.onVisit; fn != nil {
		opts = append(opts, bfs.WithOnVisit(func(id string, depth int) error {
			fn(id, depth)
			return nil
		}))
	}

	return opts
}

// ShortestDistance returns the number of substitutions on a shortest ladder,
// and false when either word is absent or no ladder exists.
func ShortestDistance(g *core.WordGraph, source, target string) (int, bool) {
	if g == nil || !g.HasNode(source) || !g.HasNode(target) {
		return 0, false
	}
	res, err := bfs.BFS(g, source, bfs.WithTarget(target))
	if err != nil || !res.Reached(target) {
		return 0, false
	}

	return res.Depth[target], true
}

// ShortestPath returns the first ladder AllShortestPaths would emit.
func ShortestPath(g *core.WordGraph, source, target string) (Ladder, bool) {
	for l := range AllShortestPaths(g, source, target).All() {
		return l, true
	}
	return nil, false
}
