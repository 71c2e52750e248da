// Package dfs implements depth-first backtracking enumeration of simple paths
// over a successor function.
//
// Key features:
//   - AllPaths(next, source, target, opts...): lazy iter.Seq of every simple path
//   - Successors are tried in the order next returns them, so output order is deterministic
//   - Per-branch on-path set: cyclic successor relations never repeat a vertex
//   - Limits: MaxDepth, FilterNeighbor
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   proportional to the number of partial paths explored; exponential
//     in the worst case for general graphs, linear in the output for DAGs
//     whose every vertex reaches the target.
//   - Memory: O(depth) for the current path and on-path set.
package dfs

import (
	"iter"
	"slices"
)

// pathWalker holds the state of one enumeration.
type pathWalker struct {
	next   Successors
	target string
	opts   DFSOptions
	path   []string
	onPath map[string]bool
	yield  func([]string) bool
}

// AllPaths returns a sequence of every simple path from source to target
// whose successive vertices are linked by next.
//
// Paths are produced depth-first: each branch point tries successors in the
// order next returns them. If source == target the only path is [source].
// Every yielded slice is a fresh copy owned by the caller. Breaking out of
// the range loop stops the walk; no further calls to next are made.
//
// A nil next yields nothing.
func AllPaths(next Successors, source, target string, opts ...Option) iter.Seq[[]string] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func([]string) bool) {
		if next == nil {
			return
		}
		w := &pathWalker{
			next:   next,
			target: target,
			opts:   o,
			onPath: make(map[string]bool),
			yield:  yield,
		}
		w.extend(source)
	}
}

// extend pushes id onto the current path, emits or descends, then pops it.
// It reports false once the consumer stopped or the context ended.
func (w *pathWalker) extend(id string) bool {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false
	default:
	}

	// 2. Push and schedule the pop
	w.path = append(w.path, id)
	w.onPath[id] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, id)
	}()

	// 3. Reached the target: a simple path cannot continue past it
	if id == w.target {
		return w.yield(slices.Clone(w.path))
	}

	// 4. Depth limit: the path already has len-1 edges
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return true
	}

	// 5. Explore successors in order
	for _, nid := range w.next(id) {
		if w.onPath[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
			continue
		}
		if !w.extend(nid) {
			return false
		}
	}

	return true
}
