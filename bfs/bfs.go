// Package bfs provides breadth-first search over an adjacency source,
// returning unweighted shortest-path distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional early stop at a target, a visit hook and depth limiting.
package bfs

import (
	"context"
	"fmt"
	"reflect"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
	done  bool // target discovered
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g Graph, startID string, opts ...Option) (*BFSResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res:   &BFSResult{Depth: make(map[string]int)},
	}

	// Seed queue with start vertex
	w.enqueue(startID, 0)
	// Main loop
	return w.res, w.loop()
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// enqueue records the depth of id and adds it to the queue.
// Discovering the target ends the search.
func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if w.opts.Target != "" && id == w.opts.Target {
		w.done = true
	}
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies MaxDepth,
// and enqueues each unseen neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.AdjacentNodes(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.enqueue(nbr, nextDepth)
		if w.done {
			return nil
		}
	}
	return nil
}
