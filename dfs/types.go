// Package dfs defines types and options for depth-first path enumeration,
// including cancellation, depth limiting and neighbor filtering.
package dfs

import "context"

// Successors returns the vertices reachable from id in one step, in the
// order the walk should try them. A nil result means id is a dead end.
type Successors func(id string) []string

// Option configures optional behavior of AllPaths.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for path enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context ends the sequence at the next step.
	Ctx context.Context

	// MaxDepth, if non-negative, limits paths to MaxDepth edges.
	// A depth of 0 yields only the trivial path when source == target.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each successor before
	// descending into it. Return false to skip it.
	FilterNeighbor func(from, to string) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits path length to limit edges.
// Negative values mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters successor edges.
// If fn(from, to) == false, the edge from→to is not followed.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}
