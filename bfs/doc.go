// Package bfs provides breadth-first search over any Graph
// (HasNode + AdjacentNodes), returning unweighted shortest-path distances
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Early stop at a target (WithTarget): a vertex's distance is final the
//     moment it is first discovered, so the search ends right there.
//   - OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Determinism
//
//	Neighbours are enqueued in the order Graph.AdjacentNodes returns them.
//	For a core.WordGraph that is word insertion order, so the visit sequence
//	is reproducible for a given inclusion order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "cat", bfs.WithTarget("dog"))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//		// context errors or hook errors
//	}
//	if res.Reached("dog") {
//		fmt.Println(res.Depth["dog"])
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no target, no depth limit, no-op hook.
//   - WithContext(ctx):   cancellation.
//   - WithTarget(id):     stop once id is discovered.
//   - WithMaxDepth(d):    do not discover vertices beyond depth d (>0).
//   - WithOnVisit(fn):    hook on dequeue; returning an error aborts BFS.
package bfs
