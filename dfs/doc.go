// Package dfs enumerates simple paths depth-first.
//
// What
//
//   - AllPaths walks a successor function from a source vertex, backtracking
//     after every branch, and yields each simple path that ends at the target.
//   - The result is an iter.Seq[[]string]: nothing runs until the caller
//     ranges over it, and breaking out of the loop ends the walk.
//
// Why
//
//   - Restricted to a shortest-path DAG (see package ladder), it enumerates
//     every shortest path with no wasted branches.
//   - With WithMaxDepth on an arbitrary graph, it enumerates every simple path
//     up to a length bound, which is a brute-force oracle for testing.
//
// Determinism
//
//	Successors are tried in the order Successors returns them; the same input
//	always yields the same paths in the same order.
//
// Usage
//
//	next := func(id string) []string { return adj[id] }
//	for path := range dfs.AllPaths(next, "A", "D", dfs.WithMaxDepth(3)) {
//		fmt.Println(path)
//	}
//
// Options
//
//   - WithContext(ctx)          cancellation; the sequence simply ends.
//   - WithMaxDepth(limit)       paths longer than limit edges are not explored (<0 = no limit).
//   - WithFilterNeighbor(fn)    skip the edge from→to when fn returns false.
package dfs
