// Package ladder finds every shortest word ladder in a core.WordGraph.
//
// A word ladder is a chain of words of one length where each word differs
// from the previous one in exactly one position. AllShortestPaths yields
// every simple chain of minimum length between two words, not just one.
//
// Why a shortest-path DAG?
//
//	Enumerating all simple paths up to the shortest length is correct but
//	explores a huge number of branches that can never reach the target in
//	time: a word of length L has up to L·(|alphabet|-1) neighbours. Keeping
//	only edges that step exactly one BFS layer forward, and only vertices
//	that still reach the target, leaves a DAG in which every branch ends in
//	a ladder. The depth-first walk over it does no wasted work.
//
// Contract
//
//   - Absent source or target: empty result (a dictionary miss is normal).
//   - source == target: exactly one ladder, [source].
//   - Unreachable target: empty result.
//   - Otherwise: every minimum-length simple path, depth-first, neighbours
//     tried in word insertion order.
//
// The result is a Sequence: lazy, finite and single-use.
//
//	seq := ladder.AllShortestPaths(g, "cat", "dog")
//	for l := range seq.All() {
//		fmt.Println(l)
//	}
//	if err := seq.Err(); err != nil {
//		// only a cancelled context ends a sequence early
//	}
//
// Including more words while a Sequence is being consumed is unsupported.
package ladder
