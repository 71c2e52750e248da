// Package core provides WordGraph, the implicit graph of a word ladder:
// nodes are included words of one fixed length, and two nodes are adjacent
// iff they differ in exactly one character position (Hamming distance 1).
//
// The graph G = (V,E) is built incrementally:
//
//   - Include(word) is the only mutator. It adds the word and scans its
//     L·(|alphabet|-1) single-substitution candidates, linking to those
//     already present. Edges to words not yet included appear when those
//     words arrive and scan back, so E depends only on the set V.
//   - Words of another length (and the empty word) are ignored silently.
//   - Characters are not checked against the alphabet; the alphabet only
//     drives candidate generation.
//
// Why an ordered set?
//
//	Enumeration order of ladders is observable. WordGraph keeps a hash index
//	(word → insertion index) next to an insertion-ordered slice, and every
//	neighbour list is kept sorted by insertion index. Nodes(), AdjacentNodes()
//	and Edges() are therefore deterministic for a given inclusion order.
//
// Configuration Options (GraphOption):
//
//	– WithAlphabet(alphabet string)
//	    Substitution alphabet; default DefaultAlphabet (a..z).
//
// Core Methods:
//
//	NewWordGraph(length int, opts ...GraphOption) (*WordGraph, error)
//	Include(word string) *WordGraph            // O(L·|alphabet|)
//	IncludeAll(words ...string) *WordGraph
//	Accepts(word string) bool                  // length filter, O(L)
//	Nodes() []string                           // insertion order, O(V)
//	HasNode(word string) bool                  // O(1)
//	AdjacentNodes / Predecessors / Successors(node string) ([]string, error) // O(d)
//	Degree(node string) (int, error)           // O(1)
//	HasEdgeConnecting(u, v string) bool        // O(min(du, dv))
//	Edges() []Edge                             // O(V+E)
//	Length(), Alphabet(), Order(), Size(), IsDirected(), AllowsSelfLoops()
//
// Errors:
//
//	ErrInvalidConfiguration – length <= 0 or empty alphabet
//	ErrNodeNotFound         – adjacency query on a word never included
//
// Concurrency:
//
//	WordGraph is not safe for concurrent use. Interleaving Include with an
//	enumeration that is still being consumed is unsupported.
package core
