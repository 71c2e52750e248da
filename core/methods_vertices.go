// File: methods_vertices.go
// Role: Word inclusion, the only mutator of a WordGraph.
//
// Determinism:
//   - Nodes() returns words in insertion order.
//   - A newly included word links to its neighbours in their insertion order.
package core

import (
	"slices"
	"unicode/utf8"
)

// Accepts reports whether Include would take word as a node:
// it must be non-empty and exactly Length() runes long.
// Membership in the alphabet is not checked.
func (g *WordGraph) Accepts(word string) bool {
	return word != "" && utf8.RuneCountInString(word) == g.length
}

// Include adds word to the graph and links it to every already included word
// at Hamming distance one.
//
// Implementation:
//   - Stage 1: Ignore empty words, wrong-length words and words already present.
//   - Stage 2: Append word to the ordered node set.
//   - Stage 3: For every position i and alphabet rune c != word[i], probe the
//     candidate with position i replaced by c; collect those already included.
//   - Stage 4: Store the neighbours sorted by insertion index and append the
//     new word to each neighbour's list (it has the highest index, so their
//     lists stay sorted).
//
// Behavior highlights:
//   - Edges towards words not yet included are created later, when that word
//     arrives and scans back. The final edge set depends only on the set of
//     included words, never on the inclusion order.
//   - Never fails; returns g for chaining.
//
// Complexity:
//   - Time O(L·|alphabet|) probes plus O(d log d) to order d neighbours.
func (g *WordGraph) Include(word string) *WordGraph {
	if !g.Accepts(word) {
		return g
	}
	if _, exists := g.ids[word]; exists {
		return g
	}

	id := len(g.words)
	g.ids[word] = id
	g.words = append(g.words, word)

	nbrs := g.scan(word)
	slices.Sort(nbrs)
	g.adj = append(g.adj, nbrs)
	for _, n := range nbrs {
		g.adj[n] = append(g.adj[n], id)
	}
	g.edges += len(nbrs)

	return g
}

// IncludeAll calls Include for each word in order.
func (g *WordGraph) IncludeAll(words ...string) *WordGraph {
	for _, w := range words {
		g.Include(w)
	}
	return g
}

// scan returns the insertion indices of included words that differ from word
// in exactly one position.
func (g *WordGraph) scan(word string) []int {
	buf := []rune(word)
	var found []int
	for i, orig := range buf {
		for _, c := range g.alphabet {
			if c == orig {
				continue
			}
			buf[i] = c
			if n, ok := g.ids[string(buf)]; ok {
				found = append(found, n)
			}
		}
		buf[i] = orig
	}

	return found
}

// Nodes returns the included words in insertion order.
// The returned slice is a copy.
func (g *WordGraph) Nodes() []string {
	return slices.Clone(g.words)
}

// HasNode reports whether word has been included.
func (g *WordGraph) HasNode(word string) bool {
	_, ok := g.ids[word]
	return ok
}
