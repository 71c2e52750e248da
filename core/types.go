// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: WordGraph, Edge, GraphOption, sentinel errors and the NewWordGraph constructor.
//
// Errors:
//
//	ErrInvalidConfiguration - word length <= 0 or an invalid GraphOption.
//	ErrNodeNotFound         - adjacency query on a word that was never included.
package core

import (
	"errors"
	"fmt"
)

// DefaultAlphabet is the substitution alphabet used when WithAlphabet is not given.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Sentinel errors for word graph operations.
var (
	// ErrInvalidConfiguration indicates the graph cannot be built with the given
	// word length or options.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrNodeNotFound indicates an adjacency query referenced a word that was
	// never included. An included but isolated word is not an error.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is an unordered pair of words at Hamming distance one.
//
// U is always the endpoint that was included first.
type Edge struct {
	U string
	V string
}

// GraphOption configures a WordGraph before creation.
// An invalid option is recorded and surfaced by NewWordGraph.
type GraphOption func(g *WordGraph)

// WithAlphabet replaces DefaultAlphabet with the runes of alphabet.
// Duplicate runes are collapsed; first occurrence order is kept.
// An empty alphabet makes NewWordGraph fail with ErrInvalidConfiguration.
func WithAlphabet(alphabet string) GraphOption {
	return func(g *WordGraph) {
		if alphabet == "" {
			g.err = fmt.Errorf("%w: alphabet is empty", ErrInvalidConfiguration)
			return
		}
		seen := make(map[rune]struct{}, len(alphabet))
		runes := make([]rune, 0, len(alphabet))
		for _, r := range alphabet {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			runes = append(runes, r)
		}
		g.alphabet = runes
	}
}

// WordGraph is the implicit graph over included words of one fixed length.
//
// Nodes are kept as an insertion-ordered set: ids gives O(1) membership and
// the word's insertion index, words lists the nodes in insertion order.
// adj[i] holds the insertion indices of node i's neighbours, ascending, so
// every adjacency query is already in insertion order.
//
// WordGraph has no internal locking. Callers sharing an instance across
// goroutines must serialise access themselves.
type WordGraph struct {
	length   int
	alphabet []rune

	ids   map[string]int
	words []string
	adj   [][]int
	edges int

	// internal error recorded while applying options
	err error
}

// NewWordGraph creates an empty WordGraph for words of exactly length runes.
//
// Errors:
//   - ErrInvalidConfiguration if length <= 0 or an option is invalid.
//
// Complexity: O(|alphabet|).
func NewWordGraph(length int, opts ...GraphOption) (*WordGraph, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: word length must be positive, got %d", ErrInvalidConfiguration, length)
	}

	g := &WordGraph{
		length:   length,
		alphabet: []rune(DefaultAlphabet),
		ids:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	return g, nil
}
