// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over a WordGraph's configuration and size.
// Policy:
//   - No algorithms or hidden state here.
//   - Include is the single mutator and lives in methods_vertices.go.

package core

// Length returns the configured word length, in runes.
func (g *WordGraph) Length() int { return g.length }

// Alphabet returns the substitution alphabet as a string.
func (g *WordGraph) Alphabet() string { return string(g.alphabet) }

// Order returns the number of included words.
func (g *WordGraph) Order() int { return len(g.words) }

// Size returns the number of edges.
func (g *WordGraph) Size() int { return g.edges }

// IsDirected reports false: the Hamming-distance-one relation is symmetric.
func (g *WordGraph) IsDirected() bool { return false }

// AllowsSelfLoops reports false: a word never differs from itself in exactly one position.
func (g *WordGraph) AllowsSelfLoops() bool { return false }
