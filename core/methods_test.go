// SPDX-License-Identifier: MIT
// Package core_test verifies WordGraph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// mustGraph builds a WordGraph of the given length or fails the test.
func mustGraph(t *testing.T, length int, words ...string) *core.WordGraph {
	t.Helper()
	g, err := core.NewWordGraph(length)
	require.NoError(t, err)

	return g.IncludeAll(words...)
}

func TestNewWordGraph(t *testing.T) {
	for _, n := range []int{0, -1} {
		g, err := core.NewWordGraph(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	}

	g, err := core.NewWordGraph(4)
	require.NoError(t, err)
	assert.False(t, g.IsDirected())
	assert.False(t, g.AllowsSelfLoops())
	assert.Equal(t, 4, g.Length())
	assert.Equal(t, core.DefaultAlphabet, g.Alphabet())
	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
}

func TestWithAlphabet(t *testing.T) {
	_, err := core.NewWordGraph(3, core.WithAlphabet(""))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	g, err := core.NewWordGraph(2, core.WithAlphabet("abca"))
	require.NoError(t, err)
	assert.Equal(t, "abc", g.Alphabet())

	// Words outside the alphabet are still nodes; only alphabet runes are probed.
	g.IncludeAll("aa", "az", "zz")
	assert.Equal(t, []string{"aa", "az", "zz"}, g.Nodes())
	// "az" probes "aa" by putting 'a' at position 1.
	assert.True(t, g.HasEdgeConnecting("aa", "az"))
	// "zz" probes "az" by putting 'a' at position 0.
	assert.True(t, g.HasEdgeConnecting("az", "zz"))

	// 'z' itself is never probed: when "ab" arrives after "zb" it cannot find it.
	g2, err := core.NewWordGraph(2, core.WithAlphabet("abc"))
	require.NoError(t, err)
	g2.IncludeAll("zb", "ab")
	assert.False(t, g2.HasEdgeConnecting("ab", "zb"))
}

func TestInclude(t *testing.T) {
	g := mustGraph(t, 4, "neat", "near")

	assert.Equal(t, []string{"neat", "near"}, g.Nodes())
	assert.True(t, g.HasEdgeConnecting("neat", "near"))

	adj, err := g.AdjacentNodes("neat")
	require.NoError(t, err)
	assert.Equal(t, []string{"near"}, adj)
	pred, err := g.Predecessors("neat")
	require.NoError(t, err)
	assert.Equal(t, []string{"near"}, pred)
	succ, err := g.Successors("near")
	require.NoError(t, err)
	assert.Equal(t, []string{"neat"}, succ)

	g.Include("bear")
	assert.True(t, g.HasEdgeConnecting("near", "bear"))
	assert.False(t, g.HasEdgeConnecting("neat", "bear"))

	g.Include("feat")
	assert.True(t, g.HasEdgeConnecting("feat", "neat"))

	g.Include("type")
	for _, e := range g.Edges() {
		assert.NotEqual(t, "type", e.U)
		assert.NotEqual(t, "type", e.V)
	}
	deg, err := g.Degree("type")
	require.NoError(t, err)
	assert.Zero(t, deg)
	adj, err = g.AdjacentNodes("type")
	require.NoError(t, err)
	assert.NotNil(t, adj)
	assert.Empty(t, adj)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 3, g.Size())
}

func TestInclude_Idempotent(t *testing.T) {
	g := mustGraph(t, 3, "cat", "cot", "cat", "cot")
	assert.Equal(t, []string{"cat", "cot"}, g.Nodes())
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, []core.Edge{{U: "cat", V: "cot"}}, g.Edges())
}

func TestInclude_LengthFilter(t *testing.T) {
	g := mustGraph(t, 3, "ca")
	assert.Empty(t, g.Nodes())

	g.IncludeAll("", "cats", "notAWord0")
	assert.Empty(t, g.Nodes())
	assert.False(t, g.Accepts(""))
	assert.False(t, g.Accepts("ca"))
	assert.True(t, g.Accepts("cat"))
	// length is counted in runes
	assert.True(t, g.Accepts("çaé"))
}

func TestAdjacentNodes_NotFound(t *testing.T) {
	g := mustGraph(t, 4, "")

	_, err := g.AdjacentNodes("")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Predecessors("")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Successors("")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree("nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.HasEdgeConnecting("nope", "nope"))
}

// TestAdjacency_InsertionOrder checks neighbour lists follow node insertion
// order regardless of the order candidates are probed in.
func TestAdjacency_InsertionOrder(t *testing.T) {
	g := mustGraph(t, 3, "cat", "dog", "cot", "cog", "dot")

	cases := map[string][]string{
		"cat": {"cot"},
		"dog": {"cog", "dot"},
		"cot": {"cat", "cog", "dot"},
		"cog": {"dog", "cot"},
		"dot": {"dog", "cot"},
	}
	for word, want := range cases {
		got, err := g.AdjacentNodes(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, word)
	}

	assert.Equal(t, []core.Edge{
		{U: "cat", V: "cot"},
		{U: "dog", V: "cog"},
		{U: "dog", V: "dot"},
		{U: "cot", V: "cog"},
		{U: "cot", V: "dot"},
	}, g.Edges())
}

func TestNodes_ReturnsCopy(t *testing.T) {
	g := mustGraph(t, 3, "cat", "cot")
	nodes := g.Nodes()
	nodes[0] = "zzz"
	assert.Equal(t, []string{"cat", "cot"}, g.Nodes())
}
