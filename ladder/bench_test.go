package ladder_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/ladder"
)

// hammingCube includes every word of length n over alphabet.
func hammingCube(alphabet string, n int) *core.WordGraph {
	g, _ := core.NewWordGraph(n, core.WithAlphabet(alphabet))
	var rec func(prefix []rune)
	rec = func(prefix []rune) {
		if len(prefix) == n {
			g.Include(string(prefix))
			return
		}
		for _, c := range alphabet {
			rec(append(prefix, c))
		}
	}
	rec(nil)
	return g
}

// BenchmarkAllShortestPaths_Cube enumerates the 4! = 24 shortest ladders
// between opposite corners of the complete a..f length-4 word cube.
func BenchmarkAllShortestPaths_Cube(b *testing.B) {
	g := hammingCube("abcdef", 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range ladder.AllShortestPaths(g, "aaaa", "ffff").All() {
			n++
		}
		if n != 24 {
			b.Fatalf("ladders = %d", n)
		}
	}
}

// BenchmarkShortestPath_Cube stops after the first ladder.
func BenchmarkShortestPath_Cube(b *testing.B) {
	g := hammingCube("abcdef", 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := ladder.ShortestPath(g, "aaaa", "ffff"); !ok {
			b.Fatal("no ladder")
		}
	}
}
