// Package wordladder finds every shortest word ladder between two words.
//
// What is a word ladder?
//
//	A chain of words of one length where each word differs from the previous
//	one in exactly one letter:
//
//		head → heal → teal → tell → tall → tail
//
// The module is organised leaves first:
//
//	core/             WordGraph: words as nodes, one-letter links as edges
//	bfs/              breadth-first layering with early stop at a target
//	dfs/              lazy depth-first enumeration of simple paths
//	ladder/           every shortest ladder, via a pruned shortest-path DAG
//	dictionary/       streams a word list into a WordGraph
//	query/            checks a first/last pair before any work is done
//	config/           YAML configuration with defaults
//	metrics/          Prometheus statistics with textfile export
//	cmd/wordladder/   the command-line tool
//
// Quick start:
//
//	g, _ := core.NewWordGraph(3)
//	g.IncludeAll("cat", "dog", "cot", "cog", "dot")
//	for l := range ladder.AllShortestPaths(g, "cat", "dog").All() {
//		fmt.Println(l) // [cat cot cog dog], then [cat cot dot dog]
//	}
//
// The graph is not safe for concurrent mutation; build it, then query it.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
