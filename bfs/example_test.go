package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// ExampleBFS_wordLayers demonstrates BFS layering on a small word graph.
// cat reaches cot at distance 1, cog and dot at distance 2, dog at distance 3.
func ExampleBFS_wordLayers() {
	g, _ := core.NewWordGraph(3)
	g.IncludeAll("cat", "dog", "cot", "cog", "dot")

	res, err := bfs.BFS(g, "cat")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range res.Order {
		fmt.Printf("%s@%d ", w, res.Depth[w])
	}
	fmt.Println()
	// Output:
	// cat@0 cot@1 cog@2 dot@2 dog@3
}

// ExampleBFS_earlyStop stops as soon as the target has been discovered:
// warm sits four substitutions from cold, and only six words were visited.
func ExampleBFS_earlyStop() {
	g, _ := core.NewWordGraph(4)
	g.IncludeAll("cold", "warm", "cord", "card", "ward", "word", "worm", "corm", "wore")

	res, err := bfs.BFS(g, "cold", bfs.WithTarget("warm"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Depth["warm"], res.Reached("warm"), res.Order)
	// Output:
	// 4 true [cold cord card word corm ward]
}
