package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/dfs"
)

// ExampleDFS prints the vertices in the order they are visited.
func ExampleDFS() {
	g := core.NewGraph()
	g.AddEdge("1", "2")
	g.AddEdge("1", "3")
	g.AddEdge("2", "4")
	g.AddEdge("3", "4")

	seq, err := dfs.DFS(*g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range seq {
		if s.CodeLabel == "visitNode" {
			fmt.Print(s.State.Nodes[s.HighlightIndices[0]].ID, " ")
		}
	}
	fmt.Println()
	// Output:
	// 1 2 4 3
}
