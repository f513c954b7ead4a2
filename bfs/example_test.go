package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoscope/bfs"
	"github.com/katalvlaran/algoscope/core"
)

// ExampleBFS prints the narration of a three-node path.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	seq, err := bfs.BFS(*g, bfs.WithStart("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range seq {
		if s.CodeLabel == "dequeue" || s.CodeLabel == "enqueue" {
			fmt.Println(s.Log)
		}
	}
	// Output:
	// Dequeue A and mark it visited
	// B is unvisited: enqueue it and mark it visiting
	// Dequeue B and mark it visited
	// C is unvisited: enqueue it and mark it visiting
	// Dequeue C and mark it visited
}
