package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/dijkstra"
)

// ExampleDijkstra prints the final distance labels of a small directed graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected())
	g.AddEdge("A", "B", core.WithWeight(2))
	g.AddEdge("A", "C", core.WithWeight(1))
	g.AddEdge("C", "B", core.WithWeight(1))
	g.AddEdge("B", "D", core.WithWeight(3))
	g.AddEdge("C", "D", core.WithWeight(5))

	seq, err := dijkstra.Dijkstra(*g, dijkstra.WithStart("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range seq[len(seq)-1].State.Nodes {
		fmt.Println(n.Label)
	}
	// Output:
	// A (0)
	// B (2)
	// C (1)
	// D (5)
}
