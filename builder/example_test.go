// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/algoscope/builder"
)

// ExampleBuildGraph builds a weighted wheel for a Dijkstra demo.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithWeights(builder.ConstantWeightFn(2))},
		builder.Wheel(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges {
		fmt.Println(e.ID, *e.Weight)
	}
	// Output:
	// e-A-B 2
	// e-B-C 2
	// e-C-A 2
	// e-Center-A 2
	// e-Center-B 2
	// e-Center-C 2
}
