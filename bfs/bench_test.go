package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algoscope/bfs"
	"github.com/katalvlaran/algoscope/core"
)

// BenchmarkBFS_Grid measures step generation on a 10×10 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const n = 10
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < n {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(*g, bfs.WithStart("0_0"))
	}
}
