// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
	gridOrigin = 50.0
	gridStep   = 80.0
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
// Cell ids are "r,c" regardless of the id scheme and cells are placed on a
// regular grid. Directed graphs get both arcs per neighbour pair.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				place(g, cfg, fmt.Sprintf(gridIDFmt, r, c), gridOrigin+float64(c)*gridStep, gridOrigin+float64(r)*gridStep)
			}
		}

		link := func(u, v string) {
			addEdge(g, cfg, u, v)
			if g.Directed {
				addEdge(g, cfg, v, u)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					link(u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					link(u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}
		return nil
	}
}
