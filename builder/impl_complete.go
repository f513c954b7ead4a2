// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds Kₙ. Undirected graphs get one
// edge per unordered pair (i < j); directed graphs get both arcs.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j))
				if g.Directed {
					addEdge(g, cfg, cfg.idFn(j), cfg.idFn(i))
				}
			}
		}
		return nil
	}
}
