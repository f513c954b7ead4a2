// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds Sₙ: vertex 0 is the center and
// edges run 0→i for i = 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := cfg.idFn(0)
		place(g, cfg, center, CenterX, CenterY)
		for i := 1; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			addEdge(g, cfg, center, cfg.idFn(i))
		}
		return nil
	}
}
