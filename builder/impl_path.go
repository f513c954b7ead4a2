// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds Pₙ: edges i→i+1 for i < n-1.
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i+1 < n; i++ {
			addEdge(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}
		return nil
	}
}
