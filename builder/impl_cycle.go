// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring Cₙ: vertices 0..n-1 and
// edges i→(i+1) mod n in index order. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			addEdge(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}
		return nil
	}
}
