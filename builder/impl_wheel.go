// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim is a cycle of n-1 ≥ 3 vertices
)

// CenterVertexID is the id of the wheel hub.
const CenterVertexID = "Center"

// Wheel returns a Constructor that builds Wₙ = Cₙ₋₁ + hub: a ring of n-1
// vertices plus CenterVertexID joined to each of them. Directed graphs get
// both spoke arcs. Requires n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		place(g, cfg, CenterVertexID, CenterX, CenterY)
		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			addEdge(g, cfg, CenterVertexID, rim)
			if g.Directed {
				addEdge(g, cfg, rim, CenterVertexID)
			}
		}
		return nil
	}
}
