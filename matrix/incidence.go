// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/algoscope/core"

const (
	srcMark        = -1.0
	dstMark        = +1.0
	undirectedMark = +1.0
	loopMark       = +2.0
)

// Incidence is the node-by-edge view of a snapshot. Weights are ignored;
// entries only carry orientation.
type Incidence struct {
	IDs     []string
	EdgeIDs []string
	Cells   [][]float64
}

// NewIncidence builds the incidence view of g. A directed self-loop sums to
// a zero column.
func NewIncidence(g core.Graph) (*Incidence, error) {
	ids, idx, err := index(g)
	if err != nil {
		return nil, err
	}

	cells := make([][]float64, len(ids))
	for i := range cells {
		cells[i] = make([]float64, len(g.Edges))
	}
	edgeIDs := make([]string, len(g.Edges))

	for j, e := range g.Edges {
		edgeIDs[j] = e.ID
		s, t := idx[e.Source], idx[e.Target]
		switch {
		case g.Directed:
			cells[s][j] += srcMark
			cells[t][j] += dstMark
		case s == t:
			cells[s][j] = loopMark
		default:
			cells[s][j] = undirectedMark
			cells[t][j] = undirectedMark
		}
	}

	return &Incidence{IDs: ids, EdgeIDs: edgeIDs, Cells: cells}, nil
}
