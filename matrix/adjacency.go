// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

// Adjacency is the square node-by-node view of a snapshot.
type Adjacency struct {
	IDs      []string
	Cells    [][]float64
	Directed bool
	NoEdge   float64

	index map[string]int
}

// NewAdjacency builds the adjacency view of g. Undirected edges fill both
// (i,j) and (j,i).
func NewAdjacency(g core.Graph, opts ...Option) (*Adjacency, error) {
	o := gather(opts)
	ids, idx, err := index(g)
	if err != nil {
		return nil, err
	}

	n := len(ids)
	cells := make([][]float64, n)
	for i := range cells {
		row := make([]float64, n)
		for j := range row {
			row[j] = o.noEdge
		}
		cells[i] = row
	}

	for _, e := range g.Edges {
		w := 1.0
		if o.weighted {
			w = e.Cost()
		}
		s, t := idx[e.Source], idx[e.Target]
		cells[s][t] = w
		if !g.Directed {
			cells[t][s] = w
		}
	}

	return &Adjacency{IDs: ids, Cells: cells, Directed: g.Directed, NoEdge: o.noEdge, index: idx}, nil
}

// Weight returns the cell for the edge from one node to another.
func (a *Adjacency) Weight(from, to string) (float64, error) {
	i, ok := a.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	j, ok := a.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	return a.Cells[i][j], nil
}

// Degree counts the non-empty cells of a node's row, which is the out-degree
// for directed snapshots.
func (a *Adjacency) Degree(id string) (int, error) {
	i, ok := a.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	d := 0
	for _, v := range a.Cells[i] {
		if v != a.NoEdge {
			d++
		}
	}
	return d, nil
}
