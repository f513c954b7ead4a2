// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoscope/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors validate their parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg config) error

// Circle layout used for vertices no constructor positioned.
const (
	CenterX = 200.0
	CenterY = 200.0
	Radius  = 150.0
)

// BuildGraph creates an empty graph, applies every constructor in order and
// lays out the vertices left unpositioned. Any constructor error is wrapped
// with "BuildGraph: %w" and returned immediately.
func BuildGraph(opts []Option, cons ...Constructor) (core.Graph, error) {
	cfg := newConfig(opts...)

	var gopts []core.GraphOption
	if cfg.directed {
		gopts = append(gopts, core.WithDirected())
	}
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return core.Graph{}, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return core.Graph{}, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	layoutCircle(g, cfg.placed)
	return *g, nil
}

// layoutCircle spreads the vertices missing from placed evenly on the circle.
func layoutCircle(g *core.Graph, placed map[string]bool) {
	var free []int
	for i := range g.Nodes {
		if !placed[g.Nodes[i].ID] {
			free = append(free, i)
		}
	}
	for k, i := range free {
		angle := float64(k) / float64(len(free)) * 2 * math.Pi
		g.Nodes[i].X = round2(CenterX + Radius*math.Cos(angle))
		g.Nodes[i].Y = round2(CenterY + Radius*math.Sin(angle))
	}
}

// place pins id at (x, y) and excludes it from the circle layout.
func place(g *core.Graph, cfg config, id string, x, y float64) {
	i := g.AddNode(id)
	g.Nodes[i].X, g.Nodes[i].Y = x, y
	cfg.placed[id] = true
}

// addEdge appends u→v, weighted when the config asks for weights.
func addEdge(g *core.Graph, cfg config, u, v string) {
	if !cfg.weighted {
		g.AddEdge(u, v)
		return
	}
	g.AddEdge(u, v, core.WithWeight(cfg.weightFn(cfg.rng)))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
