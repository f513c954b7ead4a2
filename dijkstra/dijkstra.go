package dijkstra

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// item is one priority-queue entry.
type item struct {
	id   string
	dist float64
}

// runner holds the mutable state of one run.
type runner struct {
	o       Options
	g       core.Graph
	adj     map[string][]core.Neighbor
	index   map[string]int
	dist    map[string]float64
	pred    map[string]int // edge index of the current best incoming edge
	visited map[string]bool
	pq      []item
	rec     *step.Recorder[core.Graph]
}

// Dijkstra computes shortest distances from the source vertex on a private
// copy of g and returns the recorded steps.
//
// Preconditions and validation (in order):
//  1. The source must resolve (core.ResolveStart).
//  2. No edge may have a negative weight (ErrNegativeWeight).
func Dijkstra(g core.Graph, opts ...Option) ([]step.Step[core.Graph], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Resolve the source.
	src, err := g.ResolveStart(o.Source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 2) Fail fast on negative weights.
	for _, e := range g.Edges {
		if e.Cost() < 0 {
			return nil, fmt.Errorf("%w: edge %q has weight %v", ErrNegativeWeight, e.ID, e.Cost())
		}
	}

	r := &runner{
		o:       o,
		g:       g.Clone(),
		dist:    make(map[string]float64, len(g.Nodes)),
		pred:    make(map[string]int, len(g.Nodes)),
		visited: make(map[string]bool, len(g.Nodes)),
		rec:     step.NewRecorder(core.CloneGraph),
	}
	r.g.ResetStatuses()
	r.adj = r.g.Adjacency()
	r.index = make(map[string]int, len(r.g.Nodes))

	// 3) Every distance starts at +∞.
	for i := range r.g.Nodes {
		n := &r.g.Nodes[i]
		r.index[n.ID] = i
		r.dist[n.ID] = math.Inf(1)
		n.Label = label(n.ID, math.Inf(1))
	}
	r.emit("Initialize distances: the source gets 0, every other node ∞", step.Label("initDist"))

	// 4) Seed the queue with the source.
	r.setDist(src, 0)
	r.pq = append(r.pq, item{id: src, dist: 0})
	r.emit(fmt.Sprintf("Push source %s into the priority queue with distance 0", src),
		step.Highlight(r.index[src]), step.Label("initPQ"))

	// 5) Main loop.
	if err := r.loop(); err != nil {
		return nil, err
	}

	r.emit("Dijkstra completed! All shortest distances are final.")
	return r.rec.Steps(), nil
}

func (r *runner) emit(log string, hs ...step.Hint) {
	r.rec.Emit(r.g, log, hs...)
}

func (r *runner) setDist(id string, d float64) {
	r.dist[id] = d
	r.g.Nodes[r.index[id]].Label = label(id, d)
}

func (r *runner) loop() error {
	for len(r.pq) > 0 {
		select {
		case <-r.o.Ctx.Done():
			return fmt.Errorf("dijkstra: %w", r.o.Ctx.Err())
		default:
		}

		slices.SortStableFunc(r.pq, func(a, b item) int {
			switch {
			case a.dist < b.dist:
				return -1
			case a.dist > b.dist:
				return 1
			}
			return 0
		})
		r.emit("Check the priority queue", step.Label("loopPQ"))

		cur := r.pq[0]
		r.pq = r.pq[1:]
		if r.visited[cur.id] {
			continue // stale entry
		}
		r.visited[cur.id] = true

		ui := r.index[cur.id]
		r.g.Nodes[ui].Status = core.StatusVisited
		r.emit(fmt.Sprintf("Dequeue %s with the smallest distance %s; its distance is final", cur.id, format(cur.dist)),
			step.Highlight(ui), step.Label("dequeue"))

		r.relaxAll(cur)
	}
	return nil
}

// relaxAll relaxes every edge leaving u towards a not yet finalized vertex.
func (r *runner) relaxAll(u item) {
	ui := r.index[u.id]
	r.emit(fmt.Sprintf("Scan the neighbors of %s", u.id),
		step.Highlight(ui), step.Label("loopNeighbors"))

	for _, nb := range r.adj[u.id] {
		if r.visited[nb.ID] {
			continue
		}
		vi := r.index[nb.ID]
		e := &r.g.Edges[nb.Edge]
		e.Status = core.EdgeActive

		alt := u.dist + nb.Weight
		r.emit(fmt.Sprintf("Distance to %s through %s: %s + %s = %s",
			nb.ID, u.id, format(u.dist), format(nb.Weight), format(alt)),
			step.Highlight(vi), step.Secondary(ui), step.Edge(e.ID), step.Label("calcDist"))

		r.emit(fmt.Sprintf("Compare new distance %s with current distance %s", format(alt), format(r.dist[nb.ID])),
			step.Highlight(vi), step.Edge(e.ID), step.Label("checkDist"))

		if alt >= r.dist[nb.ID] {
			e.Status = core.EdgeDefault
			continue
		}

		// the previous best incoming edge loses its mark
		if prev, ok := r.pred[nb.ID]; ok && prev != nb.Edge {
			r.g.Edges[prev].Status = core.EdgeDefault
		}
		r.pred[nb.ID] = nb.Edge
		e.Status = core.EdgeTraversed
		r.g.Nodes[vi].Status = core.StatusVisiting
		r.setDist(nb.ID, alt)
		r.emit(fmt.Sprintf("Update the shortest distance of %s to %s", nb.ID, format(alt)),
			step.Highlight(vi), step.Edge(e.ID), step.Label("updateDist"))

		r.pq = append(r.pq, item{id: nb.ID, dist: alt})
		r.emit(fmt.Sprintf("Push %s into the priority queue with distance %s", nb.ID, format(alt)),
			step.Highlight(vi), step.Edge(e.ID), step.Label("enqueue"))
	}
}

// label renders the display label of a vertex with its tentative distance.
func label(id string, d float64) string {
	return id + " (" + format(d) + ")"
}

func format(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
