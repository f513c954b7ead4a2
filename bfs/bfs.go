package bfs

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// walker encapsulates mutable BFS state.
type walker struct {
	o       Options
	g       core.Graph
	adj     map[string][]core.Neighbor
	index   map[string]int
	queue   []string
	visited map[string]bool
	rec     *step.Recorder[core.Graph]
}

// BFS runs breadth-first search on a private copy of g and returns the
// recorded steps. The input graph is never modified.
func BFS(g core.Graph, opts ...Option) ([]step.Step[core.Graph], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validate the start vertex before producing anything.
	start, err := g.ResolveStart(o.Start)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	// 2) Prepare the working copy with fresh statuses.
	w := &walker{
		o:       o,
		g:       g.Clone(),
		visited: make(map[string]bool, len(g.Nodes)),
		rec:     step.NewRecorder(core.CloneGraph),
	}
	w.g.ResetStatuses()
	w.adj = w.g.Adjacency()
	w.index = make(map[string]int, len(w.g.Nodes))
	for i, n := range w.g.Nodes {
		w.index[n.ID] = i
	}

	w.emit("Starting BFS...", step.Label("initQueue"))

	// 3) Seed the queue.
	w.enqueue(start)
	w.emit(fmt.Sprintf("Enqueue start node %s and mark it visiting", start),
		step.Highlight(w.index[start]), step.Label("visitStart"))

	// 4) Drain.
	if err := w.loop(); err != nil {
		return nil, err
	}

	w.emit("BFS completed!")
	return w.rec.Steps(), nil
}

func (w *walker) emit(log string, hs ...step.Hint) {
	w.rec.Emit(w.g, log, hs...)
}

func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
	w.g.Nodes[w.index[id]].Status = core.StatusVisiting
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.o.Ctx.Done():
			return fmt.Errorf("bfs: %w", w.o.Ctx.Err())
		default:
		}

		w.emit("Queue is not empty, continue", step.Label("loopQueue"))

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.g.Nodes[w.index[cur]].Status = core.StatusVisited
		w.emit(fmt.Sprintf("Dequeue %s and mark it visited", cur),
			step.Highlight(w.index[cur]), step.Label("dequeue"))

		w.scan(cur)
	}
	return nil
}

// scan announces the neighbor loop of cur, then checks every neighbor.
func (w *walker) scan(cur string) {
	ci := w.index[cur]

	flashed := flash(&w.g, cur)
	w.emit(fmt.Sprintf("Scan the neighbors of %s", cur),
		step.Highlight(ci), step.Label("loopNeighbors"))
	w.g.SetEdgeStatus(core.EdgeDefault, flashed...)

	for _, nb := range w.adj[cur] {
		e := &w.g.Edges[nb.Edge]
		wasDefault := e.Status == core.EdgeDefault
		if wasDefault {
			e.Status = core.EdgeActive
		}
		w.emit(fmt.Sprintf("Check whether %s has been visited", nb.ID),
			step.Highlight(w.index[nb.ID]), step.Secondary(ci),
			step.Edge(e.ID), step.Label("checkVisited"))

		if w.visited[nb.ID] {
			if wasDefault {
				e.Status = core.EdgeDefault
			}
			continue
		}

		w.enqueue(nb.ID)
		e.Status = core.EdgeTraversed
		w.emit(fmt.Sprintf("%s is unvisited: enqueue it and mark it visiting", nb.ID),
			step.Highlight(w.index[nb.ID]), step.Secondary(ci),
			step.Edge(e.ID), step.Label("enqueue"))
	}
}

// flash marks every default edge incident to id active and returns their
// indices so the caller can revert them. Traversed edges are left alone.
func flash(g *core.Graph, id string) []int {
	var out []int
	for _, i := range g.IncidentEdges(id) {
		if g.Edges[i].Status == core.EdgeDefault {
			g.Edges[i].Status = core.EdgeActive
			out = append(out, i)
		}
	}
	return out
}
