package dfs

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/step"
)

// frame is one stack entry: the vertex and the edge it was pushed along
// (-1 for the root).
type frame struct {
	id  string
	via int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts    Options
	g       core.Graph
	adj     map[string][]core.Neighbor
	index   map[string]int
	stack   []frame
	visited map[string]bool
	rec     *step.Recorder[core.Graph]
}

// DFS performs depth-first search on a private copy of g and returns the
// recorded steps.
func DFS(g core.Graph, opts ...Option) ([]step.Step[core.Graph], error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate the root
	start, err := g.ResolveStart(o.Start)
	if err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}

	// 3. Prepare the walker
	w := &dfsWalker{
		opts:    o,
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

	w.emit("Starting DFS...", step.Label("initStack"))

	w.push(frame{id: start, via: -1})
	w.emit(fmt.Sprintf("Push start node %s onto the stack", start),
		step.Highlight(w.index[start]), step.Label("initStack"))

	// 4. Run until the stack drains
	if err := w.loop(); err != nil {
		return nil, err
	}

	w.emit("DFS completed!")
	return w.rec.Steps(), nil
}

func (w *dfsWalker) emit(log string, hs ...step.Hint) {
	w.rec.Emit(w.g, log, hs...)
}

func (w *dfsWalker) push(f frame) {
	w.stack = append(w.stack, f)
	w.g.Nodes[w.index[f.id]].Status = core.StatusVisiting
}

func (w *dfsWalker) edgeID(i int) string {
	if i < 0 {
		return ""
	}
	return w.g.Edges[i].ID
}

func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return fmt.Errorf("dfs: %w", w.opts.Ctx.Err())
		default:
		}

		w.emit("Stack is not empty, continue", step.Label("loopStack"))

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		ci := w.index[top.id]
		w.emit(fmt.Sprintf("Pop %s from the stack", top.id),
			step.Highlight(ci), step.Label("popStack"))

		w.emit(fmt.Sprintf("Check whether %s has been visited", top.id),
			step.Highlight(ci), step.Label("checkVisited"))

		if w.visited[top.id] {
			w.emit(fmt.Sprintf("%s was already visited, skip it", top.id),
				step.Highlight(ci), step.Label("checkVisited"))
			continue
		}

		w.visit(top)
	}
	return nil
}

// visit marks f.id visited, fixes its tree edge and pushes its unvisited
// neighbors in reverse adjacency order.
func (w *dfsWalker) visit(f frame) {
	ci := w.index[f.id]
	w.visited[f.id] = true
	w.g.Nodes[ci].Status = core.StatusVisited
	if f.via >= 0 {
		w.g.Edges[f.via].Status = core.EdgeTraversed
	}
	w.emit(fmt.Sprintf("%s is unvisited, mark it visited", f.id),
		step.Highlight(ci), step.Edge(w.edgeID(f.via)), step.Label("visitNode"))

	var flashed []int
	for _, i := range w.g.IncidentEdges(f.id) {
		if w.g.Edges[i].Status == core.EdgeDefault {
			w.g.Edges[i].Status = core.EdgeActive
			flashed = append(flashed, i)
		}
	}
	w.emit(fmt.Sprintf("Collect the neighbors of %s in reverse order", f.id),
		step.Highlight(ci), step.Label("loopNeighbors"))
	w.g.SetEdgeStatus(core.EdgeDefault, flashed...)

	nbs := w.adj[f.id]
	for k := len(nbs) - 1; k >= 0; k-- {
		nb := nbs[k]
		e := &w.g.Edges[nb.Edge]
		wasDefault := e.Status == core.EdgeDefault
		if wasDefault {
			e.Status = core.EdgeActive
		}
		w.emit(fmt.Sprintf("Check neighbor %s", nb.ID),
			step.Highlight(w.index[nb.ID]), step.Secondary(ci),
			step.Edge(e.ID), step.Label("checkNeighbor"))

		if !w.visited[nb.ID] {
			w.push(frame{id: nb.ID, via: nb.Edge})
			w.emit(fmt.Sprintf("%s is unvisited, push it onto the stack", nb.ID),
				step.Highlight(w.index[nb.ID]), step.Secondary(ci),
				step.Edge(e.ID), step.Label("pushStack"))
		}
		if wasDefault {
			e.Status = core.EdgeDefault
		}
	}
}
