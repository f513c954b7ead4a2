// SPDX-License-Identifier: MIT

package core

// NewGraph returns an empty, undirected graph unless WithDirected is given.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{Nodes: []Node{}, Edges: []Edge{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EdgeID returns the conventional id of the edge source→target.
func EdgeID(source, target string) string {
	return "e-" + source + "-" + target
}

// AddNode appends a node with the given id unless one already exists.
// It returns the index of the node.
func (g *Graph) AddNode(id string, opts ...NodeOption) int {
	if i := g.NodeIndex(id); i >= 0 {
		return i
	}
	n := Node{ID: id, Status: StatusUnvisited}
	for _, opt := range opts {
		opt(&n)
	}
	g.Nodes = append(g.Nodes, n)
	return len(g.Nodes) - 1
}

// AddEdge appends the edge source→target, creating missing endpoints.
// The id defaults to EdgeID(source, target). It returns the edge id.
func (g *Graph) AddEdge(source, target string, opts ...EdgeOption) string {
	g.AddNode(source)
	g.AddNode(target)
	e := Edge{ID: EdgeID(source, target), Source: source, Target: target, Status: EdgeDefault}
	for _, opt := range opts {
		opt(&e)
	}
	g.Edges = append(g.Edges, e)
	return e.ID
}

// NodeIndex returns the position of id in Nodes, or -1.
func (g *Graph) NodeIndex(id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// Node returns a pointer into Nodes for id, or nil.
func (g *Graph) Node(id string) *Node {
	if i := g.NodeIndex(id); i >= 0 {
		return &g.Nodes[i]
	}
	return nil
}

// Edge returns a pointer into Edges for id, or nil.
func (g *Graph) Edge(id string) *Edge {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return &g.Edges[i]
		}
	}
	return nil
}

// EdgeBetween returns the first edge connecting from→to, honoring direction
// for directed graphs and accepting either orientation otherwise.
func (g *Graph) EdgeBetween(from, to string) *Edge {
	for i := range g.Edges {
		e := &g.Edges[i]
		if e.Source == from && e.Target == to {
			return e
		}
		if !g.Directed && e.Source == to && e.Target == from {
			return e
		}
	}
	return nil
}

// IncidentEdges returns the indices of edges leaving id (or touching id
// when the graph is undirected).
func (g *Graph) IncidentEdges(id string) []int {
	var out []int
	for i, e := range g.Edges {
		if e.Source == id || (!g.Directed && e.Target == id) {
			out = append(out, i)
		}
	}
	return out
}

// ResetStatuses marks every node unvisited and every edge default.
func (g *Graph) ResetStatuses() {
	for i := range g.Nodes {
		g.Nodes[i].Status = StatusUnvisited
	}
	for i := range g.Edges {
		g.Edges[i].Status = EdgeDefault
	}
}

// SetEdgeStatus updates the status of the edges with the given indices.
func (g *Graph) SetEdgeStatus(status EdgeStatus, idx ...int) {
	for _, i := range idx {
		g.Edges[i].Status = status
	}
}

// Indices returns the positions in Nodes of the given ids, in argument
// order. Unknown ids are skipped.
func (g *Graph) Indices(ids ...string) []int {
	var out []int
	for _, id := range ids {
		if i := g.NodeIndex(id); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}
