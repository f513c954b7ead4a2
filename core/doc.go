// Package core defines the Graph snapshot model shared by every graph,
// tree and hash-map algorithm in algoscope.
//
// A Graph is a flat, JSON-safe value: a slice of Nodes, a slice of Edges and
// a Directed flag. It is the rendering contract for graph views and the sole
// persistence format between interactive tree operations. Algorithms never
// hold a Graph by reference across steps; they mutate a private working copy
// and record Clone()s of it.
//
// What lives here:
//
//	types.go     - Node, Edge, Graph, status enums, sentinel errors, options
//	graph.go     - builders (AddNode, AddEdge) and lookups (Node, EdgeBetween, ...)
//	clone.go     - deep copy
//	adjacency.go - adjacency derivation and start-node resolution
//	validate.go  - structural validation (unique ids, no dangling edges)
//
// Errors:
//
//	ErrInvalidStartNode - a start node id was supplied but is not in the graph.
//	ErrMissingStartNode - no start id was supplied and the graph has no nodes.
//	ErrEmptyID          - a node or edge has an empty id.
//	ErrDuplicateNode    - two nodes share an id.
//	ErrDuplicateEdge    - two edges share an id.
//	ErrDanglingEdge     - an edge references a node that does not exist.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B")
//	g.AddEdge("A", "C")
//	g.AddEdge("B", "D")
//	g.AddEdge("C", "D")
package core
