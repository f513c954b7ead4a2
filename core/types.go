// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph validation and start-node resolution.
var (
	// ErrInvalidStartNode indicates the requested start node is not in the graph.
	ErrInvalidStartNode = errors.New("core: start node not found")

	// ErrMissingStartNode indicates no start node was given and none could be defaulted.
	ErrMissingStartNode = errors.New("core: start node required but graph is empty")

	// ErrEmptyID indicates a node or edge with an empty id.
	ErrEmptyID = errors.New("core: empty id")

	// ErrDuplicateNode indicates two nodes share the same id.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrDuplicateEdge indicates two edges share the same id.
	ErrDuplicateEdge = errors.New("core: duplicate edge id")

	// ErrDanglingEdge indicates an edge whose source or target is not a node.
	ErrDanglingEdge = errors.New("core: edge references unknown node")
)

// NodeStatus is the visualization state of a node.
type NodeStatus string

// Node statuses.
const (
	StatusUnvisited NodeStatus = "unvisited"
	StatusVisiting  NodeStatus = "visiting"
	StatusVisited   NodeStatus = "visited"
)

// EdgeStatus is the visualization state of an edge.
type EdgeStatus string

// Edge statuses.
const (
	EdgeDefault   EdgeStatus = "default"
	EdgeTraversed EdgeStatus = "traversed"
	EdgeActive    EdgeStatus = "active"
)

// Node colors used by the red-black tree projection.
const (
	ColorRed   = "red"
	ColorBlack = "black"
)

// DefaultWeight is the weight of an edge that carries none.
const DefaultWeight = 1.0

// Node is one vertex of a snapshot.
//
// X and Y are layout hints; Label carries display text, which the tree and
// map codecs also use to serialize keys and metadata.
type Node struct {
	ID     string     `json:"id"`
	Label  string     `json:"label,omitempty"`
	X      float64    `json:"x,omitempty"`
	Y      float64    `json:"y,omitempty"`
	Status NodeStatus `json:"status,omitempty"`
	Color  string     `json:"color,omitempty"`
}

// Edge is one connection of a snapshot. A nil Weight means DefaultWeight.
type Edge struct {
	ID     string     `json:"id"`
	Source string     `json:"source"`
	Target string     `json:"target"`
	Weight *float64   `json:"weight,omitempty"`
	Status EdgeStatus `json:"status,omitempty"`
}

// Cost returns the edge weight, or DefaultWeight when none is set.
func (e Edge) Cost() float64 {
	if e.Weight == nil {
		return DefaultWeight
	}
	return *e.Weight
}

// Graph is the flat node/edge value rendered by views and re-entered by
// the structure codecs.
type Graph struct {
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
	Directed bool   `json:"directed"`
}

// GraphOption configures a Graph built by NewGraph.
type GraphOption func(*Graph)

// WithDirected marks the graph as directed.
func WithDirected() GraphOption {
	return func(g *Graph) { g.Directed = true }
}

// NodeOption configures a Node added through AddNode.
type NodeOption func(*Node)

// WithLabel sets the node label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// At sets the node layout position.
func At(x, y float64) NodeOption {
	return func(n *Node) { n.X, n.Y = x, y }
}

// EdgeOption configures an Edge added through AddEdge.
type EdgeOption func(*Edge)

// WithWeight sets an explicit edge weight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = &w }
}

// WithEdgeID overrides the generated edge id.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}
