package bintree

import "github.com/katalvlaran/algoscope/core"

// Shape exposes a concrete tree node type to Encode. Nil nodes are the zero
// value of N.
type Shape[N comparable] struct {
	// Children returns the left and right child of n.
	Children func(n N) (left, right N)

	// Describe fills id, label and color of n. Layout and status are set by Encode.
	Describe func(n N) core.Node
}

// Encode projects the tree rooted at root into a directed snapshot.
// Nodes whose id is in highlight get status visiting; the rest visited.
func Encode[N comparable](root N, s Shape[N], highlight ...string) core.Graph {
	hl := make(map[string]bool, len(highlight))
	for _, id := range highlight {
		hl[id] = true
	}

	g := core.Graph{Nodes: []core.Node{}, Edges: []core.Edge{}, Directed: true}
	var zero N

	var walk func(n N, x, y, offset float64)
	walk = func(n N, x, y, offset float64) {
		cn := s.Describe(n)
		cn.X, cn.Y = x, y
		cn.Status = core.StatusVisited
		if hl[cn.ID] {
			cn.Status = core.StatusVisiting
		}
		g.Nodes = append(g.Nodes, cn)

		left, right := s.Children(n)
		if left != zero {
			g.Edges = append(g.Edges, link(cn.ID, s.Describe(left).ID))
			walk(left, x-offset, y+LevelHeight, offset/OffsetDecay)
		}
		if right != zero {
			g.Edges = append(g.Edges, link(cn.ID, s.Describe(right).ID))
			walk(right, x+offset, y+LevelHeight, offset/OffsetDecay)
		}
	}

	if root != zero {
		walk(root, RootX, RootY, RootOffset)
	}
	return g
}

func link(parent, child string) core.Edge {
	return core.Edge{
		ID:     core.EdgeID(parent, child),
		Source: parent,
		Target: child,
		Status: core.EdgeDefault,
	}
}
