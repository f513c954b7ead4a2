// SPDX-License-Identifier: MIT

package core

import "fmt"

// Validate checks structural well-formedness: non-empty unique node ids,
// non-empty unique edge ids and edges that reference existing nodes.
// It reports the first problem found.
func (g *Graph) Validate() error {
	nodes := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node", ErrEmptyID)
		}
		if _, dup := nodes[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		nodes[n.ID] = struct{}{}
	}

	edges := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if e.ID == "" {
			return fmt.Errorf("%w: edge %s→%s", ErrEmptyID, e.Source, e.Target)
		}
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateEdge, e.ID)
		}
		edges[e.ID] = struct{}{}
		if _, ok := nodes[e.Source]; !ok {
			return fmt.Errorf("%w: %q source %q", ErrDanglingEdge, e.ID, e.Source)
		}
		if _, ok := nodes[e.Target]; !ok {
			return fmt.Errorf("%w: %q target %q", ErrDanglingEdge, e.ID, e.Target)
		}
	}
	return nil
}
