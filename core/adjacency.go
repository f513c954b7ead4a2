// SPDX-License-Identifier: MIT

package core

import "fmt"

// Neighbor is one adjacency entry: the neighbor id, the cost of reaching it
// and the index of the edge used.
type Neighbor struct {
	ID     string
	Weight float64
	Edge   int
}

// Adjacency derives the neighbor lists of g from its edge list, in edge
// order. Undirected edges contribute both directions. Edges pointing at
// unknown nodes are skipped.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string][]Neighbor {
	adj := make(map[string][]Neighbor, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = []Neighbor{}
	}
	for i, e := range g.Edges {
		_, okS := adj[e.Source]
		_, okT := adj[e.Target]
		if !okS || !okT {
			continue
		}
		adj[e.Source] = append(adj[e.Source], Neighbor{ID: e.Target, Weight: e.Cost(), Edge: i})
		if !g.Directed {
			adj[e.Target] = append(adj[e.Target], Neighbor{ID: e.Source, Weight: e.Cost(), Edge: i})
		}
	}
	return adj
}

// ResolveStart picks the start node of a traversal.
//
//  1. A non-empty id must name an existing node (ErrInvalidStartNode).
//  2. An empty id defaults to the first node (ErrMissingStartNode if none).
func (g *Graph) ResolveStart(id string) (string, error) {
	if id == "" {
		if len(g.Nodes) == 0 {
			return "", ErrMissingStartNode
		}
		return g.Nodes[0].ID, nil
	}
	if g.NodeIndex(id) < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidStartNode, id)
	}
	return id, nil
}
