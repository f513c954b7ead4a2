// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of g. Edge weights are copied, not shared.
//
// Complexity: O(V + E).
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes:    make([]Node, len(g.Nodes)),
		Edges:    make([]Edge, len(g.Edges)),
		Directed: g.Directed,
	}
	copy(out.Nodes, g.Nodes)
	for i, e := range g.Edges {
		if e.Weight != nil {
			w := *e.Weight
			e.Weight = &w
		}
		out.Edges[i] = e
	}
	return out
}

// CloneGraph is Graph.Clone as a plain function, for use as a step.Recorder
// clone function.
func CloneGraph(g Graph) Graph { return g.Clone() }
