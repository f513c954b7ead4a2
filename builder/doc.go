// Package builder produces deterministic demo inputs for the visualizer:
// shuffled arrays for the sorting generators and small graph fixtures for
// BFS, DFS and Dijkstra.
//
// Graphs are assembled by BuildGraph from one or more Constructors, each a
// closure that validates its parameters and appends vertices and edges to
// the graph under construction:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(7), builder.WithWeights(builder.IntWeightFn(1, 9))},
//		builder.Wheel(6),
//	)
//
// Options resolve into an immutable config before any constructor runs:
//
//   - Vertex ids (IDFn): SymbolIDFn by default ("A".."Z","AA",...),
//     DefaultIDFn for decimal ids, SymbolNumberIDFn(prefix) for "v0","v1",...
//   - Edge weights (WeightFn): off unless WithWeights is given; then
//     DefaultWeightFn, ConstantWeightFn or IntWeightFn.
//   - Randomness: WithSeed or WithRand. Stochastic constructors return
//     ErrNeedRandSource when neither is set.
//   - Direction: WithDirected. Symmetric shapes (wheel spokes, grid
//     lattice) then carry both arcs.
//
// Vertices a constructor does not place itself are laid out on a circle of
// radius 150 around (200, 200) in insertion order, the same layout the graph
// view falls back to. Grid places its own cells, Wheel its hub.
//
// Same options, same seed and same constructor order always produce the
// same graph.
package builder
