// Package algoscope generates step-by-step traces of classic algorithms and
// data structures so that a viewer can replay them frame by frame.
//
// What is in the box?
//
//	Every algorithm is a pure function from an input to a sequence of
//	step.Step values. A step carries a deep copy of the state (an []int for
//	sorting, a core.Graph snapshot for everything else), the indices or ids
//	to highlight, a one-line narration and a code label pointing at a line
//	of the reference source.
//
//		• Sorting: bubble, merge and quick sort
//		• Graphs: BFS, DFS and Dijkstra over core.Graph
//		• Trees: AVL, red-black and B+ trees (order 4)
//		• Hashing: a Go-style map with tophash buckets and incremental growth
//
// Trees and maps are stateless between runs: each operation decodes the
// incoming snapshot, mutates a private structure and re-encodes it after
// every step, so the output of one operation feeds the next.
//
// Layout:
//
//	step/      - the Step record and helpers shared by all generators
//	core/      - graph snapshot types, validation and cloning
//	sorting/   - array generators
//	bfs/ dfs/ dijkstra/ - graph traversals
//	bintree/ avl/ rbtree/ bplustree/ gomap/ - structures and their codecs
//	operation/ - the Operation request shared by trees and maps
//	codelabel/ - reference sources and their @label markers
//	catalog/   - the registry every front end looks algorithms up in
//	playback/  - the play/pause/seek controller over a finished sequence
//	matrix/    - adjacency and incidence views of a snapshot
//	builder/   - deterministic sample graphs and arrays
//	cmd/algoscope - the command-line front end (run, play, replay, serve)
//
// Quick start:
//
//	a, _ := catalog.Lookup("dijkstra")
//	res, err := a.Run(ctx, catalog.Input{Graph: g, Start: "A"})
//	for _, s := range res.Graphs {
//		fmt.Println(s.CodeLabel, s.Log)
//	}
package algoscope
