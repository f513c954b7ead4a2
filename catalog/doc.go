// Package catalog registers every algorithm algoscope can visualize under a
// stable id and adapts its generator to one JSON-friendly signature:
//
//	a, _ := catalog.Lookup("dijkstra")
//	res, err := a.Run(ctx, a.Sample(1))
//
// Ids double as directory names of the annotated reference sources in
// package codelabel, so a.Source(lang) returns the code whose labels the
// emitted steps point at.
//
//	sorting  bubble-sort, merge-sort, quick-sort
//	graph    bfs, dfs, dijkstra
//	tree     avl, red-black-tree, bplus-tree
//	hash     go-map
//
// Each entry also carries a Profile (complexity, explanation, use cases,
// pitfalls) with a Markdown rendering for terminals and the HTTP API.
package catalog
