// Package bfs turns breadth-first search over a core.Graph into a replayable
// sequence of steps.
//
// What
//
//   - Explores vertices in non-decreasing hop distance from a start vertex.
//   - Every queue check, dequeue, neighbor scan, visited check and enqueue is
//     recorded as a step.Step[core.Graph] carrying a full graph snapshot.
//   - Node status moves unvisited → visiting (enqueued) → visited (dequeued).
//   - The edge that discovers a vertex becomes traversed and stays so; edges
//     that are only inspected flash active and revert to default.
//
// Determinism
//
//	Neighbors are scanned in edge-list order (core.Graph.Adjacency), so the
//	step sequence is fully reproducible for a given graph.
//
// Errors
//
//	A start id that names no vertex wraps core.ErrInvalidStartNode; an empty
//	graph with no start wraps core.ErrMissingStartNode. Both are reported
//	before any step is produced. Context cancellation aborts the run.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) traversal, O((V + E)·(V + E)) including snapshots.
//   - Memory: one graph clone per step.
//
// Code labels: initQueue, visitStart, loopQueue, dequeue, loopNeighbors,
// checkVisited, enqueue.
package bfs
