// Package dijkstra turns Dijkstra's single-source shortest-path algorithm
// into a replayable sequence of graph snapshots.
//
// Every vertex label shows its tentative distance as "<id> (<dist>)", with
// ∞ for vertices not yet reached. Relaxing a vertex marks it visiting and
// the edge it was reached through traversed; a later, strictly better
// relaxation moves the traversed mark to the new edge, so each vertex has at
// most one traversed incoming edge at any time. A vertex becomes visited
// when it is dequeued with the globally minimal tentative distance.
//
// The priority queue is a slice re-sorted (stably) on every iteration.
// Stale entries for already finalized vertices are skipped when popped
// rather than removed when superseded.
//
// Complexity:
//
//   - Time:  O(E · Q log Q) for the queue (Q ≤ E), plus one graph clone per step.
//   - Space: O(V + E) per snapshot.
//
// Errors (sentinel):
//
//   - core.ErrInvalidStartNode / core.ErrMissingStartNode, wrapped.
//   - ErrNegativeWeight if any edge carries a negative weight; detected
//     before any step is produced.
//
// Code labels: initDist, initPQ, loopPQ, dequeue, loopNeighbors, calcDist,
// checkDist, updateDist, enqueue.
package dijkstra
