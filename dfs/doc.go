// Package dfs turns iterative depth-first search over a core.Graph into a
// replayable sequence of steps.
//
// The traversal uses an explicit stack. Neighbors are pushed in reverse
// adjacency order, so vertices are visited in the same order a recursive DFS
// would visit them. A vertex may be pushed more than once before it is
// popped; the visited check happens at pop time and a stale pop is recorded
// as a skip.
//
// Status vocabulary matches package bfs: unvisited → visiting (on the stack)
// → visited (popped first time). The edge a vertex was actually reached
// through becomes traversed when that vertex is visited and stays so; edges
// that are only inspected or pushed along flash active and revert.
//
// Code labels: initStack, loopStack, popStack, checkVisited, visitNode,
// loopNeighbors, checkNeighbor, pushStack.
package dfs
