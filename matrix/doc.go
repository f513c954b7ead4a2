// Package matrix projects a graph snapshot onto dense matrices so a step can
// be inspected as numbers instead of a node and edge listing.
//
// Two views are offered:
//
//	Adjacency - one row and one column per node, cell (i,j) holds the weight
//	            of the edge from node i to node j, or the NoEdge value.
//	Incidence - one row per node and one column per edge. Directed edges put
//	            -1 at the source and +1 at the target; undirected edges put +1
//	            at both ends, and an undirected self-loop puts +2 in its row.
//
// Row and column order follow the snapshot's node order, and incidence
// columns follow its edge order, so two matrices built from consecutive steps
// of one run line up cell for cell.
//
// Parallel edges collapse in the adjacency view; the last edge in snapshot
// order wins. The incidence view keeps them apart.
//
// Errors:
//
//	ErrEmptyGraph   - the snapshot has no nodes.
//	ErrUnknownNode  - Weight was asked about a node outside the index.
//	ErrInvalidGraph - the snapshot failed core validation (wrapped cause).
package matrix
