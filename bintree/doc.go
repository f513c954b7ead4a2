// Package bintree projects binary search trees onto core.Graph snapshots
// and back.
//
// Encoding walks the tree in pre-order. The root sits at (RootX, RootY);
// each child is shifted horizontally by the parent's offset (starting at
// RootOffset, divided by OffsetDecay per level) and placed LevelHeight
// lower. Every node is identified by NodeID(key), and every parent→child
// link by core.EdgeID(parent, child).
//
// Decoding is the inverse: a caller-supplied parser recovers key and
// metadata from each label, left and right children are derived from key
// order, and the root is the unique node without an incoming edge. Any
// inconsistency (unparseable label, duplicate key, dangling edge, a node
// with two parents, zero or several roots, unreachable nodes, broken
// ordering) yields ErrMalformed so callers can fall back to an empty tree.
package bintree
