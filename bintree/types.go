package bintree

import (
	"errors"
	"strconv"
)

// ErrMalformed is returned by Decode for snapshots that do not describe a
// binary search tree.
var ErrMalformed = errors.New("bintree: malformed snapshot")

// Layout constants shared by every binary tree projection.
const (
	RootX       = 400.0
	RootY       = 50.0
	RootOffset  = 160.0
	OffsetDecay = 1.8
	LevelHeight = 60.0
)

// None marks an absent child in Decoded.
const None = -1

// DecodedNode is one node recovered from a snapshot. Left and Right index
// into Decoded.Nodes, or are None.
type DecodedNode struct {
	ID    string
	Key   int
	Meta  int    // parser-defined metadata, e.g. AVL height
	Color string // copied from core.Node.Color
	Left  int
	Right int
}

// Decoded is a tree recovered from a snapshot. Root is None for an empty tree.
type Decoded struct {
	Root  int
	Nodes []DecodedNode
}

// LabelParser recovers the key and metadata encoded in a node label.
type LabelParser func(label string) (key, meta int, err error)

// NodeID returns the id of the node holding key.
func NodeID(key int) string {
	return "node-" + strconv.Itoa(key)
}

// IDs maps keys to node ids.
func IDs(keys ...int) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = NodeID(k)
	}
	return out
}
