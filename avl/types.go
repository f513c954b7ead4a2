package avl

import (
	"fmt"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
)

type node struct {
	key    int
	height int
	left   *node
	right  *node
}

// tracer receives one event per meaningful sub-action.
type tracer func(log, label string, keys ...int)

// Tree is an AVL tree of distinct int keys. The zero value is empty.
type Tree struct {
	root  *node
	size  int
	trace tracer
}

// New builds a tree by inserting keys in order. Duplicates are ignored.
func New(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Len reports the number of keys.
func (t *Tree) Len() int { return t.size }

// Height reports the height of the tree (0 when empty).
func (t *Tree) Height() int { return height(t.root) }

// Keys returns every key in ascending order.
func (t *Tree) Keys() []int {
	out := make([]int, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)
	return out
}

var shape = bintree.Shape[*node]{
	Children: func(n *node) (*node, *node) { return n.left, n.right },
	Describe: func(n *node) core.Node {
		return core.Node{ID: bintree.NodeID(n.key), Label: fmt.Sprintf("%d (H:%d)", n.key, n.height)}
	},
}

func (t *Tree) emit(log, label string, keys ...int) {
	if t.trace != nil {
		t.trace(log, label, keys...)
	}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node) fix() {
	n.height = 1 + max(height(n.left), height(n.right))
}
