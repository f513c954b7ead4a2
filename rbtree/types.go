package rbtree

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
)

// ErrInvariant reports a violated red-black property.
var ErrInvariant = errors.New("rbtree: invariant violated")

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == black {
		return core.ColorBlack
	}
	return core.ColorRed
}

type node struct {
	key                 int
	color               color
	left, right, parent *node
}

// Tree is a red-black tree of distinct int keys. The zero value is empty.
type Tree struct {
	root  *node
	size  int
	trace func(log, label string, keys ...int)
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

// Keys returns the keys in ascending order.
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
		return core.Node{ID: bintree.NodeID(n.key), Label: strconv.Itoa(n.key), Color: n.color.String()}
	},
}

func (t *Tree) emit(log, label string, keys ...int) {
	if t.trace != nil {
		t.trace(log, label, keys...)
	}
}

func colorOf(n *node) color {
	if n == nil {
		return black
	}
	return n.color
}

func keysOf(ns ...*node) []int {
	var out []int
	for _, n := range ns {
		if n != nil {
			out = append(out, n.key)
		}
	}
	return out
}
