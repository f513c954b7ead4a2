package bplustree

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvariant reports a violated B+ tree property.
var ErrInvariant = errors.New("bplustree: invariant violated")

const (
	// Order is the maximum number of children of an internal node.
	Order = 4

	// MaxKeys is the largest number of keys a node may hold.
	MaxKeys = Order - 1

	// MinKeys is the smallest number of keys a non-root node may hold.
	MinKeys = (Order+1)/2 - 1
)

const idPrefix = "bp-"

type node struct {
	id       string
	keys     []int
	children []*node // internal only
	next     *node   // leaf only
	parent   *node
	leaf     bool
}

func (n *node) String() string {
	parts := make([]string, len(n.keys))
	for i, k := range n.keys {
		parts[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// childIndex returns the child to follow for key.
func (n *node) childIndex(key int) int {
	i := 0
	for i < len(n.keys) && key >= n.keys[i] {
		i++
	}
	return i
}

// Tree is a B+ tree of distinct int keys. Use New or Decode.
type Tree struct {
	root   *node
	nextID int
	trace  func(log, label string, ids ...string)
}

// New builds a tree by inserting keys in order. Duplicates are ignored.
func New(keys ...int) *Tree {
	t := &Tree{}
	t.root = t.newNode(true)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func (t *Tree) newNode(leaf bool) *node {
	n := &node{id: idPrefix + strconv.Itoa(t.nextID), leaf: leaf}
	t.nextID++
	return n
}

func (t *Tree) emit(log, label string, ids ...string) {
	if t.trace != nil {
		t.trace(log, label, ids...)
	}
}

// Len reports the number of keys.
func (t *Tree) Len() int {
	c := 0
	for l := t.firstLeaf(); l != nil; l = l.next {
		c += len(l.keys)
	}
	return c
}

// Keys returns the keys in ascending order by walking the leaf chain.
func (t *Tree) Keys() []int {
	out := []int{}
	for l := t.firstLeaf(); l != nil; l = l.next {
		out = append(out, l.keys...)
	}
	return out
}

// Height reports the number of levels; an empty tree has height 0.
func (t *Tree) Height() int {
	if t.empty() {
		return 0
	}
	h := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

func (t *Tree) empty() bool {
	return t.root.leaf && len(t.root.keys) == 0
}

func (t *Tree) firstLeaf() *node {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	return n
}
