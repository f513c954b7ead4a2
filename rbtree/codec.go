package rbtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
)

// Encode projects the tree into a snapshot. Node color is carried in
// core.Node.Color; nodes holding the given keys are highlighted.
func (t *Tree) Encode(highlight ...int) core.Graph {
	return bintree.Encode(t.root, shape, bintree.IDs(highlight...)...)
}

// Decode rebuilds a tree from a snapshot produced by Encode. Colors are
// taken as-is and not re-validated. A snapshot that is not a binary search
// tree, or has a node whose color is neither red nor black, decodes to an
// empty tree.
func Decode(g core.Graph) *Tree {
	t, _ := decode(g)
	return t
}

func decode(g core.Graph) (*Tree, error) {
	d, err := bintree.Decode(g, parseLabel)
	if err != nil {
		return &Tree{}, err
	}

	nodes := make([]*node, len(d.Nodes))
	for i, dn := range d.Nodes {
		c, err := parseColor(dn.Color)
		if err != nil {
			return &Tree{}, fmt.Errorf("%w: node %s: %v", bintree.ErrMalformed, dn.ID, err)
		}
		nodes[i] = &node{key: dn.Key, color: c}
	}
	for i, dn := range d.Nodes {
		if dn.Left != bintree.None {
			nodes[i].left = nodes[dn.Left]
			nodes[dn.Left].parent = nodes[i]
		}
		if dn.Right != bintree.None {
			nodes[i].right = nodes[dn.Right]
			nodes[dn.Right].parent = nodes[i]
		}
	}

	t := &Tree{size: len(nodes)}
	if d.Root != bintree.None {
		t.root = nodes[d.Root]
	}
	return t, nil
}

func parseLabel(label string) (key, meta int, err error) {
	key, err = strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return 0, 0, fmt.Errorf("rbtree: bad label %q", label)
	}
	return key, 0, nil
}

func parseColor(s string) (color, error) {
	switch s {
	case core.ColorRed:
		return red, nil
	case core.ColorBlack:
		return black, nil
	}
	return black, fmt.Errorf("unknown color %q", s)
}
