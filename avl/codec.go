package avl

import (
	"fmt"

	"github.com/katalvlaran/algoscope/bintree"
	"github.com/katalvlaran/algoscope/core"
)

// Encode projects the tree into a snapshot. Nodes holding the given keys
// are highlighted.
func (t *Tree) Encode(highlight ...int) core.Graph {
	return bintree.Encode(t.root, shape, bintree.IDs(highlight...)...)
}

// Decode rebuilds a tree from a snapshot produced by Encode. Heights are
// recomputed from the structure. Anything that is not a well-formed binary
// search tree decodes to an empty tree.
func Decode(g core.Graph) *Tree {
	t, _ := decode(g)
	return t
}

func decode(g core.Graph) (*Tree, error) {
	d, err := bintree.Decode(g, parseLabel)
	if err != nil {
		return &Tree{}, err
	}
	t := &Tree{size: len(d.Nodes)}

	var build func(i int) *node
	build = func(i int) *node {
		if i == bintree.None {
			return nil
		}
		n := &node{key: d.Nodes[i].Key}
		n.left = build(d.Nodes[i].Left)
		n.right = build(d.Nodes[i].Right)
		n.fix()
		return n
	}
	t.root = build(d.Root)
	return t, nil
}

// parseLabel reads "<key> (H:<height>)". A bare "<key>" is accepted too.
func parseLabel(label string) (key, h int, err error) {
	if n, _ := fmt.Sscanf(label, "%d (H:%d)", &key, &h); n == 2 {
		return key, h, nil
	}
	var rest string
	if n, _ := fmt.Sscanf(label, "%d%s", &key, &rest); n == 1 {
		return key, 0, nil
	}
	return 0, 0, fmt.Errorf("avl: bad label %q", label)
}
