package bintree

import (
	"fmt"

	"github.com/katalvlaran/algoscope/core"
)

// Decode recovers a binary search tree from g using parse for labels.
// An empty graph decodes to an empty tree without error.
func Decode(g core.Graph, parse LabelParser) (Decoded, error) {
	d := Decoded{Root: None, Nodes: make([]DecodedNode, 0, len(g.Nodes))}
	if len(g.Nodes) == 0 {
		if len(g.Edges) > 0 {
			return Decoded{Root: None}, fmt.Errorf("%w: edges without nodes", ErrMalformed)
		}
		return d, nil
	}

	// 1) Parse every label; keys and ids must be unique.
	byID := make(map[string]int, len(g.Nodes))
	keys := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		key, meta, err := parse(n.Label)
		if err != nil {
			return Decoded{Root: None}, fmt.Errorf("%w: node %q: %v", ErrMalformed, n.ID, err)
		}
		if _, dup := byID[n.ID]; dup || keys[key] {
			return Decoded{Root: None}, fmt.Errorf("%w: duplicate node %q", ErrMalformed, n.ID)
		}
		byID[n.ID] = len(d.Nodes)
		keys[key] = true
		d.Nodes = append(d.Nodes, DecodedNode{
			ID: n.ID, Key: key, Meta: meta, Color: n.Color, Left: None, Right: None,
		})
	}

	// 2) Attach children by key order.
	hasParent := make([]bool, len(d.Nodes))
	for _, e := range g.Edges {
		p, okP := byID[e.Source]
		c, okC := byID[e.Target]
		if !okP || !okC {
			return Decoded{Root: None}, fmt.Errorf("%w: dangling edge %q", ErrMalformed, e.ID)
		}
		if hasParent[c] {
			return Decoded{Root: None}, fmt.Errorf("%w: node %q has two parents", ErrMalformed, e.Target)
		}
		slot := &d.Nodes[p].Right
		if d.Nodes[c].Key < d.Nodes[p].Key {
			slot = &d.Nodes[p].Left
		}
		if *slot != None {
			return Decoded{Root: None}, fmt.Errorf("%w: node %q has two children on one side", ErrMalformed, e.Source)
		}
		*slot = c
		hasParent[c] = true
	}

	// 3) Exactly one root.
	for i, hp := range hasParent {
		if hp {
			continue
		}
		if d.Root != None {
			return Decoded{Root: None}, fmt.Errorf("%w: several roots", ErrMalformed)
		}
		d.Root = i
	}
	if d.Root == None {
		return Decoded{Root: None}, fmt.Errorf("%w: no root", ErrMalformed)
	}

	// 4) In-order walk must reach every node with strictly increasing keys.
	seen, ok := 0, true
	var last int
	var inorder func(i int)
	inorder = func(i int) {
		if i == None || !ok {
			return
		}
		inorder(d.Nodes[i].Left)
		if seen > 0 && d.Nodes[i].Key <= last {
			ok = false
			return
		}
		last = d.Nodes[i].Key
		seen++
		inorder(d.Nodes[i].Right)
	}
	inorder(d.Root)
	if !ok {
		return Decoded{Root: None}, fmt.Errorf("%w: keys out of order", ErrMalformed)
	}
	if seen != len(d.Nodes) {
		return Decoded{Root: None}, fmt.Errorf("%w: %d unreachable nodes", ErrMalformed, len(d.Nodes)-seen)
	}

	return d, nil
}
