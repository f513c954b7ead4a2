package bplustree

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoscope/core"
)

// ErrMalformed is returned by decode for snapshots that do not describe a
// B+ tree.
var ErrMalformed = errors.New("bplustree: malformed snapshot")

// Layout of the projection.
const (
	labelPrefix  = "B+:"
	canvasWidth  = 800.0
	leftMargin   = 50.0
	leafGap      = 20.0
	levelSpacing = 100.0
	topMargin    = 40.0
	minWidth     = 60.0
	keyWidth     = 25.0
	padding      = 20.0
)

// LinkID returns the id of the leaf-chain edge from a to b.
func LinkID(a, b string) string {
	return "link-" + a + "-" + b
}

func width(n *node) float64 {
	return max(minWidth, float64(len(n.keys))*keyWidth+padding)
}

func label(n *node) string {
	parts := make([]string, len(n.keys))
	for i, k := range n.keys {
		parts[i] = strconv.Itoa(k)
	}
	return labelPrefix + strings.Join(parts, "|")
}

// Encode projects the tree into a snapshot. Leaves are laid out left to
// right, parents centered above their children, the whole tree centered
// on the canvas. Nodes whose id is in highlight get status visiting.
func (t *Tree) Encode(highlight ...string) core.Graph {
	g := core.Graph{Nodes: []core.Node{}, Edges: []core.Edge{}, Directed: true}
	if t.empty() {
		return g
	}
	hl := make(map[string]bool, len(highlight))
	for _, id := range highlight {
		hl[id] = true
	}

	type point struct{ x, y float64 }
	pos := make(map[*node]point)
	nextX := leftMargin

	var place func(n *node, depth int)
	place = func(n *node, depth int) {
		y := float64(depth)*levelSpacing + topMargin
		if n.leaf {
			w := width(n)
			pos[n] = point{nextX + w/2, y}
			nextX += w + leafGap
			return
		}
		for _, c := range n.children {
			place(c, depth+1)
		}
		first, last := pos[n.children[0]], pos[n.children[len(n.children)-1]]
		pos[n] = point{(first.x + last.x) / 2, y}
	}
	place(t.root, 0)
	offset := max(0, (canvasWidth-nextX)/2)

	var walk func(n *node)
	walk = func(n *node) {
		p := pos[n]
		cn := core.Node{
			ID:     n.id,
			Label:  label(n),
			X:      p.x + offset,
			Y:      p.y,
			Status: core.StatusVisited,
			Color:  core.ColorBlack,
		}
		if hl[n.id] {
			cn.Status = core.StatusVisiting
		}
		g.Nodes = append(g.Nodes, cn)

		if !n.leaf {
			for _, c := range n.children {
				g.Edges = append(g.Edges, core.Edge{
					ID: core.EdgeID(n.id, c.id), Source: n.id, Target: c.id, Status: core.EdgeDefault,
				})
				walk(c)
			}
			return
		}
		if n.next != nil {
			g.Edges = append(g.Edges, core.Edge{
				ID: LinkID(n.id, n.next.id), Source: n.id, Target: n.next.id, Status: core.EdgeActive,
			})
		}
	}
	walk(t.root)
	return g
}

// Decode rebuilds a tree from a snapshot produced by Encode. Child order
// follows key order, the leaf chain is rebuilt from the leaves. Anything
// that is not a well-formed B+ tree decodes to an empty tree.
func Decode(g core.Graph) *Tree {
	t, _ := decode(g)
	return t
}

func decode(g core.Graph) (*Tree, error) {
	if len(g.Nodes) == 0 {
		if len(g.Edges) > 0 {
			return New(), fmt.Errorf("%w: edges without nodes", ErrMalformed)
		}
		return New(), nil
	}

	t := &Tree{}
	byID := make(map[string]*node, len(g.Nodes))
	for _, cn := range g.Nodes {
		if _, dup := byID[cn.ID]; dup {
			return New(), fmt.Errorf("%w: duplicate node %q", ErrMalformed, cn.ID)
		}
		keys, err := parseLabel(cn.Label)
		if err != nil {
			return New(), fmt.Errorf("%w: node %q: %v", ErrMalformed, cn.ID, err)
		}
		byID[cn.ID] = &node{id: cn.ID, keys: keys}
		if s, ok := strings.CutPrefix(cn.ID, idPrefix); ok {
			if n, err := strconv.Atoi(s); err == nil && n >= t.nextID {
				t.nextID = n + 1
			}
		}
	}

	// 1) Child links; leaf links are only checked against the rebuilt chain.
	links := make(map[string]string)
	for _, e := range g.Edges {
		src, dst := byID[e.Source], byID[e.Target]
		if src == nil || dst == nil {
			return New(), fmt.Errorf("%w: dangling edge %q", ErrMalformed, e.ID)
		}
		if e.Status == core.EdgeActive {
			links[src.id] = dst.id
			continue
		}
		if dst.parent != nil {
			return New(), fmt.Errorf("%w: node %q has two parents", ErrMalformed, dst.id)
		}
		dst.parent = src
		src.children = append(src.children, dst)
	}

	// 2) Exactly one root.
	for _, cn := range g.Nodes {
		n := byID[cn.ID]
		if n.parent != nil {
			continue
		}
		if t.root != nil {
			return New(), fmt.Errorf("%w: several roots", ErrMalformed)
		}
		t.root = n
	}
	if t.root == nil {
		return New(), fmt.Errorf("%w: no root", ErrMalformed)
	}

	// 3) Shape and ordering.
	for _, n := range byID {
		n.leaf = len(n.children) == 0
		if len(n.keys) == 0 && n != t.root {
			return New(), fmt.Errorf("%w: node %q has no keys", ErrMalformed, n.id)
		}
		if len(n.keys) > MaxKeys {
			return New(), fmt.Errorf("%w: node %q holds %d keys", ErrMalformed, n.id, len(n.keys))
		}
		if !n.leaf && len(n.children) != len(n.keys)+1 {
			return New(), fmt.Errorf("%w: node %q has %d keys and %d children", ErrMalformed, n.id, len(n.keys), len(n.children))
		}
	}
	for _, n := range byID {
		slices.SortStableFunc(n.children, func(a, b *node) int { return cmp.Compare(a.keys[0], b.keys[0]) })
	}

	var leaves []*node
	leafDepth, seen := -1, 0
	var walk func(n *node, lo, hi *int, depth int) error
	walk = func(n *node, lo, hi *int, depth int) error {
		seen++
		if seen > len(byID) {
			return fmt.Errorf("%w: cycle", ErrMalformed)
		}
		for i, k := range n.keys {
			if i > 0 && k <= n.keys[i-1] {
				return fmt.Errorf("%w: node %q keys out of order", ErrMalformed, n.id)
			}
			if (lo != nil && k < *lo) || (hi != nil && k >= *hi) {
				return fmt.Errorf("%w: key %d outside its separators", ErrMalformed, k)
			}
		}
		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return fmt.Errorf("%w: leaves at depths %d and %d", ErrMalformed, leafDepth, depth)
			}
			leaves = append(leaves, n)
			return nil
		}
		for i, c := range n.children {
			clo, chi := lo, hi
			if i > 0 {
				clo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				chi = &n.keys[i]
			}
			if err := walk(c, clo, chi, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root, nil, nil, 0); err != nil {
		return New(), err
	}
	if seen != len(byID) {
		return New(), fmt.Errorf("%w: %d unreachable nodes", ErrMalformed, len(byID)-seen)
	}

	// 4) Leaf chain.
	if len(links) != len(leaves)-1 {
		return New(), fmt.Errorf("%w: %d leaf links for %d leaves", ErrMalformed, len(links), len(leaves))
	}
	for i := 0; i+1 < len(leaves); i++ {
		if links[leaves[i].id] != leaves[i+1].id {
			return New(), fmt.Errorf("%w: leaf chain broken after %q", ErrMalformed, leaves[i].id)
		}
		leaves[i].next = leaves[i+1]
	}
	return t, nil
}

func parseLabel(s string) ([]int, error) {
	s = strings.TrimPrefix(s, labelPrefix)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, "|")
	keys := make([]int, len(parts))
	for i, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad key %q", p)
		}
		keys[i] = k
	}
	return keys, nil
}
