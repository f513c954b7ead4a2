package bplustree

import "fmt"

// Check verifies key counts, separator bounds, parent links, uniform leaf
// depth and that the leaf chain visits every key in ascending order.
func (t *Tree) Check() error {
	if t.empty() {
		return nil
	}
	leafDepth := -1
	var leaves []*node

	var walk func(n *node, lo, hi *int, depth int) error
	walk = func(n *node, lo, hi *int, depth int) error {
		if len(n.keys) > MaxKeys {
			return fmt.Errorf("%w: node %v holds more than %d keys", ErrInvariant, n, MaxKeys)
		}
		if n != t.root && len(n.keys) < MinKeys {
			return fmt.Errorf("%w: node %v holds fewer than %d keys", ErrInvariant, n, MinKeys)
		}
		for i, k := range n.keys {
			if i > 0 && k <= n.keys[i-1] {
				return fmt.Errorf("%w: node %v keys out of order", ErrInvariant, n)
			}
			if (lo != nil && k < *lo) || (hi != nil && k >= *hi) {
				return fmt.Errorf("%w: key %d outside its separators", ErrInvariant, k)
			}
		}
		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return fmt.Errorf("%w: leaves at depths %d and %d", ErrInvariant, leafDepth, depth)
			}
			leaves = append(leaves, n)
			return nil
		}
		if len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("%w: node %v has %d children", ErrInvariant, n, len(n.children))
		}
		for i, c := range n.children {
			if c.parent != n {
				return fmt.Errorf("%w: node %v has a stale parent link", ErrInvariant, c)
			}
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
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if err := walk(t.root, nil, nil, 0); err != nil {
		return err
	}

	for i, l := range leaves {
		var want *node
		if i+1 < len(leaves) {
			want = leaves[i+1]
		}
		if l.next != want {
			return fmt.Errorf("%w: leaf chain broken after %v", ErrInvariant, l)
		}
	}
	return nil
}
