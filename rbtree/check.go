package rbtree

import "fmt"

// Check verifies key order, parent links, a black root, the absence of a
// red node with a red child and equal black height on every path.
func (t *Tree) Check() error {
	if t.root == nil {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root %d is red", ErrInvariant, t.root.key)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %d has a parent", ErrInvariant, t.root.key)
	}

	var prev *int
	var walk func(n *node) (int, error)
	walk = func(n *node) (int, error) {
		if n == nil {
			return 1, nil
		}
		for _, c := range []*node{n.left, n.right} {
			if c == nil {
				continue
			}
			if c.parent != n {
				return 0, fmt.Errorf("%w: node %d has a stale parent link", ErrInvariant, c.key)
			}
			if n.color == red && c.color == red {
				return 0, fmt.Errorf("%w: red node %d has red child %d", ErrInvariant, n.key, c.key)
			}
		}

		lh, err := walk(n.left)
		if err != nil {
			return 0, err
		}
		if prev != nil && n.key <= *prev {
			return 0, fmt.Errorf("%w: key %d after %d", ErrInvariant, n.key, *prev)
		}
		k := n.key
		prev = &k
		rh, err := walk(n.right)
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, fmt.Errorf("%w: node %d black heights %d and %d", ErrInvariant, n.key, lh, rh)
		}
		if n.color == black {
			lh++
		}
		return lh, nil
	}
	_, err := walk(t.root)
	return err
}
