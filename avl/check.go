package avl

import (
	"errors"
	"fmt"
)

// ErrInvariant reports a violated AVL property.
var ErrInvariant = errors.New("avl: invariant violated")

// Check verifies key order, stored heights and the balance bound at every
// node.
func (t *Tree) Check() error {
	var prev *int
	var walk func(n *node) error
	walk = func(n *node) error {
		if n == nil {
			return nil
		}
		if err := walk(n.left); err != nil {
			return err
		}
		if prev != nil && n.key <= *prev {
			return fmt.Errorf("%w: key %d after %d", ErrInvariant, n.key, *prev)
		}
		k := n.key
		prev = &k
		if want := 1 + max(height(n.left), height(n.right)); n.height != want {
			return fmt.Errorf("%w: node %d height %d, want %d", ErrInvariant, n.key, n.height, want)
		}
		if bf := balance(n); bf < -1 || bf > 1 {
			return fmt.Errorf("%w: node %d balance %d", ErrInvariant, n.key, bf)
		}
		return walk(n.right)
	}
	return walk(t.root)
}
