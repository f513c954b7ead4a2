package avl

import "fmt"

// Insert adds key and rebalances. It reports false for a duplicate.
func (t *Tree) Insert(key int) bool {
	link := &t.root
	var path []**node

	// 1) Descend to the empty slot.
	for *link != nil {
		n := *link
		if key == n.key {
			t.emit(fmt.Sprintf("Key %d already exists, nothing to insert", key), "insert_duplicate", n.key)
			return false
		}
		path = append(path, link)
		if key < n.key {
			t.emit(fmt.Sprintf("%d < %d, go left", key, n.key), "insert_search", n.key)
			link = &n.left
		} else {
			t.emit(fmt.Sprintf("%d > %d, go right", key, n.key), "insert_search", n.key)
			link = &n.right
		}
	}

	// 2) Place the new leaf.
	*link = &node{key: key, height: 1}
	t.size++
	t.emit(fmt.Sprintf("Found an empty slot, insert %d as a leaf", key), "insert_found", key)

	// 3) Rebalance on the way back up.
	t.rebalancePath(path)
	return true
}

// Delete removes key and rebalances. It reports false when key is absent.
func (t *Tree) Delete(key int) bool {
	link := &t.root
	var path []**node

	// 1) Find the node.
	for *link != nil && (*link).key != key {
		n := *link
		path = append(path, link)
		if key < n.key {
			t.emit(fmt.Sprintf("%d < %d, go left", key, n.key), "delete_search", n.key)
			link = &n.left
		} else {
			t.emit(fmt.Sprintf("%d > %d, go right", key, n.key), "delete_search", n.key)
			link = &n.right
		}
	}
	if *link == nil {
		t.emit(fmt.Sprintf("Key %d not found, nothing to delete", key), "delete_not_found")
		return false
	}
	n := *link
	t.emit(fmt.Sprintf("Found %d", key), "delete_found", key)

	// 2) Unlink it, or replace its key by the in-order successor's.
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		*link = child
		if child != nil {
			t.emit(fmt.Sprintf("Remove %d, its child %d takes its place", key, child.key), "delete_remove", child.key)
		} else {
			t.emit(fmt.Sprintf("Remove leaf %d", key), "delete_remove")
		}
	} else {
		path = append(path, link)
		slink := &n.right
		for (*slink).left != nil {
			path = append(path, slink)
			slink = &(*slink).left
		}
		s := *slink
		t.emit(fmt.Sprintf("%d has two children, its successor is %d", key, s.key), "delete_successor", n.key, s.key)
		n.key = s.key
		*slink = s.right
		t.emit(fmt.Sprintf("Copy %d into the node and remove the successor", s.key), "delete_remove", n.key)
	}
	t.size--

	// 3) Rebalance every ancestor.
	t.rebalancePath(path)
	return true
}

// Search reports whether key is present.
func (t *Tree) Search(key int) bool {
	t.emit(fmt.Sprintf("Search for %d starting at the root", key), "search_start")
	for n := t.root; n != nil; {
		t.emit(fmt.Sprintf("Visit %d", n.key), "search_visit", n.key)
		switch {
		case key == n.key:
			t.emit(fmt.Sprintf("Found %d", key), "search_found", n.key)
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	t.emit(fmt.Sprintf("Key %d not found", key), "search_not_found")
	return false
}

// Modify replaces from with to as a delete followed by an insert. It
// reports false when from is absent or to already exists.
func (t *Tree) Modify(from, to int) bool {
	if from != to && t.contains(to) {
		t.emit(fmt.Sprintf("Key %d already exists, cannot modify %d", to, from), "insert_duplicate", to)
		return false
	}
	t.emit(fmt.Sprintf("Modify %d -> %d, step 1: delete %d", from, to, from), "modify_delete")
	if !t.Delete(from) {
		return false
	}
	t.emit(fmt.Sprintf("Modify %d -> %d, step 2: insert %d", from, to, to), "modify_insert")
	return t.Insert(to)
}

func (t *Tree) contains(key int) bool {
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// rebalancePath rebalances the nodes behind path, deepest first. Each entry
// is the parent's child field (or the root field), so rotations are visible
// to the whole tree immediately.
func (t *Tree) rebalancePath(path []**node) {
	for i := len(path) - 1; i >= 0; i-- {
		t.rebalance(path[i])
	}
}

func (t *Tree) rebalance(link **node) {
	n := *link
	n.fix()
	t.emit(fmt.Sprintf("Update height of %d to %d", n.key, n.height), "update_height", n.key)

	bf := balance(n)
	t.emit(fmt.Sprintf("Balance factor of %d is %d", n.key, bf), "check_balance", n.key)

	switch {
	case bf > 1 && balance(n.left) >= 0:
		t.emit(fmt.Sprintf("Left-left case at %d", n.key), "check_LL", n.key, n.left.key)
		*link = rotateRight(n)
		t.emit(fmt.Sprintf("Rotate right at %d", n.key), "rotate_right", (*link).key)
	case bf > 1:
		t.emit(fmt.Sprintf("Left-right case at %d", n.key), "check_LR", n.key, n.left.key)
		c := n.left.key
		n.left = rotateLeft(n.left)
		t.emit(fmt.Sprintf("Rotate left at %d", c), "rotate_left", n.left.key)
		*link = rotateRight(n)
		t.emit(fmt.Sprintf("Rotate right at %d", n.key), "rotate_right", (*link).key)
	case bf < -1 && balance(n.right) <= 0:
		t.emit(fmt.Sprintf("Right-right case at %d", n.key), "check_RR", n.key, n.right.key)
		*link = rotateLeft(n)
		t.emit(fmt.Sprintf("Rotate left at %d", n.key), "rotate_left", (*link).key)
	case bf < -1:
		t.emit(fmt.Sprintf("Right-left case at %d", n.key), "check_RL", n.key, n.right.key)
		c := n.right.key
		n.right = rotateRight(n.right)
		t.emit(fmt.Sprintf("Rotate right at %d", c), "rotate_right", n.right.key)
		*link = rotateLeft(n)
		t.emit(fmt.Sprintf("Rotate left at %d", n.key), "rotate_left", (*link).key)
	}
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.fix()
	x.fix()
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.fix()
	y.fix()
	return y
}
