package bplustree

import (
	"fmt"
	"slices"
)

// Insert adds key to its leaf and splits upwards as needed. It reports
// false for a duplicate.
func (t *Tree) Insert(key int) bool {
	cur := t.root
	t.emit(fmt.Sprintf("Insert %d: start at the root", key), "insert_start", cur.id)

	for !cur.leaf {
		i := cur.childIndex(key)
		t.emit(fmt.Sprintf("Compare %d with %v, descend into child %d", key, cur, i), "insert_search", cur.id)
		cur = cur.children[i]
	}
	t.emit(fmt.Sprintf("Reached leaf %v", cur), "insert_found_leaf", cur.id)

	pos, found := slices.BinarySearch(cur.keys, key)
	if found {
		t.emit(fmt.Sprintf("Key %d already exists", key), "insert_duplicate", cur.id)
		return false
	}
	cur.keys = slices.Insert(cur.keys, pos, key)
	t.emit(fmt.Sprintf("Inserted %d into leaf %v", key, cur), "insert_add_key", cur.id)

	if len(cur.keys) > MaxKeys {
		t.emit(fmt.Sprintf("Leaf is full (%d >= %d), split it", len(cur.keys), Order), "split_leaf", cur.id)
		t.splitLeaf(cur)
	}
	t.emit("Insert complete", "insert_done")
	return true
}

// splitLeaf moves the upper half of n into a new right sibling and copies
// its first key up.
func (t *Tree) splitLeaf(n *node) {
	mid := len(n.keys) / 2
	right := t.newNode(true)
	right.keys = slices.Clone(n.keys[mid:])
	n.keys = slices.Clone(n.keys[:mid])
	right.next, n.next = n.next, right

	t.emit(fmt.Sprintf("Split leaf into %v and %v, copy %d up", n, right, right.keys[0]), "split_move_keys", n.id, right.id)
	t.insertParent(n, right.keys[0], right)
}

// insertParent links right into the parent of left under key.
func (t *Tree) insertParent(left *node, key int, right *node) {
	parent := left.parent
	if parent == nil {
		root := t.newNode(false)
		root.keys = []int{key}
		root.children = []*node{left, right}
		left.parent, right.parent = root, root
		t.root = root
		t.emit(fmt.Sprintf("Created new root [%d]", key), "new_root", root.id, left.id, right.id)
		return
	}

	t.emit(fmt.Sprintf("Promote %d into parent %v", key, parent), "promote_key", parent.id)
	pos := slices.Index(parent.children, left)
	parent.keys = slices.Insert(parent.keys, pos, key)
	parent.children = slices.Insert(parent.children, pos+1, right)
	right.parent = parent
	t.emit(fmt.Sprintf("Parent is now %v", parent), "parent_inserted", parent.id)

	if len(parent.keys) > MaxKeys {
		t.emit(fmt.Sprintf("Parent is full (%d >= %d), split it", len(parent.keys), Order), "split_internal", parent.id)
		t.splitInternal(parent)
	}
}

// splitInternal moves the keys and children right of the middle key into a
// new node and pushes the middle key up.
func (t *Tree) splitInternal(n *node) {
	mid := len(n.keys) / 2
	up := n.keys[mid]

	right := t.newNode(false)
	right.keys = slices.Clone(n.keys[mid+1:])
	right.children = slices.Clone(n.children[mid+1:])
	for _, c := range right.children {
		c.parent = right
	}
	n.keys = slices.Clone(n.keys[:mid])
	n.children = slices.Clone(n.children[:mid+1])

	t.emit(fmt.Sprintf("Split internal node into %v and %v, push %d up", n, right, up), "split_internal_exec", n.id, right.id)
	t.insertParent(n, up, right)
}

// Delete removes key from its leaf and repairs underflow. It reports false
// when key is absent.
func (t *Tree) Delete(key int) bool {
	cur := t.root
	for !cur.leaf {
		i := cur.childIndex(key)
		t.emit(fmt.Sprintf("Compare %d with %v, descend into child %d", key, cur, i), "delete_search", cur.id)
		cur = cur.children[i]
	}

	idx, found := slices.BinarySearch(cur.keys, key)
	if !found {
		t.emit(fmt.Sprintf("Key %d not found", key), "delete_not_found", cur.id)
		return false
	}
	t.emit(fmt.Sprintf("Found %d in leaf %v, remove it", key, cur), "delete_found", cur.id)
	cur.keys = slices.Delete(cur.keys, idx, idx+1)

	switch {
	case cur == t.root && len(cur.keys) == 0:
		t.emit("The tree is now empty", "tree_empty")
		return true
	case cur != t.root && len(cur.keys) < MinKeys:
		t.emit(fmt.Sprintf("Leaf underflows (keys < %d)", MinKeys), "underflow", cur.id)
		t.fixUnderflow(cur)
	}
	t.emit("Delete complete", "delete_done")
	return true
}

func (t *Tree) fixUnderflow(n *node) {
	if n == t.root {
		if len(n.keys) == 0 && !n.leaf {
			t.root = n.children[0]
			t.root.parent = nil
			t.emit("Root has no keys left, the tree shrinks by one level", "root_shrink", t.root.id)
		}
		return
	}

	parent := n.parent
	idx := slices.Index(parent.children, n)
	var left, right *node
	if idx > 0 {
		left = parent.children[idx-1]
	}
	if idx < len(parent.children)-1 {
		right = parent.children[idx+1]
	}

	switch {
	case left != nil && len(left.keys) > MinKeys:
		t.emit(fmt.Sprintf("Borrow from left sibling %v", left), "borrow_left", n.id, left.id)
		if n.leaf {
			k := left.keys[len(left.keys)-1]
			left.keys = left.keys[:len(left.keys)-1]
			n.keys = slices.Insert(n.keys, 0, k)
			parent.keys[idx-1] = n.keys[0]
		} else {
			k := left.keys[len(left.keys)-1]
			c := left.children[len(left.children)-1]
			left.keys = left.keys[:len(left.keys)-1]
			left.children = left.children[:len(left.children)-1]
			n.keys = slices.Insert(n.keys, 0, parent.keys[idx-1])
			n.children = slices.Insert(n.children, 0, c)
			c.parent = n
			parent.keys[idx-1] = k
		}
		t.emit(fmt.Sprintf("Borrowed, separator is now %d", parent.keys[idx-1]), "borrow_done", n.id, left.id, parent.id)

	case right != nil && len(right.keys) > MinKeys:
		t.emit(fmt.Sprintf("Borrow from right sibling %v", right), "borrow_right", n.id, right.id)
		if n.leaf {
			k := right.keys[0]
			right.keys = slices.Clone(right.keys[1:])
			n.keys = append(n.keys, k)
			parent.keys[idx] = right.keys[0]
		} else {
			k := right.keys[0]
			c := right.children[0]
			right.keys = slices.Clone(right.keys[1:])
			right.children = slices.Clone(right.children[1:])
			n.keys = append(n.keys, parent.keys[idx])
			n.children = append(n.children, c)
			c.parent = n
			parent.keys[idx] = k
		}
		t.emit(fmt.Sprintf("Borrowed, separator is now %d", parent.keys[idx]), "borrow_done", n.id, right.id, parent.id)

	case left != nil:
		t.emit(fmt.Sprintf("Merge with left sibling %v", left), "merge_left", n.id, left.id)
		t.merge(left, n, idx-1)

	case right != nil:
		t.emit(fmt.Sprintf("Merge with right sibling %v", right), "merge_right", n.id, right.id)
		t.merge(n, right, idx)
	}
}

// merge folds right into left and drops their separator parent.keys[sep].
func (t *Tree) merge(left, right *node, sep int) {
	parent := left.parent
	if left.leaf {
		left.keys = append(left.keys, right.keys...)
		left.next = right.next
	} else {
		left.keys = append(append(left.keys, parent.keys[sep]), right.keys...)
		for _, c := range right.children {
			c.parent = left
		}
		left.children = append(left.children, right.children...)
	}
	parent.keys = slices.Delete(parent.keys, sep, sep+1)
	parent.children = slices.Delete(parent.children, sep+1, sep+2)
	t.emit(fmt.Sprintf("Merged into %v", left), "merge_done", left.id)

	switch {
	case parent == t.root:
		t.fixUnderflow(parent)
	case len(parent.keys) < MinKeys:
		t.emit(fmt.Sprintf("Internal node underflows (keys < %d)", MinKeys), "underflow", parent.id)
		t.fixUnderflow(parent)
	}
}

// Search reports whether key is present.
func (t *Tree) Search(key int) bool {
	cur := t.root
	t.emit(fmt.Sprintf("Search for %d", key), "search_start", cur.id)
	for !cur.leaf {
		i := cur.childIndex(key)
		t.emit(fmt.Sprintf("Compare %d with %v, descend into child %d", key, cur, i), "search_traverse", cur.id)
		cur = cur.children[i]
	}
	t.emit(fmt.Sprintf("Check leaf %v", cur), "search_leaf", cur.id)

	if _, found := slices.BinarySearch(cur.keys, key); found {
		t.emit(fmt.Sprintf("Found %d", key), "search_found", cur.id)
		return true
	}
	t.emit(fmt.Sprintf("Key %d not found", key), "search_not_found", cur.id)
	return false
}

// Modify replaces from with to: a delete followed by an insert.
func (t *Tree) Modify(from, to int) bool {
	if !t.contains(from) {
		t.emit(fmt.Sprintf("Key %d not found, nothing to modify", from), "delete_not_found")
		return false
	}
	if from != to && t.contains(to) {
		t.emit(fmt.Sprintf("Key %d already exists, cannot modify %d", to, from), "insert_duplicate")
		return false
	}
	t.emit(fmt.Sprintf("Modify %d -> %d, step 1: delete %d", from, to, from), "modify_delete")
	t.Delete(from)
	t.emit(fmt.Sprintf("Modify %d -> %d, step 2: insert %d", from, to, to), "modify_insert")
	return t.Insert(to)
}

func (t *Tree) contains(key int) bool {
	cur := t.root
	for !cur.leaf {
		cur = cur.children[cur.childIndex(key)]
	}
	_, found := slices.BinarySearch(cur.keys, key)
	return found
}
