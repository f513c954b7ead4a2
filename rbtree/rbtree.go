package rbtree

import "fmt"

// Insert adds key and restores the red-black properties. It reports false
// for a duplicate.
func (t *Tree) Insert(key int) bool {
	if n := t.find(key); n != nil {
		t.emit(fmt.Sprintf("Key %d already exists, nothing to insert", key), "insert_duplicate", key)
		return false
	}

	z := &node{key: key, color: red}
	t.emit(fmt.Sprintf("Create red node %d", key), "create_node")

	// 1) Plain BST descent.
	var y *node
	for x := t.root; x != nil; {
		y = x
		if key < x.key {
			t.emit(fmt.Sprintf("%d < %d, go left", key, x.key), "insert_bst", x.key)
			x = x.left
		} else {
			t.emit(fmt.Sprintf("%d > %d, go right", key, x.key), "insert_bst", x.key)
			x = x.right
		}
	}

	// 2) Attach.
	z.parent = y
	switch {
	case y == nil:
		t.root = z
		t.emit(fmt.Sprintf("Tree is empty, %d becomes the root", key), "insert_bst", key)
	case key < y.key:
		y.left = z
		t.emit(fmt.Sprintf("Attach %d as the left child of %d", key, y.key), "insert_bst", key, y.key)
	default:
		y.right = z
		t.emit(fmt.Sprintf("Attach %d as the right child of %d", key, y.key), "insert_bst", key, y.key)
	}
	t.size++

	// 3) Repair.
	t.fixInsert(z)
	return true
}

func (t *Tree) fixInsert(z *node) {
	t.emit("Check the red-black properties", "fix_insert", z.key)

	for z.parent != nil && z.parent.color == red {
		p := z.parent
		g := p.parent
		if g == nil {
			break
		}
		t.emit(fmt.Sprintf("Parent %d is red: two reds in a row", p.key), "check_parent_red", z.key, p.key)

		if p == g.left {
			u := g.right
			if colorOf(u) == red {
				t.emit(fmt.Sprintf("Uncle %d is red too: recolor", u.key), "case_1_uncle_red", u.key, p.key, g.key)
				p.color, u.color, g.color = black, black, red
				z = g
				t.emit(fmt.Sprintf("Grandparent %d turns red, continue from it", g.key), "recolor_grandparent", g.key)
				continue
			}
			if z == p.right {
				t.emit(fmt.Sprintf("Uncle is black and %d is an inner child: rotate left at %d", z.key, p.key), "case_2_triangle", z.key, p.key)
				z = p
				t.rotateLeft(z)
				t.emit(fmt.Sprintf("Rotated left at %d", z.key), "rotate_left", keysOf(z, z.parent)...)
			}
			t.emit(fmt.Sprintf("Uncle is black and %d is an outer child: recolor and rotate right at %d", z.key, g.key), "case_3_line", z.parent.key, g.key)
			z.parent.color, g.color = black, red
			t.rotateRight(g)
			t.emit(fmt.Sprintf("Rotated right at %d", g.key), "rotate_right", keysOf(g.parent, g)...)
		} else {
			u := g.left
			if colorOf(u) == red {
				t.emit(fmt.Sprintf("Uncle %d is red too: recolor", u.key), "case_1_uncle_red", u.key, p.key, g.key)
				p.color, u.color, g.color = black, black, red
				z = g
				t.emit(fmt.Sprintf("Grandparent %d turns red, continue from it", g.key), "recolor_grandparent", g.key)
				continue
			}
			if z == p.left {
				t.emit(fmt.Sprintf("Uncle is black and %d is an inner child: rotate right at %d", z.key, p.key), "case_2_triangle", z.key, p.key)
				z = p
				t.rotateRight(z)
				t.emit(fmt.Sprintf("Rotated right at %d", z.key), "rotate_right", keysOf(z, z.parent)...)
			}
			t.emit(fmt.Sprintf("Uncle is black and %d is an outer child: recolor and rotate left at %d", z.key, g.key), "case_3_line", z.parent.key, g.key)
			z.parent.color, g.color = black, red
			t.rotateLeft(g)
			t.emit(fmt.Sprintf("Rotated left at %d", g.key), "rotate_left", keysOf(g.parent, g)...)
		}
	}

	if t.root.color == red {
		t.root.color = black
		t.emit(fmt.Sprintf("Root %d is painted black", t.root.key), "root_black", t.root.key)
		return
	}
	t.emit("Insert fixup complete, root is black", "root_black")
}

// Delete removes key and restores the red-black properties. It reports
// false when key is absent.
func (t *Tree) Delete(key int) bool {
	z := t.root
	for z != nil && z.key != key {
		if key < z.key {
			t.emit(fmt.Sprintf("%d < %d, go left", key, z.key), "delete_search", z.key)
			z = z.left
		} else {
			t.emit(fmt.Sprintf("%d > %d, go right", key, z.key), "delete_search", z.key)
			z = z.right
		}
	}
	if z == nil {
		t.emit(fmt.Sprintf("Key %d not found, nothing to delete", key), "delete_not_found")
		return false
	}
	t.emit(fmt.Sprintf("Found %d", key), "delete_found", key)

	y, yColor := z, z.color
	var x, xParent *node

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.transplant(z, z.right)
		t.emit(fmt.Sprintf("Remove %d and lift its right subtree", key), "delete_remove", keysOf(x)...)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.transplant(z, z.left)
		t.emit(fmt.Sprintf("Remove %d and lift its left subtree", key), "delete_remove", keysOf(x)...)
	default:
		y = minimum(z.right)
		t.emit(fmt.Sprintf("%d has two children, its successor %d takes its place", key, y.key), "delete_successor", key, y.key)
		yColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
		t.emit(fmt.Sprintf("Removed %d, successor %d now holds its position and color", key, y.key), "delete_remove", y.key)
	}
	t.size--

	if yColor == black {
		t.fixDelete(x, xParent)
	} else {
		t.emit("The removed node was red, no fixup needed", "fix_delete")
	}
	return true
}

func (t *Tree) fixDelete(x, parent *node) {
	t.emit("A black node was removed: restore the black height", "fix_delete", keysOf(x, parent)...)

	for x != t.root && colorOf(x) == black && parent != nil {
		if x == parent.left {
			w := parent.right
			if colorOf(w) == red {
				t.emit(fmt.Sprintf("Sibling %d is red: recolor and rotate left at %d", w.key, parent.key), "delete_case_1", w.key, parent.key)
				w.color, parent.color = black, red
				t.rotateLeft(parent)
				t.emit(fmt.Sprintf("Rotated left at %d", parent.key), "rotate_left", w.key, parent.key)
				w = parent.right
			}
			if w == nil {
				x, parent = parent, parent.parent
				continue
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				t.emit(fmt.Sprintf("Both children of sibling %d are black: paint it red and move up", w.key), "delete_case_2", w.key)
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if colorOf(w.right) == black {
				t.emit(fmt.Sprintf("Far child of sibling %d is black: rotate right at %d", w.key, w.key), "delete_case_3", keysOf(w, w.left)...)
				w.left.color, w.color = black, red
				t.rotateRight(w)
				t.emit(fmt.Sprintf("Rotated right at %d", w.key), "rotate_right", keysOf(w.parent, w)...)
				w = parent.right
			}
			t.emit(fmt.Sprintf("Far child of sibling %d is red: recolor and rotate left at %d", w.key, parent.key), "delete_case_4", w.key, parent.key)
			w.color, parent.color = parent.color, black
			if w.right != nil {
				w.right.color = black
			}
			t.rotateLeft(parent)
			t.emit(fmt.Sprintf("Rotated left at %d", parent.key), "rotate_left", w.key, parent.key)
			x, parent = t.root, nil
		} else {
			w := parent.left
			if colorOf(w) == red {
				t.emit(fmt.Sprintf("Sibling %d is red: recolor and rotate right at %d", w.key, parent.key), "delete_case_1", w.key, parent.key)
				w.color, parent.color = black, red
				t.rotateRight(parent)
				t.emit(fmt.Sprintf("Rotated right at %d", parent.key), "rotate_right", w.key, parent.key)
				w = parent.left
			}
			if w == nil {
				x, parent = parent, parent.parent
				continue
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				t.emit(fmt.Sprintf("Both children of sibling %d are black: paint it red and move up", w.key), "delete_case_2", w.key)
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if colorOf(w.left) == black {
				t.emit(fmt.Sprintf("Far child of sibling %d is black: rotate left at %d", w.key, w.key), "delete_case_3", keysOf(w, w.right)...)
				w.right.color, w.color = black, red
				t.rotateLeft(w)
				t.emit(fmt.Sprintf("Rotated left at %d", w.key), "rotate_left", keysOf(w.parent, w)...)
				w = parent.left
			}
			t.emit(fmt.Sprintf("Far child of sibling %d is red: recolor and rotate right at %d", w.key, parent.key), "delete_case_4", w.key, parent.key)
			w.color, parent.color = parent.color, black
			if w.left != nil {
				w.left.color = black
			}
			t.rotateRight(parent)
			t.emit(fmt.Sprintf("Rotated right at %d", parent.key), "rotate_right", w.key, parent.key)
			x, parent = t.root, nil
		}
	}

	if x != nil && x.color == red {
		x.color = black
		t.emit(fmt.Sprintf("Paint %d black", x.key), "fix_delete", x.key)
	}
	t.emit("Delete fixup complete", "fix_delete")
}

// Search reports whether key is present.
func (t *Tree) Search(key int) bool {
	t.emit(fmt.Sprintf("Search for %d starting at the root", key), "search_start")
	for n := t.root; n != nil; {
		t.emit(fmt.Sprintf("Visit %d", n.key), "search_visit", n.key)
		switch {
		case key == n.key:
			t.emit(fmt.Sprintf("Found %d", key), "search_found", key)
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

// Modify replaces from with to: a delete followed by an insert.
func (t *Tree) Modify(from, to int) bool {
	if t.find(from) == nil {
		t.emit(fmt.Sprintf("Key %d not found, nothing to modify", from), "delete_not_found")
		return false
	}
	if from != to && t.find(to) != nil {
		t.emit(fmt.Sprintf("Key %d already exists, cannot modify %d", to, from), "insert_duplicate", to)
		return false
	}
	t.emit(fmt.Sprintf("Modify %d -> %d, step 1: delete %d", from, to, from), "modify_delete", from)
	t.Delete(from)
	t.emit(fmt.Sprintf("Modify %d -> %d, step 2: insert %d", from, to, to), "modify_insert")
	return t.Insert(to)
}

func (t *Tree) find(key int) *node {
	n := t.root
	for n != nil && n.key != key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

func minimum(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *Tree) transplant(u, v *node) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *Tree) rotateLeft(x *node) {
	y := x.right
	if y == nil {
		return
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree) rotateRight(y *node) {
	x := y.left
	if x == nil {
		return
	}
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}
