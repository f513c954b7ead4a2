// Package rbtree implements an interactive red-black tree whose operations
// are recorded as steps over core.Graph snapshots.
//
// Insert and delete follow the canonical algorithms: insert fixup by uncle
// color (recolor, or rotate then recolor) and delete fixup by sibling color
// (four cases moving the double-black deficiency upwards). The root is
// always black after a fixup. Modify is a delete followed by an insert,
// recorded as two consecutive sub-sequences.
//
// Snapshot labels hold the bare key; the color travels in core.Node.Color
// ("red" or "black"). A snapshot whose nodes lack a valid color is treated
// as malformed and decodes to an empty tree.
//
// Code labels: ready, create_node, insert_bst, insert_duplicate, fix_insert,
// check_parent_red, case_1_uncle_red, recolor_grandparent, case_2_triangle,
// case_3_line, rotate_left, rotate_right, root_black, delete_search,
// delete_not_found, delete_found, delete_successor, delete_remove,
// fix_delete, delete_case_1, delete_case_2, delete_case_3, delete_case_4,
// search_start, search_visit, search_found, search_not_found, modify_delete,
// modify_insert.
package rbtree
