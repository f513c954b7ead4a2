// Package bplustree implements an interactive B+ tree of order 4 whose
// operations are recorded as steps over core.Graph snapshots.
//
// Keys live in the leaves. Leaves are chained left to right; internal nodes
// only route. A node holds at most Order-1 keys and, except for the root, at
// least MinKeys. Splits copy the first key of the new leaf up, or push the
// middle key of an internal node up; deletes borrow from a sibling when it
// can spare a key and merge otherwise, shrinking the root when it empties.
//
// Snapshots label every node "B+:k1|k2|...". Child links are directed edges
// with the default status; leaf-chain links have id "link-<a>-<b>" and
// status active. Node ids "bp-<n>" come from a per-tree allocator that
// resumes above the highest id seen while decoding, so ids stay stable
// across runs. An empty tree encodes to an empty graph.
//
// Code labels: ready, insert_start, insert_search, insert_found_leaf,
// insert_duplicate, insert_add_key, split_leaf, split_move_keys, new_root,
// promote_key, parent_inserted, split_internal, split_internal_exec,
// insert_done, delete_search, delete_not_found, delete_found, tree_empty,
// underflow, borrow_left, borrow_right, borrow_done, merge_left,
// merge_right, merge_done, root_shrink, delete_done, search_start,
// search_traverse, search_leaf, search_found, search_not_found,
// modify_delete, modify_insert.
package bplustree
