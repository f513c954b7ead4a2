// Package avl implements an interactive AVL tree whose operations are
// recorded as steps over core.Graph snapshots.
//
// Run is the entry point used by viewers: it decodes the previous snapshot,
// applies one operation.KeyOp and returns every intermediate snapshot, the
// last of which seeds the next call. Tree can also be driven directly
// (Insert, Delete, Search) without recording, for seeding demos and tests.
//
// Heights are stored per node (a leaf has height 1) and recomputed bottom-up
// along the modified path. On the way back to the root every ancestor gets
// a height-update step, a balance-factor step and, when |balance| > 1, a
// case step (LL, RR, LR, RL) followed by one step per rotation.
//
// Snapshot labels are "<key> (H:<height>)"; layout and ids follow package
// bintree.
//
// Code labels: ready, insert_search, insert_found, insert_duplicate,
// update_height, check_balance, check_LL, check_RR, check_LR, check_RL,
// rotate_left, rotate_right, delete_search, delete_not_found, delete_found,
// delete_successor, delete_remove, search_start, search_visit, search_found,
// search_not_found, modify_delete, modify_insert.
package avl
