package catalog

var bubbleProfile = Profile{
	Complexity:  Complexity{Time: "O(n²)", Space: "O(1)", Best: "O(n²)", Worst: "O(n²)"},
	Description: "Repeatedly swaps adjacent out-of-order pairs until the array is sorted.",
	HowItWorks: "Each pass walks the unsorted prefix comparing neighbours and swapping them when " +
		"the left one is larger. The largest remaining element bubbles to the end of the prefix, " +
		"so after pass i the last i elements are final. This version always runs all n-1 passes.",
	Scenarios: []string{
		"Teaching comparison sorting and loop invariants",
		"Tiny arrays where code size matters more than speed",
	},
	KeyConcepts: []string{"Adjacent swaps", "Sorted suffix", "Stable", "In-place"},
	Pitfalls: []string{
		"Quadratic even on sorted input without an early-exit flag",
		"Off-by-one on the inner bound re-compares the finished suffix",
	},
	Links: []Link{{Label: "Wikipedia: Bubble sort", URL: "https://en.wikipedia.org/wiki/Bubble_sort"}},
}

var mergeProfile = Profile{
	Complexity:  Complexity{Time: "O(n log n)", Space: "O(n)", Best: "O(n log n)", Worst: "O(n log n)"},
	Description: "Splits the array in halves, sorts each half recursively and merges the sorted runs.",
	HowItWorks: "The range is divided at its midpoint until single elements remain. Two sorted " +
		"neighbours are merged by repeatedly taking the smaller head from a scratch copy; on ties " +
		"the left run wins, which keeps equal keys in their original order.",
	Scenarios: []string{
		"Stable sorting of records by a secondary key",
		"Linked lists and external sorting where sequential access is cheap",
	},
	KeyConcepts: []string{"Divide and conquer", "Stable", "Recursion", "Scratch buffer"},
	Pitfalls: []string{
		"Using < instead of <= in the merge breaks stability",
		"Allocating a new buffer per merge call dominates the running time",
	},
	Links: []Link{{Label: "Wikipedia: Merge sort", URL: "https://en.wikipedia.org/wiki/Merge_sort"}},
}

var quickProfile = Profile{
	Complexity:  Complexity{Time: "O(n log n)", Space: "O(log n)", Best: "O(n log n)", Worst: "O(n²)"},
	Description: "Partitions the range around a pivot and sorts both sides recursively.",
	HowItWorks: "Lomuto partitioning takes the last element as the pivot and sweeps the range, " +
		"moving every smaller element into a growing prefix. The pivot is then swapped just " +
		"past that prefix, where it stays for good, and the two sides are sorted independently.",
	Scenarios: []string{
		"General-purpose in-memory sorting",
		"Cache-friendly sorting of arrays of primitives",
	},
	KeyConcepts: []string{"Divide and conquer", "Partitioning", "Pivot", "In-place"},
	Pitfalls: []string{
		"Already sorted input makes the last-element pivot degenerate to O(n²)",
		"Not stable: equal keys may be reordered",
	},
	Links: []Link{{Label: "Wikipedia: Quicksort", URL: "https://en.wikipedia.org/wiki/Quicksort"}},
}

var bfsProfile = Profile{
	Complexity:  Complexity{Time: "O(V + E)", Space: "O(V)"},
	Description: "Explores a graph layer by layer from a start vertex using a FIFO queue.",
	HowItWorks: "The start vertex is enqueued and marked. Each dequeued vertex inspects its " +
		"neighbours; unseen ones are marked and enqueued, and the edge that discovered them " +
		"becomes part of the BFS tree. Vertices leave the queue in order of hop distance.",
	Scenarios: []string{
		"Shortest paths in unweighted graphs",
		"Level-order processing and connectivity checks",
	},
	KeyConcepts: []string{"Queue", "Layers", "BFS tree", "Visited set"},
	Pitfalls: []string{
		"Marking on dequeue instead of enqueue lets a vertex enter the queue twice",
		"Hop count is not distance once edges carry weights",
	},
	Links: []Link{{Label: "Wikipedia: Breadth-first search", URL: "https://en.wikipedia.org/wiki/Breadth-first_search"}},
}

var dfsProfile = Profile{
	Complexity:  Complexity{Time: "O(V + E)", Space: "O(V)"},
	Description: "Follows one branch as deep as possible before backtracking, using an explicit stack.",
	HowItWorks: "The start vertex is pushed. Each pop visits the vertex if it is new and pushes " +
		"its unvisited neighbours in reverse order, so the first neighbour is explored first. " +
		"Duplicates on the stack are discarded when popped.",
	Scenarios: []string{
		"Cycle detection and topological ordering",
		"Maze solving and connected components",
	},
	KeyConcepts: []string{"Stack", "Backtracking", "DFS tree", "Visited set"},
	Pitfalls: []string{
		"Recursive versions overflow the call stack on long paths",
		"Forgetting the reverse push changes the visiting order",
	},
	Links: []Link{{Label: "Wikipedia: Depth-first search", URL: "https://en.wikipedia.org/wiki/Depth-first_search"}},
}

var dijkstraProfile = Profile{
	Complexity:  Complexity{Time: "O((V + E) log V)", Space: "O(V)"},
	Description: "Computes shortest distances from one source over non-negative edge weights.",
	HowItWorks: "Every distance starts at infinity except the source. The closest unsettled " +
		"vertex is taken from a priority queue and its outgoing edges are relaxed: when going " +
		"through it is shorter, the neighbour's distance and predecessor edge are replaced and " +
		"the neighbour is queued again. Stale queue entries are skipped.",
	Scenarios: []string{
		"Routing and navigation",
		"Network latency and cost minimization",
	},
	KeyConcepts: []string{"Greedy", "Relaxation", "Priority queue", "Shortest-path tree"},
	Pitfalls: []string{
		"Negative weights break the greedy invariant",
		"Without lazy deletion a vertex can be settled twice",
	},
	Links: []Link{{Label: "Wikipedia: Dijkstra's algorithm", URL: "https://en.wikipedia.org/wiki/Dijkstra%27s_algorithm"}},
}

var avlProfile = Profile{
	Complexity:  Complexity{Time: "O(log n)", Space: "O(n)", Best: "O(1)", Worst: "O(log n)"},
	Description: "A binary search tree that keeps the heights of sibling subtrees within one.",
	HowItWorks: "Insert and delete work like a plain BST, then walk back to the root updating " +
		"heights. A node whose balance factor reaches ±2 is repaired by a single rotation " +
		"(LL, RR) or a double rotation (LR, RL).",
	Scenarios: []string{
		"Read-heavy ordered indexes",
		"In-memory sets and maps with guaranteed logarithmic lookups",
	},
	KeyConcepts: []string{"Balance factor", "Rotations", "Height", "BST order"},
	Pitfalls: []string{
		"Heights must be updated bottom-up before checking balance",
		"Deletes may need a rotation at every level on the way up",
	},
	Links: []Link{{Label: "Wikipedia: AVL tree", URL: "https://en.wikipedia.org/wiki/AVL_tree"}},
}

var redBlackProfile = Profile{
	Complexity:  Complexity{Time: "O(log n)", Space: "O(n)", Best: "O(1)", Worst: "O(log n)"},
	Description: "A binary search tree balanced by node colors instead of exact heights.",
	HowItWorks: "New nodes are red. A red node with a red parent is fixed by recoloring when the " +
		"uncle is red, or by one or two rotations when it is black. Deleting a black node leaves " +
		"a double-black deficit that is pushed up or resolved through the four sibling cases. " +
		"The root is always black.",
	Scenarios: []string{
		"Ordered maps in language runtimes and kernels",
		"Write-heavy workloads that favour fewer rotations than AVL",
	},
	KeyConcepts: []string{"Node colors", "Black height", "Rotations", "Fixup cases"},
	Pitfalls: []string{
		"Nil leaves count as black; forgetting that breaks the sibling cases",
		"Parent pointers must follow every rotation and transplant",
	},
	Links: []Link{{Label: "Wikipedia: Red–black tree", URL: "https://en.wikipedia.org/wiki/Red%E2%80%93black_tree"}},
}

var bplusProfile = Profile{
	Complexity:  Complexity{Time: "O(log n)", Space: "O(n)", Best: "O(log n)", Worst: "O(log n)"},
	Description: "A multi-way search tree of order 4 whose keys all live in linked leaves.",
	HowItWorks: "Internal nodes only route. A full leaf splits and copies its middle key up; a " +
		"full internal node splits and pushes its middle key up, possibly creating a new root. " +
		"An underfull leaf borrows from a sibling or merges with it, which can cascade up and " +
		"shrink the root.",
	Scenarios: []string{
		"Database and filesystem indexes",
		"Range scans over the sibling-linked leaf chain",
	},
	KeyConcepts: []string{"Order", "Leaf chain", "Split", "Borrow and merge"},
	Pitfalls: []string{
		"Copy-up for leaves versus push-up for internal nodes",
		"Separator keys may go stale after deletes; they still route correctly",
	},
	Links: []Link{{Label: "Wikipedia: B+ tree", URL: "https://en.wikipedia.org/wiki/B%2B_tree"}},
}

var goMapProfile = Profile{
	Complexity:  Complexity{Time: "O(1)", Space: "O(n)", Best: "O(1)", Worst: "O(n)"},
	Description: "A hash map laid out like the classic Go runtime map: 2^B buckets of 8 slots, here 4.",
	HowItWorks: "The low B bits of a key's hash choose the bucket and the top byte (tophash) is " +
		"stored per slot to skip mismatches cheaply. Full buckets chain overflow buckets. When " +
		"the average load passes 6.5 the bucket array doubles and every entry is evacuated to " +
		"its new bucket.",
	Scenarios: []string{
		"Understanding Go map performance and growth",
		"General key-value lookup",
	},
	KeyConcepts: []string{"Buckets", "Tophash", "Overflow chain", "Load factor", "Evacuation"},
	Pitfalls: []string{
		"Growth copies every entry; iteration order is never stable",
		"Go 1.24 replaced this layout with Swiss tables",
	},
	Links: []Link{{Label: "Go runtime map.go (Go 1.23)", URL: "https://github.com/golang/go/blob/go1.23.0/src/runtime/map.go"}},
}
