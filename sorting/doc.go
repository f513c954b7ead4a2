// Package sorting provides step-generating versions of three classic
// comparison sorts over any cmp.Ordered element type.
//
// Each generator works on a private copy of its input and returns the full
// ordered sequence of steps. The caller's slice is never modified.
//
// Algorithms:
//
//	Bubble - adjacent compare/swap, full n-1 passes (no early exit).
//	         One step per comparison, one per swap, one per finished pass
//	         (SecondaryIndices holds the newly fixed tail index).
//	Merge  - top-down, stable (ties take the left element first), using
//	         one scratch buffer sized once per run. One step on entering each
//	         recursive range (ActiveRange), one per comparison, per write-back
//	         and per leftover copy.
//	Quick  - Lomuto partition, last element as pivot, no randomization.
//	         One step on entering each range, one presenting the pivot, one
//	         per comparison, one per swap and one placing the pivot.
//
// Complexity:
//
//	Bubble: Θ(n²) comparisons.  Merge: Θ(n log n).  Quick: O(n log n) average,
//	O(n²) on sorted or adversarial input. Every step also holds an O(n) copy
//	of the array, so the sequence itself costs O(steps·n) memory.
//
// Code labels:
//
//	Bubble: compare, swap, pass_done
//	Merge:  base, divideLeft, divideRight, mergeStart, compare, writeBack,
//	        copyLeft, copyRight, mergeDone
//	Quick:  quick_range, quick_base, pick_pivot, compare, swap, place_pivot
package sorting
