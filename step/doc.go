// Package step defines the shared vocabulary every algorithm in algoscope
// uses to describe one instant of its execution.
//
// What:
//
//	A Step[T] couples a full, independent snapshot of the domain value
//	(an array, a graph, a tree projected as a graph) with optional
//	rendering hints: a narration line, primary and secondary indices,
//	the active sub-range, the executing code label and one emphasized
//	edge id.
//
//	A Sequence is the ordered list of Steps produced by one run of one
//	algorithm on one input. It always opens with an initial-state step and
//	closes with a "completed" step that carries no highlights.
//
// Immutability:
//
//	Steps are snapshots, never views. Generators record steps through a
//	Recorder, which clones the working value and copies every hint slice
//	before storing it, so later mutation of the live structure cannot
//	reach back into an already-recorded step.
//
// Example:
//
//	rec := step.NewRecorder(slices.Clone[[]int])
//	rec.Emit(arr, "Comparing 3 and 1", step.Highlight(0, 1), step.Label("compare"))
//	seq := rec.Steps()
package step
