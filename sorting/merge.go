package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoscope/step"
)

// merger carries the mutable state of one merge sort run.
type merger[T cmp.Ordered] struct {
	arr []T
	buf []T // scratch, sized once
	rec *step.Recorder[[]T]
}

// Merge returns the step sequence of a stable top-down merge sort on a copy
// of input.
func Merge[T cmp.Ordered](input []T) []step.Step[[]T] {
	m := &merger[T]{
		arr: slices.Clone(input),
		buf: make([]T, len(input)),
		rec: step.NewRecorder(slices.Clone[[]T]),
	}
	n := len(m.arr)

	if n == 0 {
		m.rec.Emit(m.arr, "Starting Merge Sort...")
		m.rec.Emit(m.arr, "Sorting completed!")
		return m.rec.Steps()
	}

	m.rec.Emit(m.arr, "Starting Merge Sort...", step.Active(0, n-1))
	m.sort(0, n-1)
	m.rec.Emit(m.arr, "Sorting completed!", step.Active(0, n-1))
	return m.rec.Steps()
}

// sort orders arr[left..right] inclusive.
func (m *merger[T]) sort(left, right int) {
	if left >= right {
		m.rec.Emit(m.arr, fmt.Sprintf("Range [%d..%d] has one element", left, right),
			step.Highlight(left), step.Active(left, right), step.Label("base"))
		return
	}

	mid := left + (right-left)/2

	m.rec.Emit(m.arr, fmt.Sprintf("Divide: left half [%d..%d]", left, mid),
		step.Secondary(left, mid), step.Active(left, mid), step.Label("divideLeft"))
	m.sort(left, mid)

	m.rec.Emit(m.arr, fmt.Sprintf("Divide: right half [%d..%d]", mid+1, right),
		step.Secondary(mid+1, right), step.Active(mid+1, right), step.Label("divideRight"))
	m.sort(mid+1, right)

	m.merge(left, mid, right)
}

// merge combines the sorted runs [left..mid] and [mid+1..right].
// Ties take the left element, which keeps the sort stable.
func (m *merger[T]) merge(left, mid, right int) {
	m.rec.Emit(m.arr, fmt.Sprintf("Merging [%d..%d] and [%d..%d]", left, mid, mid+1, right),
		step.Secondary(left, mid, right), step.Active(left, right), step.Label("mergeStart"))

	copy(m.buf[left:right+1], m.arr[left:right+1])
	i, j, k := left, mid+1, left

	for i <= mid && j <= right {
		m.rec.Emit(m.arr, fmt.Sprintf("Comparing left %v with right %v", m.buf[i], m.buf[j]),
			step.Highlight(i, j), step.Secondary(left, mid, right, k),
			step.Active(left, right), step.Label("compare"))

		if m.buf[i] <= m.buf[j] {
			m.arr[k] = m.buf[i]
			i++
		} else {
			m.arr[k] = m.buf[j]
			j++
		}
		m.rec.Emit(m.arr, fmt.Sprintf("Wrote %v to index %d", m.arr[k], k),
			step.Highlight(k), step.Secondary(left, right),
			step.Active(left, right), step.Label("writeBack"))
		k++
	}

	for ; i <= mid; i, k = i+1, k+1 {
		m.arr[k] = m.buf[i]
		m.rec.Emit(m.arr, fmt.Sprintf("Copied leftover %v from the left half to index %d", m.arr[k], k),
			step.Highlight(k), step.Secondary(left, mid, right),
			step.Active(left, right), step.Label("copyLeft"))
	}

	for ; j <= right; j, k = j+1, k+1 {
		m.arr[k] = m.buf[j]
		m.rec.Emit(m.arr, fmt.Sprintf("Copied leftover %v from the right half to index %d", m.arr[k], k),
			step.Highlight(k), step.Secondary(left, mid, right),
			step.Active(left, right), step.Label("copyRight"))
	}

	m.rec.Emit(m.arr, fmt.Sprintf("Range [%d..%d] is merged", left, right),
		step.Secondary(left, right), step.Active(left, right), step.Label("mergeDone"))
}
