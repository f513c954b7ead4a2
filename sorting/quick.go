package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoscope/step"
)

// Quick returns the step sequence of quick sort (Lomuto partition, last
// element as pivot) on a copy of input.
func Quick[T cmp.Ordered](input []T) []step.Step[[]T] {
	arr := slices.Clone(input)
	rec := step.NewRecorder(slices.Clone[[]T])

	rec.Emit(arr, "Starting Quick Sort...")
	quick(rec, arr, 0, len(arr)-1)
	rec.Emit(arr, "Sorting completed!")
	return rec.Steps()
}

func quick[T cmp.Ordered](rec *step.Recorder[[]T], arr []T, low, high int) {
	switch {
	case low > high:
		return
	case low == high:
		rec.Emit(arr, fmt.Sprintf("Range [%d..%d] has a single element", low, high),
			step.Secondary(low), step.Active(low, high), step.Label("quick_base"))
		return
	}

	rec.Emit(arr, fmt.Sprintf("Sorting range [%d..%d]", low, high),
		step.Active(low, high), step.Label("quick_range"))

	p := partition(rec, arr, low, high)
	quick(rec, arr, low, p-1)
	quick(rec, arr, p+1, high)
}

// partition places arr[high] at its sorted index within [low..high] and
// returns that index.
func partition[T cmp.Ordered](rec *step.Recorder[[]T], arr []T, low, high int) int {
	pivot := arr[high]
	i := low - 1

	rec.Emit(arr, fmt.Sprintf("Partitioning [%d..%d] with pivot %v", low, high, pivot),
		step.Highlight(high), step.Secondary(high), step.Active(low, high), step.Label("pick_pivot"))

	for j := low; j < high; j++ {
		rec.Emit(arr, fmt.Sprintf("Comparing %v < pivot %v?", arr[j], pivot),
			step.Highlight(j, high), step.Secondary(high), step.Active(low, high), step.Label("compare"))

		if arr[j] < pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
			if i != j {
				rec.Emit(arr, fmt.Sprintf("Swapped %v and %v", arr[i], arr[j]),
					step.Highlight(i, j), step.Secondary(high), step.Active(low, high), step.Label("swap"))
			}
		}
	}

	arr[i+1], arr[high] = arr[high], arr[i+1]
	rec.Emit(arr, fmt.Sprintf("Placed pivot %v at index %d", pivot, i+1),
		step.Highlight(i+1, high), step.Secondary(i+1), step.Active(low, high), step.Label("place_pivot"))

	return i + 1
}
