package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoscope/step"
)

// Bubble returns the step sequence of bubble sort on a copy of input.
func Bubble[T cmp.Ordered](input []T) []step.Step[[]T] {
	arr := slices.Clone(input)
	n := len(arr)
	rec := step.NewRecorder(slices.Clone[[]T])

	rec.Emit(arr, "Starting Bubble Sort...")

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			rec.Emit(arr, fmt.Sprintf("Comparing %v and %v", arr[j], arr[j+1]),
				step.Highlight(j, j+1), sortedTail(n, i), step.Label("compare"))

			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				rec.Emit(arr, fmt.Sprintf("Swapped %v and %v", arr[j+1], arr[j]),
					step.Highlight(j, j+1), sortedTail(n, i), step.Label("swap"))
			}
		}
		rec.Emit(arr, fmt.Sprintf("Element %v is now in its sorted position", arr[n-i-1]),
			step.Secondary(n-i-1), step.Label("pass_done"))
	}

	rec.Emit(arr, "Sorting completed!")
	return rec.Steps()
}

// sortedTail marks the first index of the already sorted suffix after i passes.
func sortedTail(n, i int) step.Hint {
	if i == 0 {
		return nil
	}
	return step.Secondary(n - i)
}
