// SPDX-License-Identifier: MIT

package builder

import "fmt"

const methodShuffled = "Shuffled"

// Shuffled returns a uniformly random permutation of 1..n (Fisher-Yates),
// the sorting view's default data. It requires WithSeed or WithRand.
func Shuffled(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodShuffled, n, ErrBadSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodShuffled, ErrNeedRandSource)
	}

	arr := Ascending(n)
	for i := n - 1; i > 0; i-- {
		j := cfg.rng.Intn(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
	return arr, nil
}

// Ascending returns 1..n in order. Negative n yields an empty slice.
func Ascending(n int) []int {
	arr := make([]int, max(n, 0))
	for i := range arr {
		arr[i] = i + 1
	}
	return arr
}

// Descending returns n..1, the worst case for bubble and last-pivot quick sort.
func Descending(n int) []int {
	arr := make([]int, max(n, 0))
	for i := range arr {
		arr[i] = n - i
	}
	return arr
}
