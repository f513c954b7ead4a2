// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors returned by constructors and sequence helpers.
var (
	// ErrTooFewVertices indicates a size parameter below the shape's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic build without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadSize indicates a negative sequence length.
	ErrBadSize = errors.New("builder: invalid size/length")
)
