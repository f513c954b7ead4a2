// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/algoscope/core"
)

// Sentinel errors. Every message carries the "matrix:" prefix.
var (
	// ErrEmptyGraph indicates a snapshot without nodes.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrUnknownNode indicates a node id missing from the matrix index.
	ErrUnknownNode = errors.New("matrix: unknown node id")

	// ErrInvalidGraph wraps a core validation failure.
	ErrInvalidGraph = errors.New("matrix: invalid graph")
)

// Option configures how a snapshot is projected.
type Option func(*options)

type options struct {
	noEdge   float64
	weighted bool
}

func defaultOptions() options {
	return options{weighted: true}
}

// WithNoEdge sets the value of cells without an edge. The default is 0;
// math.Inf(1) suits distance-style reading.
func WithNoEdge(v float64) Option {
	return func(o *options) { o.noEdge = v }
}

// WithUnweighted writes 1 for every edge regardless of its weight.
func WithUnweighted() Option {
	return func(o *options) { o.weighted = false }
}

func gather(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// index maps node ids to rows after validating g.
func index(g core.Graph) ([]string, map[string]int, error) {
	if len(g.Nodes) == 0 {
		return nil, nil, ErrEmptyGraph
	}
	if err := g.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	ids := make([]string, len(g.Nodes))
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
		idx[n.ID] = i
	}
	return ids, idx, nil
}

// Format renders v for a matrix cell: integers without a fraction,
// infinities as a bare sign.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%g", v)
	}
}
