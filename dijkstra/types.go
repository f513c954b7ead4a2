package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoscope/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInvalidStartNode is core.ErrInvalidStartNode.
	ErrInvalidStartNode = core.ErrInvalidStartNode

	// ErrMissingStartNode is core.ErrMissingStartNode.
	ErrMissingStartNode = core.ErrMissingStartNode
)

// Options configures one run.
type Options struct {
	Ctx    context.Context // cancellation, checked once per queue iteration
	Source string          // start vertex; empty means the first node
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStart sets the source vertex.
func WithStart(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a background context and no explicit source.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
