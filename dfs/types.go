package dfs

import (
	"context"

	"github.com/katalvlaran/algoscope/core"
)

var (
	// ErrInvalidStartNode is core.ErrInvalidStartNode.
	ErrInvalidStartNode = core.ErrInvalidStartNode

	// ErrMissingStartNode is core.ErrMissingStartNode.
	ErrMissingStartNode = core.ErrMissingStartNode
)

// Option configures a DFS run.
// Use with DFS(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Start is the root vertex. Empty means the first node.
	Start string
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithStart selects the root vertex.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
