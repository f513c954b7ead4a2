package bfs

import (
	"context"

	"github.com/katalvlaran/algoscope/core"
)

// Re-exported start-node errors, so callers can match without importing core.
var (
	ErrInvalidStartNode = core.ErrInvalidStartNode
	ErrMissingStartNode = core.ErrMissingStartNode
)

// Option configures a BFS run via functional arguments.
type Option func(*Options)

// Options holds the parameters of one BFS run.
type Options struct {
	// Ctx allows cancellation; checked once per queue iteration.
	Ctx context.Context

	// Start is the start vertex id. Empty means the first node.
	Start string
}

// DefaultOptions returns Options with a background context and no explicit start.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithStart selects the start vertex.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
