// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes a build. Option constructors panic on nil or invalid
// arguments, which are programmer errors.
type Option func(*config)

// WithIDScheme overrides how vertex indices become ids.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithDefaultIDs selects decimal ids ("0","1",...).
func WithDefaultIDs() Option { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs selects letter ids ("A","B",...), the default.
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithSymbNumb selects ids of the form prefix+index.
func WithSymbNumb(prefix string) Option { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithRand uses r for every random decision.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeights turns edge weights on and draws them from fn.
func WithWeights(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeights(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
		c.weighted = true
	}
}

// WithDirected builds a directed graph.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}
