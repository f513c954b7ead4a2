// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// config is the resolved, read-only view of all Options for one build.
type config struct {
	// idFn maps a vertex index to its id.
	idFn IDFn

	// rng drives stochastic constructors and weight functions. Nil unless
	// WithSeed or WithRand was given.
	rng *rand.Rand

	weightFn WeightFn
	weighted bool
	directed bool

	// placed records vertices a constructor positioned itself.
	placed map[string]bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     SymbolIDFn,
		weightFn: DefaultWeightFn,
		placed:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
