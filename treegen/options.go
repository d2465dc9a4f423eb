// SPDX-License-Identifier: MIT
//
// options.go: functional options for the treegen package.
// Option constructors panic on meaningless inputs; constructors return errors.

package treegen

import "math/rand"

// Option customizes generation by mutating a config before a Constructor runs.
type Option func(*config)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	// rng is nil unless WithSeed or WithRand was given.
	rng *rand.Rand
}

// newConfig applies options in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
