// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before any constructor runs.
// Option constructors panic on meaningless inputs; constructors never do.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefix names nodes prefix+index, e.g. "rule0", "rule1".
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible datasets.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn sets the link value generator. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) { c.valueFn = fn }
}

// WithSymmetric emits every link in both directions, so the collision
// kernel sees the pair from either endpoint.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}
