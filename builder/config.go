// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value so a constructor cannot leak changes to its siblings.
type builderConfig struct {
	// Node name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Link value generator.
	valueFn ValueFn
	// Cluster id given to new nodes; set through InCluster.
	cluster int
	// symmetric emits every link in both directions.
	symmetric bool
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		rng:     nil,
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// value draws the next link value.
func (c builderConfig) value() float64 {
	return c.valueFn(c.rng)
}
