// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn         ("0","1","2",...)
//   • labelFn  = nil                 (label = ID)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(DefaultEdgeWeight)

package builder

import (
	"math/rand"
)

// edgeIDPrefix prefixes the sequential edge IDs BuildGraph installs.
const edgeIDPrefix = "e"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// Node label strategy: index -> label; nil means label = ID.
	labelFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label returns the label for node index i with the given id.
func (c builderConfig) label(i int, id string) string {
	if c.labelFn == nil {
		return id
	}

	return c.labelFn(i)
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
