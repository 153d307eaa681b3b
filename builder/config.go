// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • leafFn = DefaultLeafFn (every leaf is 1.0)
//   • rng    = nil           (pure unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvgrad/value"
)

// builderConfig aggregates the knobs used by constructors. Passed by value.
type builderConfig struct {
	leafFn LeafFn
	rng    *rand.Rand

	// leaves counts generated leaves so LeafFn sees a stable index.
	leaves *int
}

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		leafFn: DefaultLeafFn,
		rng:    nil,
		leaves: new(int),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// leaf appends the next generated leaf according to the leaf policy.
func (c builderConfig) leaf(g *value.Graph) value.Node {
	i := *c.leaves
	*c.leaves = i + 1

	return g.Leaf(c.leafFn(i, c.rng))
}
