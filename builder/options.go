// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed / WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithLeafFn sets the leaf-value policy. Panics on nil.
func WithLeafFn(fn LeafFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLeafFn(nil)")
	}
	return func(c *builderConfig) { c.leafFn = fn }
}

// WithRand provides an explicit RNG for stochastic leaf policies.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
