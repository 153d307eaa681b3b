// SPDX-License-Identifier: MIT

// Package builder assembles canonical expression shapes in a value.Graph:
// fixtures for tests, benchmarks and demos.
//
//	g := value.NewGraph()
//	root, err := builder.Build(g, builder.Chain(100), builder.WithSeed(7),
//	    builder.WithLeafFn(builder.UniformLeafFn(-1, 1)))
//
// Shapes:
//
//   - Chain(n)          alternating add/mul/sub/tanh over fresh leaves
//   - SumTree(n)        balanced pairwise sum of n leaves
//   - Diamond(depth)    x = x + x repeated; maximal operand sharing
//   - Neuron(xs, ws, b) tanh(Σ xᵢ·wᵢ + b)
//
// Generated leaf values come from a LeafFn (default: constant 1.0). A LeafFn
// sees the leaf index and the configured RNG; WithSeed makes stochastic
// policies reproducible.
//
// Errors: ErrBadSize, ErrLengthMismatch, ErrConstructFailed, always wrapped
// with the constructor name. Constructors never panic; option constructors
// do on nil or inverted inputs.
package builder
