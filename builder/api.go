// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// api.go: public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: Build(g, con, opts...). Resolves cfg, runs con once.
//   - Factories (Chain, SumTree, Diamond, Neuron) return Constructor
//     closures; implementations live in impl_*.go.
//   - Determinism: same inputs, options and seed ⇒ identical node sequences.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

// Constructor appends an expression to g and returns its root. Constructors
// validate parameters before appending anything, so a failed constructor
// leaves g untouched.
type Constructor func(g *value.Graph, cfg builderConfig) (value.Node, error)

// Build resolves opts and applies con to g, returning the expression root.
//
// Errors:
//   - ErrConstructFailed if g or con is nil.
//   - Constructor errors wrapped as "Build: %w" (ErrBadSize, ErrLengthMismatch).
func Build(g *value.Graph, con Constructor, opts ...BuilderOption) (value.Node, error) {
	if g == nil {
		return value.Node{}, fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	if con == nil {
		return value.Node{}, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}

	root, err := con(g, newBuilderConfig(opts...))
	if err != nil {
		return value.Node{}, fmt.Errorf("Build: %w", err)
	}

	return root, nil
}

// Chain(n) builds n steps over generated leaves, cycling add, mul, sub, tanh:
//
//	x0 = leaf; x1 = x0 + leaf; x2 = x1 * leaf; x3 = x2 - leaf; x4 = tanh(x3); ...
//
// n ≥ 1. Closure size: 1 + n + (number of binary steps).
// func Chain(n int) Constructor

// SumTree(n) adds n generated leaves pairwise, level by level. n ≥ 1.
// Closure size: 2n-1.
// func SumTree(n int) Constructor

// Diamond(depth) repeats x = x + x depth times over a single leaf. depth ≥ 0.
// Closure size: depth+1; each level references its predecessor twice.
// func Diamond(depth int) Constructor

// Neuron(xs, ws, b) builds tanh(Σ xᵢ·wᵢ + b) from the given values.
// len(xs) == len(ws) ≥ 1. Leaf policy options are ignored.
// func Neuron(xs, ws []float64, b float64) Constructor
