// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// impl_neuron.go: Neuron(xs, ws, b) constructor.
//
// Contract:
//   - len(xs) ≥ 1 (else ErrBadSize); len(ws) == len(xs) (else ErrLengthMismatch).
//   - Leaves in order: x0, w0, x1, w1, ..., b. Values come from the
//     arguments, not from the leaf policy.
//   - Shape: tanh(((x0*w0 + x1*w1) + ...) + b).
//
// Complexity: Time O(len(xs)), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

const methodNeuron = "Neuron"

// Neuron returns a Constructor for a single tanh neuron.
func Neuron(xs, ws []float64, b float64) Constructor {
	return func(g *value.Graph, _ builderConfig) (value.Node, error) {
		if len(xs) == 0 {
			return value.Node{}, fmt.Errorf("%s: no inputs: %w", methodNeuron, ErrBadSize)
		}
		if len(xs) != len(ws) {
			return value.Node{}, fmt.Errorf("%s: len(xs)=%d != len(ws)=%d: %w", methodNeuron, len(xs), len(ws), ErrLengthMismatch)
		}

		var sum value.Node
		for i := range xs {
			term := g.Mul(g.Leaf(xs[i]), g.Leaf(ws[i]))
			if i == 0 {
				sum = term
				continue
			}
			sum = g.Add(sum, term)
		}

		return g.Tanh(g.Add(sum, g.Leaf(b))), nil
	}
}
