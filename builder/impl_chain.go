// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// impl_chain.go: Chain(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrBadSize).
//   - Step i (1-based) applies opCycle[(i-1) % 4]; binary steps take a fresh
//     generated leaf as right operand.
//
// Complexity: Time O(n), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

const (
	methodChain   = "Chain"
	minChainSteps = 1
)

// opCycle is the per-step operation sequence of Chain.
var opCycle = [...]value.OpKind{value.OpAdd, value.OpMul, value.OpSub, value.OpTanh}

// Chain returns a Constructor for an n-step alternating chain.
func Chain(n int) Constructor {
	return func(g *value.Graph, cfg builderConfig) (value.Node, error) {
		if n < minChainSteps {
			return value.Node{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSteps, ErrBadSize)
		}

		x := cfg.leaf(g)
		for i := 0; i < n; i++ {
			switch opCycle[i%len(opCycle)] {
			case value.OpAdd:
				x = g.Add(x, cfg.leaf(g))
			case value.OpMul:
				x = g.Mul(x, cfg.leaf(g))
			case value.OpSub:
				x = g.Sub(x, cfg.leaf(g))
			default:
				x = g.Tanh(x)
			}
		}

		return x, nil
	}
}
