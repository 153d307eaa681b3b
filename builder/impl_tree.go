// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// impl_tree.go: SumTree(n) and Diamond(depth) constructors.
//
// SumTree contract:
//   - n ≥ 1 (else ErrBadSize).
//   - All n leaves are generated first, then each level adds neighbours
//     (0+1, 2+3, ...); an odd tail is carried to the next level unchanged.
//
// Diamond contract:
//   - depth ≥ 0 (else ErrBadSize).
//   - One generated leaf, then depth nodes x = x + x.
//
// Complexity: Time O(n) / O(depth), Space O(n) / O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

const (
	methodSumTree   = "SumTree"
	methodDiamond   = "Diamond"
	minSumTreeLeafs = 1
	minDiamondDepth = 0
)

// SumTree returns a Constructor for a balanced pairwise sum of n leaves.
func SumTree(n int) Constructor {
	return func(g *value.Graph, cfg builderConfig) (value.Node, error) {
		if n < minSumTreeLeafs {
			return value.Node{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodSumTree, n, minSumTreeLeafs, ErrBadSize)
		}

		level := make([]value.Node, n)
		for i := range level {
			level[i] = cfg.leaf(g)
		}
		for len(level) > 1 {
			next := make([]value.Node, 0, (len(level)+1)/2)
			for i := 0; i+1 < len(level); i += 2 {
				next = append(next, g.Add(level[i], level[i+1]))
			}
			if len(level)%2 == 1 {
				next = append(next, level[len(level)-1])
			}
			level = next
		}

		return level[0], nil
	}
}

// Diamond returns a Constructor for depth levels of self-addition.
func Diamond(depth int) Constructor {
	return func(g *value.Graph, cfg builderConfig) (value.Node, error) {
		if depth < minDiamondDepth {
			return value.Node{}, fmt.Errorf("%s: depth=%d < min=%d: %w", methodDiamond, depth, minDiamondDepth, ErrBadSize)
		}

		x := cfg.leaf(g)
		for i := 0; i < depth; i++ {
			x = g.Add(x, x)
		}

		return x, nil
	}
}
