// SPDX-License-Identifier: MIT

package topo

import (
	"github.com/katalvlaran/lvgrad/value"
)

// linearizer holds the state of one Linearize call.
type linearizer struct {
	visited []bool       // indexed by value.ID
	order   []value.Node // post-order sequence
}

// Linearize returns the dependency closure of root in topological order:
// every node appears after all of its operands and root is the last element.
// A leaf root yields a single-element slice. Panics on the zero Node.
func Linearize(root value.Node) []value.Node {
	if root.IsZero() {
		panic("topo: Linearize(zero Node)")
	}
	l := &linearizer{
		visited: make([]bool, root.ID()+1),
		order:   make([]value.Node, 0, root.ID()+1),
	}
	l.visit(root)

	return l.order
}

// visit appends n after all of its unvisited operands.
func (l *linearizer) visit(n value.Node) {
	// 1. Already listed (shared operand)? skip the whole subtree.
	if l.visited[n.ID()] {
		return
	}
	l.visited[n.ID()] = true

	// 2. Operands left to right; leaves have none.
	for _, operand := range n.Operands() {
		l.visit(operand)
	}

	// 3. Post-order: n follows everything it depends on.
	l.order = append(l.order, n)
}
