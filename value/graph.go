// SPDX-License-Identifier: MIT
// File: graph.go
// Role: node construction (Leaf, Add, Sub, Mul, Tanh).
//
// Determinism:
//   - IDs follow call order under the arena lock.
//   - Data is computed from operand data as read at call time.
//
// Concurrency:
//   - Each constructor holds the write lock for the read-compute-append step,
//     so the operand snapshot and the new ID are consistent.

package value

import (
	"fmt"
	"math"
)

// Leaf appends an input node holding x, with zero gradient and OpNone.
// Complexity: O(1) amortized.
func (g *Graph) Leaf(x float64) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.appendLocked(x, Op{Kind: OpNone, A: NoOperand, B: NoOperand})
}

// Add appends a node with data a+b tagged OpAdd(a, b).
func (g *Graph) Add(a, b Node) Node { return g.binary(OpAdd, a, b) }

// Sub appends a node with data a-b tagged OpSub(a, b).
func (g *Graph) Sub(a, b Node) Node { return g.binary(OpSub, a, b) }

// Mul appends a node with data a*b tagged OpMul(a, b).
func (g *Graph) Mul(a, b Node) Node { return g.binary(OpMul, a, b) }

// Tanh appends a node with data tanh(a) tagged OpTanh(a).
func (g *Graph) Tanh(a Node) Node {
	g.mustOwn(a)

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.appendLocked(math.Tanh(g.nodes[a.id].data), Op{Kind: OpTanh, A: a.id, B: NoOperand})
}

// binary evaluates kind on the current operand data and appends the result.
func (g *Graph) binary(kind OpKind, a, b Node) Node {
	g.mustOwn(a)
	g.mustOwn(b)

	g.mu.Lock()
	defer g.mu.Unlock()

	x, y := g.nodes[a.id].data, g.nodes[b.id].data
	var d float64
	switch kind {
	case OpAdd:
		d = x + y
	case OpSub:
		d = x - y
	case OpMul:
		d = x * y
	}

	return g.appendLocked(d, Op{Kind: kind, A: a.id, B: b.id})
}

// appendLocked stores a new record and returns its handle. Caller holds mu.
func (g *Graph) appendLocked(data float64, op Op) Node {
	id := ID(len(g.nodes))
	g.nodes = append(g.nodes, node{data: data, op: op})

	return Node{g: g, id: id}
}

// mustOwn panics unless n is a handle issued by g. Any issued handle has an
// ID below the current length, and the arena never shrinks.
func (g *Graph) mustOwn(n Node) {
	if n.g == nil {
		panic("value: zero Node used as operand")
	}
	if n.g != g {
		panic(fmt.Sprintf("value: node %d belongs to a different graph", n.id))
	}
}

// Len reports how many nodes the arena holds.
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Node returns the handle for id, or ErrNodeNotFound if the arena never
// issued it.
func (g *Graph) Node(id ID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return Node{g: g, id: id}, nil
}

// Nodes returns handles for every node in ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = Node{g: g, id: ID(i)}
	}

	return out
}
