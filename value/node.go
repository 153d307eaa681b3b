// SPDX-License-Identifier: MIT
// File: node.go
// Role: Node accessors, slot mutators and fluent arithmetic.

package value

import (
	"fmt"
	"strconv"
)

// ID returns the node identifier. Valid on the zero Node (returns 0) but
// meaningless there; check IsZero first when in doubt.
func (n Node) ID() ID { return n.id }

// Graph returns the owning arena, or nil for the zero Node.
func (n Node) Graph() *Graph { return n.g }

// IsZero reports whether n is the zero handle.
func (n Node) IsZero() bool { return n.g == nil }

// Data returns the current scalar value.
func (n Node) Data() float64 {
	g := n.owner()
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[n.id].data
}

// SetData overwrites the scalar value. Structure and identity are unchanged,
// and nodes already derived from n keep the data they were computed with.
func (n Node) SetData(x float64) {
	g := n.owner()
	g.mu.Lock()
	g.nodes[n.id].data = x
	g.mu.Unlock()
}

// Grad returns the gradient slot. It is 0 until someone calls SetGrad.
func (n Node) Grad() float64 {
	g := n.owner()
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[n.id].grad
}

// SetGrad overwrites the gradient slot.
func (n Node) SetGrad(x float64) {
	g := n.owner()
	g.mu.Lock()
	g.nodes[n.id].grad = x
	g.mu.Unlock()
}

// Op returns the operation tag that produced n.
func (n Node) Op() Op {
	g := n.owner()
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[n.id].op
}

// Kind is shorthand for n.Op().Kind.
func (n Node) Kind() OpKind { return n.Op().Kind }

// Symbol is shorthand for n.Op().Kind.Symbol().
func (n Node) Symbol() string { return n.Op().Kind.Symbol() }

// IsLeaf reports whether n was created by Leaf.
func (n Node) IsLeaf() bool { return n.Op().Kind == OpNone }

// Operands returns handles to the operands in left-to-right order.
// A repeated operand (x.Add(x)) appears twice. Leaves return nil.
func (n Node) Operands() []Node {
	ids := n.Op().Operands()
	if len(ids) == 0 {
		return nil
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{g: n.g, id: id}
	}

	return out
}

// Add is shorthand for n.Graph().Add(n, m).
func (n Node) Add(m Node) Node { return n.owner().Add(n, m) }

// Sub is shorthand for n.Graph().Sub(n, m).
func (n Node) Sub(m Node) Node { return n.owner().Sub(n, m) }

// Mul is shorthand for n.Graph().Mul(n, m).
func (n Node) Mul(m Node) Node { return n.owner().Mul(n, m) }

// Tanh is shorthand for n.Graph().Tanh(n).
func (n Node) Tanh() Node { return n.owner().Tanh(n) }

// String formats n as "<id> | data=<data> grad=<grad> op=<symbol>".
// The zero Node formats as "<nil>".
func (n Node) String() string {
	if n.g == nil {
		return "<nil>"
	}
	n.g.mu.RLock()
	rec := n.g.nodes[n.id]
	n.g.mu.RUnlock()

	return fmt.Sprintf("%d | data=%s grad=%s op=%s",
		n.id, FormatScalar(rec.data), FormatScalar(rec.grad), rec.op.Kind.Symbol())
}

// FormatScalar renders x with the shortest representation that round-trips.
func FormatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// owner returns the arena or panics on the zero Node.
func (n Node) owner() *Graph {
	if n.g == nil {
		panic("value: use of zero Node")
	}

	return n.g
}
