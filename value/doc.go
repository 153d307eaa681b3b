// SPDX-License-Identifier: MIT

// Package value builds directed acyclic graphs of scalar computation nodes.
//
// A Graph is an append-only arena. Every node in it carries a scalar data
// slot, a gradient slot, and the operation (with operand references) that
// produced it:
//
//	g := value.NewGraph()
//	x := g.Leaf(0.5)
//	w := g.Leaf(0.3)
//	y := x.Add(w).Mul(w).Tanh() // tanh((x+w)*w)
//
// What:
//
//   - Leaf creates an input node (Op kind OpNone).
//   - Add, Sub, Mul combine two nodes; Tanh wraps one. Data is computed
//     eagerly at construction time, so every node is inspectable at once.
//   - Node is a small handle (arena pointer + ID). Copying it is free and all
//     copies observe the same data/grad slots.
//
// Identity & Determinism:
//
//   - IDs are arena insertion indices: 0,1,2,... strictly increasing in
//     construction order and never reused.
//   - Operands always have smaller IDs than the node they produced, so the
//     operand graph is acyclic by construction. There is no API that can
//     make a node reference itself or a node built after it.
//   - Structure (Op and operand IDs) is immutable; only Data and Grad can
//     be updated after construction (SetData / SetGrad).
//
// Concurrency:
//
//   - A single sync.RWMutex guards the arena. Constructors may be called from
//     many goroutines; no two nodes ever receive the same ID.
//   - Individual Data/Grad reads and writes are serialized by the same lock.
//     Read-modify-write sequences (e.g. grad accumulation) need external
//     coordination.
//
// Errors & Panics:
//
//   - Arithmetic never fails; NaN and ±Inf propagate per IEEE-754.
//   - Graph.Node returns ErrNodeNotFound for IDs the arena never issued.
//   - Passing a zero Node, or mixing nodes from two different arenas, is a
//     programmer error and panics.
//
// Complexity:
//
//   - Every constructor and accessor: Time O(1) amortized, Memory O(1).
//
// The gradient slot is reserved for a backward pass; nothing in this package
// writes it except SetGrad.
package value
