// SPDX-License-Identifier: MIT

package value

import (
	"errors"
	"sync"
)

// ErrNodeNotFound indicates that an ID was never issued by the arena.
var ErrNodeNotFound = errors.New("value: node not found")

// NoOperand fills unused operand slots in an Op.
const NoOperand ID = -1

// ID identifies a node inside its Graph. IDs are insertion indices.
type ID int

// OpKind is the closed set of operations a node can be produced by.
type OpKind uint8

const (
	OpNone OpKind = iota // leaf: user supplied input or constant
	OpAdd                // a + b
	OpSub                // a - b
	OpMul                // a * b
	OpTanh               // tanh(a)
)

// Arity returns how many operands the kind carries (0, 1 or 2).
func (k OpKind) Arity() int {
	switch k {
	case OpAdd, OpSub, OpMul:
		return 2
	case OpTanh:
		return 1
	default:
		return 0
	}
}

// Symbol returns the human-readable symbol used in diagrams:
// "+", "-", "x", "tanh", and "" for leaves.
func (k OpKind) Symbol() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpTanh:
		return "tanh"
	default:
		return ""
	}
}

// String returns the lower-case kind name ("none", "add", ...).
func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpTanh:
		return "tanh"
	default:
		return "unknown"
	}
}

// Op is the operation tag of a node: its kind plus operand IDs.
// Slots beyond Kind.Arity() hold NoOperand.
type Op struct {
	Kind OpKind
	A, B ID
}

// Operands returns the operand IDs in left-to-right order.
func (o Op) Operands() []ID {
	switch o.Kind.Arity() {
	case 2:
		return []ID{o.A, o.B}
	case 1:
		return []ID{o.A}
	default:
		return nil
	}
}

// String returns the op symbol.
func (o Op) String() string { return o.Kind.Symbol() }

// node is the arena record. op is written once at append time.
type node struct {
	data float64
	grad float64
	op   Op
}

// Graph is an append-only arena of scalar nodes.
//
// mu guards nodes; the slice only ever grows, and a record's op is never
// rewritten after append.
type Graph struct {
	mu    sync.RWMutex
	nodes []node
}

// NewGraph returns an empty arena.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{nodes: make([]node, 0, defaultCapacity)}
}

// defaultCapacity is the initial arena capacity.
const defaultCapacity = 16

// Node is a handle to a node in a Graph. The zero Node is invalid.
// Handles are comparable: two handles are equal iff they refer to the same
// node of the same arena.
type Node struct {
	g  *Graph
	id ID
}
