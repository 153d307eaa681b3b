// SPDX-License-Identifier: MIT

package exprfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgrad/value"
)

// Sentinel errors for expression files.
var (
	// ErrParse indicates malformed HCL or a block/attribute schema violation.
	ErrParse = errors.New("exprfile: parse error")

	// ErrInvalidValue indicates a leaf value that is not a known number.
	ErrInvalidValue = errors.New("exprfile: invalid leaf value")

	// ErrUnknownOp indicates an unsupported op string.
	ErrUnknownOp = errors.New("exprfile: unknown op")

	// ErrOperandCount indicates an operand list whose length differs from the op arity.
	ErrOperandCount = errors.New("exprfile: wrong operand count")

	// ErrUndefinedOperand indicates a reference to an undeclared name.
	ErrUndefinedOperand = errors.New("exprfile: undefined operand")

	// ErrDuplicateName indicates two blocks declared with the same name.
	ErrDuplicateName = errors.New("exprfile: duplicate name")

	// ErrCycleDetected indicates blocks that reference each other in a loop.
	ErrCycleDetected = errors.New("exprfile: cycle detected")

	// ErrUnknownName is returned by Program.Lookup for undeclared names.
	ErrUnknownName = errors.New("exprfile: unknown name")
)

// opNames maps accepted op spellings to kinds.
var opNames = map[string]value.OpKind{
	"add": value.OpAdd, "+": value.OpAdd,
	"sub": value.OpSub, "-": value.OpSub,
	"mul": value.OpMul, "x": value.OpMul, "*": value.OpMul,
	"tanh": value.OpTanh,
}

// ParseOp converts an op spelling (case-insensitive) into a value.OpKind.
// "none" is rejected: leaves are declared with leaf blocks.
func ParseOp(s string) (value.OpKind, error) {
	kind, ok := opNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return value.OpNone, fmt.Errorf("%q: %w", s, ErrUnknownOp)
	}

	return kind, nil
}

// Program is a loaded expression file: the arena plus the name bindings.
type Program struct {
	graph *value.Graph
	names []string              // declaration order
	nodes map[string]value.Node // name → node
	byID  map[value.ID]string   // node ID → name
}

// Graph returns the arena holding every declared node.
func (p *Program) Graph() *value.Graph { return p.graph }

// Len reports how many names the file declared.
func (p *Program) Len() int { return len(p.names) }

// Lookup returns the node bound to name.
func (p *Program) Lookup(name string) (value.Node, error) {
	n, ok := p.nodes[name]
	if !ok {
		return value.Node{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownName)
	}

	return n, nil
}

// Names returns the declared names in file order.
func (p *Program) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// NameOf returns the name bound to id, if any.
func (p *Program) NameOf(id value.ID) (string, bool) {
	name, ok := p.byID[id]

	return name, ok
}

// NameMap returns a copy of the ID → name bindings, suitable for
// render.WithNames.
func (p *Program) NameMap() map[value.ID]string {
	out := make(map[value.ID]string, len(p.byID))
	for id, name := range p.byID {
		out[id] = name
	}

	return out
}
