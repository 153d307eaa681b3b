// SPDX-License-Identifier: MIT

package exprfile

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/value"
)

// Resolution states of a declaration.
const (
	white = iota // not reached yet
	gray         // on the resolution stack
	black        // built
)

// linker builds graph nodes for declarations, operands first.
type linker struct {
	graph *value.Graph
	decls map[string]*decl
	state map[string]int
	nodes map[string]value.Node
}

// link materializes decls into a fresh arena, visiting names in file order.
func link(decls []*decl) (*Program, error) {
	l := &linker{
		graph: value.NewGraph(),
		decls: make(map[string]*decl, len(decls)),
		state: make(map[string]int, len(decls)),
		nodes: make(map[string]value.Node, len(decls)),
	}
	for _, d := range decls {
		l.decls[d.name] = d
	}

	prog := &Program{
		graph: l.graph,
		names: make([]string, 0, len(decls)),
		byID:  make(map[value.ID]string, len(decls)),
	}
	for _, d := range decls {
		if _, err := l.resolve(d); err != nil {
			return nil, err
		}
		prog.names = append(prog.names, d.name)
	}
	prog.nodes = l.nodes
	for name, n := range l.nodes {
		prog.byID[n.ID()] = name
	}

	return prog, nil
}

// resolve returns the node for d, building its operands first.
func (l *linker) resolve(d *decl) (value.Node, error) {
	switch l.state[d.name] {
	case black:
		return l.nodes[d.name], nil
	case gray:
		// back-reference to a declaration still being built
		return value.Node{}, fmt.Errorf("%s: %q: %w", d.rng, d.name, ErrCycleDetected)
	}
	l.state[d.name] = gray

	var n value.Node
	if d.leaf {
		n = l.graph.Leaf(d.value)
	} else {
		args := make([]value.Node, len(d.operands))
		for i, ref := range d.operands {
			dep, ok := l.decls[ref]
			if !ok {
				return value.Node{}, fmt.Errorf("%s: node %q references %q: %w", d.rng, d.name, ref, ErrUndefinedOperand)
			}
			arg, err := l.resolve(dep)
			if err != nil {
				return value.Node{}, err
			}
			args[i] = arg
		}
		n = apply(l.graph, d.op, args)
	}

	l.state[d.name] = black
	l.nodes[d.name] = n

	return n, nil
}

// apply builds kind over args; len(args) was checked against the arity
// during decoding.
func apply(g *value.Graph, kind value.OpKind, args []value.Node) value.Node {
	switch kind {
	case value.OpAdd:
		return g.Add(args[0], args[1])
	case value.OpSub:
		return g.Sub(args[0], args[1])
	case value.OpMul:
		return g.Mul(args[0], args[1])
	default:
		return g.Tanh(args[0])
	}
}
