// SPDX-License-Identifier: MIT

// Package lvgrad records scalar arithmetic as a directed acyclic graph and
// linearizes it in dependency order.
//
// Every value produced by +, -, x or tanh remembers the operation and the
// operands that produced it. Any node can then be handed to the linearizer,
// which lists its whole dependency closure with operands first: the order a
// renderer draws in, and the reverse of the order a backward pass walks.
//
// Packages:
//
//	value/    : the Graph arena, Node handles, op tags, constructors
//	topo/     : Linearize (DFS post-order) and order helpers
//	render/   : Graphviz DOT output for a node's dependency closure
//	exprfile/ : load expressions declared in HCL files
//	builder/  : canonical expression shapes for tests and demos
//	cmd/lvgrad: command-line tool with order, dot and demo
//
// Quick example:
//
//	g := value.NewGraph()
//	v1 := g.Leaf(0.5)
//	v2 := g.Leaf(0.3)
//	v6 := v1.Add(v2).Sub(v2).Mul(v2).Tanh()
//
//	for _, n := range topo.Linearize(v6) {
//	    fmt.Println(n) // "0 | data=0.5 grad=0 op=", ..., "5 | data=0.1488... grad=0 op=tanh"
//	}
//
// Gradient propagation itself is not implemented; each node only reserves a
// gradient slot.
package lvgrad
