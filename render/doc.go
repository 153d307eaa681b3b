// SPDX-License-Identifier: MIT

// Package render turns the dependency closure of a value.Node into a
// Graphviz DOT diagram.
//
// For every node of topo.Linearize(root), in that order, DOT emits one
// record-shaped node labelled
//
//	<id> | data=<data> grad=<grad> op=<symbol>
//
// (prefixed with "<name> | " when WithNames knows the node) and one edge
// from each operand to the node. A repeated operand (x+x) yields two edges,
// so the fan-in of every node matches its op arity.
//
// Options:
//
//   - WithRankDir(dir): layout direction, one of TB, LR, BT, RL (default LR).
//   - WithNames(names): human labels keyed by value.ID.
//
// Option constructors panic on meaningless input; DOT and WriteDOT never
// panic on a valid root.
package render
