// SPDX-License-Identifier: MIT

// Package topo linearizes the dependency closure of a value.Node into
// topological order.
//
// What:
//
//   - Linearize(root): every node reachable from root by following operand
//     references, each exactly once, operands strictly before the nodes they
//     produced, root last.
//   - Reverse, IDs, IndexOf: small helpers for consumers of an order (a
//     backward pass walks Reverse(order); renderers key on IDs).
//
// Why:
//
//   - Gradient propagation needs results before operands (reverse order).
//   - Diagram rendering needs a stable node/edge emission sequence.
//
// Algorithm:
//
//	DFS post-order with a visited set keyed by node ID. Operands are
//	explored left to right (a before b), so the order is a pure function of
//	the graph shape. A visited node's subtree is never re-walked; diamonds
//	(x shared by two parents, or x+x) list x once.
//
//	The visited set is a []bool of length root.ID()+1: an operand's ID is
//	always smaller than its result's, so no reachable ID exceeds root.ID().
//
// Determinism:
//
//   - Same graph, same root ⇒ same order. Linearize has no side effects and
//     may be called any number of times.
//
// Errors:
//
//   - None. Cycles cannot exist in a value.Graph, so there is no
//     ErrCycleDetected here.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) over the dependency closure (V nodes, E ≤ 2V
//     operand references).
package topo
