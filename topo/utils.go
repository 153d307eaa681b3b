// SPDX-License-Identifier: MIT

package topo

import "github.com/katalvlaran/lvgrad/value"

// Reverse returns a new slice with the elements of order reversed: results
// before operands, root first. This is the order a backward pass consumes.
// Time Complexity: O(n).
func Reverse(order []value.Node) []value.Node {
	out := make([]value.Node, len(order))
	for i := range order {
		out[i] = order[len(order)-1-i]
	}

	return out
}

// IDs projects order onto node IDs.
// Time Complexity: O(n).
func IDs(order []value.Node) []value.ID {
	out := make([]value.ID, len(order))
	for i, n := range order {
		out[i] = n.ID()
	}

	return out
}

// IndexOf returns the position of the node with the given id in order,
// or -1 if it is absent.
// Time Complexity: O(n).
func IndexOf(order []value.Node, id value.ID) int {
	for i, n := range order {
		if n.ID() == id {
			return i
		}
	}

	return -1
}
