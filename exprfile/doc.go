// SPDX-License-Identifier: MIT

// Package exprfile loads scalar expressions written in HCL into a
// value.Graph.
//
// File format:
//
//	leaf "x" { value = 0.5 }
//	leaf "w" { value = -3 }
//
//	node "xw" {
//	  op       = "mul"    # add | sub | mul | tanh (or + - x * symbols)
//	  operands = [x, w]   # bare references to other leaf/node names
//	}
//
//	node "out" {
//	  op       = "tanh"
//	  operands = [xw]
//	}
//
// Resolution:
//
//   - Blocks may reference names declared later in the file.
//   - Names are resolved depth-first in declaration order with
//     White/Gray/Black marking; node IDs therefore follow declaration order
//     except where a forward reference forces an operand to be built first.
//   - A reference cycle (a → b → a) is reported as ErrCycleDetected.
//
// Errors (check with errors.Is):
//
//   - ErrParse             malformed HCL or schema violation
//   - ErrInvalidValue      leaf value is not a known number
//   - ErrUnknownOp         op is not one of the supported operations
//   - ErrOperandCount      operand count does not match the op arity
//   - ErrUndefinedOperand  reference to a name that is not declared
//   - ErrDuplicateName     two blocks share a name
//   - ErrCycleDetected     reference cycle between blocks
//   - ErrUnknownName       Program.Lookup of an undeclared name
package exprfile
