// SPDX-License-Identifier: MIT
// Package: lvgrad/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Chain: n=0 < min=1: ...").
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrBadSize indicates a size parameter (steps, leaves, depth) below its
// documented minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrLengthMismatch indicates paired inputs of different lengths (Neuron xs/ws).
var ErrLengthMismatch = errors.New("builder: length mismatch")

// ErrConstructFailed indicates Build could not run at all (nil graph or nil
// constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
