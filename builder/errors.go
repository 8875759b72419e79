// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method tag first).
//   • Algorithms never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a result that is not a
// valid simplicial complex.
var ErrConstructFailed = errors.New("builder: construction failed")
