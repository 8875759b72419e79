// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_simplex.go - implementation of the Simplex(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • Closure of the single simplex {0..n}: 2^(n+1)-1 simplices.
//   • Collapses to a single vertex.
//
// Complexity:
//   • Time: O(2^n · n) for the face expansion inside AddClosure.
//   • Space: O(n) for the local index slice.
//
// Determinism:
//   • A single AddClosure call; the result depends only on n and offset.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodSimplex = "Simplex"
	minSimplexDim = 0
)

// Simplex returns a Constructor for the solid n-simplex.
func Simplex(n int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minSimplexDim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSimplex, n, minSimplexDim, ErrTooFewVertices)
		}

		// An n-simplex has n+1 vertices; AddClosure adds every face.
		b.AddClosure(cfg.cell(span(n + 1)...))

		// Success: simplex fully constructed.
		return nil
	}
}

// span returns the local indices 0..n-1.
func span(n int) []int {
	// Preallocate exactly n slots.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
