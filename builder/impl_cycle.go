// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_cycle.go - implementation of the Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices 0..n-1 (shifted by cfg.offset), edges {i,(i+1) mod n}.
//   • Every simplex enters through AddClosure, so the result is closed.
//   • No edge has a free face: the spine of a cycle is the cycle itself.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) edges, each closed in O(1).
//   • Space: O(1) extra (loop vars only).
//
// Determinism:
//   • Edges are emitted in ascending i; labels depend only on n and offset.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the hollow n-gon.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildComplex will pass (b,cfg).
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minCycleNodes {
			// Keep the sentinel reachable through errors.Is.
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Emit ring edges in ascending i; i == n-1 wraps back to vertex 0.
		for i := 0; i < n; i++ {
			// AddClosure also records both endpoints as vertices.
			b.AddClosure(cfg.cell(i, (i+1)%n))
		}

		// Success: cycle fully constructed.
		return nil
	}
}
