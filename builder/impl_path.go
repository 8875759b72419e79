// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_path.go - implementation of the Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices 0..n-1 (shifted by cfg.offset), edges {i,i+1} for i = 0..n-2.
//   • Collapses to a single vertex: every end vertex is a free face.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Edges are emitted in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the path graph on n vertices.
func Path(n int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Chain consecutive vertices; the last vertex has no successor.
		for i := 0; i+1 < n; i++ {
			// AddClosure adds the edge together with both endpoints.
			b.AddClosure(cfg.cell(i, i+1))
		}

		// Success: path fully constructed.
		return nil
	}
}
