// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex (r,c) has local index r*cols + c.
//   • Every unit square with corners a=(r,c), b=(r,c+1), c'=(r+1,c),
//     d=(r+1,c+1) is cut along the a-d diagonal into {a,b,d} and {a,c',d}.
//   • The result is a triangulated disk and collapses to a single vertex.
//
// Complexity:
//   • Time: O(rows·cols) triangles.
//   • Space: O(1) extra.
//
// Determinism:
//   • Squares are visited row-major; the upper triangle precedes the lower.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodGrid  = "Grid"
	minGridSide = 2
)

// Grid returns a Constructor for a triangulated rows×cols vertex grid.
func Grid(rows, cols int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate both sides before touching b.
		if rows < minGridSide {
			return fmt.Errorf("%s: rows=%d < min=%d: %w", methodGrid, rows, minGridSide, ErrTooFewVertices)
		}
		if cols < minGridSide {
			return fmt.Errorf("%s: cols=%d < min=%d: %w", methodGrid, cols, minGridSide, ErrTooFewVertices)
		}

		// Visit each unit square by its top-left corner (r,c).
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				// Corner indices in row-major numbering.
				a := r*cols + c
				right := a + 1
				down := a + cols
				diag := down + 1
				// Both halves share the a-diag edge.
				b.AddClosure(cfg.cell(a, right, diag))
				b.AddClosure(cfg.cell(a, down, diag))
			}
		}

		// Success: grid fully constructed.
		return nil
	}
}
