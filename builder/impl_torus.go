// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_torus.go - implementation of the Torus(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 3 and cols ≥ 3 (else ErrTooFewVertices); smaller sides would
//     identify distinct simplices and break the triangulation.
//   • The Grid pattern on a rows×cols vertex grid with row rows ≡ 0 and
//     column cols ≡ 0, i.e. 2·rows·cols triangles.
//   • A closed surface: β = [1, 2, 1], χ = 0, and no simplex has a free
//     face, so the spine is the torus itself.
//
// Complexity:
//   • Time: O(rows·cols) triangles.
//   • Space: O(1) extra.
//
// Determinism:
//   • Squares are visited row-major, exactly as in Grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodTorus  = "Torus"
	minTorusSide = 3
)

// Torus returns a Constructor for the periodic rows×cols triangulated torus.
func Torus(rows, cols int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate both sides before touching b.
		if rows < minTorusSide {
			return fmt.Errorf("%s: rows=%d < min=%d: %w", methodTorus, rows, minTorusSide, ErrTooFewVertices)
		}
		if cols < minTorusSide {
			return fmt.Errorf("%s: cols=%d < min=%d: %w", methodTorus, cols, minTorusSide, ErrTooFewVertices)
		}

		// at wraps (r,c) onto the periodic grid.
		at := func(r, c int) int { return (r%rows)*cols + c%cols }

		// Unlike Grid, the last row and column also own a square.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				// Corner indices after wrapping.
				a := at(r, c)
				right := at(r, c+1)
				down := at(r+1, c)
				diag := at(r+1, c+1)
				// Same diagonal cut as Grid.
				b.AddClosure(cfg.cell(a, right, diag))
				b.AddClosure(cfg.cell(a, down, diag))
			}
		}

		// Success: torus fully constructed.
		return nil
	}
}
