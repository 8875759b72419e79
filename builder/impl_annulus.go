// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_annulus.go - implementation of the Annulus(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Outer cycle on 0..n-1, inner cycle on n..2n-1, joined by the strip
//     {i, i+1, n+i} and {i+1, n+i, n+i+1} (indices mod n within each ring).
//   • Homotopy equivalent to a circle: β = [1, 1], χ = 0.
//   • f-vector [2n, 4n, 2n].
//
// Complexity:
//   • Time: O(n) triangles.
//   • Space: O(1) extra.
//
// Determinism:
//   • Triangles are emitted in ascending i, outer-led before inner-led.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodAnnulus   = "Annulus"
	minAnnulusNodes = 3
)

// Annulus returns a Constructor for a triangulated ring with 2n vertices.
func Annulus(n int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minAnnulusNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAnnulus, n, minAnnulusNodes, ErrTooFewVertices)
		}

		// Walk the strip one quad at a time; inner vertex of outer i is n+i.
		for i := 0; i < n; i++ {
			// Successor on the same ring, wrapping at n.
			next := (i + 1) % n
			// Triangle with two outer vertices.
			b.AddClosure(cfg.cell(i, next, n+i))
			// Triangle with two inner vertices.
			b.AddClosure(cfg.cell(next, n+i, n+next))
		}

		// Success: annulus fully constructed.
		return nil
	}
}
