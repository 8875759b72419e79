// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_cone.go - implementation of the Cone(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Rim vertices 0..n-1 and apex n; triangles {i, (i+1) mod n, n}.
//   • The result is a triangulated disk (the cone over Cycle(n)): n+1
//     vertices, 2n edges, n triangles.
//   • Only rim edges are free at the start; spokes become free later.
//
// Complexity:
//   • Time: O(n) triangles, each closed in O(1).
//   • Space: O(1) extra.
//
// Determinism:
//   • Triangles are emitted in ascending rim index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodCone   = "Cone"
	minConeNodes = 3
)

// Cone returns a Constructor for the filled n-gon fanned around an apex.
func Cone(n int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minConeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCone, n, minConeNodes, ErrTooFewVertices)
		}

		// The apex takes the first index after the rim.
		apex := n

		// Fan one triangle per rim edge; the last one wraps to vertex 0.
		for i := 0; i < n; i++ {
			// AddClosure brings in the rim edge, both spokes and all vertices.
			b.AddClosure(cfg.cell(i, (i+1)%n, apex))
		}

		// Success: cone fully constructed.
		return nil
	}
}
