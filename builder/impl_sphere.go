// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_sphere.go - implementation of the Sphere(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • Boundary of the (n+1)-simplex {0..n+1}: every proper face,
//     2^(n+2)-2 simplices. Sphere(0) is two points, Sphere(1) a triangle
//     outline, Sphere(2) a hollow tetrahedron.
//   • No simplex has a free face, so the spine is the sphere itself.
//
// Complexity:
//   • Time: O(2^n · n²) (n+2 facets, each closed separately).
//   • Space: O(n) per facet.
//
// Determinism:
//   • Facets are emitted in Boundary order (vertex i dropped, ascending i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodSphere = "Sphere"
	minSphereDim = 0
)

// Sphere returns a Constructor for the boundary of the (n+1)-simplex.
func Sphere(n int) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// Validate the parameter domain before touching b.
		if n < minSphereDim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSphere, n, minSphereDim, ErrTooFewVertices)
		}

		// The (n+1)-simplex itself is never added; only its codim-1 faces.
		for _, facet := range cfg.cell(span(n + 2)...).Boundary() {
			// Closing each facet supplies every lower face exactly once.
			b.AddClosure(facet)
		}

		// Success: sphere fully constructed.
		return nil
	}
}
