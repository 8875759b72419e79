// SPDX-License-Identifier: MIT

// Package simplex defines the immutable Simplex value used by every other
// lvtopo package.
//
// What:
//
//   - Simplex: a finite, non-empty set of vertex identifiers stored sorted and
//     de-duplicated. Dimension = |vertices| - 1.
//   - Boundary: the faces one dimension lower, enumerated in a fixed order
//     (drop vertex 0, then vertex 1, ...). A 0-simplex has no boundary.
//   - Compare: a total order (dimension first, then lexicographic on vertices)
//     that places every face before its cofaces.
//   - Key: a compact string usable as a map key; equal simplices share a key.
//
// Why:
//
//   - Simplices are shared freely between complexes, coface maps and
//     reducers. Immutability makes that sharing safe without copying.
//   - A deterministic boundary order is what makes free-face selection in
//     package spine reproducible.
//
// Complexity:
//
//   - New:              O(k log k) for k vertices
//   - Boundary:         O(k²)
//   - Compare, Equal:   O(k)
//   - IntersectionSize: O(k₁ + k₂) merge walk
//
// Errors:
//
//   - ErrEmptySimplex  no vertices were given
package simplex
