// SPDX-License-Identifier: MIT

// Package homology computes homotopy invariants of a simplicial.Complex:
// f-vector, Euler characteristic, connected components and Betti numbers
// over Z/2.
//
// These are the checks used to confirm that a spine reduction preserved the
// homotopy type of its input. They are exact, not persistent: no filtration
// is involved.
//
// Complexity (n_d simplices of dimension d):
//
//   - FVector, EulerCharacteristic: O(n)
//   - Components:                   O(n_0 + n_1) breadth-first search
//   - BettiNumbers:                 O(Σ n_d · n_{d-1}² / 64) GF(2) elimination
package homology
