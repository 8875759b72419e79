// SPDX-License-Identifier: MIT

// Package spine reduces a simplicial complex to its spine by iterated
// elementary collapse, preserving its homotopy type.
//
// What:
//
//   - CofaceMap: for every simplex of a complex, the set of simplices that
//     have it as a boundary face. Built once per run (BuildCofaceMap) and
//     repaired in place after each removal.
//   - Admissibility: IsPrincipal (no coface), FreeFace (first boundary face,
//     in simplex.Boundary order, whose only coface is the given principal
//     simplex) and PrincipalFaces (all principal → free-face pairs).
//   - Incremental (Spine): the collapse engine. After each collapse it
//     re-derives candidate pairs only around the removed pair and falls back
//     to a global PrincipalFaces rescan when that local search finds nothing.
//   - Reference (ReferenceSpine): a stateless oracle that recomputes every
//     candidate pair from direct face tests after every collapse. It exists
//     to cross-check Incremental.
//
// Both reducers implement Reducer, so callers and tests can swap them.
//
// Selection rule:
//
//	Each step collapses the admissible pair whose principal simplex has the
//	smallest ID, i.e. comes first in complex order (lowest dimension, then
//	lexicographic). The rule is fixed for reproducibility; results must only
//	be compared through order-independent invariants (size on confluent
//	inputs, Euler characteristic, Betti numbers).
//
// Guarantees:
//
//   - The input complex is never mutated; a clone is reduced and returned.
//   - The result is homotopy-equivalent to the input and no larger.
//   - The run ends only when no principal simplex has a free face.
//   - At most Len()/2 collapses are performed.
//
// Complexity (n simplices, k = max simplex size):
//
//   - BuildCofaceMap:  O(n·k)
//   - PrincipalFaces:  O(n·k)
//   - Incremental:     O(c·k² + r·n·k) for c collapses and r global rescans
//   - Reference:       O(c·n²·k), intended for small inputs only
//
// Errors:
//
//   - ErrNilComplex        nil input complex
//   - ErrUnknownSimplex    coface query for a simplex without an entry; a
//     broken precondition that aborts the run
//   - ErrDanglingCoface    reported by WithIncidenceCheck when a removed
//     simplex is still referenced
//   - ErrUnknownAlgorithm  ByName with an unsupported name
//   - hook errors          propagated from WithOnCollapse
//
// "Not principal" and "no free face" are ordinary (false, nil) results.
//
// Concurrency: every run owns its working complex and incidence maps; runs
// are synchronous and may proceed in parallel on shared, unmutated inputs.
package spine
