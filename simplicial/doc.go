// SPDX-License-Identifier: MIT

// Package simplicial provides Complex, a finite simplicial complex with a
// stable iteration order, dimension range queries and a cheap
// non-validating removal used by the reducers in package spine.
//
// Layout:
//
//   - An immutable arena stores every simplex the complex was built with,
//     sorted by simplex.Compare (dimension, then lexicographic). A simplex's
//     arena position is its ID, so "iterate in ID order" is "iterate faces
//     before cofaces".
//   - A roaring bitmap marks which IDs are still present ("alive").
//   - Per-ID boundary ID lists are resolved once at construction, in the
//     simplex.Boundary enumeration order.
//
// Clone shares the arena and copies only the alive bitmap, so a working
// copy of a large complex costs O(n/8) bytes rather than a deep copy.
// Removal never re-validates the complex; Validate can be called explicitly.
//
// Complexity:
//
//   - New / Closure:            O(n log n + Σ boundary sizes)
//   - Contains / ID:            O(k) hashing of the key
//   - RemoveWithoutValidation:  O(k + log n)
//   - Remove (validated):       O(|Range(dim+1)|)
//   - Range(dim):               O(|result|)
//
// Errors:
//
//   - ErrNotClosed        a face of some simplex is missing
//   - ErrSimplexNotFound  simplex is not (or no longer) in the complex
//   - ErrHasCofaces       validated removal of a simplex that is still a face
//
// Concurrency: a Complex is not safe for concurrent mutation; readers may
// share a complex that nobody mutates.
package simplicial
