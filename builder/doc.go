// SPDX-License-Identifier: MIT

// Package builder produces deterministic simplicial-complex fixtures with
// known topology, for tests, benchmarks, examples and the spine CLI.
//
// The package offers:
//
//   - One orchestrator: BuildComplex(opts, cons...) resolves options into an
//     immutable builderConfig and applies constructors in order to a shared
//     simplicial.Builder. Constructors that reuse vertex labels glue along
//     the shared simplices; wrap one in Offset to keep it disjoint.
//   - Constructors (one impl_*.go file each):
//     – Simplex(n):     solid n-simplex (contractible).
//     – Sphere(n):      boundary of the (n+1)-simplex (an n-sphere).
//     – Path(n):        n vertices in a line (contractible graph).
//     – Cycle(n):       hollow n-gon (a circle).
//     – Cone(n):        n-gon filled by a fan around an apex (a disk).
//     – Grid(r, c):     r×c vertex grid cut into triangles (a disk).
//     – Annulus(n):     two n-cycles joined by a triangle strip (a circle).
//     – Torus(r, c):    r×c grid with both sides identified (a torus).
//     – RandomFlag(n,p): clique complex of a seeded random graph.
//   - Options: WithSeed / WithRand (stochastic constructors), WithVertexOffset,
//     WithMaxDim (clique size cap for RandomFlag).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical complexes.
//   - Constructors validate parameters first and return wrapped sentinels;
//     option constructors panic on meaningless values.
//   - Every produced complex is closed under faces.
//
// Errors:
//
//   - ErrTooFewVertices      a size parameter is below its minimum
//   - ErrInvalidProbability  p outside [0,1]
//   - ErrNeedRandSource      stochastic constructor without WithSeed/WithRand
//   - ErrConstructFailed     nil constructor or invalid resulting complex
package builder
