// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_random_flag.go - RandomFlag(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • For 0 < p < 1 an RNG is required (WithSeed/WithRand), else ErrNeedRandSource.
//     p == 0 and p == 1 are deterministic and never touch the RNG.
//   • Edges {i,j}, i<j, are drawn in lexicographic order with probability p.
//   • Every clique of at most maxDim+1 vertices becomes a simplex (the flag
//     complex truncated at WithMaxDim, default 2).
//
// Complexity:
//   • Time: O(n²) for sampling plus O(#cliques · n/64) for enumeration.
//   • Space: O(n²/64) for the adjacency bitsets, O(maxDim) recursion depth.
//
// Determinism:
//   • RNG draws happen in a fixed (i,j) order, so a fixed seed yields a
//     fixed complex. Cliques are emitted depth-first in ascending order.

package builder

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// File-local constants (stable method tag for error context).
const (
	methodRandomFlag   = "RandomFlag"
	minRandomFlagNodes = 1
)

// RandomFlag returns a Constructor for the clique complex of a G(n,p) graph.
func RandomFlag(n int, p float64) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// 1) Validate parameters before touching b.
		if n < minRandomFlagNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomFlag, n, minRandomFlagNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomFlag, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomFlag, ErrNeedRandSource)
		}

		// 2) Sample the upper adjacency: up[i] holds neighbours j > i.
		up := make([]*bitset.BitSet, n)
		for i := range up {
			// One n-bit row per vertex.
			up[i] = bitset.New(uint(n))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p==1 and p==0 short-circuit before any rng call.
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					up[i].Set(uint(j))
				}
			}
		}

		// 3) Emit every clique in ascending vertex order, depth-first.
		maxSize := cfg.maxDim + 1
		// cand holds the vertices above max(clique) adjacent to all of it.
		var extend func(clique []int, cand *bitset.BitSet)
		extend = func(clique []int, cand *bitset.BitSet) {
			// Every face of a clique is a clique reached by its own
			// search, so plain Add keeps the complex closed.
			b.Add(cfg.cell(clique...))
			// Stop at the dimension cap.
			if len(clique) == maxSize {
				return
			}
			for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
				// Full slice expression forces a copy on append.
				next := append(clique[:len(clique):len(clique)], int(v))
				extend(next, cand.Intersection(up[v]))
			}
		}
		// Seed one search per vertex; isolated vertices still appear.
		for v := 0; v < n; v++ {
			extend([]int{v}, up[v])
		}

		// Success: flag complex fully constructed.
		return nil
	}
}
