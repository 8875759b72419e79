// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • offset = 0    (vertex labels start at 0)
//   • rng    = nil  (pure/deterministic unless seeded)
//   • maxDim = 2    (RandomFlag keeps cliques of at most 3 vertices)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtopo/simplex"
)

// defaultMaxDim keeps RandomFlag at triangles unless WithMaxDim says otherwise.
const defaultMaxDim = 2

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	offset simplex.Vertex // added to every local vertex index
	rng    *rand.Rand     // nil means "no randomness"
	maxDim int            // clique dimension cap for RandomFlag
}

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start from the deterministic defaults listed in the file header.
	cfg := builderConfig{maxDim: defaultMaxDim}
	// Apply options in call order; later options overwrite earlier ones.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// v maps a constructor-local vertex index to its label.
func (c builderConfig) v(i int) simplex.Vertex {
	return c.offset + simplex.Vertex(i)
}

// cell builds a simplex from constructor-local indices; idx must be non-empty.
func (c builderConfig) cell(idx ...int) simplex.Simplex {
	// Map every local index through the offset.
	vs := make([]simplex.Vertex, len(idx))
	for i, x := range idx {
		vs[i] = c.v(x)
	}
	// MustNew sorts and drops duplicates; it panics only on an empty idx.

	return simplex.MustNew(vs...)
}
