// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Options only write builderConfig fields; later options win.
//
// AI-Hints:
//   • Share one *rand.Rand across BuildComplex calls with WithRand to get
//     a reproducible sequence of distinct random complexes.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtopo/simplex"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	// Validate at option construction, not at BuildComplex time.
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVertexOffset shifts every vertex label produced by constructors by off.
func WithVertexOffset(off simplex.Vertex) BuilderOption {
	return func(c *builderConfig) { c.offset = off }
}

// WithMaxDim caps the dimension of cliques emitted by RandomFlag.
// Panics if d < 0.
func WithMaxDim(d int) BuilderOption {
	// d == 0 is valid: RandomFlag then emits vertices only.
	if d < 0 {
		panic("builder: WithMaxDim(d<0)")
	}
	return func(c *builderConfig) { c.maxDim = d }
}
