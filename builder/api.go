// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// api.go - the BuildComplex orchestrator and constructor combinators.
//
// Design contract:
//   - One orchestrator: BuildComplex(opts, cons...). Creates one
//     simplicial.Builder, resolves cfg, runs cons in order, freezes.
//   - All public factories are implemented in impl_*.go, one per file.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig passed by value (no global state).
//   - Determinism: same options, seed and constructor order ⇒ identical
//     complexes, down to simplex IDs.
//   - Safety: constructors never panic; they return sentinel errors.
//
// AI-Hints (practical):
//   - Compose constructors to assemble fixtures; shared labels glue them.
//   - Use Offset(delta, c) to keep a constructor's labels disjoint.
//   - Use WithSeed(...) to freeze RandomFlag; WithMaxDim caps its cliques.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// Constructor adds simplices to b using the resolved config. Constructors
// MUST:
//   - Validate parameters before touching b and return sentinel errors.
//   - Add only closed sets of simplices (typically via AddClosure).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; the cost is in the closure body.
type Constructor func(b *simplicial.Builder, cfg builderConfig) error

// BuildComplex resolves opts, applies every constructor in order to one
// simplicial.Builder and freezes the result.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: the sum of their costs plus O(K).
//   - Freezing: O(N log N) for N recorded simplices.
//
// Errors:
//   - Constructor errors are wrapped as "BuildComplex: %w"; branch with
//     errors.Is against ErrTooFewVertices, ErrInvalidProbability, ...
//   - A nil constructor or a failed freeze yields ErrConstructFailed.
//   - No partial complex is returned.
func BuildComplex(opts []BuilderOption, cons ...Constructor) (*simplicial.Complex, error) {
	// Resolve the configuration once; constructors receive copies.
	cfg := newBuilderConfig(opts...)
	// One builder collects every constructor's simplices; duplicates merge.
	b := simplicial.NewBuilder()

	// Apply constructors sequentially to keep emission order stable.
	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call.
		if fn == nil {
			return nil, fmt.Errorf("BuildComplex: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Wrap once at the API boundary; fn already added its method tag.
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
	}

	// Freeze into the arena; closure is validated here.
	k, err := b.Build()
	if err != nil {
		// Keep the simplicial cause readable while exposing our sentinel.
		return nil, fmt.Errorf("BuildComplex: %v: %w", err, ErrConstructFailed)
	}

	// Success: return the frozen complex.
	return k, nil
}

// Offset runs c with every vertex label shifted by delta on top of the
// configured offset, so that it stays disjoint from constructors using
// lower labels.
func Offset(delta simplex.Vertex, c Constructor) Constructor {
	return func(b *simplicial.Builder, cfg builderConfig) error {
		// A nil inner constructor is a programmer error; report, don't panic.
		if c == nil {
			return fmt.Errorf("Offset: nil constructor: %w", ErrConstructFailed)
		}
		// cfg is a value copy, so the shift is local to c.
		cfg.offset += delta

		return c(b, cfg)
	}
}
