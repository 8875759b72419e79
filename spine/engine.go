// SPDX-License-Identifier: MIT
// Package: lvtopo/spine
//
// engine.go - the incremental collapse engine.
//
// State: (working complex L, CofaceMap, AdmissibleMap). The run halts when
// the AdmissibleMap is empty; every step removes two simplices, so at most
// Len()/2 steps are taken.

package spine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// Incremental is the optimized reducer: one CofaceMap per run, repaired
// after every collapse, with local re-derivation of candidate pairs and a
// global rescan as backstop.
type Incremental struct {
	cfg config
}

// NewIncremental returns an Incremental reducer configured by opts.
func NewIncremental(opts ...Option) *Incremental {
	return &Incremental{cfg: newConfig(opts...)}
}

// Spine reduces k with a default-configured Incremental reducer plus opts.
func Spine(k *simplicial.Complex, opts ...Option) (*simplicial.Complex, error) {
	return NewIncremental(opts...).Reduce(k)
}

// Reduce implements Reducer.
func (e *Incremental) Reduce(k *simplicial.Complex) (*simplicial.Complex, error) {
	out, _, err := e.Run(k)

	return out, err
}

// Run reduces k and reports run statistics.
//
// Implementation:
//   - Stage 1: L = clone(k); cofaces = BuildCofaceMap(L); admissible = PrincipalFaces.
//   - Stage 2: While admissible is non-empty:
//     a) take the pair (s → t) with the smallest principal ID;
//     b) remove s and t from L without validation, drop s from admissible;
//     c) remove s and t from the coface sets of their faces, delete their entries;
//     d) re-derive free faces for the faces of s (except t) and the faces of t;
//     e) if (d) added nothing, recompute admissible globally.
//   - Stage 3: Return L.
//
// Errors: ErrNilComplex, ErrUnknownSimplex (broken precondition),
// ErrDanglingCoface (WithIncidenceCheck), or the hook's error. No partial
// result is returned on error.
func (e *Incremental) Run(k *simplicial.Complex) (*simplicial.Complex, Stats, error) {
	if k == nil {
		return nil, Stats{}, fmt.Errorf("Spine: %w", ErrNilComplex)
	}
	logger := e.cfg.logger
	// Resolve the level once; the loop only pays for traces when enabled.
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	// 1. Initial state. The clone shares k's arena; k stays untouched.
	L := k.Clone()
	cofaces := BuildCofaceMap(L)
	// Seed the candidate pairs from a full scan.
	admissible, err := PrincipalFaces(cofaces, L)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("Spine: %w", err)
	}
	stats := Stats{Initial: L.Len()}
	if debug {
		logger.Debug("spine: start", "size", stats.Initial, "admissible", admissible.Len())
	}

	// 2. Collapse loop.
	for !admissible.IsEmpty() {
		// a) Smallest principal ID first keeps runs reproducible.
		pair, _ := admissible.First()
		s, t := pair.Principal, pair.Free

		// b) Drop the pair from L; closure holds because t had s as its only coface.
		L.RemoveIDWithoutValidation(s)
		L.RemoveIDWithoutValidation(t)
		admissible.Delete(s)
		// c) Repair the incidence of every face below s and t.
		cofaces.detach(s, t)

		// d) Only faces of s and t can have gained a free face.
		hits, err := rescanLocal(cofaces, admissible, s, t)
		if err != nil {
			return nil, stats, fmt.Errorf("Spine: step %d: %w", stats.Collapses, err)
		}

		// e) Nothing found locally: fall back to a full scan.
		rescanned := false
		if hits == 0 {
			admissible, err = PrincipalFaces(cofaces, L)
			if err != nil {
				return nil, stats, fmt.Errorf("Spine: step %d: %w", stats.Collapses, err)
			}
			rescanned = true
			stats.GlobalRescans++
		}

		// Optional consistency checks (WithIncidenceCheck).
		if e.cfg.checkIncidence {
			if err := cofaces.verifyDetached(s, t); err != nil {
				return nil, stats, fmt.Errorf("Spine: step %d: %w", stats.Collapses, err)
			}
			if err := L.Validate(); err != nil {
				return nil, stats, fmt.Errorf("Spine: step %d: %v: %w", stats.Collapses, err, ErrDanglingCoface)
			}
		}

		// Removed simplices stay readable through the shared arena.
		step := Step{
			Index:     stats.Collapses,
			Principal: L.At(s),
			Free:      L.At(t),
			LocalHits: hits,
			Rescanned: rescanned,
			Remaining: L.Len(),
		}
		stats.Collapses++
		stats.LocalHits += hits

		if debug {
			logger.Debug("spine: collapse",
				"step", step.Index,
				"principal", step.Principal.String(),
				"free", step.Free.String(),
				"local", hits,
				"rescan", rescanned,
				"remaining", step.Remaining,
			)
		}
		if e.cfg.onCollapse != nil {
			if err := e.cfg.onCollapse(step); err != nil {
				return nil, stats, fmt.Errorf("Spine: step %d: %w", step.Index, err)
			}
		}
	}

	// 3. Terminal state.
	stats.Final = L.Len()
	if debug {
		logger.Debug("spine: done",
			"size", stats.Final,
			"collapses", stats.Collapses,
			"rescans", stats.GlobalRescans,
		)
	}

	return L, stats, nil
}

// rescanLocal re-derives free faces around the removed pair (s, t): every
// boundary face of s except t, then every boundary face of t. It returns the
// number of pairs newly inserted into admissible.
func rescanLocal(m *CofaceMap, admissible *AdmissibleMap, s, t simplicial.ID) (int, error) {
	hits := 0
	// check inserts sigma's free face if it has exactly one.
	check := func(sigma simplicial.ID) error {
		face, ok, err := FreeFace(m, sigma)
		if err != nil {
			return err
		}
		if ok && admissible.Insert(sigma, face) {
			hits++
		}
		return nil
	}

	for _, sigma := range m.complex.FaceIDs(s) {
		// t was removed along with s.
		if sigma == t {
			continue
		}
		if err := check(sigma); err != nil {
			return hits, err
		}
	}
	// t itself is gone, but its faces lost a coface too.
	for _, sigma := range m.complex.FaceIDs(t) {
		if err := check(sigma); err != nil {
			return hits, err
		}
	}

	return hits, nil
}
