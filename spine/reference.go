// SPDX-License-Identifier: MIT
// Package: lvtopo/spine
//
// reference.go - the stateless reference oracle.
//
// No incidence structure survives between iterations: every candidate pair
// is re-derived from pairwise intersection tests on the working complex.
// Cost is cubic in the complex size; use it on small inputs to validate
// Incremental.
//
// Search scope: free-face tests always run against the FULL working
// complex. Restricting them to the simplices that precede the current one
// in complex order would miss cofaces that sort later and accept faces that
// are not free.

package spine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// Reference is the brute-force reducer used as a correctness oracle.
type Reference struct {
	cfg config
}

// NewReference returns a Reference reducer configured by opts.
func NewReference(opts ...Option) *Reference {
	return &Reference{cfg: newConfig(opts...)}
}

// ReferenceSpine reduces k with a Reference reducer configured by opts.
func ReferenceSpine(k *simplicial.Complex, opts ...Option) (*simplicial.Complex, error) {
	return NewReference(opts...).Reduce(k)
}

// Reduce implements Reducer.
func (r *Reference) Reduce(k *simplicial.Complex) (*simplicial.Complex, error) {
	out, _, err := r.Run(k)

	return out, err
}

// Run reduces k, recomputing all admissible pairs from scratch after every
// collapse, and reports run statistics. The same selection rule as
// Incremental applies (smallest principal ID first).
func (r *Reference) Run(k *simplicial.Complex) (*simplicial.Complex, Stats, error) {
	if k == nil {
		return nil, Stats{}, fmt.Errorf("ReferenceSpine: %w", ErrNilComplex)
	}
	logger := r.cfg.logger
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	L := k.Clone()
	stats := Stats{Initial: L.Len()}
	admissible := directPrincipalFaces(L)

	for !admissible.IsEmpty() {
		pair, _ := admissible.First()
		L.RemoveIDWithoutValidation(pair.Principal)
		L.RemoveIDWithoutValidation(pair.Free)

		if r.cfg.checkIncidence {
			if err := L.Validate(); err != nil {
				return nil, stats, fmt.Errorf("ReferenceSpine: step %d: %v: %w", stats.Collapses, err, ErrDanglingCoface)
			}
		}

		admissible = directPrincipalFaces(L)
		stats.GlobalRescans++

		step := Step{
			Index:     stats.Collapses,
			Principal: L.At(pair.Principal),
			Free:      L.At(pair.Free),
			Rescanned: true,
			Remaining: L.Len(),
		}
		stats.Collapses++

		if debug {
			logger.Debug("spine: reference collapse",
				"step", step.Index,
				"principal", step.Principal.String(),
				"free", step.Free.String(),
				"remaining", step.Remaining,
			)
		}
		if r.cfg.onCollapse != nil {
			if err := r.cfg.onCollapse(step); err != nil {
				return nil, stats, fmt.Errorf("ReferenceSpine: step %d: %w", step.Index, err)
			}
		}
	}
	stats.Final = L.Len()

	return L, stats, nil
}

// directPrincipalFaces derives every principal → free-face pair of L by
// direct face tests: a simplex qualifies if no simplex one dimension up
// contains it, and its free face is the first boundary face (simplex.Boundary
// order) not contained in any other simplex of its own dimension.
func directPrincipalFaces(L *simplicial.Complex) *AdmissibleMap {
	out := NewAdmissibleMap()
	L.Each(func(id simplicial.ID, s simplex.Simplex) bool {
		if !isPrincipalDirect(L, s) {
			return true
		}
		peers := L.RangeIDs(s.Dim())
		for j, face := range s.Boundary() {
			if !containedInOther(L, face, id, peers) {
				out.Insert(id, L.FaceIDs(id)[j])
				break
			}
		}
		return true
	})

	return out
}

// containedInOther reports whether face lies in some simplex of peers other
// than self, using intersection sizes only.
func containedInOther(L *simplicial.Complex, face simplex.Simplex, self simplicial.ID, peers []simplicial.ID) bool {
	for _, u := range peers {
		if u == self {
			continue
		}
		if face.IntersectionSize(L.At(u)) == face.Size() {
			return true
		}
	}

	return false
}

// isPrincipalDirect reports whether no simplex one dimension up contains s.
// 0-simplices are never principal here: they cannot have a free face.
func isPrincipalDirect(L *simplicial.Complex, s simplex.Simplex) bool {
	if s.Dim() == 0 {
		return false
	}
	for _, u := range L.RangeIDs(s.Dim() + 1) {
		if s.IntersectionSize(L.At(u)) == s.Size() {
			return false
		}
	}

	return true
}
