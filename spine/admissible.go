// SPDX-License-Identifier: MIT
// Package: lvtopo/spine
//
// admissible.go - principal / free-face detection and the AdmissibleMap.
//
// Determinism:
//   - FreeFace returns the first qualifying face in simplex.Boundary order,
//     never a value-sorted choice.
//   - AdmissibleMap.First returns the pair with the smallest principal ID.

package spine

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// IsPrincipal reports whether id has no coface.
// Returns ErrUnknownSimplex if id has no entry in m.
func IsPrincipal(m *CofaceMap, id simplicial.ID) (bool, error) {
	set, err := m.lookup("IsPrincipal", id)
	if err != nil {
		return false, err
	}

	return set.IsEmpty(), nil
}

// FreeFace returns the first boundary face of id whose coface set is exactly
// {id}. ok is false when id is not principal or no such face exists (a
// 0-simplex never has one).
// Returns ErrUnknownSimplex if id or one of its faces has no entry.
// Complexity: O(k) set lookups.
func FreeFace(m *CofaceMap, id simplicial.ID) (face simplicial.ID, ok bool, err error) {
	principal, err := IsPrincipal(m, id)
	if err != nil || !principal {
		return 0, false, err
	}
	for _, f := range m.complex.FaceIDs(id) {
		set, err := m.lookup("FreeFace", f)
		if err != nil {
			return 0, false, err
		}
		if set.GetCardinality() == 1 && set.Contains(id) {
			return f, true, nil
		}
	}

	return 0, false, nil
}

// PrincipalFaces computes FreeFace for every present simplex of k and
// collects the principal → free-face pairs that exist.
// Complexity: O(n·k).
func PrincipalFaces(m *CofaceMap, k *simplicial.Complex) (*AdmissibleMap, error) {
	out := NewAdmissibleMap()
	var err error
	k.Each(func(id simplicial.ID, _ simplex.Simplex) bool {
		face, ok, ferr := FreeFace(m, id)
		if ferr != nil {
			err = fmt.Errorf("PrincipalFaces: %w", ferr)
			return false
		}
		if ok {
			out.Insert(id, face)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AdmissibleMap maps principal simplices to one chosen free face.
// Keys are additionally kept in a bitmap so that the smallest principal ID
// can be selected in O(1).
type AdmissibleMap struct {
	free map[simplicial.ID]simplicial.ID
	keys *roaring.Bitmap
}

// NewAdmissibleMap returns an empty map.
func NewAdmissibleMap() *AdmissibleMap {
	return &AdmissibleMap{
		free: make(map[simplicial.ID]simplicial.ID),
		keys: roaring.New(),
	}
}

// Len returns the number of pairs.
func (a *AdmissibleMap) Len() int { return len(a.free) }

// IsEmpty reports whether no pair is recorded.
func (a *AdmissibleMap) IsEmpty() bool { return len(a.free) == 0 }

// Insert records principal → face unless principal already has a pairing.
// It reports whether the pair was added.
func (a *AdmissibleMap) Insert(principal, face simplicial.ID) bool {
	if _, exists := a.free[principal]; exists {
		return false
	}
	a.free[principal] = face
	a.keys.Add(principal)

	return true
}

// Get returns the free face paired with principal.
func (a *AdmissibleMap) Get(principal simplicial.ID) (simplicial.ID, bool) {
	face, ok := a.free[principal]

	return face, ok
}

// Delete drops the pairing of principal, if any.
func (a *AdmissibleMap) Delete(principal simplicial.ID) {
	delete(a.free, principal)
	a.keys.Remove(principal)
}

// First returns the pair with the smallest principal ID.
func (a *AdmissibleMap) First() (Pair, bool) {
	if a.keys.IsEmpty() {
		return Pair{}, false
	}
	p := a.keys.Minimum()

	return Pair{Principal: p, Free: a.free[p]}, true
}

// Pairs returns every pair ordered by principal ID.
func (a *AdmissibleMap) Pairs() []Pair {
	out := make([]Pair, 0, len(a.free))
	it := a.keys.Iterator()
	for it.HasNext() {
		p := it.Next()
		out = append(out, Pair{Principal: p, Free: a.free[p]})
	}

	return out
}
