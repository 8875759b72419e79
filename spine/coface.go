// SPDX-License-Identifier: MIT
// Package: lvtopo/spine
//
// coface.go - CofaceMap construction, queries and repair after removal.
//
// Invariants:
//   - Every simplex present in the complex at build time has an entry, even
//     an empty one.
//   - After detach(s, t) no entry references s or t, and neither has an entry.

package spine

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// CofaceMap maps each simplex ID to the IDs of the simplices that contain it
// as a boundary face. It is kept beside the complex rather than inside the
// simplices, keyed by arena ID.
type CofaceMap struct {
	complex *simplicial.Complex
	sets    map[simplicial.ID]*roaring.Bitmap
}

// BuildCofaceMap derives the coface map of k.
//
// For each present simplex s (complex order): ensure s has an entry, then
// add s to the entry of each of its boundary faces. The result is complete
// regardless of traversal order.
//
// The map keeps a reference to k to enumerate boundary faces; later removals
// from k must be mirrored through the engine.
// Complexity: O(n·k) time, O(n·k) space.
func BuildCofaceMap(k *simplicial.Complex) *CofaceMap {
	m := &CofaceMap{
		complex: k,
		sets:    make(map[simplicial.ID]*roaring.Bitmap, k.Len()),
	}
	k.Each(func(id simplicial.ID, _ simplex.Simplex) bool {
		m.entry(id)
		for _, f := range k.FaceIDs(id) {
			m.entry(f).Add(id)
		}
		return true
	})

	return m
}

// entry returns the coface set of id, creating an empty one if needed.
func (m *CofaceMap) entry(id simplicial.ID) *roaring.Bitmap {
	set, ok := m.sets[id]
	if !ok {
		set = roaring.New()
		m.sets[id] = set
	}

	return set
}

// lookup returns the coface set of id or ErrUnknownSimplex.
func (m *CofaceMap) lookup(method string, id simplicial.ID) (*roaring.Bitmap, error) {
	set, ok := m.sets[id]
	if !ok {
		return nil, fmt.Errorf("%s(%s): %w", method, m.describe(id), ErrUnknownSimplex)
	}

	return set, nil
}

// describe renders id for error messages without trusting it to be in range.
func (m *CofaceMap) describe(id simplicial.ID) string {
	if int(id) < m.complex.Capacity() {
		return m.complex.At(id).String()
	}

	return fmt.Sprintf("#%d", id)
}

// Complex returns the complex the map was built over.
func (m *CofaceMap) Complex() *simplicial.Complex { return m.complex }

// Len returns the number of entries.
func (m *CofaceMap) Len() int { return len(m.sets) }

// Has reports whether id has an entry.
func (m *CofaceMap) Has(id simplicial.ID) bool {
	_, ok := m.sets[id]

	return ok
}

// Cofaces returns the coface IDs of id in ascending order.
// Returns ErrUnknownSimplex if id has no entry.
func (m *CofaceMap) Cofaces(id simplicial.ID) ([]simplicial.ID, error) {
	set, err := m.lookup("Cofaces", id)
	if err != nil {
		return nil, err
	}

	return set.ToArray(), nil
}

// References reports whether any entry lists id as a coface. O(n).
func (m *CofaceMap) References(id simplicial.ID) bool {
	for _, set := range m.sets {
		if set.Contains(id) {
			return true
		}
	}

	return false
}

// detach repairs the map after the pair (s, t) was removed from the complex:
// s and t are dropped from the coface sets of their boundary faces, then
// their own entries are deleted.
func (m *CofaceMap) detach(s, t simplicial.ID) {
	for _, removed := range [2]simplicial.ID{s, t} {
		for _, f := range m.complex.FaceIDs(removed) {
			if set, ok := m.sets[f]; ok {
				set.Remove(s)
				set.Remove(t)
			}
		}
	}
	delete(m.sets, s)
	delete(m.sets, t)
}

// verifyDetached returns ErrDanglingCoface if s or t is still referenced.
func (m *CofaceMap) verifyDetached(s, t simplicial.ID) error {
	for _, removed := range [2]simplicial.ID{s, t} {
		if m.Has(removed) || m.References(removed) {
			return fmt.Errorf("%s: %w", m.describe(removed), ErrDanglingCoface)
		}
	}

	return nil
}
