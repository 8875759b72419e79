// SPDX-License-Identifier: MIT
// Package: lvtopo/simplicial
//
// complex.go - construction, queries and removal.
//
// Determinism:
//   - IDs(), Simplices() and Range() enumerate in ascending ID order, which is
//     simplex.Compare order: by dimension, then lexicographic.

package simplicial

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvtopo/simplex"
)

// New builds a complex from the given simplices.
//
// Implementation:
//   - Stage 1: Drop zero simplices and duplicates, sort by simplex.Compare.
//   - Stage 2: Resolve every boundary face to its ID.
//   - Stage 3: Mark every ID alive.
//
// Returns ErrNotClosed (wrapped with the offending pair) if some face is missing.
// Complexity: O(n log n + Σ|∂s|).
func New(simplices ...simplex.Simplex) (*Complex, error) {
	ar, err := newArena(simplices)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return newComplex(ar), nil
}

// Closure builds the smallest complex containing every given simplex and all
// of its faces. It never fails.
// Complexity: O(Σ 2^|s|) for the face expansion.
func Closure(maximal ...simplex.Simplex) *Complex {
	b := NewBuilder()
	for _, s := range maximal {
		b.AddClosure(s)
	}
	// The face expansion is closed by construction.
	ar, _ := newArena(b.list())

	return newComplex(ar)
}

func newComplex(ar *arena) *Complex {
	alive := roaring.New()
	alive.AddRange(0, uint64(len(ar.simplices)))

	return &Complex{arena: ar, alive: alive}
}

// newArena sorts, de-duplicates and indexes simplices.
func newArena(in []simplex.Simplex) (*arena, error) {
	// 1. Normalize input order and drop placeholders.
	list := make([]simplex.Simplex, 0, len(in))
	for _, s := range in {
		if !s.IsZero() {
			list = append(list, s)
		}
	}
	slices.SortFunc(list, simplex.Simplex.Compare)
	list = slices.CompactFunc(list, simplex.Simplex.Equal)

	// 2. Index by key and record dimension boundaries.
	ar := &arena{
		simplices: list,
		index:     make(map[string]ID, len(list)),
		faces:     make([][]ID, len(list)),
	}
	maxDim := -1
	if len(list) > 0 {
		maxDim = list[len(list)-1].Dim()
	}
	ar.dimStart = make([]ID, maxDim+2)
	d := 0
	for i, s := range list {
		ar.index[s.Key()] = ID(i)
		for d <= s.Dim() {
			ar.dimStart[d] = ID(i)
			d++
		}
	}
	for ; d < len(ar.dimStart); d++ {
		ar.dimStart[d] = ID(len(list))
	}

	// 3. Resolve boundary IDs; a missing face means the input is not closed.
	for i, s := range list {
		boundary := s.Boundary()
		if len(boundary) == 0 {
			continue
		}
		ids := make([]ID, len(boundary))
		for j, f := range boundary {
			id, ok := ar.index[f.Key()]
			if !ok {
				return nil, fmt.Errorf("face %v of %v: %w", f, s, ErrNotClosed)
			}
			ids[j] = id
		}
		ar.faces[i] = ids
	}

	return ar, nil
}

// Len returns the number of simplices currently in the complex.
func (k *Complex) Len() int { return int(k.alive.GetCardinality()) }

// Capacity returns the number of simplices in the shared arena, i.e. the
// exclusive upper bound of valid IDs (present or removed).
func (k *Complex) Capacity() int { return len(k.arena.simplices) }

// IsEmpty reports whether the complex has no simplices.
func (k *Complex) IsEmpty() bool { return k.alive.IsEmpty() }

// Dimension returns the largest dimension among present simplices, or -1
// for an empty complex.
func (k *Complex) Dimension() int {
	if k.alive.IsEmpty() {
		return -1
	}

	return k.arena.simplices[k.alive.Maximum()].Dim()
}

// ID returns the arena ID of s and whether s is present.
func (k *Complex) ID(s simplex.Simplex) (ID, bool) {
	id, ok := k.arena.index[s.Key()]
	if !ok || !k.alive.Contains(id) {
		return 0, false
	}

	return id, true
}

// Contains reports whether s is present in the complex.
func (k *Complex) Contains(s simplex.Simplex) bool {
	_, ok := k.ID(s)

	return ok
}

// Alive reports whether id refers to a simplex still present in the complex.
func (k *Complex) Alive(id ID) bool { return k.alive.Contains(id) }

// At returns the simplex stored under id. The id must come from this
// complex (or one sharing its arena); removed IDs still resolve.
func (k *Complex) At(id ID) simplex.Simplex { return k.arena.simplices[id] }

// FaceIDs returns the IDs of the boundary faces of id, in simplex.Boundary
// order. The returned slice is shared and must not be modified.
func (k *Complex) FaceIDs(id ID) []ID { return k.arena.faces[id] }

// IDs returns the IDs of all present simplices in ascending order.
func (k *Complex) IDs() []ID { return k.alive.ToArray() }

// Simplices returns all present simplices in complex order.
func (k *Complex) Simplices() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, k.Len())
	k.Each(func(_ ID, s simplex.Simplex) bool {
		out = append(out, s)
		return true
	})

	return out
}

// Each calls fn for every present simplex in complex order until fn returns false.
func (k *Complex) Each(fn func(id ID, s simplex.Simplex) bool) {
	it := k.alive.Iterator()
	for it.HasNext() {
		id := it.Next()
		if !fn(id, k.arena.simplices[id]) {
			return
		}
	}
}

// RangeIDs returns the IDs of present simplices of dimension dim, ascending.
// Out-of-range dimensions yield nil.
func (k *Complex) RangeIDs(dim int) []ID {
	if dim < 0 || dim+1 >= len(k.arena.dimStart) {
		return nil
	}
	lo, hi := k.arena.dimStart[dim], k.arena.dimStart[dim+1]

	var out []ID
	it := k.alive.Iterator()
	it.AdvanceIfNeeded(lo)
	for it.HasNext() {
		id := it.Next()
		if id >= hi {
			break
		}
		out = append(out, id)
	}

	return out
}

// Range returns the present simplices of dimension dim in complex order.
func (k *Complex) Range(dim int) []simplex.Simplex {
	ids := k.RangeIDs(dim)
	out := make([]simplex.Simplex, len(ids))
	for i, id := range ids {
		out[i] = k.arena.simplices[id]
	}

	return out
}

// Clone returns an independent copy sharing the immutable arena. Removals
// on the clone do not affect k and vice versa.
func (k *Complex) Clone() *Complex {
	return &Complex{arena: k.arena, alive: k.alive.Clone()}
}

// RemoveWithoutValidation deletes s without checking that the result is
// still a simplicial complex. Callers must only remove simplices they know
// to be collapsible. It reports whether s was present.
func (k *Complex) RemoveWithoutValidation(s simplex.Simplex) bool {
	id, ok := k.ID(s)
	if !ok {
		return false
	}
	k.alive.Remove(id)

	return true
}

// RemoveIDWithoutValidation is RemoveWithoutValidation addressed by ID.
func (k *Complex) RemoveIDWithoutValidation(id ID) bool {
	return k.alive.CheckedRemove(id)
}

// Remove deletes s after checking that it is not a face of any other
// present simplex, so the result stays closed.
//
// Errors:
//   - ErrSimplexNotFound if s is absent.
//   - ErrHasCofaces if some present simplex of dimension dim(s)+1 contains s.
func (k *Complex) Remove(s simplex.Simplex) error {
	id, ok := k.ID(s)
	if !ok {
		return fmt.Errorf("Remove(%v): %w", s, ErrSimplexNotFound)
	}
	for _, c := range k.RangeIDs(s.Dim() + 1) {
		if s.IsFaceOf(k.arena.simplices[c]) {
			return fmt.Errorf("Remove(%v): coface %v: %w", s, k.arena.simplices[c], ErrHasCofaces)
		}
	}
	k.alive.Remove(id)

	return nil
}

// Validate checks that every face of every present simplex is present.
func (k *Complex) Validate() error {
	var err error
	k.Each(func(id ID, s simplex.Simplex) bool {
		for _, f := range k.arena.faces[id] {
			if !k.alive.Contains(f) {
				err = fmt.Errorf("Validate: face %v of %v: %w", k.arena.simplices[f], s, ErrNotClosed)
				return false
			}
		}
		return true
	})

	return err
}

// Equal reports whether k and o contain exactly the same simplices.
func (k *Complex) Equal(o *Complex) bool {
	if k.arena == o.arena {
		return k.alive.Equals(o.alive)
	}
	if k.Len() != o.Len() {
		return false
	}

	return slices.EqualFunc(k.Simplices(), o.Simplices(), simplex.Simplex.Equal)
}

// String renders the complex as "[{0} {1} {0,1}]" in complex order.
func (k *Complex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	k.Each(func(_ ID, s simplex.Simplex) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(s.String())
		return true
	})
	b.WriteByte(']')

	return b.String()
}
