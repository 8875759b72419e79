// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// simplex.go - construction, queries, ordering and boundary enumeration.
//
// Determinism:
//   - Boundary() always enumerates faces in "drop vertex i, i = 0..dim" order.
//   - Compare() is a strict total order; equal simplices compare as 0.

package simplex

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// keyWidth is the number of bytes one vertex occupies inside Key().
const keyWidth = 4

// New builds a Simplex from the given vertices. Duplicates are dropped and
// the result is sorted ascending.
// Returns ErrEmptySimplex if no vertices are given.
// Complexity: O(k log k).
func New(vertices ...Vertex) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, fmt.Errorf("New: %w", ErrEmptySimplex)
	}
	vs := slices.Clone(vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)

	return Simplex{vertices: vs}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and tests.
func MustNew(vertices ...Vertex) Simplex {
	s, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dim returns the dimension (|vertices| - 1). The zero Simplex reports -1.
func (s Simplex) Dim() int { return len(s.vertices) - 1 }

// Size returns the number of vertices.
func (s Simplex) Size() int { return len(s.vertices) }

// IsZero reports whether s is the zero "no simplex" placeholder.
func (s Simplex) IsZero() bool { return len(s.vertices) == 0 }

// Vertices returns a copy of the sorted vertex list.
func (s Simplex) Vertices() []Vertex { return slices.Clone(s.vertices) }

// Vertex returns the i-th smallest vertex. Panics if i is out of range,
// like a slice index.
func (s Simplex) Vertex(i int) Vertex { return s.vertices[i] }

// Contains reports whether v is a vertex of s. O(log k).
func (s Simplex) Contains(v Vertex) bool {
	_, found := slices.BinarySearch(s.vertices, v)

	return found
}

// IntersectionSize returns |s ∩ t| using a merge walk over both sorted
// vertex lists. O(|s| + |t|).
func (s Simplex) IntersectionSize(t Simplex) int {
	i, j, n := 0, 0, 0
	for i < len(s.vertices) && j < len(t.vertices) {
		switch {
		case s.vertices[i] < t.vertices[j]:
			i++
		case s.vertices[i] > t.vertices[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// IsFaceOf reports whether s is a face of t (s ⊆ t). Every simplex is a
// face of itself; use IsProperFaceOf to exclude equality.
func (s Simplex) IsFaceOf(t Simplex) bool {
	if s.IsZero() || len(s.vertices) > len(t.vertices) {
		return false
	}

	return s.IntersectionSize(t) == len(s.vertices)
}

// IsProperFaceOf reports whether s ⊊ t.
func (s Simplex) IsProperFaceOf(t Simplex) bool {
	return len(s.vertices) < len(t.vertices) && s.IsFaceOf(t)
}

// Boundary returns the faces of s one dimension lower.
//
// Enumeration order is fixed: the i-th face omits the i-th smallest vertex,
// for i = 0..Dim(). The first face therefore omits the smallest vertex.
// A 0-simplex has an empty boundary (nil).
//
// Complexity: O(k²) time and space for k = Size().
func (s Simplex) Boundary() []Simplex {
	k := len(s.vertices)
	if k <= 1 {
		return nil
	}
	faces := make([]Simplex, 0, k)
	for i := 0; i < k; i++ {
		vs := make([]Vertex, 0, k-1)
		vs = append(vs, s.vertices[:i]...)
		vs = append(vs, s.vertices[i+1:]...)
		faces = append(faces, Simplex{vertices: vs})
	}

	return faces
}

// Equal reports whether s and t have the same vertex set.
func (s Simplex) Equal(t Simplex) bool {
	return slices.Equal(s.vertices, t.vertices)
}

// Compare orders simplices by dimension first, then lexicographically by
// their sorted vertices. It returns -1, 0 or +1.
//
// Every proper face compares before its cofaces, so iterating a complex in
// this order visits faces first.
func (s Simplex) Compare(t Simplex) int {
	if len(s.vertices) != len(t.vertices) {
		if len(s.vertices) < len(t.vertices) {
			return -1
		}

		return 1
	}

	return slices.Compare(s.vertices, t.vertices)
}

// Key returns a compact string encoding of s, suitable as a map key.
// Two simplices have the same key iff they are Equal.
func (s Simplex) Key() string {
	buf := make([]byte, keyWidth*len(s.vertices))
	for i, v := range s.vertices {
		binary.BigEndian.PutUint32(buf[i*keyWidth:], v)
	}

	return string(buf)
}

// FromKey decodes a string produced by Key.
//
// Errors:
//   - ErrEmptySimplex for an empty key.
//   - ErrMalformedKey if the length is not a multiple of the vertex width or
//     the decoded vertices are not strictly ascending (permuted or repeated).
func FromKey(key string) (Simplex, error) {
	if len(key) == 0 {
		return Simplex{}, fmt.Errorf("FromKey: %w", ErrEmptySimplex)
	}
	if len(key)%keyWidth != 0 {
		return Simplex{}, fmt.Errorf("FromKey: length %d: %w", len(key), ErrMalformedKey)
	}
	vs := make([]Vertex, len(key)/keyWidth)
	for i := range vs {
		vs[i] = binary.BigEndian.Uint32([]byte(key[i*keyWidth : (i+1)*keyWidth]))
		// Keys carry the sorted, duplicate-free vertex list.
		if i > 0 && vs[i] <= vs[i-1] {
			return Simplex{}, fmt.Errorf("FromKey: vertex %d after %d: %w", vs[i], vs[i-1], ErrMalformedKey)
		}
	}

	return Simplex{vertices: vs}, nil
}

// String renders s as "{v0,v1,...}". The zero Simplex renders as "{}".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte('}')

	return b.String()
}
