// SPDX-License-Identifier: MIT
// Package: lvtopo/simplex
//
// types.go - Vertex, Simplex and sentinel errors.

package simplex

import "errors"

// ErrEmptySimplex indicates that a simplex was requested with no vertices.
var ErrEmptySimplex = errors.New("simplex: no vertices")

// ErrMalformedKey indicates a key that Key could not have produced: a length
// that is not a whole number of vertices, or vertices not strictly ascending.
var ErrMalformedKey = errors.New("simplex: malformed key")

// Vertex identifies a vertex of a simplicial complex.
type Vertex = uint32

// Simplex is an immutable, non-empty set of vertices.
//
// The zero value is not a valid simplex (Size() == 0, Dim() == -1); it is
// only ever produced as a "no simplex" placeholder and never stored in a
// complex.
type Simplex struct {
	// vertices is sorted ascending and free of duplicates; never mutated
	// after construction.
	vertices []Vertex
}
