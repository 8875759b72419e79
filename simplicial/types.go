// SPDX-License-Identifier: MIT
// Package: lvtopo/simplicial
//
// types.go - Complex, ID and sentinel errors.

package simplicial

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvtopo/simplex"
)

// Sentinel errors for complex construction and mutation.
var (
	// ErrNotClosed indicates that a simplex's face is missing from the complex.
	ErrNotClosed = errors.New("simplicial: complex is not closed under faces")

	// ErrSimplexNotFound indicates an operation referenced a simplex that is
	// not present in the complex.
	ErrSimplexNotFound = errors.New("simplicial: simplex not found")

	// ErrHasCofaces indicates a validated removal of a simplex that is still
	// a proper face of another simplex in the complex.
	ErrHasCofaces = errors.New("simplicial: simplex still has cofaces")
)

// ID is the arena position of a simplex inside a Complex and its clones.
// IDs are ordered like simplex.Compare.
type ID = uint32

// arena is the immutable simplex store shared between a complex and its clones.
type arena struct {
	simplices []simplex.Simplex // sorted by simplex.Compare
	index     map[string]ID     // simplex.Key() -> ID
	faces     [][]ID            // boundary IDs per simplex, simplex.Boundary order

	// dimStart[d] is the first ID of dimension d; dimStart[len-1] == len(simplices).
	dimStart []ID
}

// Complex is a finite simplicial complex.
//
// The zero value is not usable; construct with New, Closure or Builder.
type Complex struct {
	arena *arena
	alive *roaring.Bitmap
}
