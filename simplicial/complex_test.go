package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// s is a short fixture constructor.
func s(vs ...simplex.Vertex) simplex.Simplex { return simplex.MustNew(vs...) }

// filledTriangle returns the 7-simplex closure of {0,1,2}.
func filledTriangle(t *testing.T) *simplicial.Complex {
	t.Helper()
	k, err := simplicial.New(
		s(0, 1, 2),
		s(0, 1), s(0, 2), s(1, 2),
		s(0), s(1), s(2),
	)
	require.NoError(t, err)

	return k
}

// TestNew_OrderAndCounts verifies sorting, de-duplication and dimension ranges.
func TestNew_OrderAndCounts(t *testing.T) {
	k, err := simplicial.New(s(1, 2), s(0), s(2), s(1), s(0, 1), s(0, 1), s(0, 2), s(0, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, 7, k.Len())
	assert.Equal(t, 2, k.Dimension())
	assert.Equal(t, "[{0} {1} {2} {0,1} {0,2} {1,2} {0,1,2}]", k.String())
	assert.Equal(t, []simplex.Simplex{s(0, 1), s(0, 2), s(1, 2)}, k.Range(1))
	assert.Len(t, k.RangeIDs(0), 3)
	assert.Nil(t, k.RangeIDs(3))
	assert.Nil(t, k.RangeIDs(-1))
}

// TestNew_NotClosed ensures a missing face is reported.
func TestNew_NotClosed(t *testing.T) {
	_, err := simplicial.New(s(0, 1), s(0))
	assert.ErrorIs(t, err, simplicial.ErrNotClosed)
	assert.Contains(t, err.Error(), "{1}")
}

// TestNew_Empty covers the empty complex.
func TestNew_Empty(t *testing.T) {
	k, err := simplicial.New()
	require.NoError(t, err)
	assert.True(t, k.IsEmpty())
	assert.Equal(t, -1, k.Dimension())
	assert.Equal(t, "[]", k.String())
	assert.NoError(t, k.Validate())
}

// TestClosure expands maximal simplices into a closed complex.
func TestClosure(t *testing.T) {
	k := simplicial.Closure(s(0, 1, 2, 3), s(3, 4))
	assert.Equal(t, 15+2, k.Len()) // tetrahedron closure + edge {3,4} + vertex {4}
	assert.True(t, k.Contains(s(3, 4)))
	assert.True(t, k.Contains(s(4)))
	assert.NoError(t, k.Validate())
}

// TestFaceIDs verifies boundary IDs follow simplex.Boundary order.
func TestFaceIDs(t *testing.T) {
	k := filledTriangle(t)
	id, ok := k.ID(s(0, 1, 2))
	require.True(t, ok)

	faces := k.FaceIDs(id)
	require.Len(t, faces, 3)
	for i, f := range s(0, 1, 2).Boundary() {
		assert.True(t, k.At(faces[i]).Equal(f))
	}
	vid, _ := k.ID(s(0))
	assert.Empty(t, k.FaceIDs(vid))
}

// TestClone_Independent checks that clones do not share removals.
func TestClone_Independent(t *testing.T) {
	k := filledTriangle(t)
	c := k.Clone()

	assert.True(t, c.RemoveWithoutValidation(s(0, 1, 2)))
	assert.False(t, c.RemoveWithoutValidation(s(0, 1, 2)))
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, 7, k.Len())
	assert.True(t, k.Contains(s(0, 1, 2)))
	assert.False(t, k.Equal(c))
	assert.True(t, k.Equal(k.Clone()))
}

// TestRemoveWithoutValidation allows breaking closure; Validate detects it.
func TestRemoveWithoutValidation(t *testing.T) {
	k := filledTriangle(t)
	require.True(t, k.RemoveWithoutValidation(s(0)))
	assert.False(t, k.Contains(s(0)))
	assert.ErrorIs(t, k.Validate(), simplicial.ErrNotClosed)

	id, _ := k.ID(s(1))
	assert.True(t, k.RemoveIDWithoutValidation(id))
	assert.False(t, k.RemoveIDWithoutValidation(id))
	assert.False(t, k.Alive(id))
	// Removed IDs still resolve to their simplex.
	assert.True(t, k.At(id).Equal(s(1)))
}

// TestRemove_Validated enforces the no-coface rule.
func TestRemove_Validated(t *testing.T) {
	k := filledTriangle(t)
	assert.ErrorIs(t, k.Remove(s(0, 1)), simplicial.ErrHasCofaces)
	assert.ErrorIs(t, k.Remove(s(5)), simplicial.ErrSimplexNotFound)

	require.NoError(t, k.Remove(s(0, 1, 2)))
	require.NoError(t, k.Remove(s(0, 1)))
	assert.Equal(t, 5, k.Len())
	assert.NoError(t, k.Validate())
}

// TestEqual_DifferentArenas compares complexes built independently.
func TestEqual_DifferentArenas(t *testing.T) {
	a := filledTriangle(t)
	b := simplicial.Closure(s(0, 1, 2))
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Remove(s(0, 1, 2)))
	assert.False(t, a.Equal(b))
}

// TestEach_StopsEarly checks the iteration callback contract.
func TestEach_StopsEarly(t *testing.T) {
	k := filledTriangle(t)
	var seen []simplex.Simplex
	k.Each(func(_ simplicial.ID, sx simplex.Simplex) bool {
		seen = append(seen, sx)
		return len(seen) < 2
	})
	assert.Equal(t, []simplex.Simplex{s(0), s(1)}, seen)
	assert.Len(t, k.IDs(), 7)
	assert.Len(t, k.Simplices(), 7)
}

// TestBuilder covers Add, AddClosure and Build.
func TestBuilder(t *testing.T) {
	b := simplicial.NewBuilder()
	b.Add(s(0))
	b.Add(s(0))
	b.Add(simplex.Simplex{})
	assert.Equal(t, 1, b.Len())

	b.Add(s(0, 1))
	_, err := b.Build()
	assert.ErrorIs(t, err, simplicial.ErrNotClosed)

	b.AddClosure(s(0, 1, 2))
	b.AddClosure(s(0, 1, 2))
	assert.Equal(t, 7, b.Len())
	k, err := b.Build()
	require.NoError(t, err)
	assert.True(t, k.Equal(filledTriangle(t)))
}
