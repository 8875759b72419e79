package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/simplex"
)

// TestNew_SortsAndDeduplicates verifies that New normalizes its input.
func TestNew_SortsAndDeduplicates(t *testing.T) {
	s, err := simplex.New(2, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []simplex.Vertex{0, 1, 2}, s.Vertices())
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, 3, s.Size())
}

// TestNew_Empty ensures that an empty vertex list is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := simplex.New()
	assert.ErrorIs(t, err, simplex.ErrEmptySimplex)
	assert.Panics(t, func() { simplex.MustNew() })
}

// TestVertices_ReturnsCopy checks that callers cannot mutate a Simplex.
func TestVertices_ReturnsCopy(t *testing.T) {
	s := simplex.MustNew(0, 1)
	vs := s.Vertices()
	vs[0] = 42
	assert.Equal(t, simplex.Vertex(0), s.Vertex(0))
}

// TestBoundary_Order verifies the fixed "drop vertex i" enumeration order.
func TestBoundary_Order(t *testing.T) {
	s := simplex.MustNew(0, 1, 2)
	faces := s.Boundary()
	require.Len(t, faces, 3)
	assert.Equal(t, "{1,2}", faces[0].String())
	assert.Equal(t, "{0,2}", faces[1].String())
	assert.Equal(t, "{0,1}", faces[2].String())

	edge := simplex.MustNew(3, 7)
	assert.Equal(t, []simplex.Simplex{simplex.MustNew(7), simplex.MustNew(3)}, edge.Boundary())

	assert.Empty(t, simplex.MustNew(5).Boundary())
}

// TestCompare_DimensionFirst checks the total order used by complexes.
func TestCompare_DimensionFirst(t *testing.T) {
	tests := []struct {
		name string
		a, b simplex.Simplex
		want int
	}{
		{"vertex before edge", simplex.MustNew(9), simplex.MustNew(0, 1), -1},
		{"lexicographic same dim", simplex.MustNew(0, 2), simplex.MustNew(1, 2), -1},
		{"lexicographic tail", simplex.MustNew(0, 1, 3), simplex.MustNew(0, 1, 2), 1},
		{"equal", simplex.MustNew(4, 5), simplex.MustNew(5, 4), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a))
		})
	}
}

// TestFaceRelations covers IsFaceOf, IsProperFaceOf and IntersectionSize.
func TestFaceRelations(t *testing.T) {
	tri := simplex.MustNew(0, 1, 2)
	edge := simplex.MustNew(0, 2)
	other := simplex.MustNew(2, 3)

	assert.True(t, edge.IsFaceOf(tri))
	assert.True(t, edge.IsProperFaceOf(tri))
	assert.True(t, tri.IsFaceOf(tri))
	assert.False(t, tri.IsProperFaceOf(tri))
	assert.False(t, other.IsFaceOf(tri))
	assert.False(t, simplex.Simplex{}.IsFaceOf(tri))

	assert.Equal(t, 2, edge.IntersectionSize(tri))
	assert.Equal(t, 1, other.IntersectionSize(tri))
	assert.True(t, tri.Contains(1))
	assert.False(t, tri.Contains(3))
}

// TestKey_RoundTrip verifies that keys identify simplices uniquely.
func TestKey_RoundTrip(t *testing.T) {
	a := simplex.MustNew(1, 256, 70000)
	b := simplex.MustNew(70000, 1, 256)
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), simplex.MustNew(1, 256).Key())

	back, err := simplex.FromKey(a.Key())
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	_, err = simplex.FromKey("")
	assert.ErrorIs(t, err, simplex.ErrEmptySimplex)
	_, err = simplex.FromKey("abc")
	assert.ErrorIs(t, err, simplex.ErrMalformedKey)
}

// TestFromKey_RejectsUnsorted refuses keys whose vertices are permuted or
// repeated, since every Simplex keeps its vertices strictly ascending.
func TestFromKey_RejectsUnsorted(t *testing.T) {
	one, two := simplex.MustNew(1).Key(), simplex.MustNew(2).Key()

	tests := []struct {
		name string
		key  string
	}{
		{name: "swapped", key: two + one},
		{name: "repeated", key: one + one},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := simplex.FromKey(tc.key)
			require.ErrorIs(t, err, simplex.ErrMalformedKey)
			assert.True(t, s.IsZero())
		})
	}

	back, err := simplex.FromKey(one + two)
	require.NoError(t, err)
	assert.True(t, back.Equal(simplex.MustNew(1, 2)))
}

// TestZeroSimplex documents the placeholder value.
func TestZeroSimplex(t *testing.T) {
	var z simplex.Simplex
	assert.True(t, z.IsZero())
	assert.Equal(t, -1, z.Dim())
	assert.Equal(t, "{}", z.String())
	assert.Nil(t, z.Boundary())
}
