package spine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// s is a short fixture constructor.
func s(vs ...simplex.Vertex) simplex.Simplex { return simplex.MustNew(vs...) }

// filledTriangle is scenario A: the closure of {0,1,2}, seven simplices.
func filledTriangle(t testing.TB) *simplicial.Complex {
	t.Helper()
	k, err := simplicial.New(
		s(0, 1, 2),
		s(0, 1), s(0, 2), s(1, 2),
		s(0), s(1), s(2),
	)
	require.NoError(t, err)

	return k
}

// emptyTriangle is scenario B: the 3-cycle without its 2-simplex.
func emptyTriangle(t testing.TB) *simplicial.Complex {
	t.Helper()
	k, err := simplicial.New(
		s(0, 1), s(0, 2), s(1, 2),
		s(0), s(1), s(2),
	)
	require.NoError(t, err)

	return k
}

// build runs builder.BuildComplex and fails the test on error.
func build(t testing.TB, opts []builder.BuilderOption, cons ...builder.Constructor) *simplicial.Complex {
	t.Helper()
	k, err := builder.BuildComplex(opts, cons...)
	require.NoError(t, err)

	return k
}

// id resolves a simplex of k to its ID.
func id(t testing.TB, k *simplicial.Complex, sx simplex.Simplex) simplicial.ID {
	t.Helper()
	got, ok := k.ID(sx)
	require.True(t, ok, "missing %v", sx)

	return got
}
