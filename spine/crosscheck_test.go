package spine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplicial"
	"github.com/katalvlaran/lvtopo/spine"
)

// reducers lists both implementations behind the shared capability.
func reducers() map[string]spine.Reducer {
	return map[string]spine.Reducer{
		spine.AlgorithmIncremental: spine.NewIncremental(spine.WithIncidenceCheck()),
		spine.AlgorithmReference:   spine.NewReference(spine.WithIncidenceCheck()),
	}
}

// assertHomotopyInvariants compares Betti numbers and Euler characteristic.
func assertHomotopyInvariants(t *testing.T, k, out *simplicial.Complex) {
	t.Helper()
	require.NoError(t, out.Validate())
	assert.LessOrEqual(t, out.Len(), k.Len())
	assert.Equal(t, homology.EulerCharacteristic(k), homology.EulerCharacteristic(out))

	want, got := homology.BettiNumbers(k), homology.BettiNumbers(out)
	// A spine may drop top dimensions; those Betti numbers must be zero.
	for d := range want {
		g := 0
		if d < len(got) {
			g = got[d]
		}
		assert.Equal(t, want[d], g, "β_%d", d)
	}
}

// TestCrossCheck_KnownSpines runs both reducers on fixtures whose spine size
// does not depend on the collapse order.
func TestCrossCheck_KnownSpines(t *testing.T) {
	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantSize  int
		unchanged bool // spine equals the input
	}{
		{name: "Simplex(2)", ctor: builder.Simplex(2), wantSize: 1},
		{name: "Simplex(3)", ctor: builder.Simplex(3), wantSize: 1},
		{name: "Path(6)", ctor: builder.Path(6), wantSize: 1},
		{name: "Cone(7)", ctor: builder.Cone(7), wantSize: 1},
		{name: "Grid(3,3)", ctor: builder.Grid(3, 3), wantSize: 1},
		{name: "Grid(5,4)", ctor: builder.Grid(5, 4), wantSize: 1},
		{name: "Cycle(6)", ctor: builder.Cycle(6), unchanged: true},
		{name: "Sphere(1)", ctor: builder.Sphere(1), unchanged: true},
		{name: "Sphere(2)", ctor: builder.Sphere(2), unchanged: true},
		{name: "Sphere(3)", ctor: builder.Sphere(3), unchanged: true},
		{name: "Torus(3,3)", ctor: builder.Torus(3, 3), unchanged: true},
		{name: "Torus(4,3)", ctor: builder.Torus(4, 3), unchanged: true},
	}

	for _, tc := range tests {
		k := build(t, nil, tc.ctor)
		sizes := make(map[string]int)
		for name, r := range reducers() {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				out, err := r.Reduce(k)
				require.NoError(t, err)
				assertHomotopyInvariants(t, k, out)
				if tc.unchanged {
					assert.True(t, out.Equal(k))
				} else {
					assert.Equal(t, tc.wantSize, out.Len())
				}
				sizes[name] = out.Len()
			})
		}
		assert.Equal(t, sizes[spine.AlgorithmIncremental], sizes[spine.AlgorithmReference], tc.name)
	}
}

// TestCrossCheck_Graphs: collapsing a graph strips trees down to its core,
// so both reducers agree on the size.
func TestCrossCheck_Graphs(t *testing.T) {
	// A 5-cycle with a 3-edge tail, plus a separate path.
	k := build(t, nil,
		builder.Cycle(5),
		builder.Offset(4, builder.Path(4)),
		builder.Offset(20, builder.Path(3)),
	)
	require.Equal(t, 2, homology.Components(k))

	inc, err := spine.Spine(k)
	require.NoError(t, err)
	ref, err := spine.ReferenceSpine(k)
	require.NoError(t, err)

	assert.Equal(t, inc.Len(), ref.Len())
	assert.Equal(t, 5+5+1, inc.Len(), "cycle plus one isolated vertex")
	assertHomotopyInvariants(t, k, inc)
	assertHomotopyInvariants(t, k, ref)
}

// TestCrossCheck_Homotopy compares invariants on order-dependent fixtures.
func TestCrossCheck_Homotopy(t *testing.T) {
	var fixtures []struct {
		name string
		k    *simplicial.Complex
	}
	add := func(name string, k *simplicial.Complex) {
		fixtures = append(fixtures, struct {
			name string
			k    *simplicial.Complex
		}{name, k})
	}

	add("Annulus(5)", build(t, nil, builder.Annulus(5)))
	add("Torus+Disk", build(t, nil, builder.Torus(3, 3), builder.Offset(100, builder.Grid(3, 3))))
	add("Sphere+Tail", build(t, nil, builder.Sphere(2), builder.Offset(3, builder.Path(4))))
	for seed := int64(1); seed <= 6; seed++ {
		add(fmt.Sprintf("RandomFlag(seed=%d)", seed), build(t,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxDim(3)},
			builder.RandomFlag(11, 0.5),
		))
	}

	for _, fx := range fixtures {
		for name, r := range reducers() {
			t.Run(fx.name+"/"+name, func(t *testing.T) {
				out, err := r.Reduce(fx.k)
				require.NoError(t, err)
				assertHomotopyInvariants(t, fx.k, out)
			})
		}
	}
}
