package spine_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplicial"
	"github.com/katalvlaran/lvtopo/spine"
)

// TestSpine_ScenarioFilledTriangle: a filled triangle collapses to a point.
func TestSpine_ScenarioFilledTriangle(t *testing.T) {
	k := filledTriangle(t)

	out, stats, err := spine.NewIncremental(spine.WithIncidenceCheck()).Run(k)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 0, out.Dimension())
	assert.Equal(t, 7, stats.Initial)
	assert.Equal(t, 1, stats.Final)
	assert.Equal(t, 3, stats.Collapses)
	assert.Equal(t, 7, k.Len(), "input must not be mutated")
}

// TestSpine_ScenarioEmptyTriangle: a hollow triangle has no admissible pair.
func TestSpine_ScenarioEmptyTriangle(t *testing.T) {
	k := emptyTriangle(t)

	out, stats, err := spine.NewIncremental().Run(k)
	require.NoError(t, err)
	assert.True(t, out.Equal(k))
	assert.Equal(t, 6, out.Len())
	assert.Equal(t, 0, homology.EulerCharacteristic(out))
	assert.Zero(t, stats.Collapses)
	assert.Zero(t, stats.GlobalRescans)
}

// TestSpine_Idempotent: reducing a spine again changes nothing.
func TestSpine_Idempotent(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"Grid(4,5)":  builder.Grid(4, 5),
		"Annulus(6)": builder.Annulus(6),
		"Torus(3,4)": builder.Torus(3, 4),
	}
	for name, ctor := range fixtures {
		t.Run(name, func(t *testing.T) {
			once, err := spine.Spine(build(t, nil, ctor))
			require.NoError(t, err)
			twice, stats, err := spine.NewIncremental().Run(once)
			require.NoError(t, err)
			assert.True(t, twice.Equal(once))
			assert.Zero(t, stats.Collapses)
		})
	}
}

// TestSpine_StepsAndStats checks the hook stream against the totals.
func TestSpine_StepsAndStats(t *testing.T) {
	k := build(t, nil, builder.Grid(4, 4))

	var steps []spine.Step
	hook := func(st spine.Step) error {
		steps = append(steps, st)
		return nil
	}
	out, stats, err := spine.NewIncremental(spine.WithOnCollapse(hook), spine.WithIncidenceCheck()).Run(k)
	require.NoError(t, err)

	require.Len(t, steps, stats.Collapses)
	assert.Equal(t, stats.Initial-2*stats.Collapses, stats.Final)
	assert.Equal(t, out.Len(), stats.Final)
	assert.Equal(t, 1, stats.Final)

	localHits := 0
	rescans := 0
	for i, st := range steps {
		assert.Equal(t, i, st.Index)
		assert.Equal(t, stats.Initial-2*(i+1), st.Remaining)
		assert.True(t, st.Free.IsProperFaceOf(st.Principal))
		assert.Equal(t, st.Principal.Dim()-1, st.Free.Dim())
		assert.False(t, out.Contains(st.Principal))
		assert.False(t, out.Contains(st.Free))
		assert.Equal(t, st.LocalHits == 0, st.Rescanned)
		localHits += st.LocalHits
		if st.Rescanned {
			rescans++
		}
	}
	assert.Equal(t, stats.LocalHits, localHits)
	assert.Equal(t, stats.GlobalRescans, rescans)
}

// TestSpine_HookAbort: a hook error aborts without a partial result.
func TestSpine_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	hook := func(spine.Step) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	}

	out, err := spine.Spine(filledTriangle(t), spine.WithOnCollapse(hook))
	require.ErrorIs(t, err, stop)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "step 1")
}

// TestSpine_NilComplex reports ErrNilComplex.
func TestSpine_NilComplex(t *testing.T) {
	out, err := spine.Spine(nil)
	require.ErrorIs(t, err, spine.ErrNilComplex)
	assert.Nil(t, out)
}

// TestSpine_EmptyComplex returns an empty complex.
func TestSpine_EmptyComplex(t *testing.T) {
	k, err := simplicial.New()
	require.NoError(t, err)

	out, err := spine.Spine(k)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

// TestSpine_NoDanglingCofaces runs the incidence checker on random inputs.
func TestSpine_NoDanglingCofaces(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		k := build(t,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxDim(3)},
			builder.RandomFlag(14, 0.45),
		)
		out, err := spine.Spine(k, spine.WithIncidenceCheck())
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, out.Validate())
		assert.LessOrEqual(t, out.Len(), k.Len())
	}
}

// TestSpine_Logger emits debug traces only when enabled.
func TestSpine_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := spine.Spine(filledTriangle(t), spine.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "spine: start")
	assert.Contains(t, buf.String(), "spine: collapse")
	assert.Contains(t, buf.String(), "spine: done")

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = spine.Spine(filledTriangle(t), spine.WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestOptions_Panics checks option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { spine.WithLogger(nil) })
	assert.Panics(t, func() { spine.WithOnCollapse(nil) })
}

// TestByName resolves both reducers and rejects unknown names.
func TestByName(t *testing.T) {
	r, err := spine.ByName(spine.AlgorithmIncremental)
	require.NoError(t, err)
	assert.IsType(t, &spine.Incremental{}, r)

	r, err = spine.ByName(spine.AlgorithmReference)
	require.NoError(t, err)
	assert.IsType(t, &spine.Reference{}, r)

	_, err = spine.ByName("greedy")
	assert.ErrorIs(t, err, spine.ErrUnknownAlgorithm)

	var f spine.Reducer = spine.ReducerFunc(func(k *simplicial.Complex) (*simplicial.Complex, error) {
		return k.Clone(), nil
	})
	k := filledTriangle(t)
	out, err := f.Reduce(k)
	require.NoError(t, err)
	assert.True(t, out.Equal(k))
}
