package spine_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/spine"
)

// BenchmarkSpine_Grid measures the incremental engine on a 40×40 disk.
func BenchmarkSpine_Grid(b *testing.B) {
	k := build(b, nil, builder.Grid(40, 40))

	b.ReportAllocs()
	b.SetBytes(int64(k.Len()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = spine.Spine(k)
	}
}

// BenchmarkSpine_RandomFlag runs the engine on a dense random clique complex.
func BenchmarkSpine_RandomFlag(b *testing.B) {
	k := build(b,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithMaxDim(3)},
		builder.RandomFlag(60, 0.3),
	)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = spine.Spine(k)
	}
}

// BenchmarkReference_Grid shows the oracle's cost on a small disk.
func BenchmarkReference_Grid(b *testing.B) {
	k := build(b, nil, builder.Grid(8, 8))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = spine.ReferenceSpine(k)
	}
}

// BenchmarkBuildCofaceMap measures map construction alone.
func BenchmarkBuildCofaceMap(b *testing.B) {
	k := build(b, nil, builder.Torus(30, 30))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = spine.BuildCofaceMap(k)
	}
}
