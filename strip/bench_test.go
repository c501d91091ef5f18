package strip_test

import (
	"testing"

	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/strip"
)

func BenchmarkFlatten_Cylinder(b *testing.B) {
	band := fixture.Cylinder(50, 20, 256).Tubes[0].Bands[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := strip.Flatten(band); err != nil {
			b.Fatal(err)
		}
	}
}
