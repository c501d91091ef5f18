package pipeline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/pipeline"
)

// ExampleGenerate turns a two-band tube into panels joined by hinges.
func ExampleGenerate() {
	m := fixture.Tube(100, []float64{200, 100, 0}, 12)
	cfg := pipeline.DefaultConfig()
	cfg.Hinges = true

	res, err := pipeline.Generate(context.Background(), m, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("panels:", res.Stats.Panels, "hinges:", len(res.Hinges), "violations:", len(res.Violations))
	// Output: panels: 48 hinges: 12 violations: 0
}
