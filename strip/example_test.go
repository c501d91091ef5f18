package strip_test

import (
	"fmt"

	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/strip"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleFlatten unrolls a 12-sided cylinder band into a straight strip.
func ExampleFlatten() {
	band := fixture.Cylinder(1, 1, 12).Tubes[0].Bands[0]
	flat, err := strip.Flatten(band, strip.WithDirection(r3.Vec{Y: -1}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("facets:", len(flat.Facets))
	// Output: facets: 24
}
