// SPDX-License-Identifier: MIT

// Package fixture builds small 3-D models for tests: zig-zag bands from two
// rails, closed cylinders and multi-band tubes, with partner addresses
// populated the way an upstream model builder would.
package fixture

import (
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rails builds a band from an upper rail top and a lower rail bottom of
// equal length, labeling facets with the conventions of package strip.
func Rails(o model.Orientation, strut bool, top, bottom []r3.Vec) model.Band {
	if o == model.HelicalLeft && !strut {
		top, bottom = bottom, top
	}
	n := len(top) - 1
	facets := make([]model.Facet, 0, 2*n)
	for k := 0; k < n; k++ {
		var even, odd geom.Triangle
		switch {
		case strut:
			even = geom.Tri(top[k+1], bottom[k], top[k])
			odd = geom.Tri(bottom[k], top[k+1], bottom[k+1])
		case o == model.Circumference:
			even = geom.Tri(top[k], bottom[k], top[k+1])
			odd = geom.Tri(top[k+1], bottom[k], bottom[k+1])
		default:
			even = geom.Tri(top[k], bottom[k], bottom[k+1])
			odd = geom.Tri(top[k], bottom[k+1], top[k+1])
		}
		facets = append(facets, model.Facet{Triangle: even}, model.Facet{Triangle: odd})
	}
	b := model.Band{Orientation: o, Facets: facets}
	if strut {
		b.Strut = &model.StrutTags{}
	}
	return b
}

// Row returns n+1 points from start stepping by step.
func Row(start, step r3.Vec, n int) []r3.Vec {
	out := make([]r3.Vec, n+1)
	for i := range out {
		out[i] = r3.Add(start, r3.Scale(float64(i), step))
	}
	return out
}

// Ring returns n+1 points on a horizontal circle at height z, counter-
// clockwise seen from above, the last repeating the first.
func Ring(radius, z float64, n int) []r3.Vec {
	out := make([]r3.Vec, n+1)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		out[i] = r3.Vec{X: radius * c, Y: radius * s, Z: z}
	}
	out[n] = out[0]
	return out
}

// FlatSquare is one circumference band of four facets covering the square
// [0,2]×[0,2] in the XY plane.
func FlatSquare() model.Model {
	top := Row(r3.Vec{Y: 2}, r3.Vec{X: 1}, 2)
	bottom := Row(r3.Vec{}, r3.Vec{X: 1}, 2)
	return Link(single(Rails(model.Circumference, false, top, bottom)))
}

// Cylinder is a closed circumference band around the Z axis.
func Cylinder(radius, height float64, segments int) model.Model {
	return Link(single(Rails(model.Circumference, false,
		Ring(radius, height, segments), Ring(radius, 0, segments))))
}

// Tube stacks len(heights)-1 circumference bands of a cylinder into one
// tube, top band first.
func Tube(radius float64, heights []float64, segments int) model.Model {
	var bands []model.Band
	for i := 0; i+1 < len(heights); i++ {
		bands = append(bands, Rails(model.Circumference, false,
			Ring(radius, heights[i], segments), Ring(radius, heights[i+1], segments)))
	}
	return Link(model.Model{Tubes: []model.Tube{{Bands: bands}}})
}

// Fold is two flat bands meeting at a right angle along the X axis, one per
// tube. The floor lies in the XY plane with outward normal +Z. When convex
// is false the wall rises into z ≥ 0 facing the floor (a valley); when true
// it drops into z ≤ 0 facing away from it (a mountain).
func Fold(n int, convex bool) model.Model {
	edge := Row(r3.Vec{}, r3.Vec{X: 1}, n)
	var floor, wall model.Band
	if convex {
		floor = Rails(model.Circumference, false, Row(r3.Vec{Y: 1}, r3.Vec{X: 1}, n), edge)
		wall = Rails(model.Circumference, false, edge, Row(r3.Vec{Z: -1}, r3.Vec{X: 1}, n))
	} else {
		floor = Rails(model.Circumference, false, edge, Row(r3.Vec{Y: -1}, r3.Vec{X: 1}, n))
		wall = Rails(model.Circumference, false, Row(r3.Vec{Z: 1}, r3.Vec{X: 1}, n), edge)
	}
	return Link(model.Model{Tubes: []model.Tube{
		{Bands: []model.Band{floor}},
		{Bands: []model.Band{wall}},
	}})
}

func single(b model.Band) model.Model {
	return model.Model{Tubes: []model.Tube{{Bands: []model.Band{b}}}}
}

// Link fills in partner addresses for every pair of edges, on different
// facets, whose endpoints coincide. Existing metadata is replaced.
func Link(m model.Model) model.Model {
	return model.Link(m, 1e-9)
}
