// SPDX-License-Identifier: MIT

package tab

import (
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Outline returns the closed-ring point sequence of a flattened facet with
// its tab spliced in: A, B, C in winding order, with the tab's outer points
// inserted between the endpoints of the tab's edge. The ring is not
// repeated at the end.
func Outline(f model.Facet) []r3.Vec {
	t := f.Triangle
	if f.Tab == nil {
		return []r3.Vec{t.A, t.B, t.C}
	}
	out := make([]r3.Vec, 0, 3+len(f.Tab.Outer()))
	for _, e := range geom.Edges {
		u, _ := e.Vertices()
		out = append(out, t.At(u))
		if e == f.Tab.Edge() {
			out = append(out, Splice(t, f.Tab)...)
		}
	}
	return out
}

// Splice returns the tab's outer points strictly between the endpoints of
// its edge, ordered from the edge's first endpoint to its second.
func Splice(t geom.Triangle, tab model.Tab) []r3.Vec {
	p0, p1 := t.EdgePoints(tab.Edge())
	ring := tab.Outer()
	n := len(ring)
	eps := matchTolerance(t)
	i0, i1 := -1, -1
	for i, p := range ring {
		switch {
		case geom.Approx(p, p0, eps):
			i0 = i
		case geom.Approx(p, p1, eps):
			i1 = i
		}
	}
	if i0 < 0 || i1 < 0 {
		return nil
	}
	// walk away from p1
	step := 1
	if (i0+1)%n == i1 {
		step = n - 1
	}
	var mid []r3.Vec
	for i := (i0 + step) % n; i != i1; i = (i + step) % n {
		mid = append(mid, ring[i])
	}
	return mid
}
