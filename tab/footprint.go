// SPDX-License-Identifier: MIT
// Package: lvfold/tab
//
// footprint.go - unfolding partner facets across a flat edge.

package tab

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/strip"
	"gonum.org/v1/gonum/spatial/r3"
)

// matchTolerance scales with the triangle so that coordinates in any unit
// match.
func matchTolerance(t geom.Triangle) float64 {
	ls := t.Lengths()
	return 1e-7 * math.Max(ls[0], math.Max(ls[1], ls[2]))
}

// Footprint unfolds neighbor (3-D) across edge of a facet whose 3-D and
// flattened triangles are panel and flat. The returned triangle shares the
// edge's flattened points verbatim and lies on the far side of the edge.
func Footprint(panel, flat geom.Triangle, edge geom.Edge, neighbor geom.Triangle) (geom.Triangle, error) {
	u, v := edge.Vertices()
	eps := matchTolerance(panel)
	nu, okU := neighbor.VertexNear(panel.At(u), eps)
	nv, okV := neighbor.VertexNear(panel.At(v), eps)
	if !okU || !okV {
		return geom.Triangle{}, fmt.Errorf("%w: edge %s", ErrNotAdjacent, edge)
	}
	return strip.AlignAway(neighbor, strip.Pair{Lead: nu, Follow: nv},
		flat.At(u), flat.At(v), flat.At(edge.Opposite()))
}

// NeighborFootprint unfolds second (3-D) across whichever edge it shares
// with first (3-D, placed as firstFlat). It returns the placed triangle and
// the shared edge of first.
func NeighborFootprint(first, firstFlat, second geom.Triangle) (geom.Triangle, geom.Edge, error) {
	eps := matchTolerance(first)
	for _, e := range geom.Edges {
		u, v := e.Vertices()
		if _, ok := second.VertexNear(first.At(u), eps); !ok {
			continue
		}
		if _, ok := second.VertexNear(first.At(v), eps); !ok {
			continue
		}
		placed, err := Footprint(first, firstFlat, e, second)
		return placed, e, err
	}
	return geom.Triangle{}, 0, fmt.Errorf("%w: no shared edge", ErrNotAdjacent)
}

// free returns the footprint vertex that is not at p0 or p1. The other two
// vertices must sit on p0 and p1.
func free(t geom.Triangle, p0, p1 r3.Vec) (r3.Vec, error) {
	eps := matchTolerance(t)
	var out r3.Vec
	touching := 0
	for _, v := range geom.Vertices {
		q := t.At(v)
		if geom.Approx(q, p0, eps) || geom.Approx(q, p1, eps) {
			touching++
			continue
		}
		out = q
	}
	if touching != 2 {
		return r3.Vec{}, fmt.Errorf("%w: footprint does not sit on the base", ErrNotAdjacent)
	}
	return out, nil
}
