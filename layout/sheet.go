// SPDX-License-Identifier: MIT
// Package: lvfold/layout
//
// sheet.go - band stacking and sheet statistics.

package layout

import (
	"github.com/katalvlaran/lvfold/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stack moves bands so that each one's bounding box starts at X = 0 and
// sits gap above the previous one; the first starts at (0, 0). Empty bands
// are passed through.
//
// Complexity: O(n) time, O(n) space for n outline points.
func Stack(bands []BandPattern, gap float64) []BandPattern {
	out := make([]BandPattern, len(bands))
	y := 0.0
	for i, b := range bands {
		pts := b.Points()
		if len(pts) == 0 {
			out[i] = b.Clone()
			continue
		}
		bound := Bounds(pts)
		out[i] = b.Transform(geom.Translation(r3.Vec{X: -bound.Min.X(), Y: y - bound.Min.Y()}))
		y += bound.Max.Y() - bound.Min.Y() + gap
	}
	return out
}

// Stats summarizes a laid-out sheet.
//
//   - Bounds      — bounding box of every outline point.
//   - Panels      — panel count.
//   - Area        — total area enclosed by the panel outlines.
//   - Utilization — Area over the bounding box area; 0 for an empty sheet.
type Stats struct {
	Bounds      orb.Bound
	Panels      int
	Area        float64
	Utilization float64
}

// Measure computes Stats over bands.
//
// Complexity: O(n) time, O(n) space for n outline points.
func Measure(bands []BandPattern) Stats {
	var s Stats
	var all []r3.Vec
	for _, b := range bands {
		for _, p := range b.Panels {
			s.Panels++
			s.Area += planar.Area(polygon(p.Points))
			all = append(all, p.Points...)
		}
	}
	if len(all) == 0 {
		return s
	}
	s.Bounds = Bounds(all)
	if box := (s.Bounds.Max.X() - s.Bounds.Min.X()) * (s.Bounds.Max.Y() - s.Bounds.Min.Y()); box > 0 {
		s.Utilization = s.Area / box
	}
	return s
}

// polygon returns the closed orb polygon of an outline ring.
func polygon(pts []r3.Vec) orb.Polygon {
	ring := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}
