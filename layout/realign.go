// SPDX-License-Identifier: MIT
// Package: lvfold/layout
//
// realign.go - minimal-width rotation search and realignment.

package layout

import (
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds returns the axis-aligned bounding box of pts in the XY plane.
func Bounds(pts []r3.Vec) orb.Bound {
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point{p.X, p.Y}
	}
	return mp.Bound()
}

// Width returns the X extent of pts rotated by angle about the origin.
func Width(pts []r3.Vec, angle float64) float64 {
	s, c := math.Sincos(angle)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		x := p.X*c - p.Y*s
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	return hi - lo
}

// MinWidthAngle returns the rotation among k·1°, k = 0..179, that gives
// pts the smallest X extent, and that width. Ties keep the smaller angle.
//
// Errors: ErrEmpty.
//
// Complexity: O(S·n) time, O(1) space for S = SearchSteps rotations of n points.
func MinWidthAngle(pts []r3.Vec) (angle, width float64, err error) {
	if len(pts) == 0 {
		return 0, 0, ErrEmpty
	}
	width = math.Inf(1)
	for k := 0; k < SearchSteps; k++ {
		a := float64(k) * math.Pi / SearchSteps
		if w := Width(pts, a); w < width {
			angle, width = a, w
		}
	}
	return angle, width, nil
}

// Points returns every outline point of every panel of b.
func (b BandPattern) Points() []r3.Vec {
	var out []r3.Vec
	for _, p := range b.Panels {
		out = append(out, p.Points...)
	}
	return out
}

// Transform returns a copy with every panel moved by r.
func (b BandPattern) Transform(r geom.Rigid) BandPattern {
	out := b.Clone()
	for i := range out.Panels {
		out.Panels[i] = out.Panels[i].Transform(r)
	}
	return out
}

// Realign rotates b to its narrowest orientation and translates it so its
// bounding box starts at (0, 0). It returns the applied transform.
//
// Complexity: O(S·n) time, O(n) space; see MinWidthAngle.
func Realign(b BandPattern) (BandPattern, geom.Rigid, error) {
	angle, _, err := MinWidthAngle(b.Points())
	if err != nil {
		return BandPattern{}, geom.Rigid{}, err
	}
	rot := geom.Rigid{Angle: angle}
	rotated := b.Transform(rot)
	r := rot.Then(toOrigin(rotated.Points()))
	return b.Transform(r), r, nil
}

// toOrigin returns the translation moving the bounding box of pts to (0, 0).
func toOrigin(pts []r3.Vec) geom.Rigid {
	lo := Bounds(pts).Min
	return geom.Translation(r3.Vec{X: -lo.X(), Y: -lo.Y()})
}
