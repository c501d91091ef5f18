// SPDX-License-Identifier: MIT

package edgemeta

import (
	"math"

	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Dihedral returns the angle in [0, π] between the planes (u, v, self) and
// (u, v, partner) around edge u→v.
func Dihedral(u, v, self, partner r3.Vec) float64 {
	b0, b1, b2 := r3.Sub(v, u), r3.Sub(self, u), r3.Sub(partner, u)
	n1, n2 := r3.Cross(b0, b1), r3.Cross(b0, b2)
	c := r3.Dot(n1, n2) / (r3.Norm(n1) * r3.Norm(n2))
	if math.IsNaN(c) {
		if b1 == b2 {
			return 0
		}
		return math.Pi
	}
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// ClassifyCrease rotates the facet's own third vertex about the edge by
// dihedral. If it lands on the partner's half-plane the fold is a Valley,
// otherwise a Mountain.
func ClassifyCrease(u, v, self, partner r3.Vec, dihedral float64) model.Crease {
	b0, b1, b2 := r3.Sub(v, u), r3.Sub(self, u), r3.Sub(partner, u)
	axis := r3.Unit(b0)
	rotated := r3.Rotate(b1, dihedral, axis)

	normal := r3.Cross(b0, b2)
	if n := r3.Norm(normal); n > 0 {
		dist := math.Abs(r3.Dot(rotated, r3.Scale(1/n, normal)))
		if dist >= planeTolerance*math.Max(1, r3.Norm(b1)) {
			return model.Mountain
		}
	}
	// in the plane; the partner's side of the edge line
	across := r3.Sub(b2, r3.Scale(r3.Dot(b2, axis), axis))
	if r3.Dot(rotated, across) > 0 {
		return model.Valley
	}
	return model.Mountain
}

// CutAngle returns (π − dihedral)/2, negated for valleys.
func CutAngle(dihedral float64, crease model.Crease) float64 {
	cut := (math.Pi - dihedral) / 2
	if crease == model.Valley {
		return -cut
	}
	return cut
}
