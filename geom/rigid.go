// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rigid is a rotation about the Z axis followed by a translation:
// p' = RotateZ(p, Angle) + Offset.
type Rigid struct {
	Angle  float64
	Offset r3.Vec
}

// Identity returns the transform that leaves points unchanged.
func Identity() Rigid { return Rigid{} }

// Translation returns a pure translation by d.
func Translation(d r3.Vec) Rigid { return Rigid{Offset: d} }

// RotationAbout returns a rotation by angle around the point c.
func RotationAbout(angle float64, c r3.Vec) Rigid {
	return Rigid{Angle: angle, Offset: r3.Sub(c, RotateZ(c, angle))}
}

// Apply transforms p.
func (r Rigid) Apply(p r3.Vec) r3.Vec {
	return r3.Add(RotateZ(p, r.Angle), r.Offset)
}

// ApplyAll transforms every point and returns a new slice.
func (r Rigid) ApplyAll(ps []r3.Vec) []r3.Vec {
	if ps == nil {
		return nil
	}
	out := make([]r3.Vec, len(ps))
	for i, p := range ps {
		out[i] = r.Apply(p)
	}
	return out
}

// Then returns the transform that applies r first and s second.
func (r Rigid) Then(s Rigid) Rigid {
	return Rigid{
		Angle:  r.Angle + s.Angle,
		Offset: r3.Add(RotateZ(r.Offset, s.Angle), s.Offset),
	}
}

// Inverse returns the transform undoing r.
func (r Rigid) Inverse() Rigid {
	return Rigid{
		Angle:  -r.Angle,
		Offset: r3.Scale(-1, RotateZ(r.Offset, -r.Angle)),
	}
}

// RigidFromSegments returns the transform mapping p0 onto p1 and the
// direction p0→q0 onto p1→q1. Segment lengths are not compared.
func RigidFromSegments(p0, q0, p1, q1 r3.Vec) Rigid {
	d0, d1 := r3.Sub(q0, p0), r3.Sub(q1, p1)
	angle := math.Atan2(d1.Y, d1.X) - math.Atan2(d0.Y, d0.X)
	return Rigid{Angle: angle, Offset: r3.Sub(p1, RotateZ(p0, angle))}
}
