// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// zAxis is the normal of the flattening plane.
var zAxis = r3.Vec{Z: 1}

// AngleBetween returns the unsigned angle in [0, π] between u and v.
// Zero-length inputs yield 0.
func AngleBetween(u, v r3.Vec) float64 {
	nu, nv := r3.Norm(u), r3.Norm(v)
	if nu == 0 || nv == 0 {
		return 0
	}
	c := r3.Dot(u, v) / (nu * nv)
	// clamp rounding noise so acos stays defined
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// RotateZ rotates v by angle radians counter-clockwise about the Z axis.
// The Z component is carried through unchanged.
func RotateZ(v r3.Vec, angle float64) r3.Vec {
	if angle == 0 {
		return v
	}
	s, c := math.Sincos(angle)
	return r3.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

// Perp returns v rotated by +90° in the XY plane.
func Perp(v r3.Vec) r3.Vec {
	return r3.Vec{X: -v.Y, Y: v.X, Z: v.Z}
}

// Cross2 returns the Z component of u × v, i.e. the 2-D cross product.
func Cross2(u, v r3.Vec) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Side reports on which side of the directed line p→q the point r lies:
// positive for left, negative for right, zero for on the line.
func Side(p, q, r r3.Vec) float64 {
	return Cross2(r3.Sub(q, p), r3.Sub(r, p))
}

// Lerp returns p + t·(q − p).
func Lerp(p, q r3.Vec, t float64) r3.Vec {
	return r3.Add(p, r3.Scale(t, r3.Sub(q, p)))
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q r3.Vec) r3.Vec {
	return Lerp(p, q, 0.5)
}

// Approx reports whether p and q are within eps in every component.
func Approx(p, q r3.Vec, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// IsNaN reports whether any component of v is NaN.
func IsNaN(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
