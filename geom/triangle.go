// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tri builds a Triangle from three points.
func Tri(a, b, c r3.Vec) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// At returns the point labeled v.
func (t Triangle) At(v Vertex) r3.Vec {
	switch v {
	case A:
		return t.A
	case B:
		return t.B
	default:
		return t.C
	}
}

// With returns a copy of t with vertex v moved to p.
func (t Triangle) With(v Vertex, p r3.Vec) Triangle {
	switch v {
	case A:
		t.A = p
	case B:
		t.B = p
	default:
		t.C = p
	}
	return t
}

// Points returns the vertices in label order.
func (t Triangle) Points() [3]r3.Vec {
	return [3]r3.Vec{t.A, t.B, t.C}
}

// EdgePoints returns the endpoints of e in winding order.
func (t Triangle) EdgePoints(e Edge) (r3.Vec, r3.Vec) {
	u, v := e.Vertices()
	return t.At(u), t.At(v)
}

// EdgeLength returns the length of e.
func (t Triangle) EdgeLength(e Edge) float64 {
	p, q := t.EdgePoints(e)
	return r3.Norm(r3.Sub(q, p))
}

// Lengths returns the three edge lengths indexed by Edge.
func (t Triangle) Lengths() [3]float64 {
	return [3]float64{t.EdgeLength(AB), t.EdgeLength(BC), t.EdgeLength(AC)}
}

// Angle returns the interior angle at v.
func (t Triangle) Angle(v Vertex) float64 {
	p := t.At(v)
	q := t.At((v + 1) % 3)
	r := t.At((v + 2) % 3)
	return AngleBetween(r3.Sub(q, p), r3.Sub(r, p))
}

// Angles returns the three interior angles indexed by Vertex.
func (t Triangle) Angles() [3]float64 {
	return [3]float64{t.Angle(A), t.Angle(B), t.Angle(C)}
}

// Normal returns (B − A) × (C − A), unnormalized. Its direction follows the
// winding order; its length is twice the area.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t.B, t.A), r3.Sub(t.C, t.A))
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return r3.Norm(t.Normal()) / 2
}

// SignedArea returns the signed area of the XY projection; positive for
// counter-clockwise winding.
func (t Triangle) SignedArea() float64 {
	return Side(t.A, t.B, t.C) / 2
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1.0/3, r3.Add(r3.Add(t.A, t.B), t.C))
}

// Validate rejects zero-length edges and collinear vertices.
//
// An edge is zero when shorter than Epsilon; the triangle is collinear when
// its height over the longest edge is below Epsilon.
func (t Triangle) Validate() error {
	for _, p := range t.Points() {
		if IsNaN(p) {
			return fmt.Errorf("%w: NaN coordinate", ErrDegenerateTriangle)
		}
	}
	longest := 0.0
	for _, e := range Edges {
		l := t.EdgeLength(e)
		if l < Epsilon {
			return fmt.Errorf("%w: edge %s has length %g", ErrDegenerateTriangle, e, l)
		}
		longest = math.Max(longest, l)
	}
	if height := 2 * t.Area() / longest; height < Epsilon {
		return fmt.Errorf("%w: vertices are collinear", ErrDegenerateTriangle)
	}
	return nil
}

// Transform applies r to every vertex.
func (t Triangle) Transform(r Rigid) Triangle {
	return Triangle{A: r.Apply(t.A), B: r.Apply(t.B), C: r.Apply(t.C)}
}

// VertexNear returns the label whose point lies within eps of p.
func (t Triangle) VertexNear(p r3.Vec, eps float64) (Vertex, bool) {
	for _, v := range Vertices {
		if r3.Norm(r3.Sub(t.At(v), p)) <= eps {
			return v, true
		}
	}
	return 0, false
}
