// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Line is an infinite line in the XY plane through Point along Dir.
type Line struct {
	Point r3.Vec
	Dir   r3.Vec
}

// LineThrough returns the line through p and q, directed p→q.
func LineThrough(p, q r3.Vec) Line {
	return Line{Point: p, Dir: r3.Sub(q, p)}
}

// Offset shifts l perpendicular to itself by d toward the side containing
// toward. A negative d shifts away from it.
func (l Line) Offset(d float64, toward r3.Vec) Line {
	n := r3.Unit(Perp(l.Dir))
	n.Z = 0
	if Cross2(l.Dir, r3.Sub(toward, l.Point)) < 0 {
		n = r3.Scale(-1, n)
	}
	return Line{Point: r3.Add(l.Point, r3.Scale(d, n)), Dir: l.Dir}
}

// Project returns the foot of the perpendicular from p onto l.
func (l Line) Project(p r3.Vec) r3.Vec {
	d2 := r3.Dot(l.Dir, l.Dir)
	if d2 == 0 {
		return l.Point
	}
	t := r3.Dot(r3.Sub(p, l.Point), l.Dir) / d2
	return r3.Add(l.Point, r3.Scale(t, l.Dir))
}

// Distance returns the perpendicular distance from p to l.
func (l Line) Distance(p r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, l.Project(p)))
}

// Intersect returns the intersection point of l and m.
//
// Errors:
//   - ErrParallelLines when the directions are parallel (or either is zero).
func Intersect(l, m Line) (r3.Vec, error) {
	denom := Cross2(l.Dir, m.Dir)
	scale := math.Hypot(l.Dir.X, l.Dir.Y) * math.Hypot(m.Dir.X, m.Dir.Y)
	if scale == 0 || math.Abs(denom) <= 1e-12*scale {
		return r3.Vec{}, fmt.Errorf("%w: %v and %v", ErrParallelLines, l.Dir, m.Dir)
	}
	t := Cross2(r3.Sub(m.Point, l.Point), m.Dir) / denom
	p := r3.Add(l.Point, r3.Scale(t, l.Dir))
	p.Z = 0
	return p, nil
}

// OffsetTriangle moves each edge of the flat triangle t inward by
// insets[e] and returns the triangle bounded by the three moved lines.
// Negative insets move an edge outward.
//
// Errors:
//   - ErrParallelLines if two adjacent offset lines do not meet.
func OffsetTriangle(t Triangle, insets [3]float64) (Triangle, error) {
	var lines [3]Line
	for _, e := range Edges {
		p, q := t.EdgePoints(e)
		lines[e] = LineThrough(p, q).Offset(insets[e], t.At(e.Opposite()))
	}
	// each vertex is the meet of the two edges touching it
	meet := func(v Vertex, e1, e2 Edge) (r3.Vec, error) {
		p, err := Intersect(lines[e1], lines[e2])
		if err != nil {
			return r3.Vec{}, fmt.Errorf("vertex %s: %w", v, err)
		}
		return p, nil
	}
	a, err := meet(A, AB, AC)
	if err != nil {
		return Triangle{}, err
	}
	b, err := meet(B, AB, BC)
	if err != nil {
		return Triangle{}, err
	}
	c, err := meet(C, BC, AC)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{A: a, B: b, C: c}, nil
}
