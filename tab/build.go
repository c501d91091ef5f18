// SPDX-License-Identifier: MIT
// Package: lvfold/tab
//
// build.go - tab construction for the four tab styles.

package tab

import (
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Build creates the tab described by spec on edge attach of the flattened
// triangle flat, from already unfolded footprints.
//
// Steps:
//  1. Base p0→p1 = attach endpoints in winding order.
//  2. Dispatch on spec.Style; every style is handled explicitly.
//  3. Trapezoid styles walk spec.Width from p0 and p1 along their sides.
//
// Errors: ErrNeedSecond, ErrBadWidth, ErrTabTooWide, ErrBadScore,
// ErrNotAdjacent, model.ErrUnknownTab.
//
// Complexity: O(1) time, O(1) space.
func Build(spec Spec, attach geom.Edge, flat geom.Triangle, fp Footprints) (model.Tab, error) {
	if spec.Score < 0 || spec.Score >= 0.5 {
		return nil, fmt.Errorf("%w: %g", ErrBadScore, spec.Score)
	}
	p0, p1 := flat.EdgePoints(attach)
	apex, err := free(fp.First, p0, p1)
	if err != nil {
		return nil, err
	}

	switch spec.Style {
	case model.StyleFull:
		return model.FullTab{Attach: attach, Side: spec.Direction, Source: fp.First}, nil

	case model.StyleTrapezoid:
		q0, q1, err := walk(spec.Width, r3.Norm(r3.Sub(p1, p0)), p0, apex, p1, apex)
		if err != nil {
			return nil, err
		}
		return model.TrapezoidTab{
			Attach: attach,
			Side:   spec.Direction,
			Source: fp.First,
			Points: [4]r3.Vec{p0, q0, q1, p1},
			Score:  score(spec.Score, p0, p1),
		}, nil

	case model.StyleMultiFacetFull, model.StyleMultiFacetTrapezoid:
		if fp.Second == nil {
			return nil, fmt.Errorf("%w: %s", ErrNeedSecond, spec.Style)
		}
		far0, far1, err := quad(fp.First, *fp.Second, p0, p1, apex)
		if err != nil {
			return nil, err
		}
		sources := [2]geom.Triangle{fp.First, *fp.Second}
		if spec.Style == model.StyleMultiFacetFull {
			pts := orient([4]r3.Vec{p0, far0, far1, p1}, spec.Direction)
			return model.MultiFacetFullTab{Attach: attach, Side: spec.Direction, Sources: sources, Points: pts}, nil
		}
		q0, q1, err := walk(spec.Width, r3.Norm(r3.Sub(p1, p0)), p0, far0, p1, far1)
		if err != nil {
			return nil, err
		}
		return model.MultiFacetTrapezoidTab{
			Attach:  attach,
			Side:    spec.Direction,
			Sources: sources,
			Points:  orient([4]r3.Vec{p0, q0, q1, p1}, spec.Direction),
			Score:   score(spec.Score, p0, p1),
		}, nil
	}
	return nil, fmt.Errorf("%w: %d", model.ErrUnknownTab, int(spec.Style))
}

// quad returns the two far corners of the quadrilateral covered by first
// (on base p0→p1 with apex) and second. far0 neighbors p0, far1 neighbors p1.
func quad(first, second geom.Triangle, p0, p1, apex r3.Vec) (far0, far1 r3.Vec, err error) {
	eps := matchTolerance(first)
	_, onP0 := second.VertexNear(p0, eps)
	_, onP1 := second.VertexNear(p1, eps)
	if _, onApex := second.VertexNear(apex, eps); !onApex || onP0 == onP1 {
		return r3.Vec{}, r3.Vec{}, fmt.Errorf("%w: second footprint must share the apex side", ErrNotAdjacent)
	}
	if onP1 {
		// second covers apex→p1: ring p0, p1, extra, apex
		extra, err := free(second, apex, p1)
		return apex, extra, err
	}
	// second covers p0→apex: ring p0, p1, apex, extra
	extra, err := free(second, p0, apex)
	return extra, apex, err
}

// walk returns a0 + d·unit(b0−a0) and a1 + d·unit(b1−a1), where d is
// w.Length or w.Fraction of the base length.
func walk(w Width, base float64, a0, b0, a1, b1 r3.Vec) (r3.Vec, r3.Vec, error) {
	if (w.Length > 0) == (w.Fraction > 0) {
		return r3.Vec{}, r3.Vec{}, ErrBadWidth
	}
	step := func(a, b r3.Vec) (r3.Vec, error) {
		side := r3.Norm(r3.Sub(b, a))
		d := w.Length
		if w.Fraction > 0 {
			d = w.Fraction * base
		}
		if d >= side {
			return r3.Vec{}, fmt.Errorf("%w: %g on a side of %g", ErrTabTooWide, d, side)
		}
		return r3.Add(a, r3.Scale(d/side, r3.Sub(b, a))), nil
	}
	q0, err := step(a0, b0)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	q1, err := step(a1, b1)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	return q0, q1, nil
}

func score(f float64, p0, p1 r3.Vec) *model.Segment {
	if f == 0 {
		return nil
	}
	return &model.Segment{From: geom.Lerp(p0, p1, f), To: geom.Lerp(p0, p1, 1-f)}
}

// orient reverses the ring on the lesser side.
func orient(pts [4]r3.Vec, d model.TabDirection) [4]r3.Vec {
	if d != model.Lesser {
		return pts
	}
	return [4]r3.Vec{pts[3], pts[2], pts[1], pts[0]}
}
