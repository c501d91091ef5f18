// SPDX-License-Identifier: MIT
// Package: lvfold/panel
//
// inset.go - bevel and hole insets, hole placement.

package panel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Insets returns the back-face and hole insets of every edge of a facet
// with metadata meta.
func Insets(meta model.FacetMeta, cfg Config) (back, hole [3]float64) {
	head := cfg.Holes.HeadDiameter / 2
	for _, e := range geom.Edges {
		back[e] = cfg.Thickness * math.Tan(meta.Edges[e].CutAngle)
		hole[e] = math.Max(math.Max(head, cfg.Holes.MinInset), back[e]+head)
	}
	return back, hole
}

// InsetTriangle moves every edge of the flat triangle t inward by its inset.
//
// Errors:
//   - geom.ErrParallelLines if two moved lines do not meet.
//   - ErrInsetTooLarge if the result is inside out or collapses to a point.
func InsetTriangle(t geom.Triangle, insets [3]float64) (geom.Triangle, error) {
	out, err := geom.OffsetTriangle(t, insets)
	if err != nil {
		return geom.Triangle{}, err
	}
	// parallel sides make out homothetic to t; a reversed edge means the
	// ratio went negative
	for _, e := range geom.Edges {
		p, q := t.EdgePoints(e)
		pi, qi := out.EdgePoints(e)
		if r3.Dot(r3.Sub(qi, pi), r3.Sub(q, p)) <= geom.Epsilon {
			return geom.Triangle{}, fmt.Errorf("%w: insets %v", ErrInsetTooLarge, insets)
		}
	}
	return out, nil
}

// PlaceHoles lays out holes on edge e of the inset triangle t.
func PlaceHoles(t geom.Triangle, e geom.Edge, hc HoleConfig) ([]model.Hole, error) {
	p, q := t.EdgePoints(e)
	hole := func(f float64) model.Hole {
		return model.Hole{Center: geom.Lerp(p, q, f), Diameter: hc.Diameter, HeadDiameter: hc.HeadDiameter}
	}

	switch hc.Placement {
	case PlaceNone:
		return nil, nil

	case PlaceSpaced:
		if !(hc.Fraction > 0 && hc.Fraction < 0.5) {
			return nil, fmt.Errorf("%w: spaced fraction %g not in (0, 0.5)", ErrBadHoles, hc.Fraction)
		}
		return []model.Hole{hole(hc.Fraction), hole(1 - hc.Fraction)}, nil

	case PlaceVertex:
		if hc.Count < 1 {
			return nil, fmt.Errorf("%w: vertex count %d", ErrBadHoles, hc.Count)
		}
		out := make([]model.Hole, hc.Count)
		for j := range out {
			out[j] = hole(float64(j+1) / float64(hc.Count+1))
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: placement %d", ErrBadHoles, int(hc.Placement))
}
