// SPDX-License-Identifier: MIT
// Package: lvfold/panel
//
// hinge.go - hinge connector outlines between two panels.

package panel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

var xAxis = r3.Vec{X: 1}

// side is one panel's half of a hinge in the hinge frame: the corners on
// y = 0 and on the far line, left (smaller x) first.
type side struct {
	l0, l1, r1, r0 r3.Vec
	holes          []model.Hole
}

// HingeOutline builds the connector joining edge ea of panel a to edge eb
// of panel b. The edges must name each other as partners.
//
// Errors: ErrNotPartners, ErrHingeTooWide, geom.ErrParallelLines.
//
// Complexity: O(H) time, O(H) space for H holes on the two edges.
func HingeOutline(a PanelPattern, ea geom.Edge, b PanelPattern, eb geom.Edge, cfg HingeConfig) (HingePattern, error) {
	addrA, addrB := a.Address.At(ea), b.Address.At(eb)
	if !partners(a, ea, addrB) || !partners(b, eb, addrA) {
		return HingePattern{}, fmt.Errorf("%w: %s and %s", ErrNotPartners, addrA, addrB)
	}
	if !(cfg.Width > 0) || cfg.Margin < 0 {
		return HingePattern{}, fmt.Errorf("%w: width %g, margin %g", ErrHingeTooWide, cfg.Width, cfg.Margin)
	}

	// 1) Each panel in its own frame, b turned to face a
	sa, err := trapezoid(a, ea, -1, cfg)
	if err != nil {
		return HingePattern{}, model.EdgeError(addrA, err)
	}
	sb, err := trapezoid(b, eb, +1, cfg)
	if err != nil {
		return HingePattern{}, model.EdgeError(addrB, err)
	}

	// 2) Snap the shared corners
	l0, r0 := closer(sa.l0, sb.l0), closer(sa.r0, sb.r0)

	// 3) Ring: down through a, back up through b
	ring := dedupe([]r3.Vec{l0, sa.l1, sa.r1, r0, r0, sb.r1, sb.l1, l0})
	return HingePattern{
		Edge:    addrA,
		Partner: addrB,
		Outline: ring,
		Holes:   append(sa.holes, sb.holes...),
	}, nil
}

func partners(p PanelPattern, e geom.Edge, want model.EdgeAddress) bool {
	if p.Facet.Meta == nil || p.Facet.Meta.Edges[e].Partner == nil {
		return false
	}
	return *p.Facet.Meta.Edges[e].Partner == want
}

// frame returns the transform taking panel p into hinge coordinates: the
// registration point at the origin, edge e along X, the panel interior on
// the side given by sign.
func frame(p PanelPattern, e geom.Edge, sign float64) geom.Rigid {
	bp, bq := p.BackFace.EdgePoints(e)
	origin := geom.LineThrough(bp, bq).Project(geom.Midpoint(p.Facet.Triangle.EdgePoints(e)))
	r := geom.RigidFromSegments(origin, r3.Add(origin, r3.Sub(bq, bp)), r3.Vec{}, xAxis)
	if r.Apply(p.BackFace.At(e.Opposite())).Y*sign < 0 {
		r = geom.RigidFromSegments(origin, r3.Add(origin, r3.Sub(bp, bq)), r3.Vec{}, xAxis)
	}
	return r
}

func trapezoid(p PanelPattern, e geom.Edge, sign float64, cfg HingeConfig) (side, error) {
	r := frame(p, e, sign)
	back := p.BackFace.Transform(r)
	u, v := e.Vertices()
	o := back.At(e.Opposite())
	inside := back.Centroid()

	near := geom.Line{Dir: xAxis}
	far := geom.Line{Point: r3.Vec{Y: sign * cfg.Width}, Dir: xAxis}
	corners := func(end r3.Vec) (r3.Vec, r3.Vec, error) {
		edge := geom.LineThrough(end, o).Offset(cfg.Margin, inside)
		c0, err := geom.Intersect(edge, near)
		if err != nil {
			return r3.Vec{}, r3.Vec{}, err
		}
		c1, err := geom.Intersect(edge, far)
		return c0, c1, err
	}
	pu, pv := back.At(u), back.At(v)
	if pv.X < pu.X {
		pu, pv = pv, pu
	}
	l0, l1, err := corners(pu)
	if err != nil {
		return side{}, err
	}
	r0, r1, err := corners(pv)
	if err != nil {
		return side{}, err
	}
	if l0.X >= r0.X || l1.X >= r1.X {
		return side{}, fmt.Errorf("%w: width %g, margin %g", ErrHingeTooWide, cfg.Width, cfg.Margin)
	}

	var holes []model.Hole
	if p.Facet.Meta != nil {
		for _, h := range p.Facet.Meta.Edges[e].Holes {
			h.Center = r.Apply(h.Center)
			holes = append(holes, h)
		}
	}
	return side{l0: l0, l1: l1, r1: r1, r0: r0, holes: holes}, nil
}

// closer returns whichever of p and q is nearer the origin.
func closer(p, q r3.Vec) r3.Vec {
	if r3.Norm(q) < r3.Norm(p) {
		return q
	}
	return p
}

// dedupe drops consecutive repeats and a closing repeat of the first point.
func dedupe(ps []r3.Vec) []r3.Vec {
	const eps = 1e-12
	out := make([]r3.Vec, 0, len(ps))
	for _, p := range ps {
		if len(out) > 0 && geom.Approx(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && geom.Approx(out[0], out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}
	return out
}

// HingeArea returns the area enclosed by a hinge outline.
func HingeArea(h HingePattern) float64 {
	s := 0.0
	for i, p := range h.Outline {
		s += geom.Cross2(p, h.Outline[(i+1)%len(h.Outline)])
	}
	return math.Abs(s) / 2
}
