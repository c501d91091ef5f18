// SPDX-License-Identifier: MIT
// Package: lvfold/edgemeta
//
// compute.go - crease and cut-angle computation over a model.

package edgemeta

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// ComputeEdge returns the metadata of edge addr of m with crease and cut
// angle filled in from the 3-D geometry. Partner and holes are kept.
// Boundary edges get CreaseNone and a zero cut angle.
//
// Complexity: O(1) time, O(1) space.
func ComputeEdge(m model.Model, addr model.EdgeAddress) (model.EdgeMeta, error) {
	f, err := m.Facet(addr.FacetAddress)
	if err != nil {
		return model.EdgeMeta{}, err
	}
	var meta model.EdgeMeta
	if f.Meta != nil {
		meta = f.Meta.Edges[addr.Edge].Clone()
	}
	meta.Crease, meta.CutAngle = model.CreaseNone, 0
	if meta.Partner == nil {
		return meta, nil
	}

	// 1) Resolve both third vertices
	pf, err := m.Facet(meta.Partner.FacetAddress)
	if err != nil {
		return model.EdgeMeta{}, model.EdgeError(addr, err)
	}
	u, v := f.Triangle.EdgePoints(addr.Edge)
	self := f.Triangle.At(addr.Edge.Opposite())
	partner := pf.Triangle.At(meta.Partner.Edge.Opposite())
	if err = shares(pf.Triangle, meta.Partner.Edge, u, v); err != nil {
		return model.EdgeMeta{}, model.EdgeError(addr, err)
	}

	// 2) Dihedral, crease, bevel
	d := Dihedral(u, v, self, partner)
	meta.Crease = ClassifyCrease(u, v, self, partner, d)
	meta.CutAngle = CutAngle(d, meta.Crease)
	if math.IsNaN(meta.CutAngle) {
		return model.EdgeMeta{}, model.EdgeError(addr, ErrNaNCutAngle)
	}
	return meta, nil
}

// Compute returns a copy of m with crease and cut angle computed for every
// edge of every facet. Facets without metadata are treated as all-boundary.
// The input model is not modified.
//
// Complexity: O(F) time, O(F) space for F facets.
func Compute(m model.Model) (model.Model, error) {
	out := m.Clone()
	for t := range out.Tubes {
		for b := range out.Tubes[t].Bands {
			fs := out.Tubes[t].Bands[b].Facets
			for i := range fs {
				addr := model.FacetAddress{Tube: t, Band: b, Facet: i}
				var fm model.FacetMeta
				for _, e := range geom.Edges {
					em, err := ComputeEdge(m, addr.At(e))
					if err != nil {
						return model.Model{}, err
					}
					fm.Edges[e] = em
				}
				fs[i] = fs[i].WithMeta(fm)
			}
		}
	}
	return out, nil
}

func shares(t geom.Triangle, e geom.Edge, u, v r3.Vec) error {
	p, q := t.EdgePoints(e)
	eps := 1e-7 * math.Max(1, t.EdgeLength(e))
	if (geom.Approx(p, u, eps) && geom.Approx(q, v, eps)) || (geom.Approx(p, v, eps) && geom.Approx(q, u, eps)) {
		return nil
	}
	return fmt.Errorf("%w: partner edge %s runs %v→%v", ErrNotShared, e, p, q)
}
