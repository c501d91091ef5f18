// SPDX-License-Identifier: MIT
// Package: lvfold/model
//
// link.go - partner recomputation from shared edge endpoints.

package model

import (
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Link fills in the partner address of every edge whose endpoints match
// the endpoints of an edge of another facet, in either direction, with
// each coordinate within eps. Reversed matches win over same-direction
// ones; among several matches the lowest address wins. Edge metadata is
// replaced; the input is not modified. Panics if eps <= 0.
//
// Complexity: O(n) expected time and space for n facets.
func Link(m Model, eps float64) Model {
	if !(eps > 0) {
		panic("model: Link eps must be > 0")
	}
	cellOf := func(p r3.Vec) cell {
		floor := func(v float64) int64 { return int64(math.Floor(v / eps)) }
		return cell{floor(p.X), floor(p.Y), floor(p.Z)}
	}

	// 1) Index every edge by the grid cell of its first endpoint
	type ref struct {
		addr EdgeAddress
		p, q r3.Vec
	}
	index := map[cell][]ref{}
	_ = m.Walk(func(addr FacetAddress, f Facet) error {
		for _, e := range geom.Edges {
			p, q := f.Triangle.EdgePoints(e)
			c := cellOf(p)
			index[c] = append(index[c], ref{addr: addr.At(e), p: p, q: q})
		}
		return nil
	})

	// find scans the cells around from for an edge of another facet
	// running from ≈from to ≈to.
	find := func(from, to r3.Vec, self FacetAddress) (EdgeAddress, bool) {
		var best EdgeAddress
		found := false
		c := cellOf(from)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, r := range index[cell{c[0] + dx, c[1] + dy, c[2] + dz}] {
						if r.addr.FacetAddress == self || !geom.Approx(r.p, from, eps) || !geom.Approx(r.q, to, eps) {
							continue
						}
						if !found || r.addr.Less(best) {
							best, found = r.addr, true
						}
					}
				}
			}
		}
		return best, found
	}

	// 2) Resolve each edge, reversed direction first
	out := m.Clone()
	for t := range out.Tubes {
		for b := range out.Tubes[t].Bands {
			fs := out.Tubes[t].Bands[b].Facets
			for i := range fs {
				addr := FacetAddress{Tube: t, Band: b, Facet: i}
				var meta FacetMeta
				for _, e := range geom.Edges {
					p, q := fs[i].Triangle.EdgePoints(e)
					if partner, ok := find(q, p, addr); ok {
						meta.Edges[e].Partner = &partner
					} else if partner, ok := find(p, q, addr); ok {
						meta.Edges[e].Partner = &partner
					}
				}
				fs[i] = fs[i].WithMeta(meta)
			}
		}
	}
	return out
}

// cell is a grid cell of spacing eps.
type cell [3]int64
