// SPDX-License-Identifier: MIT
// Package: lvfold/strip
//
// flatten.go - isometric unfolding of a band into the XY plane.

package strip

import (
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Flatten unfolds band into the XY plane and returns a new band of
// congruent, edge-sharing triangles. Edge metadata is carried over; source
// tabs are dropped since they are expressed in the 3-D frame.
//
// Preconditions and validation (in order):
//  1. The band orientation must have a role table (ErrUnsupportedStrut,
//     ErrUnknownOrientation).
//  2. Every source triangle must be non-degenerate (geom.ErrDegenerateTriangle).
//
// Per-facet failures are returned as *model.AddressError.
//
// Complexity: O(n) time, O(n) space for n facets.
func Flatten(band model.Band, opts ...Option) (model.Band, error) {
	// 1) Resolve options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	mirror := 1.0
	if cfg.Mirror {
		mirror = -1
	}

	out := make([]model.Facet, len(band.Facets))
	var prev geom.Triangle
	var prevRoles Roles
	for i, f := range band.Facets {
		addr := model.FacetAddress{Tube: cfg.Tube, Band: cfg.Band, Facet: i}

		// 2) Role lookup for this parity
		roles, err := RolesAt(band, i)
		if err != nil {
			return model.Band{}, model.FacetError(addr, err)
		}
		if err = f.Triangle.Validate(); err != nil {
			return model.Band{}, model.FacetError(addr, err)
		}

		// 3) Targets: from the configured frame for the first facet, from the
		//    previous facet's trailing points afterwards
		var pLead, pFollow r3.Vec
		if i == 0 {
			length := r3.Norm(r3.Sub(f.Triangle.At(roles.Leading.Follow), f.Triangle.At(roles.Leading.Lead)))
			pLead = cfg.Origin
			pFollow = r3.Add(cfg.Origin, r3.Scale(length, r3.Unit(cfg.Direction)))
		} else {
			pLead = prev.At(prevRoles.Trailing.Lead)
			pFollow = prev.At(prevRoles.Trailing.Follow)
		}

		// 4) Place the free vertex
		flat, err := AlignTriangle(f.Triangle, roles.Leading, pLead, pFollow, roles.Turn*mirror)
		if err != nil {
			return model.Band{}, model.FacetError(addr, err)
		}

		out[i] = model.Facet{Triangle: flat, Meta: f.Clone().Meta}
		prev, prevRoles = flat, roles
	}
	return band.WithFacets(out), nil
}

// SharedEdge returns the trailing points of facet i of a flattened band,
// which are also the leading points of facet i+1.
func SharedEdge(band model.Band, i int) (lead, follow r3.Vec, err error) {
	roles, err := RolesAt(band, i)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	t := band.Facets[i].Triangle
	return t.At(roles.Trailing.Lead), t.At(roles.Trailing.Follow), nil
}
