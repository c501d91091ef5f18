// SPDX-License-Identifier: MIT

package tab

import (
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/strip"
)

// Attach adds tabs to flat, the flattened form of band (tube, band) of m.
// A facet gets a tab on its rail edge when the rail side is included in
// spec.Direction and the edge has a partner. Facets without metadata are
// skipped.
//
// For multi-facet styles the second footprint is the partner's successor
// in its band, or its predecessor for the last facet.
//
// Complexity: O(n) time, O(n) space for n facets.
func Attach(m model.Model, tube, band int, flat model.Band, spec Spec) (model.Band, error) {
	src, err := m.Band(tube, band)
	if err != nil {
		return model.Band{}, err
	}
	if len(src.Facets) != len(flat.Facets) {
		return model.Band{}, fmt.Errorf("tab: band %d/%d has %d facets, flattened %d",
			tube, band, len(src.Facets), len(flat.Facets))
	}

	out := flat.Clone()
	for i, f := range src.Facets {
		addr := model.FacetAddress{Tube: tube, Band: band, Facet: i}

		// 1) Rail edge on a configured side, with a partner
		roles, err := strip.RolesAt(src, i)
		if err != nil {
			return model.Band{}, model.FacetError(addr, err)
		}
		if !spec.Direction.Includes(roles.Rail) {
			continue
		}
		edge := roles.RailEdge()
		meta, err := f.Edge(edge)
		if err != nil || meta.Partner == nil {
			continue
		}

		// 2) Unfold the footprint(s)
		fp, err := footprints(m, *meta.Partner, f.Triangle, flat.Facets[i].Triangle, edge, spec.Style)
		if err != nil {
			return model.Band{}, model.EdgeError(addr.At(edge), err)
		}

		// 3) Build on the side actually used
		side := spec
		side.Direction = roles.Rail
		t, err := Build(side, edge, flat.Facets[i].Triangle, fp)
		if err != nil {
			return model.Band{}, model.EdgeError(addr.At(edge), err)
		}
		out.Facets[i] = out.Facets[i].WithTab(t)
	}
	return out, nil
}

func footprints(m model.Model, partner model.EdgeAddress, panel, flat geom.Triangle, edge geom.Edge, style model.TabStyle) (Footprints, error) {
	nf, err := m.Facet(partner.FacetAddress)
	if err != nil {
		return Footprints{}, err
	}
	first, err := Footprint(panel, flat, edge, nf.Triangle)
	if err != nil {
		return Footprints{}, err
	}
	fp := Footprints{First: first}
	if style != model.StyleMultiFacetFull && style != model.StyleMultiFacetTrapezoid {
		return fp, nil
	}

	nb, err := m.Band(partner.Tube, partner.Band)
	if err != nil {
		return Footprints{}, err
	}
	j := partner.Facet + 1
	if j >= len(nb.Facets) {
		j = partner.Facet - 1
	}
	if j < 0 {
		return Footprints{}, ErrNeedSecond
	}
	second, _, err := NeighborFootprint(nf.Triangle, first, nb.Facets[j].Triangle)
	if err != nil {
		return Footprints{}, err
	}
	fp.Second = &second
	return fp, nil
}
