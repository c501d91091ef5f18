// SPDX-License-Identifier: MIT

package panel

import (
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/tab"
)

// Build computes the panel of the flattened facet f at addr.
//
// Steps:
//  1. Insets from the edge cut angles (a facet without metadata is all
//     boundary, cut angle 0).
//  2. Inset and back-face triangles.
//  3. Holes on the inset edges of partnered edges, stored in the returned
//     facet's metadata. Existing holes are replaced.
//  4. Outline with the tab spliced in.
//
// Errors are returned as *model.AddressError.
//
// Complexity: O(1) time, O(H) space for H holes.
func Build(addr model.FacetAddress, f model.Facet, cfg Config) (PanelPattern, error) {
	var meta model.FacetMeta
	if f.Meta != nil {
		meta = f.Meta.Clone()
	}

	// 1) Insets
	back, hole := Insets(meta, cfg)

	// 2) Triangles
	inset, err := InsetTriangle(f.Triangle, hole)
	if err != nil {
		return PanelPattern{}, model.FacetError(addr, err)
	}
	backFace, err := InsetTriangle(f.Triangle, back)
	if err != nil {
		return PanelPattern{}, model.FacetError(addr, err)
	}

	// 3) Holes
	for _, e := range geom.Edges {
		meta.Edges[e].Holes = nil
		if meta.Edges[e].Partner == nil {
			continue
		}
		holes, err := PlaceHoles(inset, e, cfg.Holes)
		if err != nil {
			return PanelPattern{}, model.EdgeError(addr.At(e), err)
		}
		meta.Edges[e].Holes = holes
	}

	out := f.WithMeta(meta)
	return PanelPattern{
		Address:  addr,
		Facet:    out,
		Points:   tab.Outline(out),
		Inset:    inset,
		BackFace: backFace,
	}, nil
}
