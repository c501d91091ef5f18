// SPDX-License-Identifier: MIT
// Package: lvfold/layout
//
// distribute.go - per-band panel distribution.

package layout

import (
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
	"gonum.org/v1/gonum/spatial/r3"
)

// Distribute applies d to band b and returns the moved band. b itself is
// not modified. A band without points passes through unchanged.
//
// Complexity: O(n) time, O(n) space for n panels; Realign adds the
// MinWidthAngle search.
func Distribute(b BandPattern, d Distribution) (BandPattern, error) {
	switch d := d.(type) {
	case None, Spaced:
		return b.Clone(), nil
	case Contiguous:
		out, err := contiguous(b, d.Offset)
		if err != nil || !d.Realign || len(out.Points()) == 0 {
			return out, err
		}
		out, _, err = Realign(out)
		return out, err
	}
	return BandPattern{}, fmt.Errorf("%w: %T", ErrUnknownDistribution, d)
}

// contiguous re-places every panel after the first against its
// predecessor.
//
// Steps per panel i ≥ 1:
//  1. Target = predecessor's trailing edge moved offset along its normal,
//     away from the predecessor's third vertex.
//  2. The triangle is realigned onto the target edge; tab, holes and
//     insets follow with the same rigid motion.
func contiguous(b BandPattern, offset float64) (BandPattern, error) {
	out := b.Clone()
	for i := 1; i < len(out.Panels); i++ {
		addr := out.Panels[i].Address
		prevRoles, err := b.Roles(i - 1)
		if err != nil {
			return BandPattern{}, model.FacetError(addr, err)
		}
		roles, err := b.Roles(i)
		if err != nil {
			return BandPattern{}, model.FacetError(addr, err)
		}

		// 1) Target edge
		prev := out.Panels[i-1].Facet.Triangle
		t0, t1 := prev.At(prevRoles.Trailing.Lead), prev.At(prevRoles.Trailing.Follow)
		third := prev.At(prevRoles.Trailing.Edge().Opposite())
		delta := r3.Sub(geom.LineThrough(t0, t1).Offset(-offset, third).Point, t0)
		q0, q1 := r3.Add(t0, delta), r3.Add(t1, delta)

		// 2) Move the panel
		cur := out.Panels[i]
		tri := cur.Facet.Triangle
		c0, c1 := tri.At(roles.Leading.Lead), tri.At(roles.Leading.Follow)
		moved := cur.Transform(geom.RigidFromSegments(c0, c1, q0, q1))
		aligned, err := strip.AlignAway(tri, roles.Leading, q0, q1, r3.Add(third, delta))
		if err != nil {
			return BandPattern{}, model.FacetError(addr, err)
		}
		moved.Facet.Triangle = aligned
		moved.Points = tab.Outline(moved.Facet)
		out.Panels[i] = moved
	}
	return out, nil
}
