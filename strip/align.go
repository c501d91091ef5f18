// SPDX-License-Identifier: MIT
// Package: lvfold/strip
//
// align.go - placing one triangle onto a target edge.

package strip

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// AlignTriangle places src in the XY plane with pair.Lead at pLead and
// pair.Follow at pFollow, and returns the placed triangle.
//
// Algorithm:
//  1. θ = angle between src's lead→follow and lead→free edges.
//  2. Rotate the target lead→follow vector by sign·θ about Z.
//  3. Scale it to the source lead→free length and add it to pLead.
//
// The constrained points are copied verbatim, so a facet aligned onto its
// predecessor's points shares that edge bit for bit. Only the sign of sign
// is used.
//
// Errors:
//   - geom.ErrSameVertex if pair names one vertex twice.
//   - ErrZeroEdge if pLead == pFollow.
//
// Complexity: O(1) time, O(1) space.
func AlignTriangle(src geom.Triangle, pair Pair, pLead, pFollow r3.Vec, sign float64) (geom.Triangle, error) {
	free, err := geom.FreeVertex(pair.Lead, pair.Follow)
	if err != nil {
		return geom.Triangle{}, err
	}
	lead, follow, loose := src.At(pair.Lead), src.At(pair.Follow), src.At(free)
	constrained := r3.Sub(follow, lead)
	freeArm := r3.Sub(loose, lead)
	theta := geom.AngleBetween(constrained, freeArm)

	target := r3.Sub(pFollow, pLead)
	target.Z = 0
	n := r3.Norm(target)
	if n == 0 {
		return geom.Triangle{}, fmt.Errorf("%w: lead and follow coincide at %v", ErrZeroEdge, pLead)
	}
	rotated := geom.RotateZ(target, math.Copysign(1, sign)*theta)
	placed := r3.Add(pLead, r3.Scale(r3.Norm(freeArm)/n, rotated))
	placed.Z = 0

	return geom.Triangle{}.
		With(pair.Lead, pLead).
		With(pair.Follow, pFollow).
		With(free, placed), nil
}

// AlignAway is AlignTriangle with the sign chosen so that the free vertex
// lands on the opposite side of the lead→follow line from away. It unfolds
// a neighbor across an edge without knowing its winding.
func AlignAway(src geom.Triangle, pair Pair, pLead, pFollow, away r3.Vec) (geom.Triangle, error) {
	t, err := AlignTriangle(src, pair, pLead, pFollow, +1)
	if err != nil {
		return geom.Triangle{}, err
	}
	free, _ := geom.FreeVertex(pair.Lead, pair.Follow)
	if geom.Side(pLead, pFollow, t.At(free))*geom.Side(pLead, pFollow, away) > 0 {
		return AlignTriangle(src, pair, pLead, pFollow, -1)
	}
	return t, nil
}
