// SPDX-License-Identifier: MIT
// Package: lvfold/strip
//
// roles.go - static edge-role table per orientation and parity.

package strip

import (
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
)

// roleRow holds the even and odd rows of one tiling.
type roleRow [2]Roles

var (
	circumferenceRoles = roleRow{
		{Leading: Pair{geom.A, geom.B}, Trailing: Pair{geom.B, geom.C}, Turn: +1, Rail: model.Greater},
		{Leading: Pair{geom.B, geom.A}, Trailing: Pair{geom.A, geom.C}, Turn: -1, Rail: model.Lesser},
	}
	helicalRightRoles = roleRow{
		{Leading: Pair{geom.B, geom.A}, Trailing: Pair{geom.A, geom.C}, Turn: -1, Rail: model.Lesser},
		{Leading: Pair{geom.A, geom.B}, Trailing: Pair{geom.B, geom.C}, Turn: +1, Rail: model.Greater},
	}
	// same labels as helical-right with the rails swapped
	helicalLeftRoles = roleRow{
		{Leading: Pair{geom.B, geom.A}, Trailing: Pair{geom.A, geom.C}, Turn: +1, Rail: model.Greater},
		{Leading: Pair{geom.A, geom.B}, Trailing: Pair{geom.B, geom.C}, Turn: -1, Rail: model.Lesser},
	}
	strutRoles = roleRow{
		{Leading: Pair{geom.C, geom.B}, Trailing: Pair{geom.A, geom.B}, Turn: +1, Rail: model.Greater},
		{Leading: Pair{geom.B, geom.A}, Trailing: Pair{geom.B, geom.C}, Turn: +1, Rail: model.Lesser},
	}
)

// RolesFor returns the table row for a facet.
//
// Errors:
//   - ErrUnsupportedStrut for struts that are not helical-right.
//   - ErrUnknownOrientation for orientations outside the enum.
func RolesFor(o model.Orientation, even, strut bool) (Roles, error) {
	parity := 1
	if even {
		parity = 0
	}
	if strut {
		if o != model.HelicalRight {
			return Roles{}, fmt.Errorf("%w: got %s", ErrUnsupportedStrut, o)
		}
		return strutRoles[parity], nil
	}
	switch o {
	case model.Circumference:
		return circumferenceRoles[parity], nil
	case model.HelicalRight:
		return helicalRightRoles[parity], nil
	case model.HelicalLeft:
		return helicalLeftRoles[parity], nil
	}
	return Roles{}, fmt.Errorf("%w: %d", ErrUnknownOrientation, int(o))
}

// Lookup returns the {lead, follow} pair for one edge purpose.
func Lookup(o model.Orientation, even, strut bool, p Purpose) (Pair, error) {
	r, err := RolesFor(o, even, strut)
	if err != nil {
		return Pair{}, err
	}
	return r.Pair(p), nil
}

// RolesAt returns the row for facet index i of band b.
func RolesAt(b model.Band, i int) (Roles, error) {
	return RolesFor(b.Orientation, i%2 == 0, b.IsStrut())
}
