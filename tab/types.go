// SPDX-License-Identifier: MIT

package tab

import (
	"errors"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
)

// Sentinel errors returned by tab.
var (
	// ErrNotAdjacent indicates a footprint source that shares no edge with the facet.
	ErrNotAdjacent = errors.New("tab: footprint source is not adjacent")

	// ErrNeedSecond indicates a multi-facet style built without a second footprint.
	ErrNeedSecond = errors.New("tab: multi-facet style needs two footprints")

	// ErrBadWidth indicates a Width with neither or both fields set.
	ErrBadWidth = errors.New("tab: width needs exactly one of length or fraction")

	// ErrTabTooWide indicates a trapezoid width reaching past a side.
	ErrTabTooWide = errors.New("tab: width exceeds footprint side")

	// ErrBadScore indicates a score fraction outside [0, 0.5).
	ErrBadScore = errors.New("tab: score fraction must be in [0, 0.5)")
)

// Width is how far a trapezoid flap extends along its sides: a fixed
// Length, or a Fraction of the base (attaching edge) length.
type Width struct {
	Length   float64 `yaml:"length,omitempty"`
	Fraction float64 `yaml:"fraction,omitempty"`
}

// Spec describes a tab.
//
//   - Style     — union variant to build.
//   - Width     — trapezoid width (ignored for full styles).
//   - Score     — fraction of the base inset from each end for a score line;
//     0 disables it (trapezoid styles only).
//   - Direction — strip side(s) that carry tabs.
type Spec struct {
	Style     model.TabStyle
	Width     Width
	Score     float64
	Direction model.TabDirection
}

// DefaultSpec returns a trapezoid tab at 40% of the base length with a
// score line 5% in from each end, on the greater side.
func DefaultSpec() Spec {
	return Spec{
		Style:     model.StyleTrapezoid,
		Width:     Width{Fraction: 0.4},
		Score:     0.05,
		Direction: model.Greater,
	}
}

// Footprints are the unfolded source triangles of one tab. Second is only
// used by multi-facet styles.
type Footprints struct {
	First  geom.Triangle
	Second *geom.Triangle
}
