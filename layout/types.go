// SPDX-License-Identifier: MIT

package layout

import (
	"errors"

	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/katalvlaran/lvfold/strip"
)

// Sentinel errors returned by layout.
var (
	// ErrEmpty indicates an operation that needs at least one point.
	ErrEmpty = errors.New("layout: no points")

	// ErrVertical indicates a point set with no spread in X to fit a slope to.
	ErrVertical = errors.New("layout: points are vertical")

	// ErrUnknownDistribution indicates a Distribution outside the closed union.
	ErrUnknownDistribution = errors.New("layout: unknown distribution")
)

// SearchSteps is the number of 1° rotations sampled by MinWidthAngle.
const SearchSteps = 180

// Distribution is a closed union: None, Contiguous or Spaced.
type Distribution interface {
	distribution()
}

// None leaves panels in place.
type None struct{}

// Contiguous places panels side by side Offset apart, optionally realigned.
type Contiguous struct {
	Offset  float64
	Realign bool
}

// Spaced leaves panels in place and separates stacked bands by Gap.
type Spaced struct {
	Gap float64
}

func (None) distribution()       {}
func (Contiguous) distribution() {}
func (Spaced) distribution()     {}

// BandPattern is the panels of one flattened band in facet order.
type BandPattern struct {
	Tube, Band  int
	Orientation model.Orientation
	Strut       bool
	Panels      []panel.PanelPattern
}

// Roles returns the edge roles of panel i.
func (b BandPattern) Roles(i int) (strip.Roles, error) {
	return strip.RolesFor(b.Orientation, i%2 == 0, b.Strut)
}

// Clone returns a copy that shares no panel slice with b.
func (b BandPattern) Clone() BandPattern {
	b.Panels = append([]panel.PanelPattern(nil), b.Panels...)
	return b
}
