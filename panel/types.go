// SPDX-License-Identifier: MIT

package panel

import (
	"errors"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by panel.
var (
	// ErrInsetTooLarge indicates insets that invert or collapse the triangle.
	ErrInsetTooLarge = errors.New("panel: inset inverts the triangle")

	// ErrBadHoles indicates a hole configuration without a usable layout.
	ErrBadHoles = errors.New("panel: invalid hole configuration")

	// ErrNotPartners indicates a hinge requested between edges that are not partners.
	ErrNotPartners = errors.New("panel: edges are not partners")

	// ErrHingeTooWide indicates a hinge wider than a panel can carry.
	ErrHingeTooWide = errors.New("panel: hinge does not fit the panel")
)

// Placement selects how holes are laid out along an edge.
type Placement int

const (
	// PlaceNone disables holes.
	PlaceNone Placement = iota
	// PlaceSpaced puts two holes Fraction in from each end of the edge.
	PlaceSpaced
	// PlaceVertex spreads Count holes evenly between the edge endpoints.
	PlaceVertex
)

// String returns "none", "spaced" or "vertex".
func (p Placement) String() string {
	switch p {
	case PlaceSpaced:
		return "spaced"
	case PlaceVertex:
		return "vertex"
	}
	return "none"
}

// HoleConfig describes fastener holes.
//
//   - Diameter     — hole diameter.
//   - HeadDiameter — fastener head diameter; sets the minimum edge distance.
//   - MinInset     — minimum distance of the hole line from the front edge.
//   - Placement    — layout policy.
//   - Fraction     — PlaceSpaced: distance from each end, in (0, 0.5).
//   - Count        — PlaceVertex: number of holes, ≥ 1.
type HoleConfig struct {
	Diameter     float64
	HeadDiameter float64
	MinInset     float64
	Placement    Placement
	Fraction     float64
	Count        int
}

// HingeConfig shapes hinge connectors.
//
//   - Width  — how far the hinge reaches into each panel, > 0.
//   - Margin — clearance kept from the panel's side edges, ≥ 0.
type HingeConfig struct {
	Width  float64
	Margin float64
}

// Config configures Build and HingeOutline.
type Config struct {
	Thickness float64
	Holes     HoleConfig
	Hinge     HingeConfig
}

// DefaultConfig returns 3 mm stock with two spaced M3 holes per shared
// edge and 12 mm hinges.
func DefaultConfig() Config {
	return Config{
		Thickness: 3,
		Holes: HoleConfig{
			Diameter:     3.2,
			HeadDiameter: 5.5,
			MinInset:     4,
			Placement:    PlaceSpaced,
			Fraction:     0.2,
		},
		Hinge: HingeConfig{Width: 12, Margin: 2},
	}
}

// PanelPattern is one flattened facet ready for cutting.
//
//   - Facet     — flattened facet; its metadata carries the placed holes.
//   - Points    — closed outline of the facet with its tab spliced in.
//   - Inset     — usable face bounded by the hole insets.
//   - BackFace  — back-face projection bounded by the bevel insets.
type PanelPattern struct {
	Address  model.FacetAddress
	Facet    model.Facet
	Points   []r3.Vec
	Inset    geom.Triangle
	BackFace geom.Triangle
}

// Holes returns the holes of every edge in edge order.
func (p PanelPattern) Holes() []model.Hole {
	if p.Facet.Meta == nil {
		return nil
	}
	var out []model.Hole
	for _, e := range geom.Edges {
		out = append(out, p.Facet.Meta.Edges[e].Holes...)
	}
	return out
}

// HingePattern is a connector joining two panels across a shared edge, in
// its own frame with the shared edge on the X axis.
type HingePattern struct {
	Edge    model.EdgeAddress
	Partner model.EdgeAddress
	Outline []r3.Vec
	Holes   []model.Hole
}

// Transform returns a copy moved by r.
func (p PanelPattern) Transform(r geom.Rigid) PanelPattern {
	p.Facet = p.Facet.Transform(r)
	p.Points = r.ApplyAll(p.Points)
	p.Inset = p.Inset.Transform(r)
	p.BackFace = p.BackFace.Transform(r)
	return p
}
