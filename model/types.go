// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by model.
var (
	// ErrAddressOutOfRange indicates an address that names no facet.
	ErrAddressOutOfRange = errors.New("model: address out of range")

	// ErrNoMeta indicates a facet without edge metadata where metadata is required.
	ErrNoMeta = errors.New("model: facet has no edge metadata")

	// ErrUnknownTab indicates a Tab implementation outside the closed union.
	ErrUnknownTab = errors.New("model: unknown tab style")

	// ErrBadFile indicates a model file that does not describe a valid model.
	ErrBadFile = errors.New("model: invalid model file")
)

// Orientation tags how a band winds around its tube.
type Orientation int

const (
	// Circumference bands run around the tube.
	Circumference Orientation = iota
	// HelicalLeft bands spiral with a left-hand twist.
	HelicalLeft
	// HelicalRight bands spiral with a right-hand twist.
	HelicalRight
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Circumference:
		return "circumference"
	case HelicalLeft:
		return "helical-left"
	case HelicalRight:
		return "helical-right"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// StrutPlacement places a strut relative to the surface.
type StrutPlacement int

const (
	// StrutOutside struts sit on the outer face.
	StrutOutside StrutPlacement = iota
	// StrutInside struts sit on the inner face.
	StrutInside
	// StrutHalf struts straddle the surface.
	StrutHalf
)

// RadiateStyle controls how strut facets fan out.
type RadiateStyle int

const (
	// RadiateNone keeps the strut parallel to the band.
	RadiateNone RadiateStyle = iota
	// RadiateCenter fans the strut around its centerline.
	RadiateCenter
	// RadiateEdge fans the strut around one of its rails.
	RadiateEdge
)

// StrutTags carries the extra layout tags a Strut has over a Band.
type StrutTags struct {
	Placement StrutPlacement
	Radiate   RadiateStyle
}

// Crease is the fold polarity of an edge.
type Crease int

const (
	// CreaseNone marks a boundary edge without a partner.
	CreaseNone Crease = iota
	// Valley is a concave fold.
	Valley
	// Mountain is a convex fold.
	Mountain
)

// String returns "none", "valley" or "mountain".
func (c Crease) String() string {
	switch c {
	case Valley:
		return "valley"
	case Mountain:
		return "mountain"
	}
	return "none"
}

// Hole is one fastener placement in the flattening plane.
type Hole struct {
	Center       r3.Vec
	Diameter     float64
	HeadDiameter float64
}

// EdgeMeta is the per-edge metadata of a facet.
//
// Partner is nil for boundary edges. CutAngle is the signed bevel angle in
// radians, negative for valley creases.
type EdgeMeta struct {
	Partner  *EdgeAddress
	CutAngle float64
	Crease   Crease
	Holes    []Hole
}

// FacetMeta holds one EdgeMeta per edge, indexed by geom.Edge.
type FacetMeta struct {
	Edges [3]EdgeMeta
}

// Facet is one triangular panel with an optional tab and optional metadata.
type Facet struct {
	Triangle geom.Triangle
	Tab      Tab
	Meta     *FacetMeta
}

// Band is an ordered zig-zag strip of facets. Consecutive facets share an
// edge. A non-nil Strut marks the band as a strut.
type Band struct {
	Orientation Orientation
	Facets      []Facet
	Strut       *StrutTags
}

// Tube is an ordered list of bands.
type Tube struct {
	Bands []Band
}

// Model is the whole faceted surface: a list of tubes.
type Model struct {
	Tubes []Tube
}
