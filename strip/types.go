// SPDX-License-Identifier: MIT

package strip

import (
	"errors"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by strip.
var (
	// ErrUnsupportedStrut indicates a strut orientation other than helical-right.
	ErrUnsupportedStrut = errors.New("strip: struts support only helical-right tiling")

	// ErrUnknownOrientation indicates an orientation value outside the enum.
	ErrUnknownOrientation = errors.New("strip: unknown band orientation")

	// ErrZeroEdge indicates a target edge of zero length during alignment.
	ErrZeroEdge = errors.New("strip: target edge has zero length")
)

// Purpose selects which shared edge of a facet a lookup is about.
type Purpose int

const (
	// Leading is the edge shared with the previous facet.
	Leading Purpose = iota
	// Trailing is the edge shared with the next facet; tabs and distribution
	// offsets are measured from it.
	Trailing
)

// Pair names the two constrained vertices of an edge. Lead is the pivot
// that the free vertex is rotated about.
type Pair struct {
	Lead, Follow geom.Vertex
}

// Edge returns the triangle edge joining Lead and Follow.
func (p Pair) Edge() geom.Edge {
	e, _ := geom.EdgeBetween(p.Lead, p.Follow)
	return e
}

// Roles is one row of the edge-role table.
//
//   - Leading, Trailing — constrained pairs shared with previous/next facet.
//   - Turn              — +1 or −1, the rotation sense reproducing the facet
//     winding when its free vertex is placed from the Leading pair.
//   - Rail              — strip side (Lesser or Greater) of the third edge.
type Roles struct {
	Leading  Pair
	Trailing Pair
	Turn     float64
	Rail     model.TabDirection
}

// RailEdge returns the edge that is neither leading nor trailing.
func (r Roles) RailEdge() geom.Edge {
	l, t := r.Leading.Edge(), r.Trailing.Edge()
	for _, e := range geom.Edges {
		if e != l && e != t {
			return e
		}
	}
	return l
}

// Pair returns the pair for purpose p.
func (r Roles) Pair(p Purpose) Pair {
	if p == Trailing {
		return r.Trailing
	}
	return r.Leading
}

// Options configures Flatten.
//
//   - Origin    — where the first facet's lead vertex is placed.
//   - Direction — direction of the first leading edge; Z is ignored.
//   - Mirror    — lay the pattern out mirrored (flips every turn sign).
//   - Tube/Band — address used when reporting per-facet errors.
type Options struct {
	Origin    r3.Vec
	Direction r3.Vec
	Mirror    bool
	Tube      int
	Band      int
}

// DefaultOptions returns Origin (0,0,0), Direction +X, no mirroring.
func DefaultOptions() Options {
	return Options{Direction: r3.Vec{X: 1}}
}

// Option customizes Options.
type Option func(*Options)

// WithOrigin sets the placement of the first lead vertex.
func WithOrigin(p r3.Vec) Option {
	return func(o *Options) {
		o.Origin = r3.Vec{X: p.X, Y: p.Y}
	}
}

// WithDirection sets the direction of the first leading edge.
// Panics if d has no XY extent.
func WithDirection(d r3.Vec) Option {
	if d.X == 0 && d.Y == 0 {
		panic("strip: WithDirection(zero)")
	}
	return func(o *Options) {
		o.Direction = r3.Vec{X: d.X, Y: d.Y}
	}
}

// WithMirror flips the rotation sense of every facet.
func WithMirror() Option {
	return func(o *Options) {
		o.Mirror = true
	}
}

// WithAddress sets the tube and band reported in errors.
func WithAddress(tube, band int) Option {
	return func(o *Options) {
		o.Tube, o.Band = tube, band
	}
}
