// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// Layer names the group a shape is drawn in.
type Layer string

const (
	LayerCut   Layer = "CUT"
	LayerScore Layer = "SCORE"
	LayerHoles Layer = "HOLES"
	LayerBack  Layer = "BACK"
	LayerHinge Layer = "HINGE"
)

// Layers lists every layer in drawing order.
var Layers = []Layer{LayerBack, LayerCut, LayerScore, LayerHinge, LayerHoles}

var (
	// ErrEmpty indicates a drawing without shapes.
	ErrEmpty = errors.New("export: nothing to draw")

	// ErrTooLarge indicates a raster larger than MaxPixels on a side.
	ErrTooLarge = errors.New("export: image too large")
)

// MaxPixels bounds each side of a rendered image.
const MaxPixels = 16384

// Path is a polyline on one layer.
type Path struct {
	Layer  Layer
	Points []r3.Vec
	Closed bool
}

// Circle is a hole on one layer.
type Circle struct {
	Layer  Layer
	Center r3.Vec
	Radius float64
}

// Drawing is a flat list of layered shapes in sheet units.
type Drawing struct {
	Paths   []Path
	Circles []Circle
}

// Empty reports whether d has no shapes.
func (d Drawing) Empty() bool {
	return len(d.Paths) == 0 && len(d.Circles) == 0
}

// Bounds returns the box around every path point and circle.
func (d Drawing) Bounds() orb.Bound {
	var b orb.Bound
	first := true
	extend := func(p orb.Point) {
		if first {
			b, first = p.Bound(), false
			return
		}
		b = b.Extend(p)
	}
	for _, p := range d.Paths {
		for _, q := range p.Points {
			extend(orb.Point{q.X, q.Y})
		}
	}
	for _, c := range d.Circles {
		extend(orb.Point{c.Center.X - c.Radius, c.Center.Y - c.Radius})
		extend(orb.Point{c.Center.X + c.Radius, c.Center.Y + c.Radius})
	}
	return b
}

// Count returns the number of paths and circles on layer l.
func (d Drawing) Count(l Layer) int {
	n := 0
	for _, p := range d.Paths {
		if p.Layer == l {
			n++
		}
	}
	for _, c := range d.Circles {
		if c.Layer == l {
			n++
		}
	}
	return n
}

// Options controls Build.
//
//   - BackFace — also draw back-face outlines.
//   - HingeGap — spacing between the sheet and the hinge column and
//     between hinges.
type Options struct {
	BackFace bool
	HingeGap float64
}

// DefaultOptions returns HingeGap = 10 without back faces.
func DefaultOptions() Options {
	return Options{HingeGap: 10}
}

// PNGOptions controls RenderPNG.
//
//   - Scale     — pixels per sheet unit.
//   - Margin    — blank border in pixels.
//   - LineWidth — stroke width in pixels.
type PNGOptions struct {
	Scale     float64
	Margin    float64
	LineWidth float64
}

// DefaultPNGOptions returns 2 px per unit, a 20 px margin and 1 px lines.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Scale: 2, Margin: 20, LineWidth: 1}
}

// Validate reports non-positive Scale or LineWidth and negative Margin.
func (o PNGOptions) Validate() error {
	if !(o.Scale > 0) || !(o.LineWidth > 0) || o.Margin < 0 {
		return fmt.Errorf("export: invalid png options %+v", o)
	}
	return nil
}
