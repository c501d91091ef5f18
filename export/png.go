// SPDX-License-Identifier: MIT
// Package: lvfold/export
//
// png.go - raster previews.

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
)

type rgb struct{ r, g, b float64 }

var layerInk = map[Layer]rgb{
	LayerCut:   {0, 0, 0},
	LayerScore: {0.1, 0.3, 0.9},
	LayerHoles: {0.85, 0.1, 0.1},
	LayerBack:  {0.6, 0.6, 0.6},
	LayerHinge: {0.1, 0.6, 0.2},
}

// Size returns the pixel size RenderPNG uses for d.
func Size(d Drawing, o PNGOptions) (w, h int) {
	b := d.Bounds()
	w = int(math.Ceil((b.Max.X()-b.Min.X())*o.Scale + 2*o.Margin))
	h = int(math.Ceil((b.Max.Y()-b.Min.Y())*o.Scale + 2*o.Margin))
	return max(w, 1), max(h, 1)
}

// RenderPNG draws d on a white canvas and writes it to w as PNG.
// Score lines are dashed.
//
// Errors: ErrEmpty, ErrTooLarge, invalid options, encoder errors.
func RenderPNG(w io.Writer, d Drawing, o PNGOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if d.Empty() {
		return ErrEmpty
	}
	width, height := Size(d, o)
	if width > MaxPixels || height > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(o.LineWidth)

	b := d.Bounds()
	px := func(x, y float64) (float64, float64) {
		return o.Margin + (x-b.Min.X())*o.Scale, o.Margin + (b.Max.Y()-y)*o.Scale
	}

	// layer by layer so later layers paint over earlier ones
	for _, l := range Layers {
		ink := layerInk[l]
		dc.SetRGB(ink.r, ink.g, ink.b)
		if l == LayerScore {
			dc.SetDash(4*o.LineWidth, 3*o.LineWidth)
		} else {
			dc.ClearDash()
		}
		for _, p := range d.Paths {
			if p.Layer != l || len(p.Points) < 2 {
				continue
			}
			dc.MoveTo(px(p.Points[0].X, p.Points[0].Y))
			for _, q := range p.Points[1:] {
				dc.LineTo(px(q.X, q.Y))
			}
			if p.Closed {
				dc.ClosePath()
			}
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("export: stroke %s: %w", l, err)
			}
		}
		for _, c := range d.Circles {
			if c.Layer != l {
				continue
			}
			x, y := px(c.Center.X, c.Center.Y)
			dc.DrawCircle(x, y, c.Radius*o.Scale)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("export: stroke %s: %w", l, err)
			}
		}
	}
	return dc.EncodePNG(w)
}
