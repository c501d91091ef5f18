// SPDX-License-Identifier: MIT
// Package: lvfold/export
//
// dxf.go - DXF cut-file writer.

package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

var layerColors = map[Layer]color.ColorNumber{
	LayerCut:   color.White,
	LayerScore: color.Blue,
	LayerHoles: color.Red,
	LayerBack:  color.Cyan,
	LayerHinge: color.Green,
}

// WriteDXF saves d to path as a DXF drawing with one layer per Layer.
// Closed paths repeat their first vertex.
//
// Errors: ErrEmpty, or the write error of the DXF library.
func WriteDXF(path string, d Drawing) error {
	if d.Empty() {
		return ErrEmpty
	}
	dw := dxf.NewDrawing()
	dw.Header().LtScale = 1.0
	for _, l := range Layers {
		dw.AddLayer(string(l), layerColors[l], dxf.DefaultLineType, false)
	}

	for _, p := range d.Paths {
		if len(p.Points) < 2 {
			continue
		}
		dw.ChangeLayer(string(p.Layer))
		n := len(p.Points)
		if p.Closed {
			n++
		}
		lw := entity.NewLwPolyline(n)
		for j := 0; j < n; j++ {
			q := p.Points[j%len(p.Points)]
			lw.Vertices[j] = []float64{q.X, q.Y}
		}
		dw.AddEntity(lw)
	}
	for _, c := range d.Circles {
		dw.ChangeLayer(string(c.Layer))
		if _, err := dw.Circle(c.Center.X, c.Center.Y, 0, c.Radius); err != nil {
			return fmt.Errorf("export: circle on %s: %w", c.Layer, err)
		}
	}

	if err := dw.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
