// SPDX-License-Identifier: MIT

package export

import (
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/layout"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/pipeline"
	"gonum.org/v1/gonum/spatial/r3"
)

// Build collects the sheet and hinges of res into a Drawing.
func Build(res pipeline.Result, opts Options) Drawing {
	var d Drawing

	// 1) Sheet panels
	for _, b := range res.Sheet {
		for _, p := range b.Panels {
			if opts.BackFace {
				pts := p.BackFace.Points()
				d.Paths = append(d.Paths, Path{Layer: LayerBack, Points: pts[:], Closed: true})
			}
			d.Paths = append(d.Paths, Path{Layer: LayerCut, Points: p.Points, Closed: true})
			if s := model.ScoreLine(p.Facet.Tab); s != nil {
				d.Paths = append(d.Paths, Path{Layer: LayerScore, Points: []r3.Vec{s.From, s.To}})
			}
			d.holes(LayerHoles, p.Holes())
		}
	}

	// 2) Hinge column right of the sheet
	x, y := 0.0, 0.0
	if len(res.Sheet) > 0 {
		x = res.Stats.Bounds.Max.X() + opts.HingeGap
		y = res.Stats.Bounds.Min.Y()
	}
	for _, h := range res.Hinges {
		if len(h.Outline) == 0 {
			continue
		}
		bound := layout.Bounds(h.Outline)
		r := geom.Translation(r3.Vec{X: x - bound.Min.X(), Y: y - bound.Min.Y()})
		d.Paths = append(d.Paths, Path{Layer: LayerHinge, Points: r.ApplyAll(h.Outline), Closed: true})
		moved := make([]model.Hole, len(h.Holes))
		for i, hole := range h.Holes {
			hole.Center = r.Apply(hole.Center)
			moved[i] = hole
		}
		d.holes(LayerHinge, moved)
		y += bound.Max.Y() - bound.Min.Y() + opts.HingeGap
	}
	return d
}

func (d *Drawing) holes(l Layer, hs []model.Hole) {
	for _, h := range hs {
		d.Circles = append(d.Circles, Circle{Layer: l, Center: h.Center, Radius: h.Diameter / 2})
	}
}
