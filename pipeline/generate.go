// SPDX-License-Identifier: MIT
// Package: lvfold/pipeline
//
// generate.go - band fan-out, hinges, sheet and audit.

package pipeline

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvfold"
	"github.com/katalvlaran/lvfold/edgemeta"
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/layout"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
	"golang.org/x/sync/errgroup"
)

// Generate computes the fabrication patterns of m. m is not modified.
//
// Errors from any band abort the run and are returned as is, typically
// a *model.AddressError; ctx cancellation returns ctx.Err().
//
// Complexity: O(F + S·n) time over F facets plus the realign search per band, O(F) space.
func Generate(ctx context.Context, m model.Model, cfg Config, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := lvfold.Logger()

	// 1) Edge metadata
	meta, err := edgemeta.Compute(m)
	if err != nil {
		return Result{}, err
	}

	// 2) Bands in parallel, results by index
	tubes := make([][]layout.BandPattern, len(meta.Tubes))
	g, gctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for t, tube := range meta.Tubes {
		tubes[t] = make([]layout.BandPattern, len(tube.Bands))
		for b := range tube.Bands {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				bp, err := band(meta, t, b, cfg)
				if err != nil {
					return err
				}
				tubes[t][b] = bp
				log.Debug("band done", slog.Int("tube", t), slog.Int("band", b), slog.Int("panels", len(bp.Panels)))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	res := Result{Model: meta, Tubes: tubes}

	// 3) Hinges
	if cfg.Hinges {
		if res.Hinges, err = hinges(res, cfg.Panel.Hinge); err != nil {
			return Result{}, err
		}
	}

	// 4) Sheet
	gap := cfg.Gap
	if s, ok := cfg.Distribution.(layout.Spaced); ok {
		gap = s.Gap
	}
	var all []layout.BandPattern
	for _, tube := range tubes {
		all = append(all, tube...)
	}
	res.Sheet = layout.Stack(all, gap)
	res.Stats = layout.Measure(res.Sheet)

	// 5) Audit
	var audit []edgemeta.Option
	if cfg.Tolerance > 0 {
		audit = append(audit, edgemeta.WithTolerance(cfg.Tolerance))
	}
	res.Violations = edgemeta.ValidateAllPanels(meta, audit...)
	return res, nil
}

// band runs the single-band stages for band (t, b) of meta.
func band(meta model.Model, t, b int, cfg Config) (layout.BandPattern, error) {
	src := meta.Tubes[t].Bands[b]
	opts := append(append([]strip.Option(nil), cfg.Flatten...), strip.WithAddress(t, b))
	flat, err := strip.Flatten(src, opts...)
	if err != nil {
		return layout.BandPattern{}, err
	}
	if cfg.Tab != nil {
		if flat, err = tab.Attach(meta, t, b, flat, *cfg.Tab); err != nil {
			return layout.BandPattern{}, err
		}
	}

	bp := layout.BandPattern{
		Tube:        t,
		Band:        b,
		Orientation: src.Orientation,
		Strut:       src.IsStrut(),
		Panels:      make([]panel.PanelPattern, len(flat.Facets)),
	}
	for i, f := range flat.Facets {
		p, err := panel.Build(model.FacetAddress{Tube: t, Band: b, Facet: i}, f, cfg.Panel)
		if err != nil {
			return layout.BandPattern{}, err
		}
		bp.Panels[i] = p
	}

	d := cfg.Distribution
	if d == nil {
		d = layout.None{}
	}
	return layout.Distribute(bp, d)
}

// hinges emits one connector per partner pair that crosses a band
// boundary, owned by the lower address.
func hinges(res Result, cfg panel.HingeConfig) ([]panel.HingePattern, error) {
	var out []panel.HingePattern
	err := res.Model.Walk(func(addr model.FacetAddress, _ model.Facet) error {
		for _, e := range geom.Edges {
			ea := addr.At(e)
			partner, ok, err := res.Model.Partner(ea)
			if err != nil {
				return err
			}
			if !ok || addr.SameBand(partner.FacetAddress) || !ea.Less(partner) {
				continue
			}
			pa, err := res.Panel(addr)
			if err != nil {
				return err
			}
			pb, err := res.Panel(partner.FacetAddress)
			if err != nil {
				return err
			}
			h, err := panel.HingeOutline(pa, e, pb, partner.Edge, cfg)
			if err != nil {
				return err
			}
			out = append(out, h)
		}
		return nil
	})
	return out, err
}
