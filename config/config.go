// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvfold/edgemeta"
	"github.com/katalvlaran/lvfold/layout"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/katalvlaran/lvfold/pipeline"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used for keys a file leaves out.
func Default() PatternConfig {
	ts := tab.DefaultSpec()
	pc := panel.DefaultConfig()
	return PatternConfig{
		Flatten: Flatten{Direction: Point{X: 1}},
		Tab: Tab{
			Enabled:   true,
			Style:     ts.Style.String(),
			Width:     Width{Length: ts.Width.Length, Fraction: ts.Width.Fraction},
			Score:     ts.Score,
			Direction: ts.Direction.String(),
		},
		Panel: Panel{
			Thickness: pc.Thickness,
			Holes: Holes{
				Diameter:     pc.Holes.Diameter,
				HeadDiameter: pc.Holes.HeadDiameter,
				MinInset:     pc.Holes.MinInset,
				Placement:    pc.Holes.Placement.String(),
				Fraction:     pc.Holes.Fraction,
				Count:        pc.Holes.Count,
			},
			Hinge: Hinge{Width: pc.Hinge.Width, Margin: pc.Hinge.Margin},
		},
		Distribution: Distribution{Type: "contiguous", Offset: 5, Realign: true},
		Sheet:        Sheet{Gap: 10},
		Audit:        Audit{Tolerance: edgemeta.DefaultTolerance},
	}
}

// Parse decodes YAML over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (PatternConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return PatternConfig{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PatternConfig{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (PatternConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternConfig{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks every section and returns the first problem wrapped in
// ErrInvalid.
func (c PatternConfig) Validate() error {
	if c.Flatten.Direction == (Point{}) {
		return invalid("flatten.direction must be non-zero")
	}
	if _, err := c.TabSpec(); err != nil {
		return err
	}
	if _, err := c.PanelConfig(); err != nil {
		return err
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	switch {
	case c.Sheet.Gap < 0:
		return invalid("sheet.gap %g is negative", c.Sheet.Gap)
	case !(c.Audit.Tolerance > 0):
		return invalid("audit.tolerance must be positive")
	case c.Workers < 0:
		return invalid("workers %d is negative", c.Workers)
	}
	return nil
}

// FlattenOptions returns the strip options for the flatten section.
func (c PatternConfig) FlattenOptions() []strip.Option {
	opts := []strip.Option{
		strip.WithOrigin(r3.Vec{X: c.Flatten.Origin.X, Y: c.Flatten.Origin.Y}),
		strip.WithDirection(r3.Vec{X: c.Flatten.Direction.X, Y: c.Flatten.Direction.Y}),
	}
	if c.Flatten.Mirror {
		opts = append(opts, strip.WithMirror())
	}
	return opts
}

// TabSpec converts the tab section.
func (c PatternConfig) TabSpec() (tab.Spec, error) {
	styles := map[string]model.TabStyle{}
	for _, s := range []model.TabStyle{model.StyleFull, model.StyleTrapezoid, model.StyleMultiFacetFull, model.StyleMultiFacetTrapezoid} {
		styles[s.String()] = s
	}
	style, ok := styles[c.Tab.Style]
	if !ok {
		return tab.Spec{}, invalid("tab.style %q", c.Tab.Style)
	}
	dirs := map[string]model.TabDirection{}
	for _, d := range []model.TabDirection{model.Lesser, model.Greater, model.Both} {
		dirs[d.String()] = d
	}
	dir, ok := dirs[c.Tab.Direction]
	if !ok {
		return tab.Spec{}, invalid("tab.direction %q", c.Tab.Direction)
	}
	trapezoid := style == model.StyleTrapezoid || style == model.StyleMultiFacetTrapezoid
	if trapezoid && (c.Tab.Width.Length > 0) == (c.Tab.Width.Fraction > 0) {
		return tab.Spec{}, invalid("tab.width needs exactly one of length or fraction")
	}
	if c.Tab.Score < 0 || c.Tab.Score >= 0.5 {
		return tab.Spec{}, invalid("tab.score %g not in [0, 0.5)", c.Tab.Score)
	}
	return tab.Spec{
		Style:     style,
		Width:     tab.Width{Length: c.Tab.Width.Length, Fraction: c.Tab.Width.Fraction},
		Score:     c.Tab.Score,
		Direction: dir,
	}, nil
}

// PanelConfig converts the panel section.
func (c PatternConfig) PanelConfig() (panel.Config, error) {
	p := c.Panel
	var placement panel.Placement
	switch p.Holes.Placement {
	case "none":
		placement = panel.PlaceNone
	case "spaced":
		placement = panel.PlaceSpaced
		if !(p.Holes.Fraction > 0 && p.Holes.Fraction < 0.5) {
			return panel.Config{}, invalid("panel.holes.fraction %g not in (0, 0.5)", p.Holes.Fraction)
		}
	case "vertex":
		placement = panel.PlaceVertex
		if p.Holes.Count < 1 {
			return panel.Config{}, invalid("panel.holes.count %d", p.Holes.Count)
		}
	default:
		return panel.Config{}, invalid("panel.holes.placement %q", p.Holes.Placement)
	}
	for name, v := range map[string]float64{
		"panel.thickness":           p.Thickness,
		"panel.holes.diameter":      p.Holes.Diameter,
		"panel.holes.head_diameter": p.Holes.HeadDiameter,
		"panel.holes.min_inset":     p.Holes.MinInset,
		"panel.hinge.margin":        p.Hinge.Margin,
	} {
		if v < 0 || math.IsNaN(v) {
			return panel.Config{}, invalid("%s %g is negative", name, v)
		}
	}
	if !(p.Hinge.Width > 0) {
		return panel.Config{}, invalid("panel.hinge.width must be positive")
	}
	return panel.Config{
		Thickness: p.Thickness,
		Holes: panel.HoleConfig{
			Diameter:     p.Holes.Diameter,
			HeadDiameter: p.Holes.HeadDiameter,
			MinInset:     p.Holes.MinInset,
			Placement:    placement,
			Fraction:     p.Holes.Fraction,
			Count:        p.Holes.Count,
		},
		Hinge: panel.HingeConfig{Width: p.Hinge.Width, Margin: p.Hinge.Margin},
	}, nil
}

// Layout converts the distribution section.
func (c PatternConfig) Layout() (layout.Distribution, error) {
	d := c.Distribution
	switch d.Type {
	case "none":
		return layout.None{}, nil
	case "contiguous":
		if d.Offset < 0 {
			return nil, invalid("distribution.offset %g is negative", d.Offset)
		}
		return layout.Contiguous{Offset: d.Offset, Realign: d.Realign}, nil
	case "spaced":
		if d.Gap < 0 {
			return nil, invalid("distribution.gap %g is negative", d.Gap)
		}
		return layout.Spaced{Gap: d.Gap}, nil
	}
	return nil, invalid("distribution.type %q", d.Type)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Pipeline converts the whole file into a pipeline configuration. Workers
// is returned separately as a run option.
func (c PatternConfig) Pipeline() (pipeline.Config, []pipeline.Option, error) {
	if err := c.Validate(); err != nil {
		return pipeline.Config{}, nil, err
	}
	pc, _ := c.PanelConfig()
	d, _ := c.Layout()
	out := pipeline.Config{
		Flatten:      c.FlattenOptions(),
		Panel:        pc,
		Hinges:       c.Panel.Hinge.Enabled,
		Distribution: d,
		Gap:          c.Sheet.Gap,
		Tolerance:    c.Audit.Tolerance,
	}
	if c.Tab.Enabled {
		spec, _ := c.TabSpec()
		out.Tab = &spec
	}
	return out, []pipeline.Option{pipeline.WithWorkers(c.Workers)}, nil
}
