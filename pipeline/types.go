// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/lvfold/edgemeta"
	"github.com/katalvlaran/lvfold/layout"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
)

// Config selects what Generate produces.
//
//   - Flatten      — options for strip.Flatten; the band address is added.
//   - Tab          — tab spec, or nil for no tabs.
//   - Panel        — insets, holes and hinge shape.
//   - Hinges       — emit hinge connectors for cross-band partners.
//   - Distribution — per-band layout.
//   - Gap          — vertical gap between stacked bands; a Spaced
//     distribution overrides it with its own Gap.
//   - Tolerance    — cut-angle tolerance of the audit.
type Config struct {
	Flatten      []strip.Option
	Tab          *tab.Spec
	Panel        panel.Config
	Hinges       bool
	Distribution layout.Distribution
	Gap          float64
	Tolerance    float64
}

// DefaultConfig returns default tabs and panels, no hinges, contiguous
// realigned distribution and a 10 unit sheet gap.
func DefaultConfig() Config {
	spec := tab.DefaultSpec()
	return Config{
		Tab:          &spec,
		Panel:        panel.DefaultConfig(),
		Distribution: layout.Contiguous{Offset: 5, Realign: true},
		Gap:          10,
		Tolerance:    edgemeta.DefaultTolerance,
	}
}

// Options tunes execution.
//
//   - Workers — maximum bands processed at once; 0 means no limit.
type Options struct {
	Workers int
}

// DefaultOptions returns Workers = 0.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the number of concurrent band tasks. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pipeline: WithWorkers(%d): must be >= 0", n))
	}
	return func(o *Options) { o.Workers = n }
}

// Result is the output of Generate.
//
//   - Model      — the input model with computed edge metadata.
//   - Tubes      — distributed bands, indexed [tube][band].
//   - Sheet      — every band stacked onto one sheet, tube-major order.
//   - Hinges     — hinge connectors, in owner address order.
//   - Stats      — measurements of Sheet.
//   - Violations — audit findings; non-empty does not make Generate fail.
type Result struct {
	Model      model.Model
	Tubes      [][]layout.BandPattern
	Sheet      []layout.BandPattern
	Hinges     []panel.HingePattern
	Stats      layout.Stats
	Violations []edgemeta.Violation
}

// Panel returns the distributed panel at addr.
func (r Result) Panel(addr model.FacetAddress) (panel.PanelPattern, error) {
	if addr.Tube < 0 || addr.Tube >= len(r.Tubes) ||
		addr.Band < 0 || addr.Band >= len(r.Tubes[addr.Tube]) {
		return panel.PanelPattern{}, fmt.Errorf("%w: %s", model.ErrAddressOutOfRange, addr)
	}
	ps := r.Tubes[addr.Tube][addr.Band].Panels
	if addr.Facet < 0 || addr.Facet >= len(ps) {
		return panel.PanelPattern{}, fmt.Errorf("%w: %s", model.ErrAddressOutOfRange, addr)
	}
	return ps[addr.Facet], nil
}
