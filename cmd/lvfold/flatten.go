// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvfold/config"
	"github.com/katalvlaran/lvfold/export"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/pipeline"
	"github.com/spf13/cobra"
)

// errViolations is returned by --strict runs whose audit found problems.
var errViolations = errors.New("edge metadata audit failed")

type flattenFlags struct {
	model    string
	config   string
	dxf      string
	png      string
	link     float64
	workers  int
	backFace bool
	strict   bool
	scale    float64
}

func newFlattenCmd() *cobra.Command {
	var f flattenFlags
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten a model and write its cut sheet",
		Long: "Read a JSON model, compute panels, tabs, holes and hinges, lay them out " +
			"on one sheet and write it as DXF and/or PNG.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFlatten(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.model, "model", "m", "", "Model file (JSON)")
	fl.StringVarP(&f.config, "config", "c", "", "Pattern configuration (YAML); defaults apply when empty")
	fl.StringVar(&f.dxf, "dxf", "", "Write the cut sheet to this DXF file")
	fl.StringVar(&f.png, "png", "", "Write a preview to this PNG file")
	fl.Float64Var(&f.link, "link", 0, "Recompute partners from shared edges, matching vertex coordinates within this distance")
	fl.IntVarP(&f.workers, "workers", "w", -1, "Bands processed at once; overrides the configuration when >= 0")
	fl.BoolVar(&f.backFace, "back-face", false, "Also draw back-face outlines")
	fl.BoolVar(&f.strict, "strict", false, "Fail when the edge audit reports violations")
	fl.Float64Var(&f.scale, "scale", export.DefaultPNGOptions().Scale, "PNG pixels per model unit")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func runFlatten(cmd *cobra.Command, f flattenFlags) error {
	// 1) Inputs
	m, err := model.Load(f.model)
	if err != nil {
		return err
	}
	if f.link > 0 {
		m = model.Link(m, f.link)
	}
	pc := config.Default()
	if f.config != "" {
		if pc, err = config.Load(f.config); err != nil {
			return err
		}
	}
	if f.workers >= 0 {
		pc.Workers = f.workers
	}
	cfg, opts, err := pc.Pipeline()
	if err != nil {
		return err
	}

	// 2) Patterns
	res, err := pipeline.Generate(cmd.Context(), m, cfg, opts...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bands: %d\npanels: %d\nhinges: %d\narea: %.2f\nutilization: %.1f%%\nviolations: %d\n",
		len(res.Sheet), res.Stats.Panels, len(res.Hinges), res.Stats.Area, 100*res.Stats.Utilization, len(res.Violations))
	for _, v := range res.Violations {
		fmt.Fprintln(cmd.ErrOrStderr(), v)
	}

	// 3) Outputs
	d := export.Build(res, export.Options{BackFace: f.backFace, HingeGap: cfg.Gap})
	if f.dxf != "" {
		if err := export.WriteDXF(f.dxf, d); err != nil {
			return err
		}
	}
	if f.png != "" {
		o := export.DefaultPNGOptions()
		o.Scale = f.scale
		if err := writePNG(f.png, d, o); err != nil {
			return err
		}
	}
	if f.strict && len(res.Violations) > 0 {
		return fmt.Errorf("%w: %d violations", errViolations, len(res.Violations))
	}
	return nil
}

func writePNG(path string, d export.Drawing, o export.PNGOptions) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return export.RenderPNG(fh, d, o)
}
