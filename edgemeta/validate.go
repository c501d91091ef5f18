// SPDX-License-Identifier: MIT
// Package: lvfold/edgemeta
//
// validate.go - partner consistency audit.

package edgemeta

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvfold"
	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
)

// ValidateEdgeMeta checks that the partner of edge addr points back at it
// and that both sides agree on crease and, within tol, on cut angle.
// Boundary edges always pass.
//
// Errors: ErrPartnerMismatch, ErrCreaseMismatch, ErrCutAngleMismatch, or
// a resolution error from model.
//
// Complexity: O(1) time, O(1) space.
func ValidateEdgeMeta(m model.Model, addr model.EdgeAddress, tol float64) error {
	meta, err := m.Edge(addr)
	if err != nil {
		return err
	}
	if meta.Partner == nil {
		return nil
	}
	other, err := m.Edge(*meta.Partner)
	if err != nil {
		return fmt.Errorf("partner %s: %w", meta.Partner, err)
	}

	// 1) Round trip
	if other.Partner == nil {
		return fmt.Errorf("%w: %s has no partner", ErrPartnerMismatch, meta.Partner)
	}
	if *other.Partner != addr {
		return fmt.Errorf("%w: %s points at %s", ErrPartnerMismatch, meta.Partner, other.Partner)
	}

	// 2) Agreement
	if meta.Crease != other.Crease {
		return fmt.Errorf("%w: %s vs %s", ErrCreaseMismatch, meta.Crease, other.Crease)
	}
	if d := math.Abs(meta.CutAngle - other.CutAngle); !(d <= tol) {
		return fmt.Errorf("%w: %g vs %g", ErrCutAngleMismatch, meta.CutAngle, other.CutAngle)
	}
	return nil
}

// ValidateAllPanels audits every edge of m and returns the violations in
// tube, band, facet, edge order. Each violation is also logged at Warn.
// The sweep never stops early.
//
// Complexity: O(F) time, O(V) space for F facets and V violations.
func ValidateAllPanels(m model.Model, opts ...Option) []Violation {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := lvfold.Logger()

	var out []Violation
	_ = m.Walk(func(addr model.FacetAddress, _ model.Facet) error {
		for _, e := range geom.Edges {
			ea := addr.At(e)
			err := ValidateEdgeMeta(m, ea, cfg.Tolerance)
			if err == nil {
				continue
			}
			out = append(out, Violation{Edge: ea, Err: err})
			log.Warn("edge metadata violation",
				slog.Int("tube", ea.Tube),
				slog.Int("band", ea.Band),
				slog.Int("facet", ea.Facet),
				slog.String("edge", e.String()),
				slog.String("err", err.Error()))
		}
		return nil
	})
	return out
}
