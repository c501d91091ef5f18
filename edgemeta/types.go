// SPDX-License-Identifier: MIT

package edgemeta

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvfold/model"
)

// Sentinel errors returned by edgemeta.
var (
	// ErrNaNCutAngle indicates geometry for which no bevel can be computed.
	ErrNaNCutAngle = errors.New("edgemeta: cut angle is NaN")

	// ErrPartnerMismatch indicates a partner whose own partner is not this edge.
	ErrPartnerMismatch = errors.New("edgemeta: partner address does not round-trip")

	// ErrCutAngleMismatch indicates partners whose cut angles differ.
	ErrCutAngleMismatch = errors.New("edgemeta: partner cut angles differ")

	// ErrCreaseMismatch indicates partners with different crease polarity.
	ErrCreaseMismatch = errors.New("edgemeta: partner creases differ")

	// ErrNotShared indicates a partner facet that does not contain the edge.
	ErrNotShared = errors.New("edgemeta: partner does not share the edge")
)

// DefaultTolerance is the cut-angle agreement tolerance in radians.
const DefaultTolerance = 1e-6

// planeTolerance bounds the distance of the rotated third vertex from the
// partner plane, relative to its length.
const planeTolerance = 1e-5

// Options configures ValidateAllPanels.
//
//   - Tolerance — maximum cut-angle difference between partners. Must be > 0.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance sets the cut-angle tolerance. Panics if tol is not a
// positive number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("edgemeta: WithTolerance(%g): must be positive and finite", tol))
	}
	return func(o *Options) { o.Tolerance = tol }
}

// Violation is one audit finding.
type Violation struct {
	Edge model.EdgeAddress
	Err  error
}

// String returns "edge: reason".
func (v Violation) String() string {
	return v.Edge.String() + ": " + v.Err.Error()
}
