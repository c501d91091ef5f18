// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/lvfold/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// TabStyle discriminates the Tab union.
type TabStyle int

const (
	// StyleFull is a triangle flap shaped like the adjacent facet.
	StyleFull TabStyle = iota
	// StyleTrapezoid is a four-point flap cut short of the apex.
	StyleTrapezoid
	// StyleMultiFacetFull spans two source facets.
	StyleMultiFacetFull
	// StyleMultiFacetTrapezoid spans two source facets, cut short.
	StyleMultiFacetTrapezoid
)

// String returns the style name used in configuration files.
func (s TabStyle) String() string {
	switch s {
	case StyleFull:
		return "full"
	case StyleTrapezoid:
		return "trapezoid"
	case StyleMultiFacetFull:
		return "multi-facet-full"
	case StyleMultiFacetTrapezoid:
		return "multi-facet-trapezoid"
	}
	return "unknown"
}

// TabDirection selects which side of the strip carries tabs.
type TabDirection int

const (
	// Lesser is the side of the lower rail.
	Lesser TabDirection = iota
	// Greater is the side of the upper rail.
	Greater
	// Both puts tabs on both rails.
	Both
)

// String returns "lesser", "greater" or "both".
func (d TabDirection) String() string {
	switch d {
	case Lesser:
		return "lesser"
	case Greater:
		return "greater"
	case Both:
		return "both"
	}
	return "unknown"
}

// Includes reports whether a tab configured for d belongs on side s.
func (d TabDirection) Includes(s TabDirection) bool {
	return d == Both || d == s
}

// Segment is a straight line between two points, used for score lines.
type Segment struct {
	From, To r3.Vec
}

// Tab is a glue flap hanging off one facet edge.
type Tab interface {
	// Style returns the union discriminant.
	Style() TabStyle
	// Edge returns the facet edge the tab is attached to.
	Edge() geom.Edge
	// Direction returns the strip side the tab is on.
	Direction() TabDirection
	// Footprint returns the source triangle(s) the tab was derived from.
	Footprint() []geom.Triangle
	// Outer returns the cut outline of the flap.
	Outer() []r3.Vec
	// Transform returns a copy moved by r.
	Transform(r geom.Rigid) Tab

	sealed()
}

// FullTab is a flap exactly the shape of the neighboring facet.
type FullTab struct {
	Attach geom.Edge
	Side   TabDirection
	Source geom.Triangle
}

// TrapezoidTab is a four-point flap with an optional score line.
type TrapezoidTab struct {
	Attach geom.Edge
	Side   TabDirection
	Source geom.Triangle
	Points [4]r3.Vec
	Score  *Segment
}

// MultiFacetFullTab is a flap covering two neighboring source facets.
type MultiFacetFullTab struct {
	Attach  geom.Edge
	Side    TabDirection
	Sources [2]geom.Triangle
	Points  [4]r3.Vec
}

// MultiFacetTrapezoidTab is a two-facet flap cut short of its far corners.
type MultiFacetTrapezoidTab struct {
	Attach  geom.Edge
	Side    TabDirection
	Sources [2]geom.Triangle
	Points  [4]r3.Vec
	Score   *Segment
}

func (FullTab) sealed()                {}
func (TrapezoidTab) sealed()           {}
func (MultiFacetFullTab) sealed()      {}
func (MultiFacetTrapezoidTab) sealed() {}

func (FullTab) Style() TabStyle                { return StyleFull }
func (TrapezoidTab) Style() TabStyle           { return StyleTrapezoid }
func (MultiFacetFullTab) Style() TabStyle      { return StyleMultiFacetFull }
func (MultiFacetTrapezoidTab) Style() TabStyle { return StyleMultiFacetTrapezoid }

func (t FullTab) Edge() geom.Edge                { return t.Attach }
func (t TrapezoidTab) Edge() geom.Edge           { return t.Attach }
func (t MultiFacetFullTab) Edge() geom.Edge      { return t.Attach }
func (t MultiFacetTrapezoidTab) Edge() geom.Edge { return t.Attach }

func (t FullTab) Direction() TabDirection                { return t.Side }
func (t TrapezoidTab) Direction() TabDirection           { return t.Side }
func (t MultiFacetFullTab) Direction() TabDirection      { return t.Side }
func (t MultiFacetTrapezoidTab) Direction() TabDirection { return t.Side }

func (t FullTab) Footprint() []geom.Triangle      { return []geom.Triangle{t.Source} }
func (t TrapezoidTab) Footprint() []geom.Triangle { return []geom.Triangle{t.Source} }
func (t MultiFacetFullTab) Footprint() []geom.Triangle {
	return []geom.Triangle{t.Sources[0], t.Sources[1]}
}
func (t MultiFacetTrapezoidTab) Footprint() []geom.Triangle {
	return []geom.Triangle{t.Sources[0], t.Sources[1]}
}

func (t FullTab) Outer() []r3.Vec {
	return []r3.Vec{t.Source.A, t.Source.B, t.Source.C}
}
func (t TrapezoidTab) Outer() []r3.Vec           { return t.Points[:] }
func (t MultiFacetFullTab) Outer() []r3.Vec      { return t.Points[:] }
func (t MultiFacetTrapezoidTab) Outer() []r3.Vec { return t.Points[:] }

func (t FullTab) Transform(r geom.Rigid) Tab {
	t.Source = t.Source.Transform(r)
	return t
}

func (t TrapezoidTab) Transform(r geom.Rigid) Tab {
	t.Source = t.Source.Transform(r)
	t.Points = transform4(t.Points, r)
	t.Score = t.Score.Transform(r)
	return t
}

func (t MultiFacetFullTab) Transform(r geom.Rigid) Tab {
	t.Sources = [2]geom.Triangle{t.Sources[0].Transform(r), t.Sources[1].Transform(r)}
	t.Points = transform4(t.Points, r)
	return t
}

func (t MultiFacetTrapezoidTab) Transform(r geom.Rigid) Tab {
	t.Sources = [2]geom.Triangle{t.Sources[0].Transform(r), t.Sources[1].Transform(r)}
	t.Points = transform4(t.Points, r)
	t.Score = t.Score.Transform(r)
	return t
}

// ScoreLine returns the tab's score line, if its style has one.
func ScoreLine(t Tab) *Segment {
	switch v := t.(type) {
	case TrapezoidTab:
		return v.Score
	case MultiFacetTrapezoidTab:
		return v.Score
	}
	return nil
}

// Transform returns a moved copy; a nil segment stays nil.
func (s *Segment) Transform(r geom.Rigid) *Segment {
	if s == nil {
		return nil
	}
	return &Segment{From: r.Apply(s.From), To: r.Apply(s.To)}
}

func transform4(ps [4]r3.Vec, r geom.Rigid) [4]r3.Vec {
	for i := range ps {
		ps[i] = r.Apply(ps[i])
	}
	return ps
}
