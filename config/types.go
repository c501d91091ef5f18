// SPDX-License-Identifier: MIT

package config

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Point is a 2-D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Flatten configures strip flattening.
type Flatten struct {
	Origin    Point `yaml:"origin"`
	Direction Point `yaml:"direction"`
	Mirror    bool  `yaml:"mirror"`
}

// Width is a trapezoid tab width: exactly one field is set.
type Width struct {
	Length   float64 `yaml:"length,omitempty"`
	Fraction float64 `yaml:"fraction,omitempty"`
}

// Tab configures glue tabs.
type Tab struct {
	Enabled   bool    `yaml:"enabled"`
	Style     string  `yaml:"style"`
	Width     Width   `yaml:"width"`
	Score     float64 `yaml:"score"`
	Direction string  `yaml:"direction"`
}

// Holes configures fastener holes.
type Holes struct {
	Diameter     float64 `yaml:"diameter"`
	HeadDiameter float64 `yaml:"head_diameter"`
	MinInset     float64 `yaml:"min_inset"`
	Placement    string  `yaml:"placement"`
	Fraction     float64 `yaml:"fraction,omitempty"`
	Count        int     `yaml:"count,omitempty"`
}

// Hinge configures hinge connectors.
type Hinge struct {
	Enabled bool    `yaml:"enabled"`
	Width   float64 `yaml:"width"`
	Margin  float64 `yaml:"margin"`
}

// Panel configures panel insets, holes and hinges.
type Panel struct {
	Thickness float64 `yaml:"thickness"`
	Holes     Holes   `yaml:"holes"`
	Hinge     Hinge   `yaml:"hinge"`
}

// Distribution is the tagged union selecting the panel layout.
type Distribution struct {
	Type    string  `yaml:"type"`
	Offset  float64 `yaml:"offset,omitempty"`
	Realign bool    `yaml:"realign,omitempty"`
	Gap     float64 `yaml:"gap,omitempty"`
}

// Sheet configures band stacking on the output sheet.
type Sheet struct {
	Gap float64 `yaml:"gap"`
}

// Audit configures the edge metadata audit.
type Audit struct {
	Tolerance float64 `yaml:"tolerance"`
}

// PatternConfig is the root of a pattern file.
type PatternConfig struct {
	Flatten      Flatten      `yaml:"flatten"`
	Tab          Tab          `yaml:"tab"`
	Panel        Panel        `yaml:"panel"`
	Distribution Distribution `yaml:"distribution"`
	Sheet        Sheet        `yaml:"sheet"`
	Audit        Audit        `yaml:"audit"`
	Workers      int          `yaml:"workers"`
}

// UnmarshalYAML replaces the whole width so a file can switch between
// length and fraction.
func (w *Width) UnmarshalYAML(n *yaml.Node) error {
	type plain Width
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*w = Width(p)
	return nil
}

// UnmarshalYAML replaces the whole union so fields of another variant do
// not leak in from the defaults.
func (d *Distribution) UnmarshalYAML(n *yaml.Node) error {
	type plain Distribution
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*d = Distribution(p)
	return nil
}
