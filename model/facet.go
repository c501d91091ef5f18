// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/lvfold/geom"
)

// WithTriangle returns a copy of f with a new triangle.
func (f Facet) WithTriangle(t geom.Triangle) Facet {
	f.Triangle = t
	return f
}

// WithTab returns a copy of f carrying tab.
func (f Facet) WithTab(tab Tab) Facet {
	f.Tab = tab
	return f
}

// WithMeta returns a copy of f holding a private copy of m.
func (f Facet) WithMeta(m FacetMeta) Facet {
	c := m.Clone()
	f.Meta = &c
	return f
}

// Edge returns the metadata of edge e, or ErrNoMeta.
func (f Facet) Edge(e geom.Edge) (EdgeMeta, error) {
	if f.Meta == nil {
		return EdgeMeta{}, ErrNoMeta
	}
	return f.Meta.Edges[e], nil
}

// Clone returns a deep copy.
func (f Facet) Clone() Facet {
	if f.Meta != nil {
		c := f.Meta.Clone()
		f.Meta = &c
	}
	return f
}

// Transform returns a copy with triangle, tab and holes moved by r.
func (f Facet) Transform(r geom.Rigid) Facet {
	f.Triangle = f.Triangle.Transform(r)
	if f.Tab != nil {
		f.Tab = f.Tab.Transform(r)
	}
	if f.Meta != nil {
		m := f.Meta.Clone()
		for e := range m.Edges {
			for i := range m.Edges[e].Holes {
				m.Edges[e].Holes[i].Center = r.Apply(m.Edges[e].Holes[i].Center)
			}
		}
		f.Meta = &m
	}
	return f
}

// Clone returns a deep copy of the metadata.
func (m FacetMeta) Clone() FacetMeta {
	for e := range m.Edges {
		m.Edges[e] = m.Edges[e].Clone()
	}
	return m
}

// Clone returns a deep copy of the edge metadata.
func (m EdgeMeta) Clone() EdgeMeta {
	if m.Partner != nil {
		p := *m.Partner
		m.Partner = &p
	}
	if m.Holes != nil {
		m.Holes = append([]Hole(nil), m.Holes...)
	}
	return m
}

// IsStrut reports whether the band carries strut tags.
func (b Band) IsStrut() bool { return b.Strut != nil }

// Clone returns a deep copy.
func (b Band) Clone() Band {
	if b.Strut != nil {
		s := *b.Strut
		b.Strut = &s
	}
	if b.Facets != nil {
		fs := make([]Facet, len(b.Facets))
		for i, f := range b.Facets {
			fs[i] = f.Clone()
		}
		b.Facets = fs
	}
	return b
}

// WithFacets returns a copy of b with new facets and the same tags.
func (b Band) WithFacets(fs []Facet) Band {
	if b.Strut != nil {
		s := *b.Strut
		b.Strut = &s
	}
	b.Facets = fs
	return b
}

// Transform returns a copy with every facet moved by r.
func (b Band) Transform(r geom.Rigid) Band {
	fs := make([]Facet, len(b.Facets))
	for i, f := range b.Facets {
		fs[i] = f.Transform(r)
	}
	return b.WithFacets(fs)
}
