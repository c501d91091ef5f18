// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
)

// Band returns the band at (tube, band).
func (m Model) Band(tube, band int) (Band, error) {
	if tube < 0 || tube >= len(m.Tubes) {
		return Band{}, fmt.Errorf("%w: tube %d of %d", ErrAddressOutOfRange, tube, len(m.Tubes))
	}
	bands := m.Tubes[tube].Bands
	if band < 0 || band >= len(bands) {
		return Band{}, fmt.Errorf("%w: band %d/%d of %d", ErrAddressOutOfRange, tube, band, len(bands))
	}
	return bands[band], nil
}

// Facet resolves a facet address.
func (m Model) Facet(addr FacetAddress) (Facet, error) {
	b, err := m.Band(addr.Tube, addr.Band)
	if err != nil {
		return Facet{}, err
	}
	if addr.Facet < 0 || addr.Facet >= len(b.Facets) {
		return Facet{}, fmt.Errorf("%w: facet %s of %d", ErrAddressOutOfRange, addr, len(b.Facets))
	}
	return b.Facets[addr.Facet], nil
}

// Edge resolves the metadata of an edge address.
func (m Model) Edge(addr EdgeAddress) (EdgeMeta, error) {
	f, err := m.Facet(addr.FacetAddress)
	if err != nil {
		return EdgeMeta{}, err
	}
	if !addr.Edge.Valid() {
		return EdgeMeta{}, fmt.Errorf("%w: edge %d", ErrAddressOutOfRange, addr.Edge)
	}
	meta, err := f.Edge(addr.Edge)
	if err != nil {
		return EdgeMeta{}, fmt.Errorf("facet %s: %w", addr.FacetAddress, err)
	}
	return meta, nil
}

// Partner returns the partner address of an edge; ok is false for
// boundary edges.
func (m Model) Partner(addr EdgeAddress) (EdgeAddress, bool, error) {
	meta, err := m.Edge(addr)
	if err != nil {
		return EdgeAddress{}, false, err
	}
	if meta.Partner == nil {
		return EdgeAddress{}, false, nil
	}
	return *meta.Partner, true, nil
}

// Walk calls fn for every facet in tube, band, facet order and stops at the
// first error.
func (m Model) Walk(fn func(addr FacetAddress, f Facet) error) error {
	for t, tube := range m.Tubes {
		for b, band := range tube.Bands {
			for i, f := range band.Facets {
				if err := fn(FacetAddress{Tube: t, Band: b, Facet: i}, f); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Count returns the total number of facets.
func (m Model) Count() int {
	n := 0
	for _, tube := range m.Tubes {
		for _, band := range tube.Bands {
			n += len(band.Facets)
		}
	}
	return n
}

// Clone returns a deep copy.
func (m Model) Clone() Model {
	out := Model{Tubes: make([]Tube, len(m.Tubes))}
	for t, tube := range m.Tubes {
		bands := make([]Band, len(tube.Bands))
		for b, band := range tube.Bands {
			bands[b] = band.Clone()
		}
		out.Tubes[t] = Tube{Bands: bands}
	}
	return out
}
