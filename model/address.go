// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/lvfold/geom"
)

// FacetAddress names one facet of a Model.
type FacetAddress struct {
	Tube, Band, Facet int
}

// EdgeAddress names one edge of one facet.
type EdgeAddress struct {
	FacetAddress
	Edge geom.Edge
}

// At returns the address of edge e on this facet.
func (a FacetAddress) At(e geom.Edge) EdgeAddress {
	return EdgeAddress{FacetAddress: a, Edge: e}
}

// String formats the address as "tube/band/facet".
func (a FacetAddress) String() string {
	return fmt.Sprintf("%d/%d/%d", a.Tube, a.Band, a.Facet)
}

// Less orders addresses by tube, band, then facet.
func (a FacetAddress) Less(b FacetAddress) bool {
	if a.Tube != b.Tube {
		return a.Tube < b.Tube
	}
	if a.Band != b.Band {
		return a.Band < b.Band
	}
	return a.Facet < b.Facet
}

// SameBand reports whether a and b are in the same band.
func (a FacetAddress) SameBand(b FacetAddress) bool {
	return a.Tube == b.Tube && a.Band == b.Band
}

// String formats the address as "tube/band/facet:edge".
func (a EdgeAddress) String() string {
	return fmt.Sprintf("%s:%s", a.FacetAddress, a.Edge)
}

// Less orders edge addresses by facet, then edge.
func (a EdgeAddress) Less(b EdgeAddress) bool {
	if a.FacetAddress != b.FacetAddress {
		return a.FacetAddress.Less(b.FacetAddress)
	}
	return a.Edge < b.Edge
}

// AddressError attaches the offending address to a failure. Err carries the
// kind and is exposed through Unwrap for errors.Is.
type AddressError struct {
	Addr    FacetAddress
	Edge    geom.Edge
	HasEdge bool
	Err     error
}

// FacetError wraps err with a facet address.
func FacetError(addr FacetAddress, err error) *AddressError {
	return &AddressError{Addr: addr, Err: err}
}

// EdgeError wraps err with an edge address.
func EdgeError(addr EdgeAddress, err error) *AddressError {
	return &AddressError{Addr: addr.FacetAddress, Edge: addr.Edge, HasEdge: true, Err: err}
}

// Error implements error.
func (e *AddressError) Error() string {
	if e.HasEdge {
		return fmt.Sprintf("facet %s: %v", e.Addr.At(e.Edge), e.Err)
	}
	return fmt.Sprintf("facet %s: %v", e.Addr, e.Err)
}

// Unwrap returns the underlying kind.
func (e *AddressError) Unwrap() error { return e.Err }
