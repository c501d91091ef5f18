// Package model defines the data handed between lvfold stages: facets,
// bands and struts, tubes, the top-level Model, glue tabs, per-edge
// metadata and the address scheme that links them.
//
// Ownership and linkage:
//
//	Model ─┬─ Tube ─┬─ Band ─┬─ Facet (Triangle, Tab?, Meta?)
//	       │        │        └─ Facet ...
//	       │        └─ Band ...
//	       └─ Tube ...
//
// Cross references are always addresses ({tube, band, facet} plus an
// optional edge), resolved through Model on each lookup. Nothing in this
// package holds a pointer to another facet.
//
// Values are treated as immutable: the With* builders and Transform methods
// return copies, and Clone performs a deep copy of slices and metadata.
//
// Tabs form a closed tagged union. Tab is a sealed interface implemented
// only by FullTab, TrapezoidTab, MultiFacetFullTab and
// MultiFacetTrapezoidTab; consumers type-switch over those four and treat
// anything else as ErrUnknownTab.
//
// Files:
//
//	Load and Decode read the JSON form described by File; Encode writes
//	it. Link recomputes partner addresses from shared edge endpoints for
//	models exported without them.
package model
