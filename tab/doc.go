// Package tab generates glue-tab outlines attached to flattened facets.
//
// A tab is derived from a footprint: the partner facet (or two partner
// facets for multi-facet styles) unfolded across the attaching edge into
// the flattened band's frame. Footprint and NeighborFootprint perform that
// unfolding; Build turns footprints into one of the four model.Tab
// variants according to a Spec:
//
//	full                   outer = footprint triangle
//	trapezoid              base + two points walked Width along the sides,
//	                       optional score line inset Score·|base| per end
//	multi-facet-full       quad covering both footprints
//	multi-facet-trapezoid  quad cut short by Width along its sides
//
// For multi-facet styles the outer ring is reversed on the Lesser side of
// the strip so that both rails wind the same way on the sheet.
//
// Splice merges a tab into its facet outline, giving the SVG-ready point
// sequence of a panel.
//
// Errors (sentinel):
//
//	– ErrNotAdjacent   footprint source does not share the attaching edge.
//	– ErrNeedSecond    multi-facet style without a second footprint.
//	– ErrBadWidth      Width has neither or both of Length and Fraction set.
//	– ErrTabTooWide    the walked width reaches the end of a side.
//	– ErrBadScore      Score outside [0, 0.5).
package tab
