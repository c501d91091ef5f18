// Package panel turns flattened facets into fabrication panels: the usable
// inset face, the back-face projection through the material, fastener
// holes along shared edges, and hinge connectors joining two panels that
// were cut in different strips.
//
// 🚀 Insets
//
//	For edge e with bevel angle cut(e) and material thickness t:
//
//	  back(e) = t · tan(cut(e))
//	  hole(e) = max(headDiameter/2, minInset, back(e) + headDiameter/2)
//
//	Each edge line is moved inward by its inset and adjacent lines are
//	intersected. Hole insets give the InsetTriangle, back insets the
//	BackFaceTriangle. Valley bevels are negative and move the back face
//	outward. An inset that turns the triangle inside out fails with
//	ErrInsetTooLarge.
//
// ✨ Holes
//
//	Holes are placed on the inset edges of partnered edges only:
//
//	  spaced   two holes, Fraction of the edge in from each end
//	  vertex   Count holes at j/(Count+1), j = 1..Count
//	  none     no holes
//
// ✨ Hinges
//
//	HingeOutline zeroes each panel into a frame anchored at its
//	registration point (the front edge midpoint projected onto the back
//	edge) with the edge along +X. Panel a hangs below the X axis, panel b
//	is turned half a revolution to sit above it. Each side contributes a
//	trapezoid bounded by its back-face side edges, moved in by Margin, and
//	the lines y = 0 and y = ±Width. The two trapezoids share their y = 0
//	corners, snapped to whichever is closer to the origin, and are joined
//	into one ring carrying the holes of both edges.
//
// Usage:
//
//	p, err := panel.Build(addr, flatFacet, panel.DefaultConfig())
package panel
