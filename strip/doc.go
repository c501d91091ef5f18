// Package strip implements the Edge-Role Table and the Strip Flattening
// Engine: isometric unfolding of a zig-zag band of 3-D triangles into the
// XY plane.
//
// 🚀 Edge roles
//
//	Every facet of a band shares one edge with the previous facet (its
//	Leading pair) and one with the next facet (its Trailing pair). The
//	third edge lies on a rail of the strip. Which labels play which role
//	depends on the band orientation, the facet parity and whether the
//	band is a strut; Lookup and RolesFor encode that as a static table.
//
//	Vertex conventions (rails T above B, column k):
//
//	  circumference   even (T_k, B_k, T_k+1)   odd (T_k+1, B_k, B_k+1)
//	  helical-right   even (T_k, B_k, B_k+1)   odd (T_k, B_k+1, T_k+1)
//	  helical-left    helical-right with T and B swapped
//	  strut (right)   even (T_k+1, B_k, T_k)   odd (B_k, T_k+1, B_k+1)
//
//	Struts are only tiled helical-right; any other strut orientation fails
//	with ErrUnsupportedStrut.
//
// ✨ Flattening
//
//	Facet 0 is laid with its leading edge from Origin along Direction.
//	Each later facet reuses the already placed trailing points of its
//	predecessor verbatim, so shared edges are bit-identical, and its free
//	vertex is placed by AlignTriangle: the 3-D angle between the
//	lead→follow and lead→free edges is reproduced in the plane, with the
//	rotation sense taken from the table's Turn (times −1 when mirrored).
//
// Usage:
//
//	flat, err := strip.Flatten(band,
//	    strip.WithOrigin(r3.Vec{X: 10, Y: 10}),
//	    strip.WithDirection(r3.Vec{X: 1}),
//	)
//
// Complexity: O(n) time and memory for n facets.
package strip
