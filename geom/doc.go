// Package geom holds the geometric primitives shared by every lvfold stage:
// labeled triangles, vertex/edge label arithmetic, lines in the flattening
// plane and rigid 2-D transforms.
//
// Points are gonum r3.Vec values. Flattened geometry lives in the XY plane
// with Z = 0; 3-D source geometry uses all three components.
//
// Label conventions:
//
//	      C
//	     ╱ ╲
//	 AC ╱   ╲ BC
//	   ╱     ╲
//	  A───────B
//	     AB
//
//   - Edge.Vertices() returns the winding order A→B, B→C, C→A, so the
//     three edges walk the triangle once in the same sense.
//   - Edge.Opposite() returns the vertex not on the edge.
//   - FreeVertex(u, v) returns the third label and fails with
//     ErrSameVertex when u == v.
//
// Errors (sentinel):
//
//	– ErrSameVertex          two identical labels where a pair is required.
//	– ErrInvalidLabel        a Vertex or Edge value outside its enum.
//	– ErrDegenerateTriangle  zero-length edge or collinear vertices.
//	– ErrParallelLines       two lines without a unique intersection.
package geom
