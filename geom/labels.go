// SPDX-License-Identifier: MIT

package geom

import "fmt"

// FreeVertex returns the label that is neither u nor v.
//
// Errors:
//   - ErrInvalidLabel if u or v is outside {A, B, C}.
//   - ErrSameVertex if u == v; a constrained pair must name two vertices.
func FreeVertex(u, v Vertex) (Vertex, error) {
	if !u.Valid() || !v.Valid() {
		return 0, fmt.Errorf("%w: FreeVertex(%d, %d)", ErrInvalidLabel, u, v)
	}
	if u == v {
		return 0, fmt.Errorf("%w: FreeVertex(%s, %s)", ErrSameVertex, u, v)
	}
	// A+B+C == 0+1+2 == 3
	return 3 - u - v, nil
}

// EdgeBetween returns the edge joining u and v, in either order.
func EdgeBetween(u, v Vertex) (Edge, error) {
	free, err := FreeVertex(u, v)
	if err != nil {
		return 0, err
	}
	switch free {
	case C:
		return AB, nil
	case A:
		return BC, nil
	default:
		return AC, nil
	}
}
