// SPDX-License-Identifier: MIT

package geom

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by geom.
var (
	// ErrSameVertex indicates two identical vertex labels where a distinct
	// pair was required (e.g., FreeVertex(A, A)).
	ErrSameVertex = errors.New("geom: vertex labels must differ")

	// ErrInvalidLabel indicates a Vertex or Edge value outside its enum.
	ErrInvalidLabel = errors.New("geom: invalid vertex or edge label")

	// ErrDegenerateTriangle indicates a triangle with a zero-length edge or
	// three collinear vertices.
	ErrDegenerateTriangle = errors.New("geom: degenerate triangle")

	// ErrParallelLines indicates that two lines do not intersect in a
	// single point.
	ErrParallelLines = errors.New("geom: lines are parallel")
)

// Epsilon is the absolute length below which an edge counts as zero.
const Epsilon = 1e-9

// Vertex labels one corner of a Triangle.
type Vertex int

const (
	// A is the first vertex.
	A Vertex = iota
	// B is the second vertex.
	B
	// C is the third vertex.
	C
)

// Vertices lists the labels in order.
var Vertices = [3]Vertex{A, B, C}

// String returns "a", "b" or "c".
func (v Vertex) String() string {
	switch v {
	case A:
		return "a"
	case B:
		return "b"
	case C:
		return "c"
	}
	return "?"
}

// Valid reports whether v is one of A, B, C.
func (v Vertex) Valid() bool { return v >= A && v <= C }

// Edge labels one side of a Triangle.
type Edge int

const (
	// AB joins A and B.
	AB Edge = iota
	// BC joins B and C.
	BC
	// AC joins C and A.
	AC
)

// Edges lists the labels in order.
var Edges = [3]Edge{AB, BC, AC}

// String returns "ab", "bc" or "ac".
func (e Edge) String() string {
	switch e {
	case AB:
		return "ab"
	case BC:
		return "bc"
	case AC:
		return "ac"
	}
	return "?"
}

// Valid reports whether e is one of AB, BC, AC.
func (e Edge) Valid() bool { return e >= AB && e <= AC }

// Vertices returns the edge endpoints in winding order.
func (e Edge) Vertices() (Vertex, Vertex) {
	switch e {
	case AB:
		return A, B
	case BC:
		return B, C
	default:
		return C, A
	}
}

// Opposite returns the vertex not on e.
func (e Edge) Opposite() Vertex {
	switch e {
	case AB:
		return C
	case BC:
		return A
	default:
		return B
	}
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v Vertex) bool { return e.Opposite() != v }

// Triangle is three labeled points. Flattened triangles have Z = 0.
type Triangle struct {
	A, B, C r3.Vec
}
