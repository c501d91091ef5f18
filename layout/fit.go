// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// LeastSquares fits y = slope·x + intercept to pts by ordinary least
// squares.
//
// Errors: ErrEmpty for fewer than two points, ErrVertical when all x are
// equal.
//
// Complexity: O(n) time, O(n) space.
func LeastSquares(pts []r3.Vec) (slope, intercept float64, err error) {
	if len(pts) < 2 {
		return 0, 0, ErrEmpty
	}
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	if vertical(xs) {
		return 0, 0, ErrVertical
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, nil
}

// Orientation returns the unit direction of the least-squares line through
// pts, pointing toward +X. Vertical point sets give +Y.
func Orientation(pts []r3.Vec) (r3.Vec, error) {
	m, _, err := LeastSquares(pts)
	switch {
	case errors.Is(err, ErrVertical):
		return r3.Vec{Y: 1}, nil
	case err != nil:
		return r3.Vec{}, err
	}
	n := math.Hypot(1, m)
	return r3.Vec{X: 1 / n, Y: m / n}, nil
}

func vertical(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
