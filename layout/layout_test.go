package layout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/layout"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

// pattern wraps the facets of band as bare panels.
func pattern(band model.Band) layout.BandPattern {
	bp := layout.BandPattern{Orientation: band.Orientation, Strut: band.IsStrut()}
	for i, f := range band.Facets {
		bp.Panels = append(bp.Panels, panel.PanelPattern{
			Address: model.FacetAddress{Facet: i},
			Facet:   f,
			Points:  tab.Outline(f),
		})
	}
	return bp
}

func flatSquare(t *testing.T) layout.BandPattern {
	t.Helper()
	flat, err := strip.Flatten(fixture.FlatSquare().Tubes[0].Bands[0])
	require.NoError(t, err)
	return pattern(flat)
}

// TestDistribute_ContiguousOffset: facet i's leading edge sits exactly
// Offset from facet i-1's trailing edge, on the far side.
func TestDistribute_ContiguousOffset(t *testing.T) {
	in := flatSquare(t)
	out, err := layout.Distribute(in, layout.Contiguous{Offset: 10})
	require.NoError(t, err)
	require.Len(t, out.Panels, 4)

	for i := 1; i < len(out.Panels); i++ {
		prevRoles, err := out.Roles(i - 1)
		require.NoError(t, err)
		roles, err := out.Roles(i)
		require.NoError(t, err)

		prev := out.Panels[i-1].Facet.Triangle
		cur := out.Panels[i].Facet.Triangle
		t0, t1 := prev.At(prevRoles.Trailing.Lead), prev.At(prevRoles.Trailing.Follow)
		line := geom.LineThrough(t0, t1)
		q0, q1 := cur.At(roles.Leading.Lead), cur.At(roles.Leading.Follow)
		assert.InDelta(t, 10, line.Distance(q0), eps, "panel %d lead", i)
		assert.InDelta(t, 10, line.Distance(q1), eps, "panel %d follow", i)
		assert.InDelta(t, 0, r3.Norm(r3.Sub(r3.Sub(q1, q0), r3.Sub(t1, t0))), eps, "panel %d parallel", i)

		third := prev.At(prevRoles.Trailing.Edge().Opposite())
		assert.Less(t, geom.Side(t0, t1, third)*geom.Side(t0, t1, q0), 0.0, "panel %d side", i)

		want, got := in.Panels[i].Facet.Triangle.Lengths(), cur.Lengths()
		assert.InDeltaSlice(t, want[:], got[:], eps)
		assert.Equal(t, []r3.Vec{cur.A, cur.B, cur.C}, out.Panels[i].Points)
	}
	assert.Equal(t, in.Panels[0], out.Panels[0])
}

// TestDistribute_ZeroOffsetKeepsStrip verifies an already contiguous strip
// is left where it is.
func TestDistribute_ZeroOffsetKeepsStrip(t *testing.T) {
	in := flatSquare(t)
	out, err := layout.Distribute(in, layout.Contiguous{})
	require.NoError(t, err)
	for i, p := range out.Panels {
		for _, v := range geom.Vertices {
			assert.InDelta(t, 0, r3.Norm(r3.Sub(in.Panels[i].Facet.Triangle.At(v), p.Facet.Triangle.At(v))), eps)
		}
	}
}

// TestDistribute_NoOps covers None, Spaced and an unknown distribution.
func TestDistribute_NoOps(t *testing.T) {
	in := flatSquare(t)
	for _, d := range []layout.Distribution{layout.None{}, layout.Spaced{Gap: 3}} {
		out, err := layout.Distribute(in, d)
		require.NoError(t, err)
		assert.Equal(t, in.Points(), out.Points())
	}
	_, err := layout.Distribute(in, nil)
	assert.ErrorIs(t, err, layout.ErrUnknownDistribution)
}

// TestDistribute_Realign starts the band at the origin in its narrowest pose.
func TestDistribute_Realign(t *testing.T) {
	in := flatSquare(t)
	out, err := layout.Distribute(in, layout.Contiguous{Offset: 1, Realign: true})
	require.NoError(t, err)

	b := layout.Bounds(out.Points())
	assert.InDelta(t, 0, b.Min.X(), eps)
	assert.InDelta(t, 0, b.Min.Y(), eps)
	_, w, err := layout.MinWidthAngle(out.Points())
	require.NoError(t, err)
	assert.InDelta(t, w, b.Max.X()-b.Min.X(), 1e-6)
}

// TestDistribute_EmptyBand passes a band without panels through every
// distribution.
func TestDistribute_EmptyBand(t *testing.T) {
	empty := layout.BandPattern{Tube: 0, Band: 3}
	for _, d := range []layout.Distribution{
		layout.None{}, layout.Spaced{Gap: 3}, layout.Contiguous{Offset: 5}, layout.Contiguous{Offset: 5, Realign: true},
	} {
		out, err := layout.Distribute(empty, d)
		require.NoError(t, err, "%T", d)
		assert.Empty(t, out.Panels)
		assert.Equal(t, 3, out.Band)
	}
}

// TestMinWidthAngle_Monotonic: the search never does worse than 0° or 90°.
func TestMinWidthAngle_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		pts := make([]r3.Vec, 1+rng.Intn(20))
		for i := range pts {
			pts[i] = r3.Vec{X: rng.NormFloat64() * 10, Y: rng.NormFloat64() * 3}
		}
		_, w, err := layout.MinWidthAngle(pts)
		require.NoError(t, err)
		assert.LessOrEqual(t, w, layout.Width(pts, 0))
		assert.LessOrEqual(t, w, layout.Width(pts, math.Pi/2)+eps)
	}
	_, _, err := layout.MinWidthAngle(nil)
	assert.ErrorIs(t, err, layout.ErrEmpty)
}

// TestMinWidthAngle_TiltedBar finds the narrow side of a 10×1 bar at 30°.
func TestMinWidthAngle_TiltedBar(t *testing.T) {
	r := geom.Rigid{Angle: math.Pi / 6}
	bar := r.ApplyAll([]r3.Vec{{}, {X: 10}, {X: 10, Y: 1}, {Y: 1}})
	angle, w, err := layout.MinWidthAngle(bar)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, angle, eps)
	assert.InDelta(t, 1, w, eps)
}

// TestLeastSquares fits a known line and reports degenerate input.
func TestLeastSquares(t *testing.T) {
	pts := []r3.Vec{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}}
	m, b, err := layout.LeastSquares(pts)
	require.NoError(t, err)
	assert.InDelta(t, 2, m, eps)
	assert.InDelta(t, 1, b, eps)

	dir, err := layout.Orientation(pts)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(5), dir.X, eps)
	assert.InDelta(t, 2/math.Sqrt(5), dir.Y, eps)

	_, _, err = layout.LeastSquares(pts[:1])
	assert.ErrorIs(t, err, layout.ErrEmpty)
	vertical := []r3.Vec{{X: 1}, {X: 1, Y: 4}}
	_, _, err = layout.LeastSquares(vertical)
	assert.ErrorIs(t, err, layout.ErrVertical)
	dir, err = layout.Orientation(vertical)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{Y: 1}, dir)
}

// TestStackAndMeasure piles two copies of the square and measures them.
func TestStackAndMeasure(t *testing.T) {
	sq := pattern(fixture.FlatSquare().Tubes[0].Bands[0])
	s := layout.Measure([]layout.BandPattern{sq})
	assert.Equal(t, 4, s.Panels)
	assert.InDelta(t, 4, s.Area, eps)
	assert.InDelta(t, 1, s.Utilization, eps)

	moved := sq.Transform(geom.Rigid{Angle: 0.3, Offset: r3.Vec{X: -7, Y: 12}})
	stacked := layout.Stack([]layout.BandPattern{sq, moved}, 5)
	b0, b1 := layout.Bounds(stacked[0].Points()), layout.Bounds(stacked[1].Points())
	assert.InDelta(t, 0, b0.Min.X(), eps)
	assert.InDelta(t, 0, b0.Min.Y(), eps)
	assert.InDelta(t, 0, b1.Min.X(), eps)
	assert.InDelta(t, b0.Max.Y()+5, b1.Min.Y(), eps)

	s = layout.Measure(stacked)
	assert.Equal(t, 8, s.Panels)
	assert.InDelta(t, 8, s.Area, 1e-9)
	assert.Equal(t, layout.Stats{}, layout.Measure(nil))
}
