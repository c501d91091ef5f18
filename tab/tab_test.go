package tab_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/strip"
	"github.com/katalvlaran/lvfold/tab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

// base is a flattened facet on edge AB (0,0)→(2,0) with its footprint below.
var (
	flat  = geom.Tri(r3.Vec{}, r3.Vec{X: 2}, r3.Vec{X: 1, Y: 1})
	under = geom.Tri(r3.Vec{}, r3.Vec{X: 2}, r3.Vec{X: 1, Y: -1})
)

func sortedLengths(t geom.Triangle) []float64 {
	ls := t.Lengths()
	out := ls[:]
	sort.Float64s(out)
	return out
}

func shoelace(ps []r3.Vec) float64 {
	s := 0.0
	for i := range ps {
		s += geom.Cross2(ps[i], ps[(i+1)%len(ps)])
	}
	return math.Abs(s) / 2
}

func twoBandTube(t *testing.T) (model.Model, model.Band) {
	t.Helper()
	m := fixture.Tube(1, []float64{2, 1, 0}, 8)
	flatBand, err := strip.Flatten(m.Tubes[0].Bands[0], strip.WithAddress(0, 0))
	require.NoError(t, err)
	return m, flatBand
}

// TestBuild_Full verifies the full flap is the footprint verbatim.
func TestBuild_Full(t *testing.T) {
	spec := tab.Spec{Style: model.StyleFull, Direction: model.Greater}
	got, err := tab.Build(spec, geom.AB, flat, tab.Footprints{First: under})
	require.NoError(t, err)
	assert.Equal(t, model.StyleFull, got.Style())
	assert.Equal(t, geom.AB, got.Edge())
	assert.Equal(t, []r3.Vec{under.A, under.B, under.C}, got.Outer())
	assert.Nil(t, model.ScoreLine(got))
}

// TestBuild_Trapezoid walks half the base length along both sides.
func TestBuild_Trapezoid(t *testing.T) {
	spec := tab.Spec{Style: model.StyleTrapezoid, Width: tab.Width{Fraction: 0.5}, Score: 0.25}
	got, err := tab.Build(spec, geom.AB, flat, tab.Footprints{First: under})
	require.NoError(t, err)

	outer := got.Outer()
	require.Len(t, outer, 4)
	d := 1 / math.Sqrt2
	assert.Equal(t, r3.Vec{}, outer[0])
	assert.InDelta(t, d, outer[1].X, eps)
	assert.InDelta(t, -d, outer[1].Y, eps)
	assert.InDelta(t, 2-d, outer[2].X, eps)
	assert.InDelta(t, -d, outer[2].Y, eps)
	assert.Equal(t, r3.Vec{X: 2}, outer[3])

	score := model.ScoreLine(got)
	require.NotNil(t, score)
	assert.InDelta(t, 0.5, score.From.X, eps)
	assert.InDelta(t, 1.5, score.To.X, eps)
}

// TestBuild_TrapezoidLength uses a fixed width and rejects one past the apex.
func TestBuild_TrapezoidLength(t *testing.T) {
	spec := tab.Spec{Style: model.StyleTrapezoid, Width: tab.Width{Length: 0.5}}
	got, err := tab.Build(spec, geom.AB, flat, tab.Footprints{First: under})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r3.Norm(got.Outer()[1]), eps)
	assert.Nil(t, model.ScoreLine(got))

	spec.Width.Length = 2
	_, err = tab.Build(spec, geom.AB, flat, tab.Footprints{First: under})
	assert.ErrorIs(t, err, tab.ErrTabTooWide)
}

// TestBuild_Errors covers spec validation.
func TestBuild_Errors(t *testing.T) {
	fp := tab.Footprints{First: under}
	cases := []struct {
		name string
		spec tab.Spec
		want error
	}{
		{"no width", tab.Spec{Style: model.StyleTrapezoid}, tab.ErrBadWidth},
		{"both widths", tab.Spec{Style: model.StyleTrapezoid, Width: tab.Width{Length: 0.1, Fraction: 0.1}}, tab.ErrBadWidth},
		{"score too big", tab.Spec{Style: model.StyleTrapezoid, Width: tab.Width{Fraction: 0.1}, Score: 0.5}, tab.ErrBadScore},
		{"negative score", tab.Spec{Style: model.StyleFull, Score: -0.1}, tab.ErrBadScore},
		{"missing second", tab.Spec{Style: model.StyleMultiFacetFull}, tab.ErrNeedSecond},
		{"unknown style", tab.Spec{Style: model.TabStyle(42)}, model.ErrUnknownTab},
	}
	for _, tc := range cases {
		_, err := tab.Build(tc.spec, geom.AB, flat, fp)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	far := geom.Tri(r3.Vec{X: 5}, r3.Vec{X: 6}, r3.Vec{X: 5, Y: 1})
	_, err := tab.Build(tab.Spec{Style: model.StyleFull}, geom.AB, flat, tab.Footprints{First: far})
	assert.ErrorIs(t, err, tab.ErrNotAdjacent)
}

// TestBuild_MultiFacet orders the quad from p0 and flips it on the lesser side.
func TestBuild_MultiFacet(t *testing.T) {
	second := geom.Tri(r3.Vec{X: 2}, r3.Vec{X: 1, Y: -1}, r3.Vec{X: 2, Y: -2})
	fp := tab.Footprints{First: under, Second: &second}

	greater, err := tab.Build(tab.Spec{Style: model.StyleMultiFacetFull, Direction: model.Greater}, geom.AB, flat, fp)
	require.NoError(t, err)
	want := []r3.Vec{{}, {X: 1, Y: -1}, {X: 2, Y: -2}, {X: 2}}
	assert.Equal(t, want, greater.Outer())
	assert.Len(t, greater.Footprint(), 2)

	lesser, err := tab.Build(tab.Spec{Style: model.StyleMultiFacetFull, Direction: model.Lesser}, geom.AB, flat, fp)
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{want[3], want[2], want[1], want[0]}, lesser.Outer())

	trap, err := tab.Build(tab.Spec{
		Style:     model.StyleMultiFacetTrapezoid,
		Width:     tab.Width{Fraction: 0.25},
		Score:     0.1,
		Direction: model.Greater,
	}, geom.AB, flat, fp)
	require.NoError(t, err)
	outer := trap.Outer()
	assert.InDelta(t, 0.5, r3.Norm(outer[1]), eps)
	assert.InDelta(t, 0.5, r3.Norm(r3.Sub(outer[2], r3.Vec{X: 2})), eps)
	assert.NotNil(t, model.ScoreLine(trap))
}

// TestFootprint_UnfoldsAcrossEdge checks congruence, verbatim shared points
// and the far-side placement.
func TestFootprint_UnfoldsAcrossEdge(t *testing.T) {
	m, flatBand := twoBandTube(t)
	band := m.Tubes[0].Bands[0]
	for i := 1; i < len(band.Facets); i += 2 {
		roles, err := strip.RolesAt(band, i)
		require.NoError(t, err)
		edge := roles.RailEdge()
		meta, err := band.Facets[i].Edge(edge)
		require.NoError(t, err)
		require.NotNil(t, meta.Partner)
		nf, err := m.Facet(meta.Partner.FacetAddress)
		require.NoError(t, err)

		ft := flatBand.Facets[i].Triangle
		got, err := tab.Footprint(band.Facets[i].Triangle, ft, edge, nf.Triangle)
		require.NoError(t, err)

		assert.InDeltaSlice(t, sortedLengths(nf.Triangle), sortedLengths(got), 1e-9)
		p0, p1 := ft.EdgePoints(edge)
		_, ok0 := got.VertexNear(p0, 0)
		_, ok1 := got.VertexNear(p1, 0)
		assert.True(t, ok0 && ok1, "facet %d shares edge points verbatim", i)
		assert.Less(t, geom.Side(p0, p1, got.Centroid())*geom.Side(p0, p1, ft.At(edge.Opposite())), 0.0)
	}
}

// TestAttach_Sides checks which facets carry tabs for each side setting.
func TestAttach_Sides(t *testing.T) {
	m, flatBand := twoBandTube(t)

	lesser, err := tab.Attach(m, 0, 0, flatBand, tab.Spec{Style: model.StyleFull, Direction: model.Lesser})
	require.NoError(t, err)
	for i, f := range lesser.Facets {
		if i%2 == 1 {
			require.NotNil(t, f.Tab, "facet %d", i)
			assert.Equal(t, model.Lesser, f.Tab.Direction())
		} else {
			assert.Nil(t, f.Tab, "facet %d", i)
		}
	}

	// the top rail of the first band is the model boundary
	greater, err := tab.Attach(m, 0, 0, flatBand, tab.Spec{Style: model.StyleFull, Direction: model.Greater})
	require.NoError(t, err)
	for _, f := range greater.Facets {
		assert.Nil(t, f.Tab)
	}
	assert.Nil(t, flatBand.Facets[1].Tab, "input is not modified")
}

// TestAttach_MultiFacet verifies the quad covers both footprints exactly.
func TestAttach_MultiFacet(t *testing.T) {
	m, flatBand := twoBandTube(t)
	got, err := tab.Attach(m, 0, 0, flatBand, tab.Spec{Style: model.StyleMultiFacetFull, Direction: model.Both})
	require.NoError(t, err)

	n := 0
	for _, f := range got.Facets {
		if f.Tab == nil {
			continue
		}
		n++
		fps := f.Tab.Footprint()
		require.Len(t, fps, 2)
		assert.InDelta(t, fps[0].Area()+fps[1].Area(), shoelace(f.Tab.Outer()), 1e-9)
	}
	assert.Equal(t, 8, n)
}

// TestOutline_SplicesTab verifies the tab lands between its edge endpoints.
func TestOutline_SplicesTab(t *testing.T) {
	spec := tab.Spec{Style: model.StyleTrapezoid, Width: tab.Width{Fraction: 0.25}}
	for _, dir := range []model.TabDirection{model.Greater, model.Lesser} {
		spec.Direction = dir
		tb, err := tab.Build(spec, geom.AB, flat, tab.Footprints{First: under})
		require.NoError(t, err)

		ring := tab.Outline(model.Facet{Triangle: flat, Tab: tb})
		require.Len(t, ring, 5)
		assert.Equal(t, flat.A, ring[0])
		assert.Equal(t, tb.Outer()[1], ring[1])
		assert.Equal(t, tb.Outer()[2], ring[2])
		assert.Equal(t, flat.B, ring[3])
		assert.Equal(t, flat.C, ring[4])
	}

	assert.Equal(t, []r3.Vec{flat.A, flat.B, flat.C}, tab.Outline(model.Facet{Triangle: flat}))
}
