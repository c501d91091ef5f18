package panel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/internal/fixture"
	"github.com/katalvlaran/lvfold/model"
	"github.com/katalvlaran/lvfold/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

var big = geom.Tri(r3.Vec{}, r3.Vec{X: 40}, r3.Vec{X: 20, Y: 30})

func addr(tube int) model.FacetAddress { return model.FacetAddress{Tube: tube} }

func withPartner(f model.Facet, e geom.Edge, p model.EdgeAddress, cut float64) model.Facet {
	var m model.FacetMeta
	if f.Meta != nil {
		m = f.Meta.Clone()
	}
	m.Edges[e].Partner = &p
	m.Edges[e].CutAngle = cut
	return f.WithMeta(m)
}

// TestInsets_RightAngleScenario: thickness 2, a 90° mountain fold.
func TestInsets_RightAngleScenario(t *testing.T) {
	cfg := panel.Config{Thickness: 2, Holes: panel.HoleConfig{HeadDiameter: 0.5, MinInset: 0.1}}
	var meta model.FacetMeta
	meta.Edges[geom.AB].CutAngle = math.Pi / 4

	back, hole := panel.Insets(meta, cfg)
	assert.InDelta(t, 2, back[geom.AB], eps)
	assert.InDelta(t, math.Max(0.25, 2*math.Tan(math.Pi/4)+0.25), hole[geom.AB], eps)
	assert.Equal(t, 0.0, back[geom.BC])
	assert.InDelta(t, 0.25, hole[geom.BC], eps)
}

// TestInsetTriangle_Distances checks each edge moves by its inset.
func TestInsetTriangle_Distances(t *testing.T) {
	insets := [3]float64{1, 2, 3}
	got, err := panel.InsetTriangle(big, insets)
	require.NoError(t, err)
	for _, e := range geom.Edges {
		p, q := big.EdgePoints(e)
		line := geom.LineThrough(p, q)
		gp, gq := got.EdgePoints(e)
		assert.InDelta(t, insets[e], line.Distance(gp), eps, "edge %s", e)
		assert.InDelta(t, insets[e], line.Distance(gq), eps, "edge %s", e)
	}
	assert.Less(t, got.Area(), big.Area())
}

// TestInsetTriangle_TooLarge rejects insets past the incenter.
func TestInsetTriangle_TooLarge(t *testing.T) {
	_, err := panel.InsetTriangle(big, [3]float64{20, 20, 20})
	assert.ErrorIs(t, err, panel.ErrInsetTooLarge)
}

// TestPlaceHoles covers every placement policy.
func TestPlaceHoles(t *testing.T) {
	hc := panel.HoleConfig{Diameter: 3, HeadDiameter: 6, Placement: panel.PlaceVertex, Count: 3}
	holes, err := panel.PlaceHoles(big, geom.AB, hc)
	require.NoError(t, err)
	require.Len(t, holes, 3)
	for j, h := range holes {
		assert.InDelta(t, 10*float64(j+1), h.Center.X, eps)
		assert.Equal(t, 3.0, h.Diameter)
		assert.Equal(t, 6.0, h.HeadDiameter)
	}

	hc = panel.HoleConfig{Placement: panel.PlaceSpaced, Fraction: 0.25}
	holes, err = panel.PlaceHoles(big, geom.AB, hc)
	require.NoError(t, err)
	require.Len(t, holes, 2)
	assert.InDelta(t, 10, holes[0].Center.X, eps)
	assert.InDelta(t, 30, holes[1].Center.X, eps)

	holes, err = panel.PlaceHoles(big, geom.AB, panel.HoleConfig{})
	require.NoError(t, err)
	assert.Empty(t, holes)

	for _, bad := range []panel.HoleConfig{
		{Placement: panel.PlaceSpaced, Fraction: 0.5},
		{Placement: panel.PlaceSpaced},
		{Placement: panel.PlaceVertex},
		{Placement: panel.Placement(9)},
	} {
		_, err = panel.PlaceHoles(big, geom.AB, bad)
		assert.ErrorIs(t, err, panel.ErrBadHoles, "%+v", bad)
	}
}

// TestBuild_Panel places holes on the partnered edge only.
func TestBuild_Panel(t *testing.T) {
	cfg := panel.DefaultConfig()
	f := withPartner(model.Facet{Triangle: big}, geom.AB, addr(1).At(geom.AB), 0)

	p, err := panel.Build(addr(0), f, cfg)
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{big.A, big.B, big.C}, p.Points)

	// hole inset = max(5.5/2, 4, 0 + 5.5/2) = 4
	assert.InDelta(t, 4, p.Inset.A.Y, eps)
	assert.InDelta(t, 4, p.Inset.B.Y, eps)
	for _, v := range geom.Vertices {
		assert.InDelta(t, big.At(v).X, p.BackFace.At(v).X, eps)
		assert.InDelta(t, big.At(v).Y, p.BackFace.At(v).Y, eps)
	}

	holes := p.Holes()
	require.Len(t, holes, 2)
	for i, f := range []float64{0.2, 0.8} {
		want := geom.Lerp(p.Inset.A, p.Inset.B, f)
		assert.InDelta(t, want.X, holes[i].Center.X, eps)
		assert.InDelta(t, want.Y, holes[i].Center.Y, eps)
	}
	assert.Nil(t, f.Meta.Edges[geom.AB].Holes, "input is not modified")
}

// TestBuild_ValleyBackFace grows the back face beyond the front.
func TestBuild_ValleyBackFace(t *testing.T) {
	f := withPartner(model.Facet{Triangle: big}, geom.AC, addr(1).At(geom.AB), -math.Pi/8)
	p, err := panel.Build(addr(0), f, panel.DefaultConfig())
	require.NoError(t, err)
	assert.Greater(t, p.BackFace.Area(), big.Area())
}

// TestBuild_TooSmall reports the facet address.
func TestBuild_TooSmall(t *testing.T) {
	m := fixture.FlatSquare()
	_, err := panel.Build(addr(0), m.Tubes[0].Bands[0].Facets[0], panel.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, panel.ErrInsetTooLarge)
	var ae *model.AddressError
	assert.ErrorAs(t, err, &ae)
}

func hingePanels(t *testing.T) (panel.PanelPattern, panel.PanelPattern) {
	t.Helper()
	cfg := panel.DefaultConfig()
	cfg.Holes = panel.HoleConfig{Diameter: 3, HeadDiameter: 5, MinInset: 4, Placement: panel.PlaceVertex, Count: 1}

	other := geom.Tri(r3.Vec{X: 40}, r3.Vec{}, r3.Vec{X: 20, Y: -30}).
		Transform(geom.Rigid{Angle: 1, Offset: r3.Vec{X: 100, Y: 50}})
	fa := withPartner(model.Facet{Triangle: big}, geom.AB, addr(1).At(geom.AB), 0)
	fb := withPartner(model.Facet{Triangle: other}, geom.AB, addr(0).At(geom.AB), 0)

	pa, err := panel.Build(addr(0), fa, cfg)
	require.NoError(t, err)
	pb, err := panel.Build(addr(1), fb, cfg)
	require.NoError(t, err)
	return pa, pb
}

// TestHingeOutline_Symmetric joins two mirror-image panels flattened in
// unrelated frames.
func TestHingeOutline_Symmetric(t *testing.T) {
	pa, pb := hingePanels(t)
	h, err := panel.HingeOutline(pa, geom.AB, pb, geom.AB, panel.HingeConfig{Width: 10, Margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "0/0/0:ab", h.Edge.String())
	assert.Equal(t, "1/0/0:ab", h.Partner.String())

	o := h.Outline
	require.Len(t, o, 6)
	shift := 2 * math.Sqrt(1300) / 30
	l0 := -20 + shift
	l1 := -20 + 20.0/3 + shift
	assert.InDelta(t, l0, o[0].X, eps)
	assert.InDelta(t, 0, o[0].Y, eps)
	assert.InDelta(t, l1, o[1].X, eps)
	assert.InDelta(t, -10, o[1].Y, eps)
	assert.InDelta(t, -l1, o[2].X, eps)
	assert.InDelta(t, -l0, o[3].X, eps)
	assert.InDelta(t, 0, o[3].Y, eps)
	assert.InDelta(t, -l1, o[4].X, 1e-6)
	assert.InDelta(t, 10, o[4].Y, 1e-6)
	assert.InDelta(t, l1, o[5].X, 1e-6)
	assert.InDelta(t, 10, o[5].Y, 1e-6)

	require.Len(t, h.Holes, 2)
	assert.InDelta(t, 0, h.Holes[0].Center.X, eps)
	assert.InDelta(t, -4, h.Holes[0].Center.Y, eps)
	assert.InDelta(t, 0, h.Holes[1].Center.X, 1e-6)
	assert.InDelta(t, 4, h.Holes[1].Center.Y, 1e-6)

	assert.InDelta(t, 2*10*(-l0-l1), panel.HingeArea(h), 1e-5)
}

// TestHingeOutline_Errors covers partner and size checks.
func TestHingeOutline_Errors(t *testing.T) {
	pa, pb := hingePanels(t)
	_, err := panel.HingeOutline(pa, geom.BC, pb, geom.AB, panel.HingeConfig{Width: 10})
	assert.ErrorIs(t, err, panel.ErrNotPartners)

	_, err = panel.HingeOutline(pa, geom.AB, pb, geom.AB, panel.HingeConfig{Width: 40, Margin: 2})
	assert.ErrorIs(t, err, panel.ErrHingeTooWide)

	_, err = panel.HingeOutline(pa, geom.AB, pb, geom.AB, panel.HingeConfig{})
	assert.ErrorIs(t, err, panel.ErrHingeTooWide)
}
