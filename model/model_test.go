package model_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func sampleModel() model.Model {
	partner := model.FacetAddress{Tube: 0, Band: 0, Facet: 1}.At(geom.AB)
	f0 := model.Facet{Triangle: geom.Tri(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1})}.
		WithMeta(model.FacetMeta{Edges: [3]model.EdgeMeta{
			geom.BC: {Partner: &partner, CutAngle: 0.5, Crease: model.Mountain,
				Holes: []model.Hole{{Center: r3.Vec{X: 0.3, Y: 0.3}, Diameter: 1}}},
		}})
	f1 := model.Facet{Triangle: geom.Tri(r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{X: 1, Y: 1})}
	return model.Model{Tubes: []model.Tube{{Bands: []model.Band{{Facets: []model.Facet{f0, f1}}}}}}
}

// TestModel_Resolve checks facet, edge and partner lookups.
func TestModel_Resolve(t *testing.T) {
	m := sampleModel()
	addr := model.FacetAddress{}.At(geom.BC)

	p, ok, err := m.Partner(addr)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, p.Facet)

	_, ok, err = m.Partner(model.FacetAddress{}.At(geom.AB))
	require.NoError(t, err)
	assert.False(t, ok, "boundary edge has no partner")

	_, err = m.Edge(model.FacetAddress{Facet: 1}.At(geom.AB))
	assert.ErrorIs(t, err, model.ErrNoMeta)

	_, err = m.Facet(model.FacetAddress{Tube: 2})
	assert.ErrorIs(t, err, model.ErrAddressOutOfRange)
	assert.Equal(t, 2, m.Count())
}

// TestModel_CloneIsDeep verifies that mutating a clone leaves the source intact.
func TestModel_CloneIsDeep(t *testing.T) {
	m := sampleModel()
	c := m.Clone()
	c.Tubes[0].Bands[0].Facets[0].Meta.Edges[geom.BC].Holes[0].Diameter = 99
	c.Tubes[0].Bands[0].Facets[0].Meta.Edges[geom.BC].Partner.Facet = 42

	orig := m.Tubes[0].Bands[0].Facets[0].Meta.Edges[geom.BC]
	assert.Equal(t, 1.0, orig.Holes[0].Diameter)
	assert.Equal(t, 1, orig.Partner.Facet)
}

// TestFacet_Transform moves triangle, tab and holes together.
func TestFacet_Transform(t *testing.T) {
	f := sampleModel().Tubes[0].Bands[0].Facets[0]
	f = f.WithTab(model.FullTab{Attach: geom.AB, Source: geom.Tri(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: -1})})

	moved := f.Transform(geom.Translation(r3.Vec{X: 10}))
	assert.Equal(t, 10.0, moved.Triangle.A.X)
	assert.Equal(t, 10.0, moved.Tab.Outer()[0].X)
	assert.InDelta(t, 10.3, moved.Meta.Edges[geom.BC].Holes[0].Center.X, 1e-12)
	assert.Equal(t, 0.3, f.Meta.Edges[geom.BC].Holes[0].Center.X, "source untouched")
}

// TestAddressError_Unwrap checks kind and address survive wrapping.
func TestAddressError_Unwrap(t *testing.T) {
	kind := errors.New("kind")
	err := model.EdgeError(model.FacetAddress{Tube: 1, Band: 2, Facet: 3}.At(geom.AC), kind)
	assert.ErrorIs(t, err, kind)
	assert.EqualError(t, err, "facet 1/2/3:ac: kind")

	var ae *model.AddressError
	require.ErrorAs(t, error(err), &ae)
	assert.Equal(t, 3, ae.Addr.Facet)
}

// TestTab_UnionStyles checks the discriminant of every variant.
func TestTab_UnionStyles(t *testing.T) {
	tabs := []model.Tab{
		model.FullTab{}, model.TrapezoidTab{}, model.MultiFacetFullTab{}, model.MultiFacetTrapezoidTab{},
	}
	want := []model.TabStyle{
		model.StyleFull, model.StyleTrapezoid, model.StyleMultiFacetFull, model.StyleMultiFacetTrapezoid,
	}
	for i, tab := range tabs {
		assert.Equal(t, want[i], tab.Style())
	}
	assert.True(t, model.Both.Includes(model.Lesser))
	assert.False(t, model.Greater.Includes(model.Lesser))
}
