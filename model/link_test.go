package model_test

import (
	"testing"

	"github.com/katalvlaran/lvfold/geom"
	"github.com/katalvlaran/lvfold/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// pair builds two facets whose AB edges run between (x0,0,0)-(0,1,0) and
// (0,1,0)-(x1,0,0).
func pair(x0, x1 float64) model.Model {
	f0 := model.Facet{Triangle: geom.Tri(r3.Vec{X: x0}, r3.Vec{Y: 1}, r3.Vec{X: -1})}
	f1 := model.Facet{Triangle: geom.Tri(r3.Vec{Y: 1}, r3.Vec{X: x1}, r3.Vec{X: 1})}
	return model.Model{Tubes: []model.Tube{{Bands: []model.Band{{Facets: []model.Facet{f0, f1}}}}}}
}

// TestLink_AcrossCells matches endpoints that straddle a grid line.
func TestLink_AcrossCells(t *testing.T) {
	for _, c := range []struct {
		name   string
		x0, x1 float64
		linked bool
	}{
		{"straddling", 0.0049, 0.0051, true},
		{"same cell", 0.0021, 0.0039, true},
		{"negative side", -0.0001, 0.0001, true},
		{"too far", 0.0049, 0.0251, false},
	} {
		m := model.Link(pair(c.x0, c.x1), 0.01)

		p, ok, err := m.Partner(model.FacetAddress{}.At(geom.AB))
		require.NoError(t, err, c.name)
		assert.Equal(t, c.linked, ok, c.name)
		if !c.linked {
			continue
		}
		assert.Equal(t, model.FacetAddress{Facet: 1}.At(geom.AB), p, c.name)
		back, ok, err := m.Partner(p)
		require.NoError(t, err, c.name)
		assert.True(t, ok, c.name)
		assert.Equal(t, model.FacetAddress{}.At(geom.AB), back, c.name)

		for _, e := range []geom.Edge{geom.BC, geom.AC} {
			_, ok, err := m.Partner(model.FacetAddress{}.At(e))
			require.NoError(t, err)
			assert.False(t, ok, "%s: edge %s stays a boundary", c.name, e)
		}
	}
}

// TestLink_LowestAddressWins picks a deterministic partner among duplicates.
func TestLink_LowestAddressWins(t *testing.T) {
	m := pair(0, 0)
	dup := m.Tubes[0].Bands[0].Facets[1]
	m.Tubes[0].Bands[0].Facets = append(m.Tubes[0].Bands[0].Facets, dup)

	linked := model.Link(m, 1e-9)
	p, ok, err := linked.Partner(model.FacetAddress{}.At(geom.AB))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, p.Facet)
}
