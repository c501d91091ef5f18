// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/lvfold/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// File is the JSON form of a Model:
//
//	{"tubes": [{"bands": [{
//	    "orientation": "circumference",
//	    "strut": {"placement": "outside", "radiate": "none"},
//	    "facets": [{"points": [[x,y,z], [x,y,z], [x,y,z]],
//	                "partners": [null, {"tube":0,"band":0,"facet":1,"edge":"ac"}, null]}]
//	}]}]}
//
// "strut" marks a strut band and may be omitted. "partners" lists one
// entry per edge in ab, bc, ac order; omit it to leave the facet
// without metadata.
type File struct {
	Tubes []fileTube `json:"tubes"`
}

type fileTube struct {
	Bands []fileBand `json:"bands"`
}

type fileBand struct {
	Orientation string      `json:"orientation"`
	Strut       *fileStrut  `json:"strut,omitempty"`
	Facets      []fileFacet `json:"facets"`
}

type fileStrut struct {
	Placement string `json:"placement,omitempty"`
	Radiate   string `json:"radiate,omitempty"`
}

type fileFacet struct {
	Points   [3][3]float64 `json:"points"`
	Partners []*fileEdge   `json:"partners,omitempty"`
}

type fileEdge struct {
	Tube  int    `json:"tube"`
	Band  int    `json:"band"`
	Facet int    `json:"facet"`
	Edge  string `json:"edge"`
}

var (
	orientations = map[string]Orientation{
		"circumference": Circumference,
		"helical-left":  HelicalLeft,
		"helical-right": HelicalRight,
	}
	placements = map[string]StrutPlacement{"": StrutOutside, "outside": StrutOutside, "inside": StrutInside, "half": StrutHalf}
	radiates   = map[string]RadiateStyle{"": RadiateNone, "none": RadiateNone, "center": RadiateCenter, "edge": RadiateEdge}
)

// Decode reads a model file from r.
//
// Errors: ErrBadFile wrapping the JSON or field error.
func Decode(r io.Reader) (Model, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Model{}, fmt.Errorf("%w: %v", ErrBadFile, err)
	}
	return f.Model()
}

// Load reads the model file at path.
func Load(path string) (Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Model{}, err
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes m to w as an indented model file.
func Encode(w io.Writer, m Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewFile(m))
}

// Model converts f, resolving names and checking partner addresses.
func (f File) Model() (Model, error) {
	var m Model
	for t, ft := range f.Tubes {
		var tube Tube
		for b, fb := range ft.Bands {
			band, err := fb.band()
			if err != nil {
				return Model{}, fmt.Errorf("%w: tube %d band %d: %v", ErrBadFile, t, b, err)
			}
			tube.Bands = append(tube.Bands, band)
		}
		m.Tubes = append(m.Tubes, tube)
	}

	// partners must name a facet of the model
	err := m.Walk(func(addr FacetAddress, fc Facet) error {
		if fc.Meta == nil {
			return nil
		}
		for _, e := range geom.Edges {
			if p := fc.Meta.Edges[e].Partner; p != nil {
				if _, err := m.Facet(p.FacetAddress); err != nil {
					return fmt.Errorf("%w: partner of %s: %v", ErrBadFile, addr.At(e), err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return Model{}, err
	}
	return m, nil
}

func (fb fileBand) band() (Band, error) {
	o, ok := orientations[fb.Orientation]
	if !ok {
		return Band{}, fmt.Errorf("orientation %q", fb.Orientation)
	}
	band := Band{Orientation: o, Facets: make([]Facet, len(fb.Facets))}
	if fb.Strut != nil {
		p, ok := placements[fb.Strut.Placement]
		if !ok {
			return Band{}, fmt.Errorf("strut placement %q", fb.Strut.Placement)
		}
		r, ok := radiates[fb.Strut.Radiate]
		if !ok {
			return Band{}, fmt.Errorf("strut radiate %q", fb.Strut.Radiate)
		}
		band.Strut = &StrutTags{Placement: p, Radiate: r}
	}
	for i, ff := range fb.Facets {
		var pts [3]r3.Vec
		for v, p := range ff.Points {
			pts[v] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		fc := Facet{Triangle: geom.Tri(pts[0], pts[1], pts[2])}
		if ff.Partners != nil {
			if len(ff.Partners) != 3 {
				return Band{}, fmt.Errorf("facet %d: %d partners, want 3", i, len(ff.Partners))
			}
			var meta FacetMeta
			for j, fe := range ff.Partners {
				if fe == nil {
					continue
				}
				e, ok := edgeNamed(fe.Edge)
				if !ok {
					return Band{}, fmt.Errorf("facet %d: edge %q", i, fe.Edge)
				}
				meta.Edges[j].Partner = &EdgeAddress{
					FacetAddress: FacetAddress{Tube: fe.Tube, Band: fe.Band, Facet: fe.Facet},
					Edge:         e,
				}
			}
			fc.Meta = &meta
		}
		band.Facets[i] = fc
	}
	return band, nil
}

func edgeNamed(s string) (geom.Edge, bool) {
	for _, e := range geom.Edges {
		if e.String() == s {
			return e, true
		}
	}
	return 0, false
}

// NewFile converts m to its file form. Computed metadata other than
// partners is not stored.
func NewFile(m Model) File {
	var f File
	for _, t := range m.Tubes {
		var ft fileTube
		for _, b := range t.Bands {
			fb := fileBand{Orientation: b.Orientation.String(), Facets: make([]fileFacet, len(b.Facets))}
			if b.Strut != nil {
				fb.Strut = &fileStrut{Placement: nameOf(placements, b.Strut.Placement), Radiate: nameOf(radiates, b.Strut.Radiate)}
			}
			for i, fc := range b.Facets {
				for v, p := range fc.Triangle.Points() {
					fb.Facets[i].Points[v] = [3]float64{p.X, p.Y, p.Z}
				}
				if fc.Meta != nil {
					fb.Facets[i].Partners = make([]*fileEdge, 3)
					for j, em := range fc.Meta.Edges {
						if em.Partner != nil {
							p := em.Partner
							fb.Facets[i].Partners[j] = &fileEdge{Tube: p.Tube, Band: p.Band, Facet: p.Facet, Edge: p.Edge.String()}
						}
					}
				}
			}
			ft.Bands = append(ft.Bands, fb)
		}
		f.Tubes = append(f.Tubes, ft)
	}
	return f
}

// nameOf returns the non-empty name mapped to v.
func nameOf[T comparable](names map[string]T, v T) string {
	for k, x := range names {
		if k != "" && x == v {
			return k
		}
	}
	return ""
}
