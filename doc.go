// Package lvfold turns 3-D triangulated strips into flat, cuttable 2-D
// fabrication patterns.
//
// 🚀 What is lvfold?
//
//	A pure-Go, deterministic pipeline that brings together:
//		• Strip flattening: isometric unfolding of zig-zag triangle strips
//		• Glue tabs: full, trapezoid and multi-facet flaps
//		• Bevels: dihedral angle, crease polarity and cut angle per edge
//		• Fasteners: inset and back-face triangles, hole placement
//		• Hinges: connector outlines joining panels across strip boundaries
//		• Layout: contiguous sheet distribution and minimal-width realignment
//
// ✨ Guarantees
//
//   - Isometry – every flattened facet keeps its three edge lengths
//   - Contiguity – consecutive facets share bit-identical edge endpoints
//   - Purity – every stage returns new values, inputs are never mutated
//   - Addresses, not pointers – partners are {tube, band, facet, edge}
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/      — triangles, vertex/edge labels, lines, rigid 2-D transforms
//	model/     — facets, bands, tubes, tabs, edge metadata and addresses
//	strip/     — edge-role table and the flattening engine
//	tab/       — glue-tab and hinge-footprint generation
//	edgemeta/  — dihedral, crease and cut-angle computation + audit
//	panel/     — inset triangles, holes and hinge outlines
//	layout/    — sheet distribution and bounding-box realignment
//	pipeline/  — end-to-end generation, one worker per band
//	config/    — YAML pattern configuration
//	export/    — DXF cut files and PNG previews
//	cmd/lvfold — command-line front end
//
// Quick ASCII example (a circumference band, rails T and B):
//
//	T0────T1────T2
//	│ ╲ 0 │ ╲ 2 │
//	│ 1 ╲ │ 3 ╲ │
//	B0────B1────B2
//
// flattens into four congruent triangles sharing their diagonals.
//
//	go get github.com/katalvlaran/lvfold
package lvfold
