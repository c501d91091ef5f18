// Package edgemeta computes and audits per-edge fabrication metadata for a
// 3-D model: dihedral angle, crease polarity and the bevel (cut) angle that
// lets two panels of finite thickness meet flush once folded.
//
// 🚀 Angles
//
//	For an edge u→v (in the facet's winding order) with the facet's third
//	vertex s and the partner's third vertex p:
//
//	  b0 = v − u,  b1 = s − u,  b2 = p − u
//	  dihedral = acos( (b0×b1)·(b0×b2) / (|b0×b1| |b0×b2|) )
//
//	Parallel cross products give NaN, resolved to 0 when b1 == b2 and to π
//	otherwise. The crease is a valley when b1 rotated about b0 by the
//	dihedral lands in the partner's half-plane, a mountain otherwise.
//
//	  cutAngle = (π − dihedral) / 2,   negated for valleys
//
//	A coplanar pair has dihedral π and cut angle 0; a right-angle fold has
//	dihedral π/2 and cut angle ±π/4. A NaN cut angle is fatal
//	(ErrNaNCutAngle).
//
// ✨ Audit
//
//	ValidateEdgeMeta checks one edge: its partner's partner must round-trip
//	to it, and both sides must agree on crease and (within tolerance) cut
//	angle. ValidateAllPanels sweeps the whole model, logs each violation at
//	Warn through lvfold.Logger and keeps going. It never repairs data.
//
// Usage:
//
//	m, err := edgemeta.Compute(m)
//	if err != nil {
//	    return err
//	}
//	for _, v := range edgemeta.ValidateAllPanels(m) {
//	    fmt.Println(v)
//	}
package edgemeta
