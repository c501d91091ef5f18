// Package layout arranges panel patterns on the cutting sheet.
//
// 🚀 Distribution
//
//	Distribute applies a Distribution to one band:
//
//	  None        panels stay where flattening put them
//	  Spaced      panels stay; Gap separates bands when stacking
//	  Contiguous  each panel after the first is moved so that its leading
//	              edge lies Offset away from its predecessor's trailing
//	              edge, on the side away from the predecessor
//
//	With Contiguous.Realign the band is then rotated to its narrowest
//	orientation and moved so its bounding box starts at (0, 0).
//
// ✨ Search and fit
//
//	MinWidthAngle samples rotations from 0° to 179° in 1° steps and keeps
//	the one with the smallest X extent. LeastSquares fits y = m·x + b
//	through a point set and Orientation turns the slope into a unit vector.
//
// ✨ Sheet
//
//	Stack realigned bands one above another with a gap and Measure reports
//	the bounds and material area of the result.
package layout
