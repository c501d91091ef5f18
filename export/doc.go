// Package export writes laid-out patterns to files a cutter can read.
//
// 🚀 Drawing
//
//	Build collects the sheet of a pipeline.Result into layered shapes:
//
//	  CUT    panel outlines with tabs spliced in
//	  SCORE  tab score lines
//	  HOLES  fastener holes, one circle per hole diameter
//	  BACK   back-face outlines (optional)
//	  HINGE  hinge outlines and their holes
//
//	Hinges are built in their own frame; Build lines them up in a column
//	to the right of the sheet.
//
// ✨ Formats
//
//	WriteDXF saves a Drawing as an AutoCAD DXF file, one DXF layer per
//	shape layer. RenderPNG rasterizes it as a preview with Y pointing up.
//
// Usage:
//
//	d := export.Build(res, export.DefaultOptions())
//	err := export.WriteDXF("sheet.dxf", d)
package export
