// Package pipeline runs the whole pattern generation for a 3-D model.
//
//	1. edgemeta.Compute on the 3-D model (read-only afterwards)
//	2. per band, in parallel: strip.Flatten → tab.Attach → panel.Build
//	   for every facet → layout.Distribute
//	3. panel.HingeOutline for every partner pair crossing a band boundary,
//	   emitted once per pair (the lower address owns it)
//	4. layout.Stack of all bands into one sheet, layout.Measure
//	5. edgemeta.ValidateAllPanels audit
//
// Bands share nothing but the read-only model, so the fan-out is one
// errgroup task per band bounded by Options.Workers. The first failure
// cancels the remaining tasks and is returned.
package pipeline
