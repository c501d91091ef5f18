// Package config loads pattern settings from YAML.
//
// A PatternConfig mirrors the option structs of the computing packages in
// a file-friendly shape: enums are names, unions carry a "type" field.
// Missing keys keep their Default values; unknown keys are rejected.
//
//	flatten:
//	  direction: {x: 1, y: 0}
//	  mirror: false
//	tab:
//	  enabled: true
//	  style: trapezoid        # full | trapezoid | multi-facet-full | multi-facet-trapezoid
//	  width: {fraction: 0.4}  # or {length: 8}
//	  score: 0.05
//	  direction: greater      # lesser | greater | both
//	panel:
//	  thickness: 3
//	  holes:
//	    diameter: 3.2
//	    head_diameter: 5.5
//	    min_inset: 4
//	    placement: spaced     # none | spaced | vertex
//	    fraction: 0.2
//	  hinge: {enabled: false, width: 12, margin: 2}
//	distribution:
//	  type: contiguous        # none | contiguous | spaced
//	  offset: 5
//	  realign: true
//	sheet:
//	  gap: 10
//	audit:
//	  tolerance: 1.0e-6
//	workers: 0                # 0 = one per CPU
//
// Usage:
//
//	cfg, err := config.Load("pattern.yaml")
//	if err != nil {
//	    return err
//	}
//	spec, err := cfg.TabSpec()
package config
