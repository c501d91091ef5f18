// SPDX-License-Identifier: MIT

// Command lvfold turns a triangulated strip model into cut files.
//
//	lvfold flatten --model tube.json --config pattern.yaml --dxf sheet.dxf --png sheet.png
//	lvfold config > pattern.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
