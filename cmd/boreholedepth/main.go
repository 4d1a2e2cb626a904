// Command boreholedepth converts between measured depth and true vertical
// depth along a surveyed borehole.
//
// Usage:
//
//	boreholedepth tvd --geometry well.yaml 120 250.5
//	boreholedepth md --geometry well.yaml 118.2
//	boreholedepth validate --geometry well.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
