// Package main provides boxdock, a command line front end to the layout
// engine and the dock snapshot format.
//
// Usage:
//
//	boxdock calc --space N --sizer HINT[:MIN[:MAX[:STRETCH]]]...
//	boxdock adjust --index I --delta D --sizer ...
//	boxdock restore FILE [--format json|yaml] [--width W --height H]
//	boxdock watch FILE [--metrics-addr :9090]
//
// Examples:
//
//	boxdock calc --space 300 --sizer 100 --sizer 100:0:inf:2
//	boxdock adjust --index 0 --delta 50 --sizer 100 --sizer 100
//	boxdock restore layout.yaml --width 1280 --height 720
//	boxdock --config boxdock.yaml watch layout.json
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
