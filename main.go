// Command designpatterns runs the creational and structural pattern demos.
//
// Run:
//
//	go run .                      # every demo, in order
//	go run . run builder adapter  # only the named demos
//	go run . list                 # what is available
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
