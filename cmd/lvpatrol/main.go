// Package main implements the lvpatrol CLI: it reads a lab map and reports
// the guard's patrol length and the number of loop-inducing obstructions.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
