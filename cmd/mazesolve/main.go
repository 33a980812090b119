// Package main provides the mazesolve CLI for solving and generating maze files.
package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/cmd/mazesolve/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
