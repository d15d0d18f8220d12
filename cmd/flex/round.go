package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	flex "github.com/grindlemire/go-flex"
)

// runRound implements the round subcommand.
// It prints each value snapped to the pixel grid, one per line.
func runRound(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("round", flag.ContinueOnError)
	scale := fs.Float64("scale", 1, "Pixels per point")
	ceil := fs.Bool("ceil", false, "Always round up")
	floor := fs.Bool("floor", false, "Always round down")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !(*scale >= 0) {
		return fmt.Errorf("scale must be a non-negative number, got %v", *scale)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no values given")
	}

	for _, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		// A scale of 0 disables rounding.
		rounded := float32(v)
		if *scale > 0 {
			rounded = flex.RoundValueToPixelGrid(v, *scale, *ceil, *floor)
		}
		fmt.Fprintln(stdout, strconv.FormatFloat(float64(rounded), 'g', -1, 32))
	}
	return nil
}
