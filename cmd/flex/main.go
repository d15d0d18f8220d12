// Package main provides the CLI tool for laying out fixture trees.
//
// Usage:
//
//	flex layout [options] FILE...   Lay out TOML or YAML fixtures and print the boxes
//	flex round [options] VALUE...   Snap values to a pixel grid
//	flex version                    Print version information
//	flex help                       Show help
//
// Examples:
//
//	flex layout testdata/row.toml
//	flex layout -width 80 -format toml a.toml b.yaml
//	flex round -scale 2 10.3 10.8
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `flex - flexbox layout for fixture trees

Usage:
  flex <command> [options] [args...]

Commands:
  layout      Lay out fixture files and print the computed boxes
  round       Round values to a pixel grid
  version     Print version information
  help        Show this help message

Layout options:
  -width W    Available width (default: from the file, then the terminal)
  -height H   Available height (default: from the file, then the terminal)
  -rtl        Lay the root out right to left
  -format F   Output format: text or toml (default text)
  -stats      Print layout counters after each tree
  -debug P    Append engine debug output to file P (or set FLEX_DEBUG)

Round options:
  -scale S    Pixels per point (default 1)
  -ceil       Always round up
  -floor      Always round down

Examples:
  flex layout tree.toml
  flex layout -width 80 -format toml a.toml b.yaml
  flex round -scale 2 10.3 10.8
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, stdout io.Writer) error {
	switch command {
	case "layout":
		return runLayout(args, stdout)
	case "round":
		return runRound(args, stdout)
	case "version":
		fmt.Fprintf(stdout, "flex version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		return fmt.Errorf("unknown command: %s\n\n%s", command, usage)
	}
	return nil
}
