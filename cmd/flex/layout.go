package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/fixture"
	"github.com/grindlemire/go-flex/internal/layout"
)

// terminalSize reports the size of stdout when it is a terminal.
var terminalSize = func() (width, height int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

type layoutOptions struct {
	width  float32
	height float32
	rtl    bool
	format string
	stats  bool

	termWidth, termHeight float32
}

// runLayout implements the layout subcommand.
// Files are laid out concurrently and printed in argument order.
func runLayout(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	width := fs.String("width", "", "Available width")
	height := fs.String("height", "", "Available height")
	rtl := fs.Bool("rtl", false, "Lay the root out right to left")
	format := fs.String("format", "text", "Output format: text or toml")
	stats := fs.Bool("stats", false, "Print layout counters after each tree")
	debugPath := fs.String("debug", "", "Append engine debug output to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("no fixture files given")
	}

	opts := layoutOptions{
		rtl:        *rtl,
		format:     strings.ToLower(*format),
		stats:      *stats,
		termWidth:  layout.Undefined,
		termHeight: layout.Undefined,
	}
	if opts.format != "text" && opts.format != "toml" {
		return fmt.Errorf("unknown format %q", *format)
	}

	var err error
	if opts.width, err = parseSizeFlag("width", *width); err != nil {
		return err
	}
	if opts.height, err = parseSizeFlag("height", *height); err != nil {
		return err
	}
	if w, h, ok := terminalSize(); ok {
		opts.termWidth, opts.termHeight = float32(w), float32(h)
	}

	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	outputs := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := layoutFile(path, opts)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if len(files) > 1 {
			fmt.Fprintf(stdout, "# %s\n", files[i])
		}
		if _, err := stdout.Write(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// layoutFile loads, lays out and renders one fixture.
func layoutFile(path string, opts layoutOptions) ([]byte, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	tree, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	tree.Width = pickSize(opts.width, tree.Width, opts.termWidth)
	tree.Height = pickSize(opts.height, tree.Height, opts.termHeight)
	if opts.rtl {
		tree.Direction = layout.DirectionRTL
	}

	stats := tree.Calculate()
	debug.Log("%s: laid out at %vx%v", path, tree.Width, tree.Height)

	var buf bytes.Buffer
	result := tree.Snapshot()
	switch opts.format {
	case "toml":
		err = result.EncodeTOML(&buf)
	default:
		err = result.EncodeText(&buf)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if opts.stats {
		fmt.Fprintf(&buf, "stats: layouts=%d measures=%d cached_layouts=%d cached_measures=%d measure_callbacks=%d\n",
			stats.Layouts, stats.Measures, stats.CachedLayouts, stats.CachedMeasures, stats.MeasureCallbacks)
	}
	return buf.Bytes(), nil
}

// pickSize prefers the flag, then the file, then the terminal.
func pickSize(flagValue, fileValue, termValue float32) float32 {
	if !layout.IsUndefined(flagValue) {
		return flagValue
	}
	if !layout.IsUndefined(fileValue) {
		return fileValue
	}
	return termValue
}

func parseSizeFlag(name, s string) (float32, error) {
	if s == "" || s == "undefined" {
		return layout.Undefined, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid -%s %q: %w", name, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("-%s must not be negative, got %v", name, v)
	}
	return float32(v), nil
}
