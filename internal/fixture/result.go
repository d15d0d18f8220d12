package fixture

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Calculate lays the tree out at its available size.
func (t *Tree) Calculate() layout.LayoutStats {
	t.stats = t.Root.CalculateLayoutWithStats(t.Width, t.Height, t.Direction)
	return t.stats
}

// Stats returns the counters of the last Calculate.
func (t *Tree) Stats() layout.LayoutStats {
	return t.stats
}

// Result is the computed box of one node and its subtree. Positions are
// relative to the owner.
type Result struct {
	ID       string   `toml:"id,omitempty" yaml:"id,omitempty"`
	Left     float32  `toml:"left" yaml:"left"`
	Top      float32  `toml:"top" yaml:"top"`
	Width    float32  `toml:"width" yaml:"width"`
	Height   float32  `toml:"height" yaml:"height"`
	Children []Result `toml:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot copies the computed boxes out of the tree.
func (t *Tree) Snapshot() Result {
	return snapshot(t.Root)
}

func snapshot(n *layout.Node) Result {
	id, _ := n.Context().(string)
	r := Result{
		ID:     id,
		Left:   n.ComputedLeft(),
		Top:    n.ComputedTop(),
		Width:  n.ComputedWidth(),
		Height: n.ComputedHeight(),
	}
	for _, c := range n.Children() {
		r.Children = append(r.Children, snapshot(c))
	}
	return r
}

// Find returns the first result in the subtree with the given id.
func (r *Result) Find(id string) (*Result, bool) {
	if r.ID == id {
		return r, true
	}
	for i := range r.Children {
		if found, ok := r.Children[i].Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

// EncodeTOML writes the result tree as TOML. Children become arrays of
// tables.
func (r Result) EncodeTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// EncodeText writes one indented line per node:
//
//	root: left=0 top=0 width=100 height=20
//	  label: left=0 top=0 width=11 height=1
func (r Result) EncodeText(w io.Writer) error {
	var b strings.Builder
	r.writeText(&b, 0)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (r Result) writeText(b *strings.Builder, depth int) {
	name := r.ID
	if name == "" {
		name = "_"
	}
	fmt.Fprintf(b, "%s%s: left=%s top=%s width=%s height=%s\n",
		strings.Repeat("  ", depth), name,
		formatLength(r.Left), formatLength(r.Top), formatLength(r.Width), formatLength(r.Height))
	for _, c := range r.Children {
		c.writeText(b, depth+1)
	}
}

func formatLength(v float32) string {
	if layout.IsUndefined(v) {
		return "undefined"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
