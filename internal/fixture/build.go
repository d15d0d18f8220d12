package fixture

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/pkg/measure"
)

var (
	directions     = []layout.Direction{layout.DirectionInherit, layout.DirectionLTR, layout.DirectionRTL}
	flexDirections = []layout.FlexDirection{layout.FlexDirectionColumn, layout.FlexDirectionColumnReverse, layout.FlexDirectionRow, layout.FlexDirectionRowReverse}
	justifies      = []layout.Justify{layout.JustifyFlexStart, layout.JustifyCenter, layout.JustifyFlexEnd, layout.JustifySpaceBetween, layout.JustifySpaceAround, layout.JustifySpaceEvenly}
	aligns         = []layout.Align{layout.AlignAuto, layout.AlignFlexStart, layout.AlignCenter, layout.AlignFlexEnd, layout.AlignStretch, layout.AlignBaseline, layout.AlignSpaceBetween, layout.AlignSpaceAround, layout.AlignSpaceEvenly}
	positionTypes  = []layout.PositionType{layout.PositionTypeStatic, layout.PositionTypeRelative, layout.PositionTypeAbsolute}
	wraps          = []layout.Wrap{layout.WrapNoWrap, layout.WrapWrap, layout.WrapWrapReverse}
	overflows      = []layout.Overflow{layout.OverflowVisible, layout.OverflowHidden, layout.OverflowScroll}
	displays       = []layout.Display{layout.DisplayFlex, layout.DisplayNone}
)

var errataNames = map[string]layout.Errata{
	"none":               layout.ErrataNone,
	"stretch-flex-basis": layout.ErrataStretchFlexBasis,
	"absolute-position-without-insets-excludes-padding": layout.ErrataAbsolutePositionWithoutInsetsExcludesPadding,
	"absolute-percent-against-inner-size":               layout.ErrataAbsolutePercentAgainstInnerSize,
	"all":                                               layout.ErrataAll,
	"classic":                                           layout.ErrataClassic,
}

var experimentalNames = map[string]layout.ExperimentalFeature{
	"web-flex-basis": layout.ExperimentalFeatureWebFlexBasis,
}

// Tree is a built fixture ready to be laid out.
type Tree struct {
	Root      *layout.Node
	Config    *layout.Config
	Width     float32
	Height    float32
	Direction layout.Direction

	stats layout.LayoutStats
}

// Build validates the document and creates its node tree. Errors name the
// offending node by path.
func (d *Document) Build() (*Tree, error) {
	config, err := d.Config.build()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	t := &Tree{Config: config, Direction: layout.DirectionLTR}
	if t.Width, err = parseAvailable(d.Width); err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	if t.Height, err = parseAvailable(d.Height); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if d.Direction != "" {
		if t.Direction, err = parseEnum("direction", d.Direction, directions); err != nil {
			return nil, err
		}
	}

	t.Root, err = d.Root.build(config, "root")
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (c ConfigSpec) build() (*layout.Config, error) {
	config := layout.NewConfig()
	config.SetUseWebDefaults(c.UseWebDefaults)
	if c.PointScaleFactor != nil {
		if !(*c.PointScaleFactor >= 0) {
			return nil, fmt.Errorf("point_scale_factor must be a non-negative number, got %v", *c.PointScaleFactor)
		}
		config.SetPointScaleFactor(*c.PointScaleFactor)
	}
	for _, name := range c.Errata {
		e, ok := errataNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown errata %q", name)
		}
		config.AddErrata(e)
	}
	for _, name := range c.Experimental {
		f, ok := experimentalNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown experimental feature %q", name)
		}
		config.SetExperimentalFeatureEnabled(f, true)
	}
	return config, nil
}

func (s *NodeSpec) build(config *layout.Config, path string) (*layout.Node, error) {
	if s.ID != "" {
		path = fmt.Sprintf("%s(%s)", path, s.ID)
	}
	n := layout.NewNodeWithConfig(config)
	n.SetContext(s.ID)

	if err := s.apply(n); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if s.Text != "" {
		if len(s.Children) > 0 {
			return nil, fmt.Errorf("%s: text nodes cannot have children", path)
		}
		switch strings.ToLower(s.Measurer) {
		case "", "cells":
			n.SetMeasureFunc(measure.Cells(s.Text))
			n.SetBaselineFunc(measure.CellsBaseline())
		case "face":
			n.SetMeasureFunc(measure.Face(basicfont.Face7x13, s.Text))
			n.SetBaselineFunc(measure.FaceBaseline(basicfont.Face7x13))
		default:
			return nil, fmt.Errorf("%s: unknown measurer %q", path, s.Measurer)
		}
	}

	for i := range s.Children {
		child, err := s.Children[i].build(config, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}
	return n, nil
}

func (s *NodeSpec) apply(n *layout.Node) error {
	steps := []func() error{
		func() error { return applyEnum("direction", s.Direction, directions, n.SetDirection) },
		func() error { return applyEnum("flex_direction", s.FlexDirection, flexDirections, n.SetFlexDirection) },
		func() error { return applyEnum("justify_content", s.JustifyContent, justifies, n.SetJustifyContent) },
		func() error { return applyEnum("align_content", s.AlignContent, aligns, n.SetAlignContent) },
		func() error { return applyEnum("align_items", s.AlignItems, aligns, n.SetAlignItems) },
		func() error { return applyEnum("align_self", s.AlignSelf, aligns, n.SetAlignSelf) },
		func() error { return applyEnum("position_type", s.PositionType, positionTypes, n.SetPositionType) },
		func() error { return applyEnum("flex_wrap", s.FlexWrap, wraps, n.SetFlexWrap) },
		func() error { return applyEnum("overflow", s.Overflow, overflows, n.SetOverflow) },
		func() error { return applyEnum("display", s.Display, displays, n.SetDisplay) },
		func() error { return applyLength("flex_basis", s.FlexBasis, n.SetFlexBasis) },
		func() error { return applyLength("width", s.Width, n.SetWidth) },
		func() error { return applyLength("height", s.Height, n.SetHeight) },
		func() error { return applyLength("min_width", s.MinWidth, n.SetMinWidth) },
		func() error { return applyLength("min_height", s.MinHeight, n.SetMinHeight) },
		func() error { return applyLength("max_width", s.MaxWidth, n.SetMaxWidth) },
		func() error { return applyLength("max_height", s.MaxHeight, n.SetMaxHeight) },
		func() error { return s.Margin.apply("margin", noErr(n.SetMargin)) },
		func() error { return s.Padding.apply("padding", noErr(n.SetPadding)) },
		func() error { return s.Position.apply("position", noErr(n.SetPosition)) },
		func() error { return s.Border.apply("border", setBorder(n)) },
		func() error { return s.Gap.apply(n) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	if s.Flex != nil {
		n.SetFlex(*s.Flex)
	}
	if s.FlexGrow != nil {
		n.SetFlexGrow(*s.FlexGrow)
	}
	if s.FlexShrink != nil {
		n.SetFlexShrink(*s.FlexShrink)
	}
	if s.AspectRatio != nil {
		n.SetAspectRatio(*s.AspectRatio)
	}
	n.SetIsReferenceBaseline(s.ReferenceBaseline)
	n.SetAlwaysFormsContainingBlock(s.AlwaysFormsContainingBlock)
	return nil
}

// setBorder adapts SetBorder to the Value setter shape. Borders only take
// points.
func setBorder(n *layout.Node) func(layout.Edge, layout.Value) error {
	return func(edge layout.Edge, v layout.Value) error {
		switch v.Unit() {
		case layout.UnitPoint:
			n.SetBorder(edge, v.Amount())
		case layout.UnitUndefined:
			n.SetBorder(edge, layout.Undefined)
		default:
			return fmt.Errorf("must be in points, got %v", v)
		}
		return nil
	}
}

// noErr adapts an infallible edge setter.
func noErr(set func(layout.Edge, layout.Value)) func(layout.Edge, layout.Value) error {
	return func(edge layout.Edge, v layout.Value) error {
		set(edge, v)
		return nil
	}
}

func (e EdgeSpec) apply(field string, set func(layout.Edge, layout.Value) error) error {
	edges := []struct {
		edge layout.Edge
		raw  any
	}{
		{layout.EdgeAll, e.All},
		{layout.EdgeHorizontal, e.Horizontal},
		{layout.EdgeVertical, e.Vertical},
		{layout.EdgeStart, e.Start},
		{layout.EdgeEnd, e.End},
		{layout.EdgeLeft, e.Left},
		{layout.EdgeTop, e.Top},
		{layout.EdgeRight, e.Right},
		{layout.EdgeBottom, e.Bottom},
	}
	for _, ed := range edges {
		if ed.raw == nil {
			continue
		}
		v, err := parseLength(ed.raw)
		if err != nil {
			return fmt.Errorf("%s.%v: %w", field, ed.edge, err)
		}
		if err := set(ed.edge, v); err != nil {
			return fmt.Errorf("%s.%v: %w", field, ed.edge, err)
		}
	}
	return nil
}

func (g GapSpec) apply(n *layout.Node) error {
	gutters := []struct {
		gutter layout.Gutter
		raw    any
	}{
		{layout.GutterAll, g.All},
		{layout.GutterColumn, g.Column},
		{layout.GutterRow, g.Row},
	}
	for _, gt := range gutters {
		if gt.raw == nil {
			continue
		}
		v, err := parseLength(gt.raw)
		if err != nil {
			return fmt.Errorf("gap.%v: %w", gt.gutter, err)
		}
		n.SetGap(gt.gutter, v)
	}
	return nil
}

func applyEnum[T fmt.Stringer](field, name string, values []T, set func(T)) error {
	if name == "" {
		return nil
	}
	v, err := parseEnum(field, name, values)
	if err != nil {
		return err
	}
	set(v)
	return nil
}

func parseEnum[T fmt.Stringer](field, name string, values []T) (T, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range values {
		if v.String() == name {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", field, name)
}

func applyLength(field string, raw any, set func(layout.Value)) error {
	if raw == nil {
		return nil
	}
	v, err := parseLength(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	set(v)
	return nil
}

// parseLength accepts the scalar kinds TOML and YAML decode into: numbers
// are points and strings go through layout.ParseValue.
func parseLength(raw any) (layout.Value, error) {
	switch v := raw.(type) {
	case string:
		return layout.ParseValue(v)
	case int:
		return layout.Point(float32(v)), nil
	case int64:
		return layout.Point(float32(v)), nil
	case float64:
		return layout.Point(float32(v)), nil
	}
	return layout.Value{}, fmt.Errorf("unsupported length %v (%T)", raw, raw)
}

// parseAvailable reads an available size. Unset means undefined.
func parseAvailable(raw any) (float32, error) {
	if raw == nil {
		return layout.Undefined, nil
	}
	v, err := parseLength(raw)
	if err != nil {
		return 0, err
	}
	switch v.Unit() {
	case layout.UnitPoint:
		return v.Amount(), nil
	case layout.UnitUndefined:
		return layout.Undefined, nil
	}
	return 0, fmt.Errorf("available size must be a number of points, got %v", v)
}
