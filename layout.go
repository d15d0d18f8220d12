// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Node is one box in a layout tree.
type Node = layout.Node

// Config holds tunables shared by the nodes that reference it.
type Config = layout.Config

// Style is the full set of layout properties of a node.
type Style = layout.Style

// LayoutResult is the computed layout record of a node.
type LayoutResult = layout.LayoutResult

// CachedMeasurement is one remembered measurement of a node.
type CachedMeasurement = layout.CachedMeasurement

// LayoutStats counts the work done by one layout pass.
type LayoutStats = layout.LayoutStats

// UsageError is the panic value for misuse of the API.
type UsageError = layout.UsageError

// Size is a width/height pair returned by measure callbacks.
type Size = layout.Size

// MeasureFunc computes the content size of a leaf.
type MeasureFunc = layout.MeasureFunc

// BaselineFunc returns the baseline offset of a node.
type BaselineFunc = layout.BaselineFunc

// DirtiedFunc is called when a node becomes dirty.
type DirtiedFunc = layout.DirtiedFunc

// Value is a length: undefined, auto, points or a percentage.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitPoint     = layout.UnitPoint
	UnitPercent   = layout.UnitPercent
	UnitAuto      = layout.UnitAuto
)

// Undefined is the NaN sentinel for lengths without a value.
var Undefined = layout.Undefined

// Direction is the inline writing direction.
type Direction = layout.Direction

const (
	DirectionInherit = layout.DirectionInherit
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL
)

// FlexDirection specifies the main axis.
type FlexDirection = layout.FlexDirection

const (
	FlexDirectionColumn        = layout.FlexDirectionColumn
	FlexDirectionColumnReverse = layout.FlexDirectionColumnReverse
	FlexDirectionRow           = layout.FlexDirectionRow
	FlexDirectionRowReverse    = layout.FlexDirectionRowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyCenter       = layout.JustifyCenter
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies cross-axis placement of items or lines.
type Align = layout.Align

const (
	AlignAuto         = layout.AlignAuto
	AlignFlexStart    = layout.AlignFlexStart
	AlignCenter       = layout.AlignCenter
	AlignFlexEnd      = layout.AlignFlexEnd
	AlignStretch      = layout.AlignStretch
	AlignBaseline     = layout.AlignBaseline
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// PositionType controls whether a node takes part in flex flow.
type PositionType = layout.PositionType

const (
	PositionTypeStatic   = layout.PositionTypeStatic
	PositionTypeRelative = layout.PositionTypeRelative
	PositionTypeAbsolute = layout.PositionTypeAbsolute
)

// Wrap controls line breaking.
type Wrap = layout.Wrap

const (
	WrapNoWrap      = layout.WrapNoWrap
	WrapWrap        = layout.WrapWrap
	WrapWrapReverse = layout.WrapWrapReverse
)

// Overflow describes how oversized content is treated.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Display toggles layout participation.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Edge names a side of a box or a group of sides.
type Edge = layout.Edge

const (
	EdgeLeft       = layout.EdgeLeft
	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeStart      = layout.EdgeStart
	EdgeEnd        = layout.EdgeEnd
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeVertical   = layout.EdgeVertical
	EdgeAll        = layout.EdgeAll
)

// Gutter selects which gap a value applies to.
type Gutter = layout.Gutter

const (
	GutterColumn = layout.GutterColumn
	GutterRow    = layout.GutterRow
	GutterAll    = layout.GutterAll
)

// Dimension selects width or height.
type Dimension = layout.Dimension

const (
	DimensionWidth  = layout.DimensionWidth
	DimensionHeight = layout.DimensionHeight
)

// MeasureMode is the constraint passed to measure callbacks.
type MeasureMode = layout.MeasureMode

const (
	MeasureModeUndefined = layout.MeasureModeUndefined
	MeasureModeExactly   = layout.MeasureModeExactly
	MeasureModeAtMost    = layout.MeasureModeAtMost
)

// SizingMode is how an available size constrains a node.
type SizingMode = layout.SizingMode

const (
	SizingModeStretchFit = layout.SizingModeStretchFit
	SizingModeMaxContent = layout.SizingModeMaxContent
	SizingModeFitContent = layout.SizingModeFitContent
)

// NodeType marks text nodes.
type NodeType = layout.NodeType

const (
	NodeTypeDefault = layout.NodeTypeDefault
	NodeTypeText    = layout.NodeTypeText
)

// Errata selects legacy behaviors.
type Errata = layout.Errata

const (
	ErrataNone                                         = layout.ErrataNone
	ErrataStretchFlexBasis                             = layout.ErrataStretchFlexBasis
	ErrataAbsolutePositionWithoutInsetsExcludesPadding = layout.ErrataAbsolutePositionWithoutInsetsExcludesPadding
	ErrataAbsolutePercentAgainstInnerSize              = layout.ErrataAbsolutePercentAgainstInnerSize
	ErrataAll                                          = layout.ErrataAll
	ErrataClassic                                      = layout.ErrataClassic
)

// ExperimentalFeature flags behavior under evaluation.
type ExperimentalFeature = layout.ExperimentalFeature

const ExperimentalFeatureWebFlexBasis = layout.ExperimentalFeatureWebFlexBasis

// NewNode creates a node using the default config.
func NewNode() *Node {
	return layout.NewNode()
}

// NewNodeWithConfig creates a node that reads its tunables from config.
func NewNodeWithConfig(config *Config) *Node {
	return layout.NewNodeWithConfig(config)
}

// NewConfig returns a config with a point scale factor of 1.
func NewConfig() *Config {
	return layout.NewConfig()
}

// DefaultConfig returns the config used by NewNode.
func DefaultConfig() *Config {
	return layout.DefaultConfig()
}

// Point creates a Value in points.
func Point(v float32) Value {
	return layout.Point(v)
}

// Percent creates a Value relative to the owner's size.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value sized by content or flex.
func Auto() Value {
	return layout.Auto()
}

// UndefinedValue creates a Value that holds no length.
func UndefinedValue() Value {
	return layout.UndefinedValue()
}

// ParseValue parses "auto", "undefined", "12", "12pt" or "50%".
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// IsUndefined reports whether f is the Undefined sentinel.
func IsUndefined(f float32) bool {
	return layout.IsUndefined(f)
}

// FloatsEqual compares lengths with a small tolerance. Two undefined lengths
// are equal.
func FloatsEqual(a, b float32) bool {
	return layout.FloatsEqual(a, b)
}

// RoundValueToPixelGrid snaps a length to the pixel grid of scale.
func RoundValueToPixelGrid(value, scale float64, forceCeil, forceFloor bool) float32 {
	return layout.RoundValueToPixelGrid(value, scale, forceCeil, forceFloor)
}

// CanUseCachedMeasurement reports whether a remembered measurement answers
// a new request.
func CanUseCachedMeasurement(
	widthMode SizingMode, availableWidth float32,
	heightMode SizingMode, availableHeight float32,
	last CachedMeasurement,
	marginRow, marginColumn float32,
	config *Config,
) bool {
	return layout.CanUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight,
		last, marginRow, marginColumn, config)
}
