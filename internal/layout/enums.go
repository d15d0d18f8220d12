package layout

// Direction is the inline writing direction of a node.
type Direction uint8

const (
	DirectionInherit Direction = iota // Use the owner's resolved direction
	DirectionLTR                      // Left to right
	DirectionRTL                      // Right to left
)

func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	}
	return "unknown"
}

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	FlexDirectionColumn        FlexDirection = iota // Top to bottom
	FlexDirectionColumnReverse                      // Bottom to top
	FlexDirectionRow                                // Inline start to inline end
	FlexDirectionRowReverse                         // Inline end to inline start
)

func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	case FlexDirectionRow:
		return "row"
	case FlexDirectionRowReverse:
		return "row-reverse"
	}
	return "unknown"
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart    Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyFlexEnd                     // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

func (j Justify) String() string {
	switch j {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyCenter:
		return "center"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return "unknown"
}

// Align specifies how children, or lines of children, are positioned on the
// cross axis.
type Align uint8

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignFlexStart:
		return "flex-start"
	case AlignCenter:
		return "center"
	case AlignFlexEnd:
		return "flex-end"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	case AlignSpaceEvenly:
		return "space-evenly"
	}
	return "unknown"
}

// PositionType controls whether a node takes part in flex flow.
type PositionType uint8

const (
	PositionTypeStatic   PositionType = iota // In flow, insets ignored
	PositionTypeRelative                     // In flow, offset by insets
	PositionTypeAbsolute                     // Out of flow, placed in the containing block
)

func (p PositionType) String() string {
	switch p {
	case PositionTypeStatic:
		return "static"
	case PositionTypeRelative:
		return "relative"
	case PositionTypeAbsolute:
		return "absolute"
	}
	return "unknown"
}

// Wrap controls whether children may flow onto multiple lines.
type Wrap uint8

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

func (w Wrap) String() string {
	switch w {
	case WrapNoWrap:
		return "no-wrap"
	case WrapWrap:
		return "wrap"
	case WrapWrapReverse:
		return "wrap-reverse"
	}
	return "unknown"
}

// Overflow describes how content larger than the node is treated.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	}
	return "unknown"
}

// Display toggles whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	}
	return "unknown"
}

// Edge names one side of a box, or a group of sides.
// The first four values are physical edges and index LayoutResult arrays.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
)

const edgeCount = int(EdgeAll) + 1

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	case EdgeHorizontal:
		return "horizontal"
	case EdgeVertical:
		return "vertical"
	case EdgeAll:
		return "all"
	}
	return "unknown"
}

// Gutter selects which gap a value applies to.
type Gutter uint8

const (
	GutterColumn Gutter = iota // Between columns (row main axis)
	GutterRow                  // Between rows (column main axis)
	GutterAll
)

func (g Gutter) String() string {
	switch g {
	case GutterColumn:
		return "column"
	case GutterRow:
		return "row"
	case GutterAll:
		return "all"
	}
	return "unknown"
}

// Dimension selects width or height.
type Dimension uint8

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

// MeasureMode is the constraint passed to a measure callback.
type MeasureMode uint8

const (
	MeasureModeUndefined MeasureMode = iota // Measure freely
	MeasureModeExactly                      // The size is fixed
	MeasureModeAtMost                       // The size is an upper bound
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeUndefined:
		return "undefined"
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	}
	return "unknown"
}

// SizingMode is how an available size constrains a node.
type SizingMode uint8

const (
	// SizingModeStretchFit fills the available space exactly.
	SizingModeStretchFit SizingMode = iota
	// SizingModeMaxContent ignores the available space.
	SizingModeMaxContent
	// SizingModeFitContent sizes to content, bounded by the available space.
	SizingModeFitContent
)

func (m SizingMode) String() string {
	switch m {
	case SizingModeStretchFit:
		return "stretch-fit"
	case SizingModeMaxContent:
		return "max-content"
	case SizingModeFitContent:
		return "fit-content"
	}
	return "unknown"
}

func (m SizingMode) measureMode() MeasureMode {
	switch m {
	case SizingModeStretchFit:
		return MeasureModeExactly
	case SizingModeFitContent:
		return MeasureModeAtMost
	}
	return MeasureModeUndefined
}

// NodeType marks nodes whose content is text. Text nodes never round their
// size down.
type NodeType uint8

const (
	NodeTypeDefault NodeType = iota
	NodeTypeText
)

// Errata selects legacy behaviors kept for compatibility.
type Errata uint32

const (
	ErrataNone                                         Errata = 0
	ErrataStretchFlexBasis                             Errata = 1 << 0
	ErrataAbsolutePositionWithoutInsetsExcludesPadding Errata = 1 << 1
	ErrataAbsolutePercentAgainstInnerSize              Errata = 1 << 2
	ErrataAll                                          Errata = 0x7fffffff
	ErrataClassic                                      Errata = 0x7ffffffe
)

// ExperimentalFeature flags behavior still under evaluation.
type ExperimentalFeature uint8

const (
	ExperimentalFeatureWebFlexBasis ExperimentalFeature = iota
)
