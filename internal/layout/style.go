package layout

// Style contains all layout properties for a node. It is read and written
// through Node accessors so that changes mark the node dirty.
type Style struct {
	// Flex container properties
	direction      Direction
	flexDirection  FlexDirection
	justifyContent Justify
	alignContent   Align
	alignItems     Align
	flexWrap       Wrap
	overflow       Overflow

	// Flex item properties
	alignSelf    Align
	positionType PositionType
	display      Display
	flex         float32
	flexGrow     float32
	flexShrink   float32
	flexBasis    Value

	// Boxes
	margin   Edges
	position Edges
	padding  Edges
	border   Edges
	gap      [3]Value

	// Sizing
	dimensions    [2]Value
	minDimensions [2]Value
	maxDimensions [2]Value
	aspectRatio   float32
}

const (
	defaultFlexGrow      = 0
	defaultFlexShrink    = 0
	webDefaultFlexShrink = 1
)

// DefaultStyle returns the style of a freshly created node.
func DefaultStyle() Style {
	s := Style{
		alignContent: AlignFlexStart,
		alignItems:   AlignStretch,
		positionType: PositionTypeRelative,
		flex:         Undefined,
		flexGrow:     Undefined,
		flexShrink:   Undefined,
		flexBasis:    Auto(),
		aspectRatio:  Undefined,
	}
	for i := range s.margin {
		s.margin[i] = UndefinedValue()
		s.position[i] = UndefinedValue()
		s.padding[i] = UndefinedValue()
		s.border[i] = UndefinedValue()
	}
	for i := range s.gap {
		s.gap[i] = UndefinedValue()
	}
	for i := range s.dimensions {
		s.dimensions[i] = Auto()
		s.minDimensions[i] = UndefinedValue()
		s.maxDimensions[i] = UndefinedValue()
	}
	return s
}

// webDefaultStyle is DefaultStyle with the CSS initial values that differ.
func webDefaultStyle() Style {
	s := DefaultStyle()
	s.flexDirection = FlexDirectionRow
	s.alignContent = AlignStretch
	return s
}

// Equal reports whether two styles describe the same layout inputs.
func (s *Style) Equal(o *Style) bool {
	if s.direction != o.direction || s.flexDirection != o.flexDirection ||
		s.justifyContent != o.justifyContent || s.alignContent != o.alignContent ||
		s.alignItems != o.alignItems || s.flexWrap != o.flexWrap ||
		s.overflow != o.overflow || s.alignSelf != o.alignSelf ||
		s.positionType != o.positionType || s.display != o.display {
		return false
	}
	if !FloatsEqual(s.flex, o.flex) || !FloatsEqual(s.flexGrow, o.flexGrow) ||
		!FloatsEqual(s.flexShrink, o.flexShrink) || !FloatsEqual(s.aspectRatio, o.aspectRatio) {
		return false
	}
	if !s.flexBasis.Equal(o.flexBasis) {
		return false
	}
	for i := range s.margin {
		if !s.margin[i].Equal(o.margin[i]) || !s.position[i].Equal(o.position[i]) ||
			!s.padding[i].Equal(o.padding[i]) || !s.border[i].Equal(o.border[i]) {
			return false
		}
	}
	for i := range s.gap {
		if !s.gap[i].Equal(o.gap[i]) {
			return false
		}
	}
	for i := range s.dimensions {
		if !s.dimensions[i].Equal(o.dimensions[i]) ||
			!s.minDimensions[i].Equal(o.minDimensions[i]) ||
			!s.maxDimensions[i].Equal(o.maxDimensions[i]) {
			return false
		}
	}
	return true
}

// Margin

func (s *Style) computeMargin(edge Edge, direction Direction) Value {
	return s.margin.resolve(edge, direction)
}

func (s *Style) computeFlexStartMargin(axis FlexDirection, direction Direction, widthSize float32) float32 {
	return orDefault(s.computeMargin(flexStartEdge(axis), direction).Resolve(widthSize), 0)
}

func (s *Style) computeFlexEndMargin(axis FlexDirection, direction Direction, widthSize float32) float32 {
	return orDefault(s.computeMargin(flexEndEdge(axis), direction).Resolve(widthSize), 0)
}

func (s *Style) computeInlineStartMargin(axis FlexDirection, direction Direction, widthSize float32) float32 {
	return orDefault(s.computeMargin(inlineStartEdge(axis, direction), direction).Resolve(widthSize), 0)
}

func (s *Style) computeInlineEndMargin(axis FlexDirection, direction Direction, widthSize float32) float32 {
	return orDefault(s.computeMargin(inlineEndEdge(axis, direction), direction).Resolve(widthSize), 0)
}

// computeMarginForAxis does not depend on direction, so LTR is used.
func (s *Style) computeMarginForAxis(axis FlexDirection, widthSize float32) float32 {
	return s.computeInlineStartMargin(axis, DirectionLTR, widthSize) +
		s.computeInlineEndMargin(axis, DirectionLTR, widthSize)
}

func (s *Style) flexStartMarginIsAuto(axis FlexDirection, direction Direction) bool {
	return s.computeMargin(flexStartEdge(axis), direction).IsAuto()
}

func (s *Style) flexEndMarginIsAuto(axis FlexDirection, direction Direction) bool {
	return s.computeMargin(flexEndEdge(axis), direction).IsAuto()
}

// Padding and border never resolve below zero.

func (s *Style) computePadding(edge Edge, direction Direction, widthSize float32) float32 {
	return maxOrDefined(s.padding.resolve(edge, direction).Resolve(widthSize), 0)
}

func (s *Style) computeBorder(edge Edge, direction Direction) float32 {
	return maxOrDefined(s.border.resolve(edge, direction).Resolve(0), 0)
}

func (s *Style) computeFlexStartPaddingAndBorder(axis FlexDirection, direction Direction, widthSize float32) float32 {
	edge := flexStartEdge(axis)
	return s.computePadding(edge, direction, widthSize) + s.computeBorder(edge, direction)
}

func (s *Style) computeFlexEndPaddingAndBorder(axis FlexDirection, direction Direction, widthSize float32) float32 {
	edge := flexEndEdge(axis)
	return s.computePadding(edge, direction, widthSize) + s.computeBorder(edge, direction)
}

func (s *Style) computeInlineStartBorder(axis FlexDirection, direction Direction) float32 {
	return s.computeBorder(inlineStartEdge(axis, direction), direction)
}

func (s *Style) computeInlineEndBorder(axis FlexDirection, direction Direction) float32 {
	return s.computeBorder(inlineEndEdge(axis, direction), direction)
}

func (s *Style) computeFlexStartBorder(axis FlexDirection, direction Direction) float32 {
	return s.computeBorder(flexStartEdge(axis), direction)
}

func (s *Style) computeFlexEndBorder(axis FlexDirection, direction Direction) float32 {
	return s.computeBorder(flexEndEdge(axis), direction)
}

func (s *Style) computeBorderForAxis(axis FlexDirection) float32 {
	return s.computeInlineStartBorder(axis, DirectionLTR) + s.computeInlineEndBorder(axis, DirectionLTR)
}

// paddingAndBorderForAxis is the total padding and border across axis.
func (s *Style) paddingAndBorderForAxis(axis FlexDirection, direction Direction, widthSize float32) float32 {
	start := inlineStartEdge(axis, direction)
	end := inlineEndEdge(axis, direction)
	return s.computePadding(start, direction, widthSize) + s.computeBorder(start, direction) +
		s.computePadding(end, direction, widthSize) + s.computeBorder(end, direction)
}

// Position insets

func (s *Style) computePosition(edge Edge, direction Direction) Value {
	return s.position.resolve(edge, direction)
}

func (s *Style) isFlexStartPositionDefined(axis FlexDirection, direction Direction) bool {
	return s.computePosition(flexStartEdge(axis), direction).IsDefined()
}

func (s *Style) isFlexEndPositionDefined(axis FlexDirection, direction Direction) bool {
	return s.computePosition(flexEndEdge(axis), direction).IsDefined()
}

func (s *Style) isFlexStartPositionAuto(axis FlexDirection, direction Direction) bool {
	return s.computePosition(flexStartEdge(axis), direction).IsAuto()
}

func (s *Style) isFlexEndPositionAuto(axis FlexDirection, direction Direction) bool {
	return s.computePosition(flexEndEdge(axis), direction).IsAuto()
}

func (s *Style) isInlineStartPositionDefined(axis FlexDirection, direction Direction) bool {
	return s.computePosition(inlineStartEdge(axis, direction), direction).IsDefined()
}

func (s *Style) isInlineEndPositionDefined(axis FlexDirection, direction Direction) bool {
	return s.computePosition(inlineEndEdge(axis, direction), direction).IsDefined()
}

func (s *Style) isInlineStartPositionAuto(axis FlexDirection, direction Direction) bool {
	return s.computePosition(inlineStartEdge(axis, direction), direction).IsAuto()
}

func (s *Style) isInlineEndPositionAuto(axis FlexDirection, direction Direction) bool {
	return s.computePosition(inlineEndEdge(axis, direction), direction).IsAuto()
}

func (s *Style) computeFlexStartPosition(axis FlexDirection, direction Direction, axisSize float32) float32 {
	return orDefault(s.computePosition(flexStartEdge(axis), direction).Resolve(axisSize), 0)
}

func (s *Style) computeFlexEndPosition(axis FlexDirection, direction Direction, axisSize float32) float32 {
	return orDefault(s.computePosition(flexEndEdge(axis), direction).Resolve(axisSize), 0)
}

func (s *Style) computeInlineStartPosition(axis FlexDirection, direction Direction, axisSize float32) float32 {
	return orDefault(s.computePosition(inlineStartEdge(axis, direction), direction).Resolve(axisSize), 0)
}

func (s *Style) computeInlineEndPosition(axis FlexDirection, direction Direction, axisSize float32) float32 {
	return orDefault(s.computePosition(inlineEndEdge(axis, direction), direction).Resolve(axisSize), 0)
}

// Gap

func (s *Style) computeColumnGap() Value {
	if s.gap[GutterColumn].IsDefined() {
		return s.gap[GutterColumn]
	}
	return s.gap[GutterAll]
}

func (s *Style) computeRowGap() Value {
	if s.gap[GutterRow].IsDefined() {
		return s.gap[GutterRow]
	}
	return s.gap[GutterAll]
}

// computeGapForAxis is the space between items along axis, never negative.
func (s *Style) computeGapForAxis(axis FlexDirection, ownerSize float32) float32 {
	gap := s.computeRowGap()
	if isRow(axis) {
		gap = s.computeColumnGap()
	}
	return maxOrDefined(gap.Resolve(ownerSize), 0)
}

// Sizing

func (s *Style) resolvedMinDimension(dim Dimension, reference float32) float32 {
	return s.minDimensions[dim].Resolve(reference)
}

func (s *Style) resolvedMaxDimension(dim Dimension, reference float32) float32 {
	return s.maxDimensions[dim].Resolve(reference)
}

func (s *Style) horizontalInsetsDefined() bool {
	return s.position.horizontalDefined()
}

func (s *Style) verticalInsetsDefined() bool {
	return s.position.verticalDefined()
}
