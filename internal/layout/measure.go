package layout

import (
	"math"

	"github.com/grindlemire/go-flex/internal/debug"
)

// measureNodeWithMeasureFunc sizes a leaf by calling its measure function.
// The available sizes passed in already exclude the node's margin.
func measureNodeWithMeasureFunc(
	node *Node,
	direction Direction,
	availableWidth, availableHeight float32,
	widthMode, heightMode SizingMode,
	ownerWidth, ownerHeight float32,
	p *pass,
	depth int,
) {
	if widthMode == SizingModeMaxContent {
		availableWidth = Undefined
	}
	if heightMode == SizingModeMaxContent {
		availableHeight = Undefined
	}

	layout := &node.layout
	paddingAndBorderRow := layout.padding[EdgeLeft] + layout.padding[EdgeRight] +
		layout.border[EdgeLeft] + layout.border[EdgeRight]
	paddingAndBorderColumn := layout.padding[EdgeTop] + layout.padding[EdgeBottom] +
		layout.border[EdgeTop] + layout.border[EdgeBottom]

	// Never ask the callback to fit content into a negative box.
	innerWidth := availableWidth
	if isDefined(innerWidth) {
		innerWidth = maxOrDefined(0, availableWidth-paddingAndBorderRow)
	}
	innerHeight := availableHeight
	if isDefined(innerHeight) {
		innerHeight = maxOrDefined(0, availableHeight-paddingAndBorderColumn)
	}

	if widthMode == SizingModeStretchFit && heightMode == SizingModeStretchFit {
		node.setMeasured(DimensionWidth, boundAxis(node, FlexDirectionRow, direction, availableWidth, ownerWidth, ownerWidth))
		node.setMeasured(DimensionHeight, boundAxis(node, FlexDirectionColumn, direction, availableHeight, ownerHeight, ownerWidth))
		return
	}

	size := node.callMeasure(innerWidth, widthMode.measureMode(), innerHeight, heightMode.measureMode())
	p.stats.MeasureCallbacks++
	if debug.Enabled() {
		debug.Log("%*smeasure: w=%v %s h=%v %s -> %vx%v",
			depth*2, "", innerWidth, widthMode.measureMode(), innerHeight, heightMode.measureMode(),
			size.Width, size.Height)
	}

	width := availableWidth
	if widthMode == SizingModeMaxContent || widthMode == SizingModeFitContent {
		width = size.Width + paddingAndBorderRow
	}
	height := availableHeight
	if heightMode == SizingModeMaxContent || heightMode == SizingModeFitContent {
		height = size.Height + paddingAndBorderColumn
	}
	node.setMeasured(DimensionWidth, boundAxis(node, FlexDirectionRow, direction, width, ownerWidth, ownerWidth))
	node.setMeasured(DimensionHeight, boundAxis(node, FlexDirectionColumn, direction, height, ownerHeight, ownerWidth))
}

// measureNodeWithoutChildren sizes an empty container: definite sizes are
// kept and content sizes collapse to padding plus border.
func measureNodeWithoutChildren(
	node *Node,
	direction Direction,
	availableWidth, availableHeight float32,
	widthMode, heightMode SizingMode,
	ownerWidth, ownerHeight float32,
) {
	layout := &node.layout

	width := availableWidth
	if widthMode == SizingModeMaxContent || widthMode == SizingModeFitContent {
		width = layout.padding[EdgeLeft] + layout.padding[EdgeRight] +
			layout.border[EdgeLeft] + layout.border[EdgeRight]
	}
	node.setMeasured(DimensionWidth, boundAxis(node, FlexDirectionRow, direction, width, ownerWidth, ownerWidth))

	height := availableHeight
	if heightMode == SizingModeMaxContent || heightMode == SizingModeFitContent {
		height = layout.padding[EdgeTop] + layout.padding[EdgeBottom] +
			layout.border[EdgeTop] + layout.border[EdgeBottom]
	}
	node.setMeasured(DimensionHeight, boundAxis(node, FlexDirectionColumn, direction, height, ownerHeight, ownerWidth))
}

// measureNodeWithFixedSize answers a measure-only request without running
// the algorithm when the size is already known. It reports whether it did.
func measureNodeWithFixedSize(
	node *Node,
	direction Direction,
	availableWidth, availableHeight float32,
	widthMode, heightMode SizingMode,
	ownerWidth, ownerHeight float32,
) bool {
	zeroWidth := isDefined(availableWidth) && widthMode == SizingModeFitContent && availableWidth <= 0
	zeroHeight := isDefined(availableHeight) && heightMode == SizingModeFitContent && availableHeight <= 0
	exact := widthMode == SizingModeStretchFit && heightMode == SizingModeStretchFit
	if !zeroWidth && !zeroHeight && !exact {
		return false
	}

	width := availableWidth
	if IsUndefined(availableWidth) || (widthMode == SizingModeFitContent && availableWidth < 0) {
		width = 0
	}
	height := availableHeight
	if IsUndefined(availableHeight) || (heightMode == SizingModeFitContent && availableHeight < 0) {
		height = 0
	}
	node.setMeasured(DimensionWidth, boundAxis(node, FlexDirectionRow, direction, width, ownerWidth, ownerWidth))
	node.setMeasured(DimensionHeight, boundAxis(node, FlexDirectionColumn, direction, height, ownerHeight, ownerWidth))
	return true
}

// boundAxisWithinMinAndMax clamps value to the node's min and max size on
// axis. Undefined bounds are ignored.
func boundAxisWithinMinAndMax(node *Node, axis FlexDirection, value, axisSize float32) float32 {
	dim := dimensionOf(axis)
	minSize := node.style.resolvedMinDimension(dim, axisSize)
	maxSize := node.style.resolvedMaxDimension(dim, axisSize)

	if maxSize >= 0 && value > maxSize {
		return maxSize
	}
	if minSize >= 0 && value < minSize {
		return minSize
	}
	return value
}

// boundAxis is boundAxisWithinMinAndMax that also never drops below the
// node's padding and border.
func boundAxis(node *Node, axis FlexDirection, direction Direction, value, axisSize, widthSize float32) float32 {
	return maxOrDefined(
		boundAxisWithinMinAndMax(node, axis, value, axisSize),
		node.style.paddingAndBorderForAxis(axis, direction, widthSize),
	)
}

// constrainMaxSizeForMode applies the node's max size to a constraint. An
// unconstrained axis with a max size becomes a FitContent constraint.
func constrainMaxSizeForMode(
	node *Node,
	axis FlexDirection,
	ownerAxisSize, ownerWidth float32,
	mode SizingMode,
	size float32,
) (SizingMode, float32) {
	maxSize := node.style.resolvedMaxDimension(dimensionOf(axis), ownerAxisSize) +
		node.style.computeMarginForAxis(axis, ownerWidth)

	switch mode {
	case SizingModeStretchFit, SizingModeFitContent:
		if isDefined(maxSize) && !(size < maxSize) {
			size = maxSize
		}
	case SizingModeMaxContent:
		if isDefined(maxSize) {
			mode = SizingModeFitContent
			size = maxSize
		}
	}
	return mode, size
}

// calculateAvailableInnerDimension is the content-box size available on one
// axis after removing padding and border and applying min and max sizes.
func calculateAvailableInnerDimension(
	node *Node,
	dim Dimension,
	availableDim, paddingAndBorder, ownerDim float32,
) float32 {
	inner := availableDim - paddingAndBorder
	if IsUndefined(inner) {
		return inner
	}

	minInner := float32(0)
	if minSize := node.style.resolvedMinDimension(dim, ownerDim); isDefined(minSize) {
		minInner = minSize - paddingAndBorder
	}
	maxInner := float32(math.MaxFloat32)
	if maxSize := node.style.resolvedMaxDimension(dim, ownerDim); isDefined(maxSize) {
		maxInner = maxSize - paddingAndBorder
	}
	return maxOrDefined(minOrDefined(inner, maxInner), minInner)
}

// resolveChildAlignment is the child's align-self, falling back to the
// owner's align-items. Baseline has no meaning in a column.
func resolveChildAlignment(node, child *Node) Align {
	align := child.style.alignSelf
	if align == AlignAuto {
		align = node.style.alignItems
	}
	if align == AlignBaseline && isColumn(node.style.flexDirection) {
		return AlignFlexStart
	}
	return align
}
