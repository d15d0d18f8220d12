package layout

// Computed results. These are valid after CalculateLayout and are relative
// to the node's owner.

func (n *Node) ComputedLeft() float32   { return n.layout.position[EdgeLeft] }
func (n *Node) ComputedTop() float32    { return n.layout.position[EdgeTop] }
func (n *Node) ComputedRight() float32  { return n.layout.position[EdgeRight] }
func (n *Node) ComputedBottom() float32 { return n.layout.position[EdgeBottom] }
func (n *Node) ComputedWidth() float32  { return n.layout.dimensions[DimensionWidth] }
func (n *Node) ComputedHeight() float32 { return n.layout.dimensions[DimensionHeight] }

// ComputedDirection returns the direction the node was laid out with.
func (n *Node) ComputedDirection() Direction {
	return n.layout.direction
}

// HadOverflow reports whether children overflowed the node on the last pass.
func (n *Node) HadOverflow() bool {
	return n.layout.hadOverflow
}

// ComputedMargin returns the resolved margin on an edge. Start and End map to
// physical edges through the computed direction.
func (n *Node) ComputedMargin(edge Edge) float32 {
	return n.layout.margin[n.physicalEdge(edge)]
}

// ComputedBorder returns the resolved border width on an edge.
func (n *Node) ComputedBorder(edge Edge) float32 {
	return n.layout.border[n.physicalEdge(edge)]
}

// ComputedPadding returns the resolved padding on an edge.
func (n *Node) ComputedPadding(edge Edge) float32 {
	return n.layout.padding[n.physicalEdge(edge)]
}

func (n *Node) physicalEdge(edge Edge) Edge {
	switch edge {
	case EdgeLeft, EdgeTop, EdgeRight, EdgeBottom:
		return edge
	case EdgeStart:
		if n.layout.direction == DirectionRTL {
			return EdgeRight
		}
		return EdgeLeft
	case EdgeEnd:
		if n.layout.direction == DirectionRTL {
			return EdgeLeft
		}
		return EdgeRight
	}
	fatalf("cannot get layout properties of multi-edge shorthand %v", edge)
	return EdgeLeft
}

// Layout returns a copy of the node's full layout record.
func (n *Node) Layout() LayoutResult {
	return n.layout
}

// CachedLayout returns the constraints and result of the last full layout.
func (n *Node) CachedLayout() CachedMeasurement {
	return n.layout.cachedLayout
}

// Internal helpers used by the algorithm.

func (n *Node) measured(dim Dimension) float32 {
	return n.layout.measuredDimensions[dim]
}

func (n *Node) setMeasured(dim Dimension, v float32) {
	n.layout.measuredDimensions[dim] = v
}

// dimensionWithMargin is the measured outer size along axis.
func (n *Node) dimensionWithMargin(axis FlexDirection, widthSize float32) float32 {
	return n.measured(dimensionOf(axis)) + n.style.computeMarginForAxis(axis, widthSize)
}

func (n *Node) isLayoutDimensionDefined(axis FlexDirection) bool {
	v := n.measured(dimensionOf(axis))
	return isDefined(v) && v >= 0
}

func (n *Node) hasErrata(e Errata) bool {
	return n.config.HasErrata(e)
}

// relativePosition is the offset applied by insets along axis. Static nodes
// ignore insets. A start inset wins over an end inset.
func (n *Node) relativePosition(axis FlexDirection, direction Direction, axisSize float32) float32 {
	if n.style.positionType == PositionTypeStatic {
		return 0
	}
	if n.style.isInlineStartPositionDefined(axis, direction) && !n.style.isInlineStartPositionAuto(axis, direction) {
		return n.style.computeInlineStartPosition(axis, direction, axisSize)
	}
	return -n.style.computeInlineEndPosition(axis, direction, axisSize)
}

// setPosition writes the leading and trailing edges on both axes from margin
// plus the relative offset. Roots are always positioned as LTR.
func (n *Node) setPosition(direction Direction, ownerWidth, ownerHeight float32) {
	respecting := direction
	if n.owner == nil {
		respecting = DirectionLTR
	}
	mainAxis := resolveFlexDirection(n.style.flexDirection, respecting)
	crossAxis := resolveCrossDirection(mainAxis, respecting)

	mainSize, crossSize := ownerHeight, ownerWidth
	if isRow(mainAxis) {
		mainSize, crossSize = ownerWidth, ownerHeight
	}
	relativeMain := n.relativePosition(mainAxis, respecting, mainSize)
	relativeCross := n.relativePosition(crossAxis, respecting, crossSize)

	n.layout.position[inlineStartEdge(mainAxis, direction)] = n.style.computeInlineStartMargin(mainAxis, direction, ownerWidth) + relativeMain
	n.layout.position[inlineEndEdge(mainAxis, direction)] = n.style.computeInlineEndMargin(mainAxis, direction, ownerWidth) + relativeMain
	n.layout.position[inlineStartEdge(crossAxis, direction)] = n.style.computeInlineStartMargin(crossAxis, direction, ownerWidth) + relativeCross
	n.layout.position[inlineEndEdge(crossAxis, direction)] = n.style.computeInlineEndMargin(crossAxis, direction, ownerWidth) + relativeCross
}

// positionOfOppositeEdge converts a distance from one edge of the container
// into a distance from the opposite edge.
func positionOfOppositeEdge(position float32, axis FlexDirection, container, node *Node) float32 {
	dim := dimensionOf(axis)
	return container.measured(dim) - node.measured(dim) - position
}

// zeroOutLayoutRecursively gives a hidden subtree an empty layout.
func zeroOutLayoutRecursively(n *Node) {
	n.layout = newLayoutResult()
	n.layout.dimensions = [2]float32{0, 0}
	n.layout.measuredDimensions = [2]float32{0, 0}
	n.hasNewLayout = true
	n.setDirty(false)
	for _, c := range n.children {
		zeroOutLayoutRecursively(c)
	}
}
