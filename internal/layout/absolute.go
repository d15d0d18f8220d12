package layout

// formsContainingBlock reports whether absolute descendants of node are
// positioned against it. depth is 1 for the root of a layout pass.
func formsContainingBlock(node *Node, depth int) bool {
	return node.style.positionType != PositionTypeStatic ||
		node.alwaysFormsContainingBlock ||
		node.style.overflow != OverflowVisible ||
		depth == 1
}

// layoutAbsoluteDescendants lays out every absolute child of current whose
// containing block is containing. Static children that do not form a
// containing block of their own are searched recursively. The offsets give
// current's position relative to the containing block.
func layoutAbsoluteDescendants(
	containing, current *Node,
	widthMode SizingMode,
	currentDirection Direction,
	p *pass,
	depth int,
	leftOffset, topOffset float32,
	containingInnerWidth, containingInnerHeight float32,
) {
	mainAxis := resolveFlexDirection(current.style.flexDirection, currentDirection)
	crossAxis := resolveCrossDirection(mainAxis, currentDirection)

	for _, child := range current.children {
		if child.style.display == DisplayNone {
			continue
		}

		if child.style.positionType == PositionTypeAbsolute {
			var blockWidth, blockHeight float32
			if current.hasErrata(ErrataAbsolutePercentAgainstInnerSize) {
				blockWidth, blockHeight = containingInnerWidth, containingInnerHeight
			} else {
				blockWidth = containing.measured(DimensionWidth) - containing.style.computeBorderForAxis(FlexDirectionRow)
				blockHeight = containing.measured(DimensionHeight) - containing.style.computeBorderForAxis(FlexDirectionColumn)
			}

			layoutAbsoluteChild(containing, current, child, blockWidth, blockHeight, widthMode, currentDirection, p, depth)

			// The child is placed on current's flex-start edges. Derive the
			// opposite edges for reversed axes, measured against whichever
			// box the position is relative to.
			if needsTrailingPosition(mainAxis) {
				insets := child.style.verticalInsetsDefined()
				if isRow(mainAxis) {
					insets = child.style.horizontalInsetsDefined()
				}
				reference := current
				if insets {
					reference = containing
				}
				setChildTrailingPosition(reference, child, mainAxis)
			}
			if needsTrailingPosition(crossAxis) {
				insets := child.style.verticalInsetsDefined()
				if isRow(crossAxis) {
					insets = child.style.horizontalInsetsDefined()
				}
				reference := current
				if insets {
					reference = containing
				}
				setChildTrailingPosition(reference, child, crossAxis)
			}

			// Inset positions are relative to the containing block; make
			// them relative to current.
			if child.style.horizontalInsetsDefined() {
				child.layout.position[EdgeLeft] -= leftOffset
			}
			if child.style.verticalInsetsDefined() {
				child.layout.position[EdgeTop] -= topOffset
			}
			continue
		}

		if formsContainingBlock(child, depth+1) {
			continue
		}
		childDirection := child.resolveDirection(currentDirection)
		layoutAbsoluteDescendants(containing, child, widthMode, childDirection, p, depth+1,
			leftOffset+child.layout.position[EdgeLeft],
			topOffset+child.layout.position[EdgeTop],
			containingInnerWidth, containingInnerHeight)
	}
}

// layoutAbsoluteChild sizes an absolute child from its own size, its insets
// or its aspect ratio, measuring content for whatever is still unknown, and
// then positions it on both of parent's axes.
func layoutAbsoluteChild(
	containing, parent, child *Node,
	blockWidth, blockHeight float32,
	widthMode SizingMode,
	direction Direction,
	p *pass,
	depth int,
) {
	mainAxis := resolveFlexDirection(parent.style.flexDirection, direction)
	crossAxis := resolveCrossDirection(mainAxis, direction)
	isMainAxisRow := isRow(mainAxis)

	childWidth, childHeight := Undefined, Undefined
	marginRow := child.style.computeMarginForAxis(FlexDirectionRow, blockWidth)
	marginColumn := child.style.computeMarginForAxis(FlexDirectionColumn, blockWidth)

	if child.hasDefiniteLength(DimensionWidth, blockWidth) {
		childWidth = child.resolvedDimension(DimensionWidth, blockWidth) + marginRow
	} else if insetsSpanAxis(child, FlexDirectionRow, direction) {
		childWidth = containing.measured(DimensionWidth) -
			(containing.style.computeFlexStartBorder(FlexDirectionRow, direction) + containing.style.computeFlexEndBorder(FlexDirectionRow, direction)) -
			(child.style.computeFlexStartPosition(FlexDirectionRow, direction, blockWidth) + child.style.computeFlexEndPosition(FlexDirectionRow, direction, blockWidth))
		childWidth = boundAxis(child, FlexDirectionRow, direction, childWidth, blockWidth, blockWidth)
	}

	if child.hasDefiniteLength(DimensionHeight, blockHeight) {
		childHeight = child.resolvedDimension(DimensionHeight, blockHeight) + marginColumn
	} else if insetsSpanAxis(child, FlexDirectionColumn, direction) {
		childHeight = containing.measured(DimensionHeight) -
			(containing.style.computeFlexStartBorder(FlexDirectionColumn, direction) + containing.style.computeFlexEndBorder(FlexDirectionColumn, direction)) -
			(child.style.computeFlexStartPosition(FlexDirectionColumn, direction, blockHeight) + child.style.computeFlexEndPosition(FlexDirectionColumn, direction, blockHeight))
		childHeight = boundAxis(child, FlexDirectionColumn, direction, childHeight, blockHeight, blockWidth)
	}

	// With exactly one size known, the aspect ratio supplies the other.
	if ratio := child.style.aspectRatio; isDefined(ratio) && IsUndefined(childWidth) != IsUndefined(childHeight) {
		if IsUndefined(childWidth) {
			childWidth = marginRow + (childHeight-marginColumn)*ratio
		} else {
			childHeight = marginColumn + (childWidth-marginRow)/ratio
		}
	}

	if IsUndefined(childWidth) || IsUndefined(childHeight) {
		childWidthMode, childHeightMode := SizingModeStretchFit, SizingModeStretchFit
		if IsUndefined(childWidth) {
			childWidthMode = SizingModeMaxContent
		}
		if IsUndefined(childHeight) {
			childHeightMode = SizingModeMaxContent
		}

		// Let content wrap to the containing block's width.
		if !isMainAxisRow && IsUndefined(childWidth) && widthMode != SizingModeMaxContent &&
			isDefined(blockWidth) && blockWidth > 0 {
			childWidth = blockWidth
			childWidthMode = SizingModeFitContent
		}

		layoutNodeInternal(child, childWidth, childHeight, direction, childWidthMode, childHeightMode,
			blockWidth, blockHeight, false, reasonAbsMeasureChild, p, depth)
		childWidth = child.measured(DimensionWidth) + child.style.computeMarginForAxis(FlexDirectionRow, blockWidth)
		childHeight = child.measured(DimensionHeight) + child.style.computeMarginForAxis(FlexDirectionColumn, blockWidth)
	}

	layoutNodeInternal(child, childWidth, childHeight, direction, SizingModeStretchFit, SizingModeStretchFit,
		blockWidth, blockHeight, true, reasonAbsLayout, p, depth)

	positionAbsoluteChild(containing, parent, child, direction, mainAxis, true, blockWidth, blockHeight)
	positionAbsoluteChild(containing, parent, child, direction, crossAxis, false, blockWidth, blockHeight)
}

// insetsSpanAxis reports whether both insets on axis are set to lengths.
func insetsSpanAxis(child *Node, axis FlexDirection, direction Direction) bool {
	s := &child.style
	return s.isFlexStartPositionDefined(axis, direction) && s.isFlexEndPositionDefined(axis, direction) &&
		!s.isFlexStartPositionAuto(axis, direction) && !s.isFlexEndPositionAuto(axis, direction)
}

// positionAbsoluteChild places child on axis from an inset when one is set,
// else by the parent's justification or alignment.
func positionAbsoluteChild(
	containing, parent, child *Node,
	direction Direction,
	axis FlexDirection,
	isMainAxis bool,
	blockWidth, blockHeight float32,
) {
	blockSize := blockHeight
	if isRow(axis) {
		blockSize = blockWidth
	}
	s := &child.style
	startEdge := flexStartEdge(axis)
	flipped := inlineStartEdge(axis, direction) != startEdge

	switch {
	case s.isInlineStartPositionDefined(axis, direction) && !s.isInlineStartPositionAuto(axis, direction):
		pos := s.computeInlineStartPosition(axis, direction, blockSize) +
			containing.style.computeInlineStartBorder(axis, direction) +
			s.computeInlineStartMargin(axis, direction, blockWidth)
		if flipped {
			pos = positionOfOppositeEdge(pos, axis, containing, child)
		}
		child.layout.position[startEdge] = pos

	case s.isInlineEndPositionDefined(axis, direction) && !s.isInlineEndPositionAuto(axis, direction):
		dim := dimensionOf(axis)
		pos := containing.measured(dim) - child.measured(dim) -
			containing.style.computeInlineEndBorder(axis, direction) -
			s.computeInlineEndMargin(axis, direction, blockWidth) -
			s.computeInlineEndPosition(axis, direction, blockSize)
		if flipped {
			pos = positionOfOppositeEdge(pos, axis, containing, child)
		}
		child.layout.position[startEdge] = pos

	case isMainAxis:
		justifyAbsoluteChild(parent, child, direction, axis, blockWidth)

	default:
		alignAbsoluteChild(parent, child, direction, axis, blockWidth)
	}
}

func justifyAbsoluteChild(parent, child *Node, direction Direction, mainAxis FlexDirection, blockWidth float32) {
	switch parent.style.justifyContent {
	case JustifyFlexStart, JustifySpaceBetween:
		setFlexStartLayoutPosition(parent, child, direction, mainAxis, blockWidth)
	case JustifyFlexEnd:
		setFlexEndLayoutPosition(parent, child, direction, mainAxis, blockWidth)
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		setCenterLayoutPosition(parent, child, direction, mainAxis, blockWidth)
	}
}

// alignAbsoluteChild aligns on the cross axis. Under wrap-reverse the start
// and end alignments swap.
func alignAbsoluteChild(parent, child *Node, direction Direction, crossAxis FlexDirection, blockWidth float32) {
	align := resolveChildAlignment(parent, child)
	if parent.style.flexWrap == WrapWrapReverse {
		if align == AlignFlexEnd {
			align = AlignFlexStart
		} else if align != AlignCenter {
			align = AlignFlexEnd
		}
	}

	switch align {
	case AlignFlexEnd:
		setFlexEndLayoutPosition(parent, child, direction, crossAxis, blockWidth)
	case AlignCenter:
		setCenterLayoutPosition(parent, child, direction, crossAxis, blockWidth)
	default:
		setFlexStartLayoutPosition(parent, child, direction, crossAxis, blockWidth)
	}
}

func setFlexStartLayoutPosition(parent, child *Node, direction Direction, axis FlexDirection, blockWidth float32) {
	edge := flexStartEdge(axis)
	pos := child.style.computeFlexStartMargin(axis, direction, blockWidth) + parent.layout.border[edge]
	if !child.hasErrata(ErrataAbsolutePositionWithoutInsetsExcludesPadding) {
		pos += parent.layout.padding[edge]
	}
	child.layout.position[edge] = pos
}

func setFlexEndLayoutPosition(parent, child *Node, direction Direction, axis FlexDirection, blockWidth float32) {
	edge := flexEndEdge(axis)
	pos := parent.layout.border[edge] + child.style.computeFlexEndMargin(axis, direction, blockWidth)
	if !child.hasErrata(ErrataAbsolutePositionWithoutInsetsExcludesPadding) {
		pos += parent.layout.padding[edge]
	}
	child.layout.position[flexStartEdge(axis)] = positionOfOppositeEdge(pos, axis, parent, child)
}

func setCenterLayoutPosition(parent, child *Node, direction Direction, axis FlexDirection, blockWidth float32) {
	startEdge, endEdge := flexStartEdge(axis), flexEndEdge(axis)
	dim := dimensionOf(axis)

	contentBox := parent.measured(dim) - parent.layout.border[startEdge] - parent.layout.border[endEdge]
	excludesPadding := child.hasErrata(ErrataAbsolutePositionWithoutInsetsExcludesPadding)
	if !excludesPadding {
		contentBox -= parent.layout.padding[startEdge] + parent.layout.padding[endEdge]
	}
	outer := child.measured(dim) + child.style.computeMarginForAxis(axis, blockWidth)

	pos := (contentBox-outer)/2 + parent.layout.border[startEdge] +
		child.style.computeFlexStartMargin(axis, direction, blockWidth)
	if !excludesPadding {
		pos += parent.layout.padding[startEdge]
	}
	child.layout.position[startEdge] = pos
}

// setChildTrailingPosition derives the child's flex-end position on axis
// from its flex-start position.
func setChildTrailingPosition(node, child *Node, axis FlexDirection) {
	child.layout.position[flexEndEdge(axis)] = positionOfOppositeEdge(child.layout.position[flexStartEdge(axis)], axis, node, child)
}
