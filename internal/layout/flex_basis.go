package layout

// computeFlexBasisForChildren resolves the flex basis of every in-flow child
// and returns the sum of their outer bases along the main axis. Hidden
// children get an empty layout. With an exact main size, a lone child that
// can both grow and shrink gets a zero basis and is sized by flexing.
func computeFlexBasisForChildren(
	node *Node,
	availableInnerWidth, availableInnerHeight float32,
	widthMode, heightMode SizingMode,
	direction Direction,
	mainAxis FlexDirection,
	performLayout bool,
	p *pass,
	depth int,
) float32 {
	mainMode := heightMode
	if isRow(mainAxis) {
		mainMode = widthMode
	}

	var singleFlexChild *Node
	if mainMode == SizingModeStretchFit {
		for _, child := range node.children {
			if !child.isNodeFlexible() {
				continue
			}
			if singleFlexChild != nil || FloatsEqual(child.resolveFlexGrow(), 0) || FloatsEqual(child.resolveFlexShrink(), 0) {
				singleFlexChild = nil
				break
			}
			singleFlexChild = child
		}
	}

	var total float32
	for _, child := range node.children {
		child.processDimensions()
		if child.style.display == DisplayNone {
			zeroOutLayoutRecursively(child)
			continue
		}
		if performLayout {
			child.setPosition(child.resolveDirection(direction), availableInnerWidth, availableInnerHeight)
		}
		if child.style.positionType == PositionTypeAbsolute {
			continue
		}

		if child == singleFlexChild {
			child.layout.computedFlexBasisGeneration = p.generation
			child.layout.computedFlexBasis = 0
		} else {
			computeFlexBasisForChild(node, child, availableInnerWidth, widthMode, availableInnerHeight,
				availableInnerWidth, availableInnerHeight, heightMode, direction, p, depth)
		}

		total += child.layout.computedFlexBasis + child.style.computeMarginForAxis(mainAxis, availableInnerWidth)
	}
	return total
}

// computeFlexBasisForChild resolves one child's flex basis: an explicit
// basis, else a definite main size, else the child's measured content size.
func computeFlexBasisForChild(
	node, child *Node,
	width float32, widthMode SizingMode,
	height float32,
	ownerWidth, ownerHeight float32,
	heightMode SizingMode,
	direction Direction,
	p *pass,
	depth int,
) {
	mainAxis := resolveFlexDirection(node.style.flexDirection, direction)
	isMainAxisRow := isRow(mainAxis)
	mainAxisSize, mainAxisOwnerSize := height, ownerHeight
	if isMainAxisRow {
		mainAxisSize, mainAxisOwnerSize = width, ownerWidth
	}

	resolvedFlexBasis := child.resolveFlexBasis().Resolve(mainAxisOwnerSize)
	isRowStyleDimDefined := child.hasDefiniteLength(DimensionWidth, ownerWidth)
	isColumnStyleDimDefined := child.hasDefiniteLength(DimensionHeight, ownerHeight)

	switch {
	case isDefined(resolvedFlexBasis) && isDefined(mainAxisSize):
		webFlexBasis := child.config.IsExperimentalFeatureEnabled(ExperimentalFeatureWebFlexBasis)
		if IsUndefined(child.layout.computedFlexBasis) ||
			(webFlexBasis && child.layout.computedFlexBasisGeneration != p.generation) {
			paddingAndBorder := child.style.paddingAndBorderForAxis(mainAxis, direction, ownerWidth)
			child.layout.computedFlexBasis = maxOrDefined(resolvedFlexBasis, paddingAndBorder)
		}

	case isMainAxisRow && isRowStyleDimDefined:
		paddingAndBorder := child.style.paddingAndBorderForAxis(FlexDirectionRow, direction, ownerWidth)
		child.layout.computedFlexBasis = maxOrDefined(child.resolvedDimension(DimensionWidth, ownerWidth), paddingAndBorder)

	case !isMainAxisRow && isColumnStyleDimDefined:
		paddingAndBorder := child.style.paddingAndBorderForAxis(FlexDirectionColumn, direction, ownerWidth)
		child.layout.computedFlexBasis = maxOrDefined(child.resolvedDimension(DimensionHeight, ownerHeight), paddingAndBorder)

	default:
		childWidth, childHeight := Undefined, Undefined
		childWidthMode, childHeightMode := SizingModeMaxContent, SizingModeMaxContent

		marginRow := child.style.computeMarginForAxis(FlexDirectionRow, ownerWidth)
		marginColumn := child.style.computeMarginForAxis(FlexDirectionColumn, ownerWidth)

		if isRowStyleDimDefined {
			childWidth = child.resolvedDimension(DimensionWidth, ownerWidth) + marginRow
			childWidthMode = SizingModeStretchFit
		}
		if isColumnStyleDimDefined {
			childHeight = child.resolvedDimension(DimensionHeight, ownerHeight) + marginColumn
			childHeightMode = SizingModeStretchFit
		}

		// A scroll container does not constrain its children along its main axis.
		scroll := node.style.overflow == OverflowScroll
		if !isMainAxisRow || !scroll {
			if IsUndefined(childWidth) && isDefined(width) {
				childWidth = width
				childWidthMode = SizingModeFitContent
			}
		}
		if isMainAxisRow || !scroll {
			if IsUndefined(childHeight) && isDefined(height) {
				childHeight = height
				childHeightMode = SizingModeFitContent
			}
		}

		ratio := child.style.aspectRatio
		if isDefined(ratio) {
			if !isMainAxisRow && childWidthMode == SizingModeStretchFit {
				childHeight = marginColumn + (childWidth-marginRow)/ratio
				childHeightMode = SizingModeStretchFit
			} else if isMainAxisRow && childHeightMode == SizingModeStretchFit {
				childWidth = marginRow + (childHeight-marginColumn)*ratio
				childWidthMode = SizingModeStretchFit
			}
		}

		// Stretched children without a cross size are measured at the
		// owner's exact cross size.
		stretch := resolveChildAlignment(node, child) == AlignStretch
		hasExactWidth := isDefined(width) && widthMode == SizingModeStretchFit
		if !isMainAxisRow && !isRowStyleDimDefined && hasExactWidth && stretch && childWidthMode != SizingModeStretchFit {
			childWidth = width
			childWidthMode = SizingModeStretchFit
			if isDefined(ratio) {
				childHeight = (childWidth - marginRow) / ratio
				childHeightMode = SizingModeStretchFit
			}
		}
		hasExactHeight := isDefined(height) && heightMode == SizingModeStretchFit
		if isMainAxisRow && !isColumnStyleDimDefined && hasExactHeight && stretch && childHeightMode != SizingModeStretchFit {
			childHeight = height
			childHeightMode = SizingModeStretchFit
			if isDefined(ratio) {
				childWidth = (childHeight - marginColumn) * ratio
				childWidthMode = SizingModeStretchFit
			}
		}

		childWidthMode, childWidth = constrainMaxSizeForMode(child, FlexDirectionRow, ownerWidth, ownerWidth, childWidthMode, childWidth)
		childHeightMode, childHeight = constrainMaxSizeForMode(child, FlexDirectionColumn, ownerHeight, ownerWidth, childHeightMode, childHeight)

		layoutNodeInternal(child, childWidth, childHeight, direction, childWidthMode, childHeightMode,
			ownerWidth, ownerHeight, false, reasonMeasureChild, p, depth)

		child.layout.computedFlexBasis = maxOrDefined(
			child.measured(dimensionOf(mainAxis)),
			child.style.paddingAndBorderForAxis(mainAxis, direction, ownerWidth),
		)
	}

	child.layout.computedFlexBasisGeneration = p.generation
}
