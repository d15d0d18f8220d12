package layout

// flexLine is one run of items laid out along the main axis.
type flexLine struct {
	items []*Node

	// endIndex is one past the last child index consumed by this line,
	// counting hidden and absolute children.
	endIndex int

	sizeConsumed        float32
	numberOfAutoMargins int

	totalFlexGrowFactors         float32
	totalFlexShrinkScaledFactors float32
	remainingFreeSpace           float32
	mainDim                      float32
	crossDim                     float32
}

// calculateFlexLine collects children starting at index start until the
// line is full. Lines only break when the node wraps, and every line holds
// at least one item.
func calculateFlexLine(
	node *Node,
	ownerDirection Direction,
	mainAxisOwnerSize float32,
	availableInnerWidth, availableInnerMainDim float32,
	start, lineCount int,
) flexLine {
	direction := node.resolveDirection(ownerDirection)
	mainAxis := resolveFlexDirection(node.style.flexDirection, direction)
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap
	gap := node.style.computeGapForAxis(mainAxis, availableInnerMainDim)

	line := flexLine{endIndex: start}
	var sizeConsumedIncludingMin float32

	for ; line.endIndex < len(node.children); line.endIndex++ {
		child := node.children[line.endIndex]
		if child.style.display == DisplayNone || child.style.positionType == PositionTypeAbsolute {
			continue
		}

		if child.style.flexStartMarginIsAuto(mainAxis, ownerDirection) {
			line.numberOfAutoMargins++
		}
		if child.style.flexEndMarginIsAuto(mainAxis, ownerDirection) {
			line.numberOfAutoMargins++
		}

		child.lineIndex = lineCount
		childMargin := child.style.computeMarginForAxis(mainAxis, availableInnerWidth)
		var leadingGap float32
		if len(line.items) > 0 {
			leadingGap = gap
		}
		basis := boundAxisWithinMinAndMax(child, mainAxis, child.layout.computedFlexBasis, mainAxisOwnerSize)

		if sizeConsumedIncludingMin+basis+childMargin+leadingGap > availableInnerMainDim &&
			isNodeFlexWrap && len(line.items) > 0 {
			break
		}

		sizeConsumedIncludingMin += basis + childMargin + leadingGap
		line.sizeConsumed += basis + childMargin + leadingGap

		if child.isNodeFlexible() {
			line.totalFlexGrowFactors += child.resolveFlexGrow()
			// Shrink is weighted by the item's basis.
			line.totalFlexShrinkScaledFactors += -child.resolveFlexShrink() * child.layout.computedFlexBasis
		}
		line.items = append(line.items, child)
	}

	// Fractional totals distribute at most the free space.
	if line.totalFlexGrowFactors > 0 && line.totalFlexGrowFactors < 1 {
		line.totalFlexGrowFactors = 1
	}
	if line.totalFlexShrinkScaledFactors > 0 && line.totalFlexShrinkScaledFactors < 1 {
		line.totalFlexShrinkScaledFactors = 1
	}
	return line
}

// resolveFlexibleLength distributes the line's free space among its items
// and lays each item out at its final main size.
func resolveFlexibleLength(
	node *Node,
	line *flexLine,
	mainAxis, crossAxis FlexDirection,
	direction Direction,
	mainAxisOwnerSize float32,
	availableInnerMainDim, availableInnerCrossDim float32,
	availableInnerWidth, availableInnerHeight float32,
	mainAxisOverflows bool,
	crossMode SizingMode,
	performLayout bool,
	p *pass,
	depth int,
) {
	originalFreeSpace := line.remainingFreeSpace
	frozen := freezeViolations(line, mainAxis, direction, mainAxisOwnerSize, availableInnerMainDim, availableInnerWidth)
	distributed := distributeFreeSpace(line, frozen, node, mainAxis, crossAxis, direction, mainAxisOwnerSize,
		availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, availableInnerHeight,
		mainAxisOverflows, crossMode, performLayout, p, depth)
	line.remainingFreeSpace = originalFreeSpace - distributed
}

// freezeViolations finds items whose share of the free space would break
// their min or max size. Each such item is frozen at its clamped size and
// taken out of the flex totals, and the rest is redistributed. This repeats
// until no new item is frozen, so it runs at most once per item.
//
// The returned slice holds the frozen main size of each item, or NaN for
// items that are still flexible.
func freezeViolations(
	line *flexLine,
	mainAxis FlexDirection,
	direction Direction,
	mainAxisOwnerSize float32,
	availableInnerMainDim, availableInnerWidth float32,
) []float32 {
	frozen := make([]float32, len(line.items))
	for i := range frozen {
		frozen[i] = Undefined
	}

	shrinking := line.remainingFreeSpace < 0
	growing := isDefined(line.remainingFreeSpace) && line.remainingFreeSpace > 0
	if !shrinking && !growing {
		return frozen
	}

	for range line.items {
		var delta float32
		changed := false

		for i, child := range line.items {
			if isDefined(frozen[i]) {
				continue
			}
			basis := boundAxisWithinMinAndMax(child, mainAxis, child.layout.computedFlexBasis, mainAxisOwnerSize)

			var base float32
			if shrinking {
				factor := -child.resolveFlexShrink() * basis
				if IsUndefined(factor) || factor == 0 {
					continue
				}
				base = basis + line.remainingFreeSpace/line.totalFlexShrinkScaledFactors*factor
			} else {
				factor := child.resolveFlexGrow()
				if IsUndefined(factor) || factor == 0 {
					continue
				}
				base = basis + line.remainingFreeSpace/line.totalFlexGrowFactors*factor
			}

			bound := boundAxis(child, mainAxis, direction, base, availableInnerMainDim, availableInnerWidth)
			if isDefined(base) && isDefined(bound) && base != bound {
				delta += bound - basis
				if shrinking {
					line.totalFlexShrinkScaledFactors -= -child.resolveFlexShrink() * child.layout.computedFlexBasis
				} else {
					line.totalFlexGrowFactors -= child.resolveFlexGrow()
				}
				frozen[i] = bound
				changed = true
			}
		}

		line.remainingFreeSpace -= delta
		if !changed {
			break
		}
	}
	return frozen
}

// distributeFreeSpace gives each item its final main size and lays it out.
// It returns how much of the free space the items absorbed.
func distributeFreeSpace(
	line *flexLine,
	frozen []float32,
	node *Node,
	mainAxis, crossAxis FlexDirection,
	direction Direction,
	mainAxisOwnerSize float32,
	availableInnerMainDim, availableInnerCrossDim float32,
	availableInnerWidth, availableInnerHeight float32,
	mainAxisOverflows bool,
	crossMode SizingMode,
	performLayout bool,
	p *pass,
	depth int,
) float32 {
	isMainAxisRow := isRow(mainAxis)
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap
	crossDim := dimensionOf(crossAxis)

	var delta float32
	for i, child := range line.items {
		basis := boundAxisWithinMinAndMax(child, mainAxis, child.layout.computedFlexBasis, mainAxisOwnerSize)
		mainSize := basis

		switch {
		case isDefined(frozen[i]):
			mainSize = frozen[i]
		case isDefined(line.remainingFreeSpace) && line.remainingFreeSpace < 0:
			factor := -child.resolveFlexShrink() * basis
			if factor != 0 {
				var size float32
				if isDefined(line.totalFlexShrinkScaledFactors) && line.totalFlexShrinkScaledFactors == 0 {
					size = basis + factor
				} else {
					size = basis + (line.remainingFreeSpace/line.totalFlexShrinkScaledFactors)*factor
				}
				mainSize = boundAxis(child, mainAxis, direction, size, availableInnerMainDim, availableInnerWidth)
			}
		case isDefined(line.remainingFreeSpace) && line.remainingFreeSpace > 0:
			factor := child.resolveFlexGrow()
			if isDefined(factor) && factor != 0 {
				mainSize = boundAxis(child, mainAxis, direction,
					basis+line.remainingFreeSpace/line.totalFlexGrowFactors*factor,
					availableInnerMainDim, availableInnerWidth)
			}
		}
		delta += mainSize - basis

		marginMain := child.style.computeMarginForAxis(mainAxis, availableInnerWidth)
		marginCross := child.style.computeMarginForAxis(crossAxis, availableInnerWidth)

		childMainSize := mainSize + marginMain
		childMainMode := SizingModeStretchFit
		var childCrossSize float32
		var childCrossMode SizingMode

		definiteCross := child.hasDefiniteLength(crossDim, availableInnerCrossDim)
		autoCrossMargin := child.style.flexStartMarginIsAuto(crossAxis, direction) ||
			child.style.flexEndMarginIsAuto(crossAxis, direction)
		stretch := resolveChildAlignment(node, child) == AlignStretch && !autoCrossMargin

		switch ratio := child.style.aspectRatio; {
		case isDefined(ratio):
			// The aspect ratio wins over stretching on the cross axis.
			if isMainAxisRow {
				childCrossSize = (childMainSize - marginMain) / ratio
			} else {
				childCrossSize = (childMainSize - marginMain) * ratio
			}
			childCrossSize += marginCross
			childCrossMode = SizingModeStretchFit
		case isDefined(availableInnerCrossDim) && !definiteCross && crossMode == SizingModeStretchFit &&
			!(isNodeFlexWrap && mainAxisOverflows) && stretch:
			childCrossSize = availableInnerCrossDim
			childCrossMode = SizingModeStretchFit
		case !definiteCross:
			childCrossSize = availableInnerCrossDim
			childCrossMode = SizingModeFitContent
			if IsUndefined(childCrossSize) {
				childCrossMode = SizingModeMaxContent
			}
		default:
			childCrossSize = child.resolvedDimension(crossDim, availableInnerCrossDim) + marginCross
			loosePercent := child.processedDims[crossDim].IsPercent() && crossMode != SizingModeStretchFit
			childCrossMode = SizingModeStretchFit
			if IsUndefined(childCrossSize) || loosePercent {
				childCrossMode = SizingModeMaxContent
			}
		}

		childMainMode, childMainSize = constrainMaxSizeForMode(child, mainAxis, availableInnerMainDim, availableInnerWidth, childMainMode, childMainSize)
		childCrossMode, childCrossSize = constrainMaxSizeForMode(child, crossAxis, availableInnerCrossDim, availableInnerWidth, childCrossMode, childCrossSize)

		// Stretched items are laid out for real once the line's cross size
		// is known.
		requiresStretchLayout := !definiteCross && stretch

		childWidth, childHeight := childCrossSize, childMainSize
		childWidthMode, childHeightMode := childCrossMode, childMainMode
		if isMainAxisRow {
			childWidth, childHeight = childMainSize, childCrossSize
			childWidthMode, childHeightMode = childMainMode, childCrossMode
		}

		isLayoutPass := performLayout && !requiresStretchLayout
		reason := reasonFlexMeasure
		if isLayoutPass {
			reason = reasonFlexLayout
		}
		layoutNodeInternal(child, childWidth, childHeight, node.layout.direction, childWidthMode, childHeightMode,
			availableInnerWidth, availableInnerHeight, isLayoutPass, reason, p, depth)
		node.layout.hadOverflow = node.layout.hadOverflow || child.layout.hadOverflow
	}
	return delta
}
