package layout

import "github.com/grindlemire/go-flex/internal/debug"

// layoutImpl runs the flexbox algorithm on one node. With performLayout
// false it only computes the node's measured size; otherwise it also
// positions every child.
//
// The available sizes include the node's margin. A MaxContent mode always
// comes with an undefined size.
func layoutImpl(
	node *Node,
	availableWidth, availableHeight float32,
	ownerDirection Direction,
	widthMode, heightMode SizingMode,
	ownerWidth, ownerHeight float32,
	performLayout bool,
	reason layoutReason,
	p *pass,
	depth int,
) {
	assertf(!IsUndefined(availableWidth) || widthMode == SizingModeMaxContent,
		"availableWidth is indefinite so widthMode must be MaxContent")
	assertf(!IsUndefined(availableHeight) || heightMode == SizingModeMaxContent,
		"availableHeight is indefinite so heightMode must be MaxContent")

	if performLayout {
		p.stats.Layouts++
	} else {
		p.stats.Measures++
	}
	if debug.Enabled() {
		debug.Log("%*slayout (%s, perform=%t): w=%v %s h=%v %s children=%d",
			depth*2, "", reason, performLayout, availableWidth, widthMode, availableHeight, heightMode, len(node.children))
	}

	direction := node.resolveDirection(ownerDirection)
	node.layout.direction = direction

	rowAxis := resolveFlexDirection(FlexDirectionRow, direction)
	columnAxis := resolveFlexDirection(FlexDirectionColumn, direction)
	startEdge, endEdge := EdgeLeft, EdgeRight
	if direction == DirectionRTL {
		startEdge, endEdge = EdgeRight, EdgeLeft
	}

	style := &node.style
	layout := &node.layout

	marginRowLeading := style.computeInlineStartMargin(rowAxis, direction, ownerWidth)
	marginRowTrailing := style.computeInlineEndMargin(rowAxis, direction, ownerWidth)
	marginColumnLeading := style.computeInlineStartMargin(columnAxis, direction, ownerWidth)
	marginColumnTrailing := style.computeInlineEndMargin(columnAxis, direction, ownerWidth)
	layout.margin[startEdge] = marginRowLeading
	layout.margin[endEdge] = marginRowTrailing
	layout.margin[EdgeTop] = marginColumnLeading
	layout.margin[EdgeBottom] = marginColumnTrailing
	marginAxisRow := marginRowLeading + marginRowTrailing
	marginAxisColumn := marginColumnLeading + marginColumnTrailing

	layout.border[startEdge] = style.computeInlineStartBorder(rowAxis, direction)
	layout.border[endEdge] = style.computeInlineEndBorder(rowAxis, direction)
	layout.border[EdgeTop] = style.computeInlineStartBorder(columnAxis, direction)
	layout.border[EdgeBottom] = style.computeInlineEndBorder(columnAxis, direction)

	layout.padding[startEdge] = style.computePadding(inlineStartEdge(rowAxis, direction), direction, ownerWidth)
	layout.padding[endEdge] = style.computePadding(inlineEndEdge(rowAxis, direction), direction, ownerWidth)
	layout.padding[EdgeTop] = style.computePadding(EdgeTop, direction, ownerWidth)
	layout.padding[EdgeBottom] = style.computePadding(EdgeBottom, direction, ownerWidth)

	if node.measure != nil {
		measureNodeWithMeasureFunc(node, direction, availableWidth-marginAxisRow, availableHeight-marginAxisColumn,
			widthMode, heightMode, ownerWidth, ownerHeight, p, depth)
		return
	}
	if len(node.children) == 0 {
		measureNodeWithoutChildren(node, direction, availableWidth-marginAxisRow, availableHeight-marginAxisColumn,
			widthMode, heightMode, ownerWidth, ownerHeight)
		return
	}
	if !performLayout && measureNodeWithFixedSize(node, direction, availableWidth-marginAxisRow, availableHeight-marginAxisColumn,
		widthMode, heightMode, ownerWidth, ownerHeight) {
		return
	}

	layout.hadOverflow = false

	// Step 1: axes and spacing.
	mainAxis := resolveFlexDirection(style.flexDirection, direction)
	crossAxis := resolveCrossDirection(mainAxis, direction)
	isMainAxisRow := isRow(mainAxis)
	isNodeFlexWrap := style.flexWrap != WrapNoWrap

	mainAxisOwnerSize, crossAxisOwnerSize := ownerHeight, ownerWidth
	if isMainAxisRow {
		mainAxisOwnerSize, crossAxisOwnerSize = ownerWidth, ownerHeight
	}

	paddingAndBorderMain := style.paddingAndBorderForAxis(mainAxis, direction, ownerWidth)
	paddingAndBorderCross := style.paddingAndBorderForAxis(crossAxis, direction, ownerWidth)
	leadingPaddingAndBorderCross := style.computeFlexStartPaddingAndBorder(crossAxis, direction, ownerWidth)

	mainMode, crossMode := heightMode, widthMode
	paddingAndBorderRow, paddingAndBorderColumn := paddingAndBorderCross, paddingAndBorderMain
	if isMainAxisRow {
		mainMode, crossMode = widthMode, heightMode
		paddingAndBorderRow, paddingAndBorderColumn = paddingAndBorderMain, paddingAndBorderCross
	}

	// Step 2: available content size on both axes.
	availableInnerWidth := calculateAvailableInnerDimension(node, DimensionWidth,
		availableWidth-marginAxisRow, paddingAndBorderRow, ownerWidth)
	availableInnerHeight := calculateAvailableInnerDimension(node, DimensionHeight,
		availableHeight-marginAxisColumn, paddingAndBorderColumn, ownerHeight)

	availableInnerMainDim, availableInnerCrossDim := availableInnerHeight, availableInnerWidth
	if isMainAxisRow {
		availableInnerMainDim, availableInnerCrossDim = availableInnerWidth, availableInnerHeight
	}

	// Step 3: flex basis of every child.
	totalMainDim := computeFlexBasisForChildren(node, availableInnerWidth, availableInnerHeight,
		widthMode, heightMode, direction, mainAxis, performLayout, p, depth)
	if len(node.children) > 1 {
		totalMainDim += style.computeGapForAxis(mainAxis, availableInnerMainDim) * float32(len(node.children)-1)
	}

	mainAxisOverflows := mainMode != SizingModeMaxContent && totalMainDim > availableInnerMainDim
	if isNodeFlexWrap && mainAxisOverflows && mainMode == SizingModeFitContent {
		mainMode = SizingModeStretchFit
	}

	// Step 4: break children into lines, then size and place each line.
	var lineCount int
	var totalLineCrossDim, maxLineMainDim float32
	crossAxisGap := style.computeGapForAxis(crossAxis, availableInnerCrossDim)

	for start := 0; start < len(node.children); lineCount++ {
		line := calculateFlexLine(node, ownerDirection, mainAxisOwnerSize,
			availableInnerWidth, availableInnerMainDim, start, lineCount)

		// Measuring with an exact cross size needs no flexing.
		canSkipFlex := !performLayout && crossMode == SizingModeStretchFit

		// Step 5: resolve flexible lengths.
		sizeBasedOnContent := false
		if mainMode != SizingModeStretchFit {
			mainDim := dimensionOf(mainAxis)
			paddingAndBorder := paddingAndBorderColumn
			if isMainAxisRow {
				paddingAndBorder = paddingAndBorderRow
			}
			minInnerMainDim := style.resolvedMinDimension(mainDim, mainAxisOwnerSize) - paddingAndBorder
			maxInnerMainDim := style.resolvedMaxDimension(mainDim, mainAxisOwnerSize) - paddingAndBorder

			switch {
			case isDefined(minInnerMainDim) && line.sizeConsumed < minInnerMainDim:
				availableInnerMainDim = minInnerMainDim
			case isDefined(maxInnerMainDim) && line.sizeConsumed > maxInnerMainDim:
				availableInnerMainDim = maxInnerMainDim
			default:
				legacyStretch := node.hasErrata(ErrataStretchFlexBasis)
				if !legacyStretch && (line.totalFlexGrowFactors == 0 || node.resolveFlexGrow() == 0) {
					// Nothing can grow, so the content size is all the
					// space needed.
					availableInnerMainDim = line.sizeConsumed
				}
				sizeBasedOnContent = !legacyStretch
			}
		}

		if !sizeBasedOnContent && isDefined(availableInnerMainDim) {
			line.remainingFreeSpace = availableInnerMainDim - line.sizeConsumed
		} else if line.sizeConsumed < 0 {
			// Negative margins shrank the content below zero; a content
			// sized node gives it zero.
			line.remainingFreeSpace = -line.sizeConsumed
		}

		if !canSkipFlex {
			resolveFlexibleLength(node, &line, mainAxis, crossAxis, direction, mainAxisOwnerSize,
				availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, availableInnerHeight,
				mainAxisOverflows, crossMode, performLayout, p, depth)
		}
		layout.hadOverflow = layout.hadOverflow || line.remainingFreeSpace < 0

		// Step 6: main axis justification and line cross size.
		justifyMainAxis(node, &line, start, mainAxis, crossAxis, direction, mainMode, crossMode,
			mainAxisOwnerSize, ownerWidth, availableInnerMainDim, availableInnerCrossDim, availableInnerWidth, performLayout)

		containerCrossAxis := availableInnerCrossDim
		if crossMode == SizingModeMaxContent || crossMode == SizingModeFitContent {
			containerCrossAxis = boundAxis(node, crossAxis, direction, line.crossDim+paddingAndBorderCross,
				crossAxisOwnerSize, ownerWidth) - paddingAndBorderCross
		}
		if !isNodeFlexWrap && crossMode == SizingModeStretchFit {
			line.crossDim = availableInnerCrossDim
		}
		if !isNodeFlexWrap {
			line.crossDim = boundAxis(node, crossAxis, direction, line.crossDim+paddingAndBorderCross,
				crossAxisOwnerSize, ownerWidth) - paddingAndBorderCross
		}

		// Step 7: cross axis alignment within the line.
		if performLayout {
			alignLineItems(node, &line, start, mainAxis, crossAxis, direction, containerCrossAxis,
				totalLineCrossDim+leadingPaddingAndBorderCross, availableInnerMainDim, availableInnerCrossDim,
				availableInnerWidth, availableInnerHeight, p, depth)
		}

		if lineCount != 0 {
			totalLineCrossDim += crossAxisGap
		}
		totalLineCrossDim += line.crossDim
		maxLineMainDim = maxOrDefined(maxLineMainDim, line.mainDim)
		start = line.endIndex
	}

	// Step 8: distribute lines along the cross axis.
	if performLayout && (isNodeFlexWrap || isBaselineLayout(node)) {
		alignLines(node, lineCount, mainAxis, crossAxis, direction, crossMode,
			totalLineCrossDim, crossAxisGap, leadingPaddingAndBorderCross, paddingAndBorderCross,
			crossAxisOwnerSize, ownerWidth, availableInnerCrossDim, availableInnerWidth, availableInnerHeight, p, depth)
	}

	// Step 9: final size of the node.
	node.setMeasured(DimensionWidth, boundAxis(node, FlexDirectionRow, direction, availableWidth-marginAxisRow, ownerWidth, ownerWidth))
	node.setMeasured(DimensionHeight, boundAxis(node, FlexDirectionColumn, direction, availableHeight-marginAxisColumn, ownerHeight, ownerWidth))

	scroll := style.overflow == OverflowScroll
	mainDim, crossDim := dimensionOf(mainAxis), dimensionOf(crossAxis)
	switch {
	case mainMode == SizingModeMaxContent || (!scroll && mainMode == SizingModeFitContent):
		node.setMeasured(mainDim, boundAxis(node, mainAxis, direction, maxLineMainDim, mainAxisOwnerSize, ownerWidth))
	case mainMode == SizingModeFitContent && scroll:
		node.setMeasured(mainDim, maxOrDefined(
			minOrDefined(availableInnerMainDim+paddingAndBorderMain,
				boundAxisWithinMinAndMax(node, mainAxis, maxLineMainDim, mainAxisOwnerSize)),
			paddingAndBorderMain))
	}
	switch {
	case crossMode == SizingModeMaxContent || (!scroll && crossMode == SizingModeFitContent):
		node.setMeasured(crossDim, boundAxis(node, crossAxis, direction, totalLineCrossDim+paddingAndBorderCross,
			crossAxisOwnerSize, ownerWidth))
	case crossMode == SizingModeFitContent && scroll:
		node.setMeasured(crossDim, maxOrDefined(
			minOrDefined(availableInnerCrossDim+paddingAndBorderCross,
				boundAxisWithinMinAndMax(node, crossAxis, totalLineCrossDim+paddingAndBorderCross, crossAxisOwnerSize)),
			paddingAndBorderCross))
	}

	if !performLayout {
		return
	}

	// Lines were stacked in normal order; flip them for wrap-reverse.
	if style.flexWrap == WrapWrapReverse {
		crossStart := flexStartEdge(crossAxis)
		for _, child := range node.children {
			if child.style.positionType != PositionTypeAbsolute {
				child.layout.position[crossStart] = node.measured(crossDim) -
					child.layout.position[crossStart] - child.measured(crossDim)
			}
		}
	}

	// Step 10: trailing positions for reversed axes.
	needsMainTrailing := needsTrailingPosition(mainAxis)
	needsCrossTrailing := needsTrailingPosition(crossAxis)
	if needsMainTrailing || needsCrossTrailing {
		for _, child := range node.children {
			// Absolute children are finished by their containing block.
			if child.style.display == DisplayNone || child.style.positionType == PositionTypeAbsolute {
				continue
			}
			if needsMainTrailing {
				setChildTrailingPosition(node, child, mainAxis)
			}
			if needsCrossTrailing {
				setChildTrailingPosition(node, child, crossAxis)
			}
		}
	}

	// Step 11: absolute descendants of this containing block.
	if formsContainingBlock(node, depth) {
		absWidthMode := crossMode
		if isMainAxisRow {
			absWidthMode = mainMode
		}
		layoutAbsoluteDescendants(node, node, absWidthMode, direction, p, depth, 0, 0,
			availableInnerWidth, availableInnerHeight)
	}
}

// alignLineItems positions the items of one line on the cross axis and
// re-lays out stretched items at the line's cross size. lead is the cross
// offset of the line's start.
func alignLineItems(
	node *Node,
	line *flexLine,
	start int,
	mainAxis, crossAxis FlexDirection,
	direction Direction,
	containerCrossAxis, lead float32,
	availableInnerMainDim, availableInnerCrossDim float32,
	availableInnerWidth, availableInnerHeight float32,
	p *pass,
	depth int,
) {
	isMainAxisRow := isRow(mainAxis)
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap
	crossStart := flexStartEdge(crossAxis)

	for i := start; i < line.endIndex; i++ {
		child := node.children[i]
		if child.style.display == DisplayNone || child.style.positionType == PositionTypeAbsolute {
			continue
		}

		var leadingCrossDim float32
		align := resolveChildAlignment(node, child)
		startAuto := child.style.flexStartMarginIsAuto(crossAxis, direction)
		endAuto := child.style.flexEndMarginIsAuto(crossAxis, direction)

		if align == AlignStretch && !startAuto && !endAuto {
			if !child.hasDefiniteLength(dimensionOf(crossAxis), availableInnerCrossDim) {
				childMainSize := child.measured(dimensionOf(mainAxis))
				childCrossSize := line.crossDim
				if ratio := child.style.aspectRatio; isDefined(ratio) {
					childCrossSize = child.style.computeMarginForAxis(crossAxis, availableInnerWidth)
					if isMainAxisRow {
						childCrossSize += childMainSize / ratio
					} else {
						childCrossSize += childMainSize * ratio
					}
				}
				childMainSize += child.style.computeMarginForAxis(mainAxis, availableInnerWidth)

				_, childMainSize = constrainMaxSizeForMode(child, mainAxis, availableInnerMainDim, availableInnerWidth, SizingModeStretchFit, childMainSize)
				_, childCrossSize = constrainMaxSizeForMode(child, crossAxis, availableInnerCrossDim, availableInnerWidth, SizingModeStretchFit, childCrossSize)

				childWidth, childHeight := childCrossSize, childMainSize
				if isMainAxisRow {
					childWidth, childHeight = childMainSize, childCrossSize
				}

				// Wrapped lines that are not stretched keep their content
				// size on the cross axis.
				crossAxisDoesNotGrow := node.style.alignContent != AlignStretch && isNodeFlexWrap
				childWidthMode := SizingModeStretchFit
				if IsUndefined(childWidth) || (!isMainAxisRow && crossAxisDoesNotGrow) {
					childWidthMode = SizingModeMaxContent
				}
				childHeightMode := SizingModeStretchFit
				if IsUndefined(childHeight) || (isMainAxisRow && crossAxisDoesNotGrow) {
					childHeightMode = SizingModeMaxContent
				}

				layoutNodeInternal(child, childWidth, childHeight, direction, childWidthMode, childHeightMode,
					availableInnerWidth, availableInnerHeight, true, reasonStretch, p, depth)
			}
		} else {
			remaining := containerCrossAxis - child.dimensionWithMargin(crossAxis, availableInnerWidth)
			switch {
			case startAuto && endAuto:
				leadingCrossDim += maxOrDefined(0, remaining/2)
			case endAuto:
			case startAuto:
				leadingCrossDim += maxOrDefined(0, remaining)
			case align == AlignFlexStart:
			case align == AlignCenter:
				leadingCrossDim += remaining / 2
			default:
				leadingCrossDim += remaining
			}
		}

		child.layout.position[crossStart] += lead + leadingCrossDim
	}
}

// alignLines distributes the lines along the cross axis per align-content,
// aligns baseline items, and stretches items to their final line size.
func alignLines(
	node *Node,
	lineCount int,
	mainAxis, crossAxis FlexDirection,
	direction Direction,
	crossMode SizingMode,
	totalLineCrossDim, crossAxisGap float32,
	leadingPaddingAndBorderCross, paddingAndBorderCross float32,
	crossAxisOwnerSize, ownerWidth float32,
	availableInnerCrossDim, availableInnerWidth, availableInnerHeight float32,
	p *pass,
	depth int,
) {
	isMainAxisRow := isRow(mainAxis)
	crossDim := dimensionOf(crossAxis)
	crossStart := flexStartEdge(crossAxis)

	var unclampedCrossDim float32
	switch {
	case crossMode == SizingModeStretchFit:
		unclampedCrossDim = availableInnerCrossDim + paddingAndBorderCross
	case node.hasDefiniteLength(crossDim, crossAxisOwnerSize):
		unclampedCrossDim = node.resolvedDimension(crossDim, crossAxisOwnerSize)
	default:
		unclampedCrossDim = totalLineCrossDim + paddingAndBorderCross
	}
	innerCrossDim := boundAxis(node, crossAxis, direction, unclampedCrossDim, crossAxisOwnerSize, ownerWidth) - paddingAndBorderCross
	remaining := innerCrossDim - totalLineCrossDim

	alignContent := node.style.alignContent
	if !(remaining >= 0) {
		alignContent = fallbackAlign(alignContent)
	}

	currentLead := leadingPaddingAndBorderCross
	var leadPerLine, extraSpacePerLine float32
	lines := float32(lineCount)
	switch alignContent {
	case AlignFlexEnd:
		currentLead += remaining
	case AlignCenter:
		currentLead += remaining / 2
	case AlignStretch:
		extraSpacePerLine = remaining / lines
	case AlignSpaceAround:
		currentLead += remaining / (2 * lines)
		leadPerLine = remaining / lines
	case AlignSpaceEvenly:
		currentLead += remaining / (lines + 1)
		leadPerLine = remaining / (lines + 1)
	case AlignSpaceBetween:
		if lineCount > 1 {
			leadPerLine = remaining / (lines - 1)
		}
	}

	end := 0
	for i := 0; i < lineCount; i++ {
		start := end

		// Find the line's extent and baseline.
		var lineHeight, maxAscent, maxDescent float32
		for end = start; end < len(node.children); end++ {
			child := node.children[end]
			if child.style.display == DisplayNone || child.style.positionType == PositionTypeAbsolute {
				continue
			}
			if child.lineIndex != i {
				break
			}
			if child.isLayoutDimensionDefined(crossAxis) {
				lineHeight = maxOrDefined(lineHeight,
					child.measured(crossDim)+child.style.computeMarginForAxis(crossAxis, availableInnerWidth))
			}
			if resolveChildAlignment(node, child) == AlignBaseline {
				ascent := calculateBaseline(child) + child.style.computeFlexStartMargin(FlexDirectionColumn, direction, availableInnerWidth)
				descent := child.measured(DimensionHeight) + child.style.computeMarginForAxis(FlexDirectionColumn, availableInnerWidth) - ascent
				maxAscent = maxOrDefined(maxAscent, ascent)
				maxDescent = maxOrDefined(maxDescent, descent)
				lineHeight = maxOrDefined(lineHeight, maxAscent+maxDescent)
			}
		}
		if i != 0 {
			currentLead += crossAxisGap
		}
		lineHeight += extraSpacePerLine

		for j := start; j < end; j++ {
			child := node.children[j]
			if child.style.display == DisplayNone || child.style.positionType == PositionTypeAbsolute {
				continue
			}
			switch resolveChildAlignment(node, child) {
			case AlignFlexStart:
				child.layout.position[crossStart] = currentLead +
					child.style.computeFlexStartMargin(crossAxis, direction, availableInnerWidth)
			case AlignFlexEnd:
				child.layout.position[crossStart] = currentLead + lineHeight -
					child.style.computeFlexEndMargin(crossAxis, direction, availableInnerWidth) - child.measured(crossDim)
			case AlignCenter:
				child.layout.position[crossStart] = currentLead + (lineHeight-child.measured(crossDim))/2
			case AlignStretch:
				child.layout.position[crossStart] = currentLead +
					child.style.computeFlexStartMargin(crossAxis, direction, availableInnerWidth)

				// The child was stretched to the container, not the line.
				if !child.hasDefiniteLength(crossDim, availableInnerCrossDim) {
					childWidth := leadPerLine + lineHeight
					childHeight := child.measured(DimensionHeight) + child.style.computeMarginForAxis(crossAxis, availableInnerWidth)
					if isMainAxisRow {
						childWidth = child.measured(DimensionWidth) + child.style.computeMarginForAxis(mainAxis, availableInnerWidth)
						childHeight = leadPerLine + lineHeight
					}
					if !FloatsEqual(childWidth, child.measured(DimensionWidth)) || !FloatsEqual(childHeight, child.measured(DimensionHeight)) {
						layoutNodeInternal(child, childWidth, childHeight, direction, SizingModeStretchFit, SizingModeStretchFit,
							availableInnerWidth, availableInnerHeight, true, reasonMultilineStretch, p, depth)
					}
				}
			case AlignBaseline:
				child.layout.position[EdgeTop] = currentLead + maxAscent - calculateBaseline(child) +
					child.style.computeFlexStartPosition(FlexDirectionColumn, direction, availableInnerCrossDim)
			}
		}
		currentLead += leadPerLine + lineHeight
	}
}
