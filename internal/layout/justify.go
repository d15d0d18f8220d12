package layout

// justifyMainAxis places the items of a line along the main axis and
// measures the line's main and cross extent.
func justifyMainAxis(
	node *Node,
	line *flexLine,
	start int,
	mainAxis, crossAxis FlexDirection,
	direction Direction,
	mainMode, crossMode SizingMode,
	mainAxisOwnerSize, ownerWidth float32,
	availableInnerMainDim, availableInnerCrossDim, availableInnerWidth float32,
	performLayout bool,
) {
	style := &node.style
	leadingPaddingAndBorder := style.computeFlexStartPaddingAndBorder(mainAxis, direction, ownerWidth)
	trailingPaddingAndBorder := style.computeFlexEndPaddingAndBorder(mainAxis, direction, ownerWidth)
	gap := style.computeGapForAxis(mainAxis, availableInnerMainDim)

	// A content-sized container has no free space, unless its min size
	// leaves some.
	if mainMode == SizingModeFitContent && line.remainingFreeSpace > 0 {
		mainDim := dimensionOf(mainAxis)
		minSize := style.resolvedMinDimension(mainDim, mainAxisOwnerSize)
		if style.minDimensions[mainDim].IsDefined() && isDefined(minSize) {
			minAvailable := minSize - leadingPaddingAndBorder - trailingPaddingAndBorder
			occupied := availableInnerMainDim - line.remainingFreeSpace
			line.remainingFreeSpace = maxOrDefined(0, minAvailable-occupied)
		} else {
			line.remainingFreeSpace = 0
		}
	}

	justify := style.justifyContent
	if !(line.remainingFreeSpace >= 0) {
		justify = fallbackJustify(justify)
	}

	var leadingMainDim float32
	betweenMainDim := gap
	if line.numberOfAutoMargins == 0 {
		count := float32(len(line.items))
		switch justify {
		case JustifyCenter:
			leadingMainDim = line.remainingFreeSpace / 2
		case JustifyFlexEnd:
			leadingMainDim = line.remainingFreeSpace
		case JustifySpaceBetween:
			if len(line.items) > 1 {
				betweenMainDim += maxOrDefined(line.remainingFreeSpace, 0) / (count - 1)
			}
		case JustifySpaceEvenly:
			leadingMainDim = line.remainingFreeSpace / (count + 1)
			betweenMainDim += leadingMainDim
		case JustifySpaceAround:
			leadingMainDim = 0.5 * line.remainingFreeSpace / count
			betweenMainDim += leadingMainDim * 2
		}
	}

	line.mainDim = leadingPaddingAndBorder + leadingMainDim
	line.crossDim = 0

	var maxAscent, maxDescent float32
	baselineLayout := isBaselineLayout(node)
	startEdge := flexStartEdge(mainAxis)
	var last *Node
	if len(line.items) > 0 {
		last = line.items[len(line.items)-1]
	}

	for i := start; i < line.endIndex; i++ {
		child := node.children[i]
		if child.style.display == DisplayNone {
			continue
		}

		if child.style.positionType == PositionTypeAbsolute {
			if !performLayout {
				continue
			}
			if child.style.isFlexStartPositionDefined(mainAxis, direction) {
				child.layout.position[startEdge] = child.style.computeFlexStartPosition(mainAxis, direction, availableInnerMainDim) +
					style.computeFlexStartBorder(mainAxis, direction) +
					child.style.computeFlexStartMargin(mainAxis, direction, availableInnerWidth)
			} else {
				child.layout.position[startEdge] += style.computeFlexStartBorder(mainAxis, direction) + leadingMainDim
			}
			continue
		}

		if child.style.flexStartMarginIsAuto(mainAxis, direction) && line.remainingFreeSpace > 0 {
			line.mainDim += line.remainingFreeSpace / float32(line.numberOfAutoMargins)
		}
		if performLayout {
			child.layout.position[startEdge] += line.mainDim
		}
		if child != last {
			line.mainDim += betweenMainDim
		}
		if child.style.flexEndMarginIsAuto(mainAxis, direction) && line.remainingFreeSpace > 0 {
			line.mainDim += line.remainingFreeSpace / float32(line.numberOfAutoMargins)
		}

		if !performLayout && crossMode == SizingModeStretchFit {
			// The flex step was skipped, so only the basis is known.
			line.mainDim += child.style.computeMarginForAxis(mainAxis, availableInnerWidth) + child.layout.computedFlexBasis
			line.crossDim = availableInnerCrossDim
			continue
		}

		line.mainDim += child.dimensionWithMargin(mainAxis, availableInnerWidth)
		if baselineLayout {
			ascent := calculateBaseline(child) + child.style.computeFlexStartMargin(FlexDirectionColumn, direction, availableInnerWidth)
			descent := child.measured(DimensionHeight) + child.style.computeMarginForAxis(FlexDirectionColumn, availableInnerWidth) - ascent
			maxAscent = maxOrDefined(maxAscent, ascent)
			maxDescent = maxOrDefined(maxDescent, descent)
		} else {
			line.crossDim = maxOrDefined(line.crossDim, child.dimensionWithMargin(crossAxis, availableInnerWidth))
		}
	}
	line.mainDim += trailingPaddingAndBorder

	if baselineLayout {
		line.crossDim = maxAscent + maxDescent
	}
}
