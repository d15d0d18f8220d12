package layout

func isRow(d FlexDirection) bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

func isColumn(d FlexDirection) bool {
	return d == FlexDirectionColumn || d == FlexDirectionColumnReverse
}

// resolveFlexDirection flips row directions under RTL.
func resolveFlexDirection(d FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		switch d {
		case FlexDirectionRow:
			return FlexDirectionRowReverse
		case FlexDirectionRowReverse:
			return FlexDirectionRow
		}
	}
	return d
}

func resolveCrossDirection(d FlexDirection, direction Direction) FlexDirection {
	if isColumn(d) {
		return resolveFlexDirection(FlexDirectionRow, direction)
	}
	return FlexDirectionColumn
}

func dimensionOf(d FlexDirection) Dimension {
	if isRow(d) {
		return DimensionWidth
	}
	return DimensionHeight
}

// flexStartEdge is the physical edge where items along d begin.
func flexStartEdge(d FlexDirection) Edge {
	switch d {
	case FlexDirectionColumnReverse:
		return EdgeBottom
	case FlexDirectionRow:
		return EdgeLeft
	case FlexDirectionRowReverse:
		return EdgeRight
	}
	return EdgeTop
}

func flexEndEdge(d FlexDirection) Edge {
	switch d {
	case FlexDirectionColumnReverse:
		return EdgeTop
	case FlexDirectionRow:
		return EdgeRight
	case FlexDirectionRowReverse:
		return EdgeLeft
	}
	return EdgeBottom
}

// inlineStartEdge is the physical edge where text along d would begin,
// regardless of the reverse flag.
func inlineStartEdge(d FlexDirection, direction Direction) Edge {
	if isRow(d) {
		if direction == DirectionRTL {
			return EdgeRight
		}
		return EdgeLeft
	}
	return EdgeTop
}

func inlineEndEdge(d FlexDirection, direction Direction) Edge {
	if isRow(d) {
		if direction == DirectionRTL {
			return EdgeLeft
		}
		return EdgeRight
	}
	return EdgeBottom
}

func needsTrailingPosition(d FlexDirection) bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// fallbackAlign is used for align-content when lines overflow.
func fallbackAlign(a Align) Align {
	switch a {
	case AlignSpaceBetween, AlignStretch, AlignSpaceAround, AlignSpaceEvenly:
		return AlignFlexStart
	}
	return a
}

// fallbackJustify is used for justify-content when items overflow.
func fallbackJustify(j Justify) Justify {
	switch j {
	case JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly:
		return JustifyFlexStart
	}
	return j
}
