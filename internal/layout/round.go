package layout

import "math"

// RoundValueToPixelGrid snaps value to the nearest multiple of 1/scale.
// forceCeil and forceFloor override the direction for values that are not
// already on the grid. Values within a small tolerance of a grid line snap to
// it regardless of the flags.
func RoundValueToPixelGrid(value, scale float64, forceCeil, forceFloor bool) float32 {
	scaled := value * scale
	// fractional is such that floor(scaled) == scaled - fractional.
	fractional := math.Mod(scaled, 1.0)
	if fractional < 0 {
		fractional++
	}

	switch {
	case floatsEqual64(fractional, 0):
		scaled -= fractional
	case floatsEqual64(fractional, 1):
		scaled = scaled - fractional + 1
	case forceCeil:
		scaled = scaled - fractional + 1
	case forceFloor:
		scaled -= fractional
	default:
		up := 0.0
		if !math.IsNaN(fractional) && (fractional > 0.5 || floatsEqual64(fractional, 0.5)) {
			up = 1
		}
		scaled = scaled - fractional + up
	}

	if math.IsNaN(scaled) || math.IsNaN(scale) {
		return Undefined
	}
	return float32(scaled / scale)
}

// roundToPixelGrid rounds positions and sizes of the subtree in place.
// Sizes are derived from rounded absolute edges so that adjacent boxes stay
// contiguous. Text nodes round their size up, never down.
func roundToPixelGrid(node *Node, absoluteLeft, absoluteTop float64) {
	scale := float64(node.config.pointScaleFactor)

	nodeLeft := float64(node.layout.position[EdgeLeft])
	nodeTop := float64(node.layout.position[EdgeTop])
	nodeWidth := float64(node.layout.dimensions[DimensionWidth])
	nodeHeight := float64(node.layout.dimensions[DimensionHeight])

	absoluteNodeLeft := absoluteLeft + nodeLeft
	absoluteNodeTop := absoluteTop + nodeTop
	absoluteNodeRight := absoluteNodeLeft + nodeWidth
	absoluteNodeBottom := absoluteNodeTop + nodeHeight

	if scale != 0 {
		text := node.nodeType == NodeTypeText

		node.layout.position[EdgeLeft] = RoundValueToPixelGrid(nodeLeft, scale, false, text)
		node.layout.position[EdgeTop] = RoundValueToPixelGrid(nodeTop, scale, false, text)

		fractionalWidth := hasFraction(nodeWidth * scale)
		fractionalHeight := hasFraction(nodeHeight * scale)

		node.layout.dimensions[DimensionWidth] =
			RoundValueToPixelGrid(absoluteNodeRight, scale, text && fractionalWidth, text && !fractionalWidth) -
				RoundValueToPixelGrid(absoluteNodeLeft, scale, false, text)
		node.layout.dimensions[DimensionHeight] =
			RoundValueToPixelGrid(absoluteNodeBottom, scale, text && fractionalHeight, text && !fractionalHeight) -
				RoundValueToPixelGrid(absoluteNodeTop, scale, false, text)
	}

	for _, child := range node.children {
		roundToPixelGrid(child, absoluteNodeLeft, absoluteNodeTop)
	}
}

func hasFraction(v float64) bool {
	f := math.Mod(v, 1.0)
	return !floatsEqual64(f, 0) && !floatsEqual64(f, 1)
}
