package layout

import "math"

// calculateBaseline returns the distance from the node's top edge to its
// baseline. A baseline function wins; otherwise the baseline comes from the
// first baseline-aligned or reference child on the first line, else the first
// in-flow child, else the node's own bottom edge.
func calculateBaseline(node *Node) float32 {
	if node.baseline != nil {
		baseline := node.callBaseline(node.measured(DimensionWidth), node.measured(DimensionHeight))
		assertf(!math.IsNaN(float64(baseline)), "expected custom baseline function to not return NaN")
		return baseline
	}

	var baselineChild *Node
	for _, child := range node.children {
		if child.lineIndex > 0 {
			break
		}
		if child.style.positionType == PositionTypeAbsolute {
			continue
		}
		if resolveChildAlignment(node, child) == AlignBaseline || child.isReferenceBaseline {
			baselineChild = child
			break
		}
		if baselineChild == nil {
			baselineChild = child
		}
	}

	if baselineChild == nil {
		return node.measured(DimensionHeight)
	}
	return calculateBaseline(baselineChild) + baselineChild.layout.position[EdgeTop]
}

// isBaselineLayout reports whether a node's lines align on baselines. Only
// rows do.
func isBaselineLayout(node *Node) bool {
	if isColumn(node.style.flexDirection) {
		return false
	}
	if node.style.alignItems == AlignBaseline {
		return true
	}
	for _, child := range node.children {
		if child.style.positionType != PositionTypeAbsolute && child.style.alignSelf == AlignBaseline {
			return true
		}
	}
	return false
}
