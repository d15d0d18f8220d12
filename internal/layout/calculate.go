package layout

import (
	"sync/atomic"

	"github.com/grindlemire/go-flex/internal/debug"
)

// generation counts layout passes across all trees. Each pass visits a dirty
// node at most once per generation.
var generation atomic.Uint32

// LayoutStats counts the work done by one layout pass.
type LayoutStats struct {
	Layouts          int // Full layouts performed
	Measures         int // Measure-only passes performed
	CachedLayouts    int // Full layouts answered from cache
	CachedMeasures   int // Measure-only passes answered from cache
	MeasureCallbacks int // Calls into measure functions
	MaxMeasureCache  int // Most measure cache slots used by one node
}

// pass carries state shared by every node visited in one CalculateLayout.
type pass struct {
	generation uint32
	stats      LayoutStats
}

// layoutReason says why a node is being laid out; used for debug logging.
type layoutReason uint8

const (
	reasonInitial layoutReason = iota
	reasonAbsLayout
	reasonStretch
	reasonMultilineStretch
	reasonFlexLayout
	reasonMeasureChild
	reasonAbsMeasureChild
	reasonFlexMeasure
)

func (r layoutReason) String() string {
	switch r {
	case reasonInitial:
		return "initial"
	case reasonAbsLayout:
		return "abs_layout"
	case reasonStretch:
		return "stretch"
	case reasonMultilineStretch:
		return "multiline_stretch"
	case reasonFlexLayout:
		return "flex_layout"
	case reasonMeasureChild:
		return "measure"
	case reasonAbsMeasureChild:
		return "abs_measure"
	case reasonFlexMeasure:
		return "flex_measure"
	}
	return "unknown"
}

// CalculateLayout lays out the tree rooted at n within the available size.
// NaN means the size is unconstrained. Only dirty nodes and nodes whose
// constraints changed are recomputed.
func (n *Node) CalculateLayout(availableWidth, availableHeight float32, ownerDirection Direction) {
	n.CalculateLayoutWithStats(availableWidth, availableHeight, ownerDirection)
}

// CalculateLayoutWithStats is CalculateLayout that also reports how much work
// the pass did.
func (n *Node) CalculateLayoutWithStats(availableWidth, availableHeight float32, ownerDirection Direction) LayoutStats {
	p := &pass{generation: generation.Add(1)}

	n.processDimensions()
	direction := n.resolveDirection(ownerDirection)

	width, widthMode := n.rootConstraint(DimensionWidth, FlexDirectionRow, availableWidth, availableWidth)
	height, heightMode := n.rootConstraint(DimensionHeight, FlexDirectionColumn, availableHeight, availableWidth)

	rounded := n.layout.dimensions
	if layoutNodeInternal(n, width, height, ownerDirection, widthMode, heightMode,
		availableWidth, availableHeight, true, reasonInitial, p, 0) {
		n.setPosition(n.layout.direction, availableWidth, availableHeight)
		roundToPixelGrid(n, 0, 0)
	} else {
		// Served from cache: the tree is unchanged, but the root's size was
		// reloaded unrounded.
		n.layout.dimensions = rounded
	}

	if debug.Enabled() {
		debug.Log("layout pass %d (%s): layouts=%d measures=%d cached_layouts=%d cached_measures=%d measure_callbacks=%d",
			p.generation, direction, p.stats.Layouts, p.stats.Measures,
			p.stats.CachedLayouts, p.stats.CachedMeasures, p.stats.MeasureCallbacks)
	}
	return p.stats
}

// rootConstraint picks the available size and mode for the root on one axis:
// its own definite size, else its max size, else the owner size.
func (n *Node) rootConstraint(dim Dimension, axis FlexDirection, ownerSize, ownerWidth float32) (float32, SizingMode) {
	if n.hasDefiniteLength(dim, ownerSize) {
		return n.resolvedDimension(dim, ownerSize) + n.style.computeMarginForAxis(axis, ownerWidth), SizingModeStretchFit
	}
	if maxSize := n.style.resolvedMaxDimension(dim, ownerSize); isDefined(maxSize) {
		return maxSize, SizingModeFitContent
	}
	if IsUndefined(ownerSize) {
		return ownerSize, SizingModeMaxContent
	}
	return ownerSize, SizingModeStretchFit
}

// layoutNodeInternal wraps layoutImpl with the measurement cache. It returns
// whether the node was actually laid out (as opposed to served from cache).
func layoutNodeInternal(
	node *Node,
	availableWidth, availableHeight float32,
	ownerDirection Direction,
	widthMode, heightMode SizingMode,
	ownerWidth, ownerHeight float32,
	performLayout bool,
	reason layoutReason,
	p *pass,
	depth int,
) bool {
	layout := &node.layout
	depth++

	needToVisit := (node.dirty && layout.generationCount != p.generation) ||
		layout.configVersion != node.config.version ||
		layout.lastOwnerDirection != ownerDirection

	if needToVisit {
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedLayout = emptyCachedMeasurement()
	}

	var cached *CachedMeasurement
	if node.measure != nil {
		marginRow := node.style.computeMarginForAxis(FlexDirectionRow, ownerWidth)
		marginColumn := node.style.computeMarginForAxis(FlexDirectionColumn, ownerWidth)

		if CanUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight,
			layout.cachedLayout, marginRow, marginColumn, node.config) {
			cached = &layout.cachedLayout
		} else {
			for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
				if CanUseCachedMeasurement(widthMode, availableWidth, heightMode, availableHeight,
					layout.cachedMeasurements[i], marginRow, marginColumn, node.config) {
					cached = &layout.cachedMeasurements[i]
					break
				}
			}
		}
	} else if performLayout {
		if sameConstraints(&layout.cachedLayout, availableWidth, availableHeight, widthMode, heightMode) {
			cached = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
			if sameConstraints(&layout.cachedMeasurements[i], availableWidth, availableHeight, widthMode, heightMode) {
				cached = &layout.cachedMeasurements[i]
				break
			}
		}
	}

	if !needToVisit && cached != nil {
		layout.measuredDimensions[DimensionWidth] = cached.ComputedWidth
		layout.measuredDimensions[DimensionHeight] = cached.ComputedHeight
		if performLayout {
			p.stats.CachedLayouts++
		} else {
			p.stats.CachedMeasures++
		}
		if debug.Enabled() {
			debug.Log("%*scache hit (%s): w=%v %s h=%v %s -> %vx%v",
				depth*2, "", reason, availableWidth, widthMode, availableHeight, heightMode,
				cached.ComputedWidth, cached.ComputedHeight)
		}
	} else {
		layoutImpl(node, availableWidth, availableHeight, ownerDirection, widthMode, heightMode,
			ownerWidth, ownerHeight, performLayout, reason, p, depth)

		layout.lastOwnerDirection = ownerDirection
		layout.configVersion = node.config.version

		if cached == nil {
			var entry *CachedMeasurement
			if performLayout {
				entry = &layout.cachedLayout
			} else {
				if layout.nextCachedMeasurementsIndex == maxCachedMeasurements {
					layout.nextCachedMeasurementsIndex = 0
				}
				entry = &layout.cachedMeasurements[layout.nextCachedMeasurementsIndex]
				layout.nextCachedMeasurementsIndex++
				p.stats.MaxMeasureCache = max(p.stats.MaxMeasureCache, layout.nextCachedMeasurementsIndex)
			}
			*entry = CachedMeasurement{
				AvailableWidth:  availableWidth,
				AvailableHeight: availableHeight,
				WidthMode:       widthMode,
				HeightMode:      heightMode,
				ComputedWidth:   layout.measuredDimensions[DimensionWidth],
				ComputedHeight:  layout.measuredDimensions[DimensionHeight],
			}
		}
	}

	if performLayout {
		layout.dimensions[DimensionWidth] = layout.measuredDimensions[DimensionWidth]
		layout.dimensions[DimensionHeight] = layout.measuredDimensions[DimensionHeight]
		node.hasNewLayout = true
		node.setDirty(false)
	}

	layout.generationCount = p.generation
	return needToVisit || cached == nil
}

func sameConstraints(c *CachedMeasurement, width, height float32, widthMode, heightMode SizingMode) bool {
	return FloatsEqual(c.AvailableWidth, width) && FloatsEqual(c.AvailableHeight, height) &&
		c.WidthMode == widthMode && c.HeightMode == heightMode
}
