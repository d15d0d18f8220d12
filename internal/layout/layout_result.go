package layout

// maxCachedMeasurements is the number of measure-only results remembered per
// node, in addition to the last full layout.
const maxCachedMeasurements = 2

// CachedMeasurement is one remembered (constraints -> size) pair.
type CachedMeasurement struct {
	AvailableWidth  float32
	AvailableHeight float32
	WidthMode       SizingMode
	HeightMode      SizingMode
	ComputedWidth   float32
	ComputedHeight  float32
}

func emptyCachedMeasurement() CachedMeasurement {
	return CachedMeasurement{
		AvailableWidth:  -1,
		AvailableHeight: -1,
		WidthMode:       SizingModeMaxContent,
		HeightMode:      SizingModeMaxContent,
		ComputedWidth:   -1,
		ComputedHeight:  -1,
	}
}

// LayoutResult holds everything the engine computes for a node.
// Positions and boxes are indexed by physical Edge (left, top, right, bottom).
type LayoutResult struct {
	position           [4]float32
	dimensions         [2]float32
	measuredDimensions [2]float32
	margin             [4]float32
	border             [4]float32
	padding            [4]float32

	direction   Direction
	hadOverflow bool

	computedFlexBasis           float32
	computedFlexBasisGeneration uint32

	configVersion      uint32
	generationCount    uint32
	lastOwnerDirection Direction

	nextCachedMeasurementsIndex int
	cachedMeasurements          [maxCachedMeasurements]CachedMeasurement
	cachedLayout                CachedMeasurement
}

func newLayoutResult() LayoutResult {
	r := LayoutResult{
		dimensions:         [2]float32{Undefined, Undefined},
		measuredDimensions: [2]float32{Undefined, Undefined},
		computedFlexBasis:  Undefined,
		lastOwnerDirection: DirectionInherit,
		cachedLayout:       emptyCachedMeasurement(),
	}
	for i := range r.cachedMeasurements {
		r.cachedMeasurements[i] = emptyCachedMeasurement()
	}
	return r
}

// Equal reports whether two results place and size a node identically.
// Cache bookkeeping is ignored.
func (r *LayoutResult) Equal(o *LayoutResult) bool {
	for i := range r.position {
		if !FloatsEqual(r.position[i], o.position[i]) ||
			!FloatsEqual(r.margin[i], o.margin[i]) ||
			!FloatsEqual(r.border[i], o.border[i]) ||
			!FloatsEqual(r.padding[i], o.padding[i]) {
			return false
		}
	}
	for i := range r.dimensions {
		if !FloatsEqual(r.dimensions[i], o.dimensions[i]) ||
			!FloatsEqual(r.measuredDimensions[i], o.measuredDimensions[i]) {
			return false
		}
	}
	return r.direction == o.direction && r.hadOverflow == o.hadOverflow
}
