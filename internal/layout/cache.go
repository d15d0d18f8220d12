package layout

func sizeIsExactAndMatchesOldMeasuredSize(mode SizingMode, size, lastComputedSize float32) bool {
	return mode == SizingModeStretchFit && FloatsEqual(size, lastComputedSize)
}

func oldSizeIsMaxContentAndStillFits(mode SizingMode, size float32, lastMode SizingMode, lastComputedSize float32) bool {
	return mode == SizingModeFitContent && lastMode == SizingModeMaxContent &&
		(size >= lastComputedSize || FloatsEqual(size, lastComputedSize))
}

func newSizeIsStricterAndStillValid(mode SizingMode, size float32, lastMode SizingMode, lastSize, lastComputedSize float32) bool {
	return lastMode == SizingModeFitContent && mode == SizingModeFitContent &&
		isDefined(lastSize) && isDefined(size) && isDefined(lastComputedSize) &&
		lastSize > size &&
		(lastComputedSize <= size || FloatsEqual(size, lastComputedSize))
}

// CanUseCachedMeasurement reports whether a measurement taken under the last
// constraints is still valid for the new ones. Width and height must each be
// compatible on their own. marginRow and marginColumn are the node's total
// margins on each axis; available sizes include them while computed sizes
// do not.
func CanUseCachedMeasurement(
	widthMode SizingMode, availableWidth float32,
	heightMode SizingMode, availableHeight float32,
	last CachedMeasurement,
	marginRow, marginColumn float32,
	config *Config,
) bool {
	if (isDefined(last.ComputedHeight) && last.ComputedHeight < 0) ||
		(isDefined(last.ComputedWidth) && last.ComputedWidth < 0) {
		return false
	}

	effectiveWidth, effectiveHeight := availableWidth, availableHeight
	lastWidth, lastHeight := last.AvailableWidth, last.AvailableHeight
	if config != nil && config.pointScaleFactor != 0 {
		scale := float64(config.pointScaleFactor)
		effectiveWidth = RoundValueToPixelGrid(float64(availableWidth), scale, false, false)
		effectiveHeight = RoundValueToPixelGrid(float64(availableHeight), scale, false, false)
		lastWidth = RoundValueToPixelGrid(float64(last.AvailableWidth), scale, false, false)
		lastHeight = RoundValueToPixelGrid(float64(last.AvailableHeight), scale, false, false)
	}

	sameWidthSpec := last.WidthMode == widthMode && FloatsEqual(lastWidth, effectiveWidth)
	sameHeightSpec := last.HeightMode == heightMode && FloatsEqual(lastHeight, effectiveHeight)

	innerWidth := availableWidth - marginRow
	innerHeight := availableHeight - marginColumn

	widthCompatible := sameWidthSpec ||
		sizeIsExactAndMatchesOldMeasuredSize(widthMode, innerWidth, last.ComputedWidth) ||
		oldSizeIsMaxContentAndStillFits(widthMode, innerWidth, last.WidthMode, last.ComputedWidth) ||
		newSizeIsStricterAndStillValid(widthMode, innerWidth, last.WidthMode, last.AvailableWidth, last.ComputedWidth)

	heightCompatible := sameHeightSpec ||
		sizeIsExactAndMatchesOldMeasuredSize(heightMode, innerHeight, last.ComputedHeight) ||
		oldSizeIsMaxContentAndStillFits(heightMode, innerHeight, last.HeightMode, last.ComputedHeight) ||
		newSizeIsStricterAndStillValid(heightMode, innerHeight, last.HeightMode, last.AvailableHeight, last.ComputedHeight)

	return widthCompatible && heightCompatible
}
