package layout

import "math"

// Undefined is the "no value" sentinel used for lengths.
var Undefined = float32(math.NaN())

const floatTolerance = 0.0001

// IsUndefined reports whether f is the NaN sentinel.
func IsUndefined(f float32) bool {
	return math.IsNaN(float64(f))
}

func isDefined(f float32) bool {
	return !math.IsNaN(float64(f))
}

// FloatsEqual compares two lengths with a small tolerance. Two undefined
// lengths are equal.
func FloatsEqual(a, b float32) bool {
	if isDefined(a) && isDefined(b) {
		return math.Abs(float64(a-b)) < floatTolerance
	}
	return IsUndefined(a) && IsUndefined(b)
}

func floatsEqual64(a, b float64) bool {
	if !math.IsNaN(a) && !math.IsNaN(b) {
		return math.Abs(a-b) < floatTolerance
	}
	return math.IsNaN(a) && math.IsNaN(b)
}

// maxOrDefined returns the larger of a and b, or whichever is defined.
func maxOrDefined(a, b float32) float32 {
	if isDefined(a) && isDefined(b) {
		if a > b {
			return a
		}
		return b
	}
	if IsUndefined(a) {
		return b
	}
	return a
}

// minOrDefined returns the smaller of a and b, or whichever is defined.
func minOrDefined(a, b float32) float32 {
	if isDefined(a) && isDefined(b) {
		if a < b {
			return a
		}
		return b
	}
	if IsUndefined(a) {
		return b
	}
	return a
}

// orDefault returns f unless it is undefined.
func orDefault(f, fallback float32) float32 {
	if IsUndefined(f) {
		return fallback
	}
	return f
}
