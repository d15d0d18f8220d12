package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // No value
	UnitPoint                 // Absolute points
	UnitPercent               // Percentage of the reference length
	UnitAuto                  // Determined by content or flex
)

func (u Unit) String() string {
	switch u {
	case UnitUndefined:
		return "undefined"
	case UnitPoint:
		return "point"
	case UnitPercent:
		return "percent"
	case UnitAuto:
		return "auto"
	}
	return "unknown"
}

// Value is a length that can be undefined, auto, points or a percentage.
// Auto and undefined values carry no amount.
type Value struct {
	amount float32
	unit   Unit
}

// UndefinedValue returns a Value that holds no length.
func UndefinedValue() Value {
	return Value{amount: Undefined, unit: UnitUndefined}
}

// Auto returns a Value that should be computed from content or flex.
func Auto() Value {
	return Value{amount: Undefined, unit: UnitAuto}
}

// Point returns an absolute length. A NaN amount yields an undefined Value.
func Point(v float32) Value {
	if IsUndefined(v) {
		return UndefinedValue()
	}
	return Value{amount: v, unit: UnitPoint}
}

// Percent returns a percentage of the reference length on a 0-100 scale.
// A NaN amount yields an undefined Value.
func Percent(p float32) Value {
	if IsUndefined(p) {
		return UndefinedValue()
	}
	return Value{amount: p, unit: UnitPercent}
}

// Unit returns how the value is interpreted.
func (v Value) Unit() Unit {
	return v.unit
}

// Amount returns the stored number, or NaN for auto and undefined values.
func (v Value) Amount() float32 {
	if v.unit == UnitPoint || v.unit == UnitPercent {
		return v.amount
	}
	return Undefined
}

// IsUndefined reports whether the value holds no length.
func (v Value) IsUndefined() bool {
	return v.unit == UnitUndefined
}

// IsDefined reports whether the value holds any length, auto included.
func (v Value) IsDefined() bool {
	return v.unit != UnitUndefined
}

// IsAuto reports whether the value should be computed from content or flex.
func (v Value) IsAuto() bool {
	return v.unit == UnitAuto
}

// IsPercent reports whether the value is relative to a reference length.
func (v Value) IsPercent() bool {
	return v.unit == UnitPercent
}

// Resolve computes the length against a reference length. Auto, undefined
// and percentages of an undefined reference resolve to NaN.
func (v Value) Resolve(reference float32) float32 {
	switch v.unit {
	case UnitPoint:
		return v.amount
	case UnitPercent:
		return v.amount * reference * 0.01
	}
	return Undefined
}

// Equal reports whether two values describe the same length.
func (v Value) Equal(o Value) bool {
	if v.unit != o.unit {
		return false
	}
	if v.unit == UnitUndefined || v.unit == UnitAuto {
		return true
	}
	return FloatsEqual(v.amount, o.amount)
}

func (v Value) String() string {
	switch v.unit {
	case UnitPoint:
		return strconv.FormatFloat(float64(v.amount), 'g', -1, 32)
	case UnitPercent:
		return strconv.FormatFloat(float64(v.amount), 'g', -1, 32) + "%"
	case UnitAuto:
		return "auto"
	}
	return "undefined"
}

// ParseValue parses the String form of a Value: "auto", "undefined" (or
// empty), "12.5" or "50%". A trailing "pt" or "px" is accepted on points.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "undefined":
		return UndefinedValue(), nil
	case "auto":
		return Auto(), nil
	}

	if num, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
		if err != nil {
			return Value{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percent(float32(f)), nil
	}

	num := strings.TrimSuffix(strings.TrimSuffix(s, "pt"), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return Value{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Point(float32(f)), nil
}
