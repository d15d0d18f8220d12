package layout

import "math"

// Style accessors. Every setter compares against the stored value and only
// marks the node dirty when the value actually changes.

func setEnum[T comparable](n *Node, field *T, v T) {
	if *field != v {
		*field = v
		n.markDirtyAndPropagate()
	}
}

func setFloat(n *Node, field *float32, v float32) {
	if !FloatsEqual(*field, v) {
		*field = v
		n.markDirtyAndPropagate()
	}
}

func setValue(n *Node, field *Value, v Value) {
	if !field.Equal(v) {
		*field = v
		n.markDirtyAndPropagate()
	}
}

// Direction returns the declared writing direction.
func (n *Node) Direction() Direction { return n.style.direction }

// SetDirection sets the writing direction.
func (n *Node) SetDirection(v Direction) { setEnum(n, &n.style.direction, v) }

// FlexDirection returns the main axis of the node's children.
func (n *Node) FlexDirection() FlexDirection { return n.style.flexDirection }

// SetFlexDirection sets the main axis of the node's children.
func (n *Node) SetFlexDirection(v FlexDirection) { setEnum(n, &n.style.flexDirection, v) }

func (n *Node) JustifyContent() Justify        { return n.style.justifyContent }
func (n *Node) SetJustifyContent(v Justify)    { setEnum(n, &n.style.justifyContent, v) }
func (n *Node) AlignContent() Align            { return n.style.alignContent }
func (n *Node) SetAlignContent(v Align)        { setEnum(n, &n.style.alignContent, v) }
func (n *Node) AlignItems() Align              { return n.style.alignItems }
func (n *Node) SetAlignItems(v Align)          { setEnum(n, &n.style.alignItems, v) }
func (n *Node) AlignSelf() Align               { return n.style.alignSelf }
func (n *Node) SetAlignSelf(v Align)           { setEnum(n, &n.style.alignSelf, v) }
func (n *Node) PositionType() PositionType     { return n.style.positionType }
func (n *Node) SetPositionType(v PositionType) { setEnum(n, &n.style.positionType, v) }
func (n *Node) FlexWrap() Wrap                 { return n.style.flexWrap }
func (n *Node) SetFlexWrap(v Wrap)             { setEnum(n, &n.style.flexWrap, v) }
func (n *Node) Overflow() Overflow             { return n.style.overflow }
func (n *Node) SetOverflow(v Overflow)         { setEnum(n, &n.style.overflow, v) }

// Display returns whether the node takes part in layout.
func (n *Node) Display() Display { return n.style.display }

// SetDisplay toggles layout participation. Switching between DisplayNone and
// a visible display dirties the whole subtree.
func (n *Node) SetDisplay(v Display) {
	old := n.style.display
	if old == v {
		return
	}
	n.style.display = v
	if (old == DisplayNone) != (v == DisplayNone) {
		n.markSubtreeDirty()
		return
	}
	n.markDirtyAndPropagate()
}

// Flex returns the legacy flex shorthand, NaN when unset.
func (n *Node) Flex() float32 { return n.style.flex }

// SetFlex sets the legacy flex shorthand. Positive values grow, negative
// values shrink unless web defaults are enabled.
func (n *Node) SetFlex(v float32) { setFloat(n, &n.style.flex, v) }

// FlexGrow returns the declared grow factor, 0 when unset.
func (n *Node) FlexGrow() float32 {
	return orDefault(n.style.flexGrow, defaultFlexGrow)
}

// SetFlexGrow sets the grow factor. NaN clears it.
func (n *Node) SetFlexGrow(v float32) { setFloat(n, &n.style.flexGrow, v) }

// FlexShrink returns the declared shrink factor, or the config default.
func (n *Node) FlexShrink() float32 {
	if n.config.useWebDefaults {
		return orDefault(n.style.flexShrink, webDefaultFlexShrink)
	}
	return orDefault(n.style.flexShrink, defaultFlexShrink)
}

// SetFlexShrink sets the shrink factor. NaN clears it.
func (n *Node) SetFlexShrink(v float32) { setFloat(n, &n.style.flexShrink, v) }

func (n *Node) FlexBasis() Value     { return n.style.flexBasis }
func (n *Node) SetFlexBasis(v Value) { setValue(n, &n.style.flexBasis, v) }

// Margin returns the declared margin for an edge or shorthand.
func (n *Node) Margin(edge Edge) Value { return n.style.margin[edge] }

// SetMargin sets the margin for an edge or shorthand. Margins may be
// negative and may be auto.
func (n *Node) SetMargin(edge Edge, v Value) { setValue(n, &n.style.margin[edge], v) }

// Position returns the declared inset for an edge or shorthand.
func (n *Node) Position(edge Edge) Value { return n.style.position[edge] }

// SetPosition sets an inset. Static nodes ignore insets.
func (n *Node) SetPosition(edge Edge, v Value) { setValue(n, &n.style.position[edge], v) }

// Padding returns the declared padding for an edge or shorthand.
func (n *Node) Padding(edge Edge) Value { return n.style.padding[edge] }

// SetPadding sets padding. Negative padding resolves to zero.
func (n *Node) SetPadding(edge Edge, v Value) { setValue(n, &n.style.padding[edge], v) }

// Border returns the declared border width, NaN when unset.
func (n *Node) Border(edge Edge) float32 { return n.style.border[edge].Amount() }

// SetBorder sets a border width in points. Negative widths resolve to zero.
func (n *Node) SetBorder(edge Edge, width float32) {
	setValue(n, &n.style.border[edge], Point(width))
}

// Gap returns the declared gap for a gutter.
func (n *Node) Gap(g Gutter) Value { return n.style.gap[g] }

// SetGap sets the space between items. Negative gaps resolve to zero.
func (n *Node) SetGap(g Gutter, v Value) { setValue(n, &n.style.gap[g], v) }

func (n *Node) Width() Value         { return n.style.dimensions[DimensionWidth] }
func (n *Node) SetWidth(v Value)     { setValue(n, &n.style.dimensions[DimensionWidth], v) }
func (n *Node) Height() Value        { return n.style.dimensions[DimensionHeight] }
func (n *Node) SetHeight(v Value)    { setValue(n, &n.style.dimensions[DimensionHeight], v) }
func (n *Node) MinWidth() Value      { return n.style.minDimensions[DimensionWidth] }
func (n *Node) SetMinWidth(v Value)  { setValue(n, &n.style.minDimensions[DimensionWidth], v) }
func (n *Node) MinHeight() Value     { return n.style.minDimensions[DimensionHeight] }
func (n *Node) SetMinHeight(v Value) { setValue(n, &n.style.minDimensions[DimensionHeight], v) }
func (n *Node) MaxWidth() Value      { return n.style.maxDimensions[DimensionWidth] }
func (n *Node) SetMaxWidth(v Value)  { setValue(n, &n.style.maxDimensions[DimensionWidth], v) }
func (n *Node) MaxHeight() Value     { return n.style.maxDimensions[DimensionHeight] }
func (n *Node) SetMaxHeight(v Value) { setValue(n, &n.style.maxDimensions[DimensionHeight], v) }

// AspectRatio returns width divided by height, NaN when unset.
func (n *Node) AspectRatio() float32 { return n.style.aspectRatio }

// SetAspectRatio sets width divided by height. NaN, 0 and infinities clear
// it.
func (n *Node) SetAspectRatio(v float32) {
	if v == 0 || math.IsInf(float64(v), 0) {
		v = Undefined
	}
	setFloat(n, &n.style.aspectRatio, v)
}

// Resolved flex properties

// resolveFlexGrow is 0 for roots, else the explicit grow, else a positive
// flex shorthand, else 0.
func (n *Node) resolveFlexGrow() float32 {
	if n.owner == nil {
		return 0
	}
	if isDefined(n.style.flexGrow) {
		return n.style.flexGrow
	}
	if isDefined(n.style.flex) && n.style.flex > 0 {
		return n.style.flex
	}
	return defaultFlexGrow
}

// resolveFlexShrink is 0 for roots, else the explicit shrink, else a negated
// negative flex shorthand (outside web defaults), else the config default.
func (n *Node) resolveFlexShrink() float32 {
	if n.owner == nil {
		return 0
	}
	if isDefined(n.style.flexShrink) {
		return n.style.flexShrink
	}
	if !n.config.useWebDefaults && isDefined(n.style.flex) && n.style.flex < 0 {
		return -n.style.flex
	}
	if n.config.useWebDefaults {
		return webDefaultFlexShrink
	}
	return defaultFlexShrink
}

// resolveFlexBasis returns the explicit basis when set, else 0 (or auto under
// web defaults) for a positive flex shorthand, else auto.
func (n *Node) resolveFlexBasis() Value {
	basis := n.style.flexBasis
	if !basis.IsAuto() && !basis.IsUndefined() {
		return basis
	}
	if isDefined(n.style.flex) && n.style.flex > 0 {
		if n.config.useWebDefaults {
			return Auto()
		}
		return Point(0)
	}
	return Auto()
}

func (n *Node) isNodeFlexible() bool {
	return n.style.positionType != PositionTypeAbsolute &&
		(n.resolveFlexGrow() != 0 || n.resolveFlexShrink() != 0)
}

// processDimensions caches the used width and height styles. A max equal to
// the min wins over the declared size.
func (n *Node) processDimensions() {
	for _, dim := range [...]Dimension{DimensionWidth, DimensionHeight} {
		maxDim, minDim := n.style.maxDimensions[dim], n.style.minDimensions[dim]
		if maxDim.IsDefined() && maxDim.Unit() == minDim.Unit() && FloatsEqual(maxDim.Amount(), minDim.Amount()) {
			n.processedDims[dim] = maxDim
		} else {
			n.processedDims[dim] = n.style.dimensions[dim]
		}
	}
}

// resolvedDimension resolves the used size of dim against reference.
func (n *Node) resolvedDimension(dim Dimension, reference float32) float32 {
	return n.processedDims[dim].Resolve(reference)
}

// hasDefiniteLength reports whether dim resolves to a non-negative size.
func (n *Node) hasDefiniteLength(dim Dimension, ownerSize float32) bool {
	used := n.resolvedDimension(dim, ownerSize)
	return isDefined(used) && used >= 0
}

func (n *Node) resolveDirection(ownerDirection Direction) Direction {
	if n.style.direction == DirectionInherit {
		if ownerDirection != DirectionInherit {
			return ownerDirection
		}
		return DirectionLTR
	}
	return n.style.direction
}
