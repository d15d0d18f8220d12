package layout

// Edges stores one Value per Edge, shorthands included.
type Edges [edgeCount]Value

// resolveLeft picks the value for the physical left edge: left, then the
// logical edge that maps to it, then horizontal, then all.
func (e *Edges) resolveLeft(direction Direction) Value {
	if e[EdgeLeft].IsDefined() {
		return e[EdgeLeft]
	}
	if direction == DirectionRTL {
		if e[EdgeEnd].IsDefined() {
			return e[EdgeEnd]
		}
	} else if e[EdgeStart].IsDefined() {
		return e[EdgeStart]
	}
	if e[EdgeHorizontal].IsDefined() {
		return e[EdgeHorizontal]
	}
	return e[EdgeAll]
}

func (e *Edges) resolveRight(direction Direction) Value {
	if e[EdgeRight].IsDefined() {
		return e[EdgeRight]
	}
	if direction == DirectionRTL {
		if e[EdgeStart].IsDefined() {
			return e[EdgeStart]
		}
	} else if e[EdgeEnd].IsDefined() {
		return e[EdgeEnd]
	}
	if e[EdgeHorizontal].IsDefined() {
		return e[EdgeHorizontal]
	}
	return e[EdgeAll]
}

func (e *Edges) resolveTop() Value {
	if e[EdgeTop].IsDefined() {
		return e[EdgeTop]
	}
	if e[EdgeVertical].IsDefined() {
		return e[EdgeVertical]
	}
	return e[EdgeAll]
}

func (e *Edges) resolveBottom() Value {
	if e[EdgeBottom].IsDefined() {
		return e[EdgeBottom]
	}
	if e[EdgeVertical].IsDefined() {
		return e[EdgeVertical]
	}
	return e[EdgeAll]
}

// resolve returns the value that applies to a physical edge.
func (e *Edges) resolve(edge Edge, direction Direction) Value {
	switch edge {
	case EdgeLeft:
		return e.resolveLeft(direction)
	case EdgeTop:
		return e.resolveTop()
	case EdgeRight:
		return e.resolveRight(direction)
	case EdgeBottom:
		return e.resolveBottom()
	}
	fatalf("edge %v is not a physical edge", edge)
	return Value{}
}

func (e *Edges) horizontalDefined() bool {
	return e[EdgeLeft].IsDefined() || e[EdgeRight].IsDefined() ||
		e[EdgeStart].IsDefined() || e[EdgeEnd].IsDefined() ||
		e[EdgeHorizontal].IsDefined() || e[EdgeAll].IsDefined()
}

func (e *Edges) verticalDefined() bool {
	return e[EdgeTop].IsDefined() || e[EdgeBottom].IsDefined() ||
		e[EdgeVertical].IsDefined() || e[EdgeAll].IsDefined()
}
