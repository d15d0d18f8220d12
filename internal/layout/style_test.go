package layout

import "testing"

func TestEdges_Resolve(t *testing.T) {
	type tc struct {
		set       map[Edge]Value
		edge      Edge
		direction Direction
		want      Value
	}

	tests := map[string]tc{
		"nothing set": {
			edge: EdgeLeft, direction: DirectionLTR, want: UndefinedValue(),
		},
		"all applies everywhere": {
			set:  map[Edge]Value{EdgeAll: Point(3)},
			edge: EdgeBottom, direction: DirectionLTR, want: Point(3),
		},
		"horizontal beats all": {
			set:  map[Edge]Value{EdgeAll: Point(3), EdgeHorizontal: Point(5)},
			edge: EdgeRight, direction: DirectionLTR, want: Point(5),
		},
		"vertical does not touch left": {
			set:  map[Edge]Value{EdgeAll: Point(3), EdgeVertical: Point(5)},
			edge: EdgeLeft, direction: DirectionLTR, want: Point(3),
		},
		"start maps to left in ltr": {
			set:  map[Edge]Value{EdgeStart: Point(7), EdgeHorizontal: Point(1)},
			edge: EdgeLeft, direction: DirectionLTR, want: Point(7),
		},
		"start maps to right in rtl": {
			set:  map[Edge]Value{EdgeStart: Point(7)},
			edge: EdgeRight, direction: DirectionRTL, want: Point(7),
		},
		"end maps to left in rtl": {
			set:  map[Edge]Value{EdgeEnd: Point(9)},
			edge: EdgeLeft, direction: DirectionRTL, want: Point(9),
		},
		"physical beats logical": {
			set:  map[Edge]Value{EdgeStart: Point(7), EdgeLeft: Point(2)},
			edge: EdgeLeft, direction: DirectionLTR, want: Point(2),
		},
		"start is ignored on the other side": {
			set:  map[Edge]Value{EdgeStart: Point(7)},
			edge: EdgeRight, direction: DirectionLTR, want: UndefinedValue(),
		},
		"auto is defined": {
			set:  map[Edge]Value{EdgeTop: Auto(), EdgeAll: Point(1)},
			edge: EdgeTop, direction: DirectionLTR, want: Auto(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var e Edges
			for i := range e {
				e[i] = UndefinedValue()
			}
			for edge, v := range tt.set {
				e[edge] = v
			}
			if got := e.resolve(tt.edge, tt.direction); !got.Equal(tt.want) {
				t.Errorf("resolve(%v, %v) = %v, want %v", tt.edge, tt.direction, got, tt.want)
			}
		})
	}
}

func TestEdges_ResolveShorthandPanics(t *testing.T) {
	var e Edges
	mustPanic(t, "not a physical edge", func() { e.resolve(EdgeHorizontal, DirectionLTR) })
}

func TestStyle_Clamping(t *testing.T) {
	n := NewNode()
	n.SetMargin(EdgeLeft, Point(-1))
	n.SetPadding(EdgeLeft, Point(-1))
	n.SetBorder(EdgeLeft, -1)
	n.SetGap(GutterColumn, Point(-1))
	s := &n.style

	if got := s.computeInlineStartMargin(FlexDirectionRow, DirectionLTR, 100); got != -1 {
		t.Errorf("margin = %v, want -1", got)
	}
	if got := s.computePadding(EdgeLeft, DirectionLTR, 100); got != 0 {
		t.Errorf("padding = %v, want 0", got)
	}
	if got := s.computeBorder(EdgeLeft, DirectionLTR); got != 0 {
		t.Errorf("border = %v, want 0", got)
	}
	if got := s.computeGapForAxis(FlexDirectionRow, 100); got != 0 {
		t.Errorf("gap = %v, want 0", got)
	}
}

func TestStyle_PercentPaddingUsesWidth(t *testing.T) {
	n := NewNode()
	n.SetPadding(EdgeTop, Percent(10))
	n.SetMargin(EdgeBottom, Percent(50))
	s := &n.style

	if got := s.computePadding(EdgeTop, DirectionLTR, 200); got != 20 {
		t.Errorf("padding top = %v, want 20", got)
	}
	if got := s.computeMarginForAxis(FlexDirectionColumn, 200); got != 100 {
		t.Errorf("column margin = %v, want 100", got)
	}
	if got := s.computePadding(EdgeTop, DirectionLTR, Undefined); got != 0 {
		t.Errorf("padding against undefined width = %v, want 0", got)
	}
}

func TestStyle_Gap(t *testing.T) {
	type tc struct {
		column, row, all Value
		axis             FlexDirection
		want             float32
	}

	tests := map[string]tc{
		"nothing set":         {column: UndefinedValue(), row: UndefinedValue(), all: UndefinedValue(), axis: FlexDirectionRow, want: 0},
		"all for rows":        {column: UndefinedValue(), row: UndefinedValue(), all: Point(4), axis: FlexDirectionRow, want: 4},
		"column beats all":    {column: Point(6), row: UndefinedValue(), all: Point(4), axis: FlexDirectionRowReverse, want: 6},
		"row gap for columns": {column: Point(6), row: Point(2), all: Point(4), axis: FlexDirectionColumn, want: 2},
		"percent of owner":    {column: Percent(10), row: UndefinedValue(), all: UndefinedValue(), axis: FlexDirectionRow, want: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNode()
			n.SetGap(GutterColumn, tt.column)
			n.SetGap(GutterRow, tt.row)
			n.SetGap(GutterAll, tt.all)
			if got := n.style.computeGapForAxis(tt.axis, 200); got != tt.want {
				t.Errorf("computeGapForAxis(%v) = %v, want %v", tt.axis, got, tt.want)
			}
		})
	}
}

func TestNode_ResolveFlex(t *testing.T) {
	type tc struct {
		web         bool
		flex        float32
		grow        float32
		shrink      float32
		wantGrow    float32
		wantShrink  float32
		wantBasis   Value
		detachChild bool
	}

	tests := map[string]tc{
		"nothing set":            {flex: Undefined, grow: Undefined, shrink: Undefined, wantGrow: 0, wantShrink: 0, wantBasis: Auto()},
		"web defaults shrink":    {web: true, flex: Undefined, grow: Undefined, shrink: Undefined, wantGrow: 0, wantShrink: 1, wantBasis: Auto()},
		"positive flex":          {flex: 2, grow: Undefined, shrink: Undefined, wantGrow: 2, wantShrink: 0, wantBasis: Point(0)},
		"positive flex on web":   {web: true, flex: 2, grow: Undefined, shrink: Undefined, wantGrow: 2, wantShrink: 1, wantBasis: Auto()},
		"negative flex":          {flex: -3, grow: Undefined, shrink: Undefined, wantGrow: 0, wantShrink: 3, wantBasis: Auto()},
		"negative flex on web":   {web: true, flex: -3, grow: Undefined, shrink: Undefined, wantGrow: 0, wantShrink: 1, wantBasis: Auto()},
		"explicit beats flex":    {flex: 2, grow: 5, shrink: 4, wantGrow: 5, wantShrink: 4, wantBasis: Point(0)},
		"roots never flex":       {flex: 2, grow: 5, shrink: 4, wantGrow: 0, wantShrink: 0, wantBasis: Point(0), detachChild: true},
		"zero flex":             {flex: 0, grow: Undefined, shrink: Undefined, wantGrow: 0, wantShrink: 0, wantBasis: Auto()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewConfig()
			c.SetUseWebDefaults(tt.web)
			root := NewNodeWithConfig(c)
			child := NewNodeWithConfig(c)
			if !tt.detachChild {
				root.AppendChild(child)
			}
			child.SetFlex(tt.flex)
			child.SetFlexGrow(tt.grow)
			child.SetFlexShrink(tt.shrink)

			if got := child.resolveFlexGrow(); got != tt.wantGrow {
				t.Errorf("resolveFlexGrow() = %v, want %v", got, tt.wantGrow)
			}
			if got := child.resolveFlexShrink(); got != tt.wantShrink {
				t.Errorf("resolveFlexShrink() = %v, want %v", got, tt.wantShrink)
			}
			if got := child.resolveFlexBasis(); !got.Equal(tt.wantBasis) {
				t.Errorf("resolveFlexBasis() = %v, want %v", got, tt.wantBasis)
			}
		})
	}
}

func TestDefaultStyle(t *testing.T) {
	n := NewNode()
	if n.FlexDirection() != FlexDirectionColumn {
		t.Errorf("FlexDirection() = %v, want column", n.FlexDirection())
	}
	if n.AlignItems() != AlignStretch {
		t.Errorf("AlignItems() = %v, want stretch", n.AlignItems())
	}
	if n.AlignContent() != AlignFlexStart {
		t.Errorf("AlignContent() = %v, want flex-start", n.AlignContent())
	}
	if n.PositionType() != PositionTypeRelative {
		t.Errorf("PositionType() = %v, want relative", n.PositionType())
	}
	if !n.Width().IsAuto() || !n.FlexBasis().IsAuto() {
		t.Errorf("Width() = %v, FlexBasis() = %v, want auto", n.Width(), n.FlexBasis())
	}
	if !IsUndefined(n.Border(EdgeAll)) {
		t.Errorf("Border(all) = %v, want NaN", n.Border(EdgeAll))
	}

	c := NewConfig()
	c.SetUseWebDefaults(true)
	web := NewNodeWithConfig(c)
	if web.FlexDirection() != FlexDirectionRow {
		t.Errorf("web FlexDirection() = %v, want row", web.FlexDirection())
	}
	if web.AlignContent() != AlignStretch {
		t.Errorf("web AlignContent() = %v, want stretch", web.AlignContent())
	}
	if web.FlexShrink() != 1 {
		t.Errorf("web FlexShrink() = %v, want 1", web.FlexShrink())
	}
}

func TestStyle_Equal(t *testing.T) {
	a, b := NewNode(), NewNode()
	if !a.style.Equal(&b.style) {
		t.Fatal("fresh styles should be equal")
	}
	b.SetMargin(EdgeStart, Percent(5))
	if a.style.Equal(&b.style) {
		t.Error("styles with different margins reported equal")
	}
	a.SetMargin(EdgeStart, Percent(5))
	a.SetAspectRatio(Undefined)
	if !a.style.Equal(&b.style) {
		t.Error("styles with NaN aspect ratios should be equal")
	}
}
