package layout

import "testing"

func TestAbsolute_Insets(t *testing.T) {
	type tc struct {
		setup func(root, child *Node)
		want  box
	}

	tests := map[string]tc{
		"left and top": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(10))
				child.SetPosition(EdgeTop, Point(20))
				child.SetWidth(Point(30))
				child.SetHeight(Point(40))
			},
			want: box{10, 20, 30, 40},
		},
		"right and bottom": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeRight, Point(10))
				child.SetPosition(EdgeBottom, Point(20))
				child.SetWidth(Point(30))
				child.SetHeight(Point(40))
			},
			want: box{60, 40, 30, 40},
		},
		"opposite insets size the child": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(10))
				child.SetPosition(EdgeRight, Point(20))
				child.SetPosition(EdgeTop, Point(5))
				child.SetPosition(EdgeBottom, Point(15))
			},
			want: box{10, 5, 70, 80},
		},
		"width wins over insets": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(10))
				child.SetPosition(EdgeRight, Point(20))
				child.SetWidth(Point(30))
				child.SetHeight(Point(10))
			},
			want: box{10, 0, 30, 10},
		},
		"percent insets": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Percent(10))
				child.SetPosition(EdgeTop, Percent(50))
				child.SetWidth(Point(10))
				child.SetHeight(Point(10))
			},
			want: box{10, 50, 10, 10},
		},
		"margin adds to inset": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(10))
				child.SetPosition(EdgeTop, Point(10))
				child.SetMargin(EdgeAll, Point(5))
				child.SetWidth(Point(10))
				child.SetHeight(Point(10))
			},
			want: box{15, 15, 10, 10},
		},
		"border offsets insets": {
			setup: func(root, child *Node) {
				root.SetBorder(EdgeAll, 4)
				child.SetPosition(EdgeLeft, Point(0))
				child.SetPosition(EdgeBottom, Point(0))
				child.SetWidth(Point(10))
				child.SetHeight(Point(10))
			},
			want: box{4, 86, 10, 10},
		},
		"aspect ratio from insets": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(0))
				child.SetPosition(EdgeRight, Point(50))
				child.SetAspectRatio(2)
			},
			want: box{0, 0, 50, 25},
		},
		"no insets follows padding": {
			setup: func(root, child *Node) {
				root.SetPadding(EdgeAll, Point(10))
				child.SetWidth(Point(20))
				child.SetHeight(Point(20))
			},
			want: box{10, 10, 20, 20},
		},
		"no insets centered": {
			setup: func(root, child *Node) {
				root.SetJustifyContent(JustifyCenter)
				root.SetAlignItems(AlignCenter)
				child.SetWidth(Point(10))
				child.SetHeight(Point(10))
			},
			want: box{45, 45, 10, 10},
		},
		"no insets at the end": {
			setup: func(root, child *Node) {
				root.SetJustifyContent(JustifyFlexEnd)
				child.SetAlignSelf(AlignFlexEnd)
				child.SetWidth(Point(10))
				child.SetHeight(Point(10))
			},
			want: box{90, 90, 10, 10},
		},
		"content sized": {
			setup: func(_, child *Node) {
				child.SetPosition(EdgeLeft, Point(5))
				child.AppendChild(sized(child.Config(), 25, 15))
			},
			want: box{5, 0, 25, 15},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := sized(DefaultConfig(), 100, 100)
			child := NewNode()
			child.SetPositionType(PositionTypeAbsolute)
			tt.setup(root, child)
			root.AppendChild(child)
			root.CalculateLayout(Undefined, Undefined, DirectionLTR)

			assertBox(t, "child", child, tt.want)
		})
	}
}

func TestAbsolute_OutOfFlow(t *testing.T) {
	root := sized(DefaultConfig(), 100, 100)
	root.SetFlexDirection(FlexDirectionRow)
	abs := sized(DefaultConfig(), 50, 50)
	abs.SetPositionType(PositionTypeAbsolute)
	abs.SetFlexGrow(1)
	inFlow := NewNode()
	inFlow.SetFlexGrow(1)
	withChildren(root, abs, inFlow)
	root.CalculateLayout(Undefined, Undefined, DirectionLTR)

	assertBox(t, "absolute", abs, box{0, 0, 50, 50})
	assertBox(t, "in flow", inFlow, box{0, 0, 100, 100})
}

func TestAbsolute_ContainingBlock(t *testing.T) {
	type tc struct {
		setup func(mid *Node)
		want  box
	}

	tests := map[string]tc{
		"static parent defers to root": {
			setup: func(mid *Node) { mid.SetPositionType(PositionTypeStatic) },
			want:  box{150, 160, 10, 10},
		},
		"relative parent": {
			setup: func(mid *Node) {},
			want:  box{90, 90, 10, 10},
		},
		"static parent forced to contain": {
			setup: func(mid *Node) {
				mid.SetPositionType(PositionTypeStatic)
				mid.SetAlwaysFormsContainingBlock(true)
			},
			want: box{90, 90, 10, 10},
		},
		"static parent with hidden overflow": {
			setup: func(mid *Node) {
				mid.SetPositionType(PositionTypeStatic)
				mid.SetOverflow(OverflowHidden)
			},
			want: box{90, 90, 10, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := sized(DefaultConfig(), 200, 200)
			mid := sized(DefaultConfig(), 100, 100)
			mid.SetMargin(EdgeLeft, Point(40))
			mid.SetMargin(EdgeTop, Point(30))
			tt.setup(mid)
			leaf := sized(DefaultConfig(), 10, 10)
			leaf.SetPositionType(PositionTypeAbsolute)
			leaf.SetPosition(EdgeRight, Point(0))
			leaf.SetPosition(EdgeBottom, Point(0))
			root.AppendChild(mid)
			mid.AppendChild(leaf)
			root.CalculateLayout(Undefined, Undefined, DirectionLTR)

			assertBox(t, "mid", mid, box{40, 30, 100, 100})
			assertBox(t, "leaf", leaf, tt.want)
		})
	}
}

func TestAbsolute_RTL(t *testing.T) {
	root := sized(DefaultConfig(), 100, 100)
	root.SetFlexDirection(FlexDirectionRow)
	child := sized(DefaultConfig(), 20, 20)
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeStart, Point(10))
	root.AppendChild(child)
	root.CalculateLayout(Undefined, Undefined, DirectionRTL)

	assertBox(t, "child", child, box{70, 0, 20, 20})
}

func TestAbsolute_Errata(t *testing.T) {
	t.Run("without insets excludes padding", func(t *testing.T) {
		c := NewConfig()
		c.SetErrata(ErrataAbsolutePositionWithoutInsetsExcludesPadding)
		root := sized(c, 100, 100)
		root.SetPadding(EdgeAll, Point(10))
		child := sized(c, 20, 20)
		child.SetPositionType(PositionTypeAbsolute)
		root.AppendChild(child)
		root.CalculateLayout(Undefined, Undefined, DirectionLTR)

		assertBox(t, "child", child, box{0, 0, 20, 20})
	})

	t.Run("percent against inner size", func(t *testing.T) {
		for _, errata := range []Errata{ErrataNone, ErrataAbsolutePercentAgainstInnerSize} {
			c := NewConfig()
			c.SetErrata(errata)
			root := sized(c, 200, 100)
			root.SetPadding(EdgeAll, Point(20))
			child := sized(c, 10, 10)
			child.SetPositionType(PositionTypeAbsolute)
			child.SetPosition(EdgeLeft, Percent(10))
			child.SetPosition(EdgeTop, Point(0))
			root.AppendChild(child)
			root.CalculateLayout(Undefined, Undefined, DirectionLTR)

			want := float32(20)
			if errata != ErrataNone {
				want = 16
			}
			if got := child.ComputedLeft(); got != want {
				t.Errorf("errata %v: left = %v, want %v", errata, got, want)
			}
		}
	})
}
