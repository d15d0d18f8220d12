package layout

import "testing"

func TestCanUseCachedMeasurement(t *testing.T) {
	type tc struct {
		widthMode  SizingMode
		width      float32
		heightMode SizingMode
		height     float32
		last       CachedMeasurement
		marginRow  float32
		config     *Config
		want       bool
	}

	scaled := NewConfig()

	tests := map[string]tc{
		"identical constraints": {
			widthMode: SizingModeFitContent, width: 100, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
			want: true,
		},
		"exact size equals old result": {
			widthMode: SizingModeStretchFit, width: 40, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
			want: true,
		},
		"exact size differs from old result": {
			widthMode: SizingModeStretchFit, width: 41, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
		},
		"exact size with margin": {
			widthMode: SizingModeStretchFit, width: 50, heightMode: SizingModeMaxContent, height: Undefined,
			last:      CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
			marginRow: 10,
			want:      true,
		},
		"max content result still fits": {
			widthMode: SizingModeFitContent, width: 50, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{Undefined, Undefined, SizingModeMaxContent, SizingModeMaxContent, 40, 20},
			want: true,
		},
		"max content result no longer fits": {
			widthMode: SizingModeFitContent, width: 30, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{Undefined, Undefined, SizingModeMaxContent, SizingModeMaxContent, 40, 20},
		},
		"stricter fit still valid": {
			widthMode: SizingModeFitContent, width: 60, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
			want: true,
		},
		"stricter fit too small": {
			widthMode: SizingModeFitContent, width: 30, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
		},
		"looser fit": {
			widthMode: SizingModeFitContent, width: 120, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
		},
		"height incompatible": {
			widthMode: SizingModeFitContent, width: 100, heightMode: SizingModeStretchFit, height: 10,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, 40, 20},
		},
		"negative cached size": {
			widthMode: SizingModeFitContent, width: 100, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100, Undefined, SizingModeFitContent, SizingModeMaxContent, -1, 20},
		},
		"sizes equal on the pixel grid": {
			widthMode: SizingModeStretchFit, width: 100.4, heightMode: SizingModeMaxContent, height: Undefined,
			last:   CachedMeasurement{100.2, Undefined, SizingModeStretchFit, SizingModeMaxContent, 50, 20},
			config: scaled,
			want:   true,
		},
		"sizes differ without a config": {
			widthMode: SizingModeStretchFit, width: 100.4, heightMode: SizingModeMaxContent, height: Undefined,
			last: CachedMeasurement{100.2, Undefined, SizingModeStretchFit, SizingModeMaxContent, 50, 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := CanUseCachedMeasurement(tt.widthMode, tt.width, tt.heightMode, tt.height,
				tt.last, tt.marginRow, 0, tt.config)
			if got != tt.want {
				t.Errorf("CanUseCachedMeasurement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutCache_CleanTreeIsNotRelaidOut(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(Point(200))
	root.SetHeight(Point(100))
	var calls int
	for range 3 {
		leaf := NewNode()
		leaf.SetFlexGrow(1)
		leaf.SetMeasureFunc(fixedMeasure(10, 10, &calls))
		root.AppendChild(leaf)
	}

	first := root.CalculateLayoutWithStats(Undefined, Undefined, DirectionLTR)
	if first.Layouts == 0 || first.MeasureCallbacks == 0 {
		t.Fatalf("first pass stats = %+v, want layouts and measures", first)
	}
	if first.MeasureCallbacks != calls {
		t.Errorf("MeasureCallbacks = %d, measure func ran %d times", first.MeasureCallbacks, calls)
	}
	if first.MaxMeasureCache < 1 || first.MaxMeasureCache > maxCachedMeasurements {
		t.Errorf("MaxMeasureCache = %d, want within [1, %d]", first.MaxMeasureCache, maxCachedMeasurements)
	}

	second := root.CalculateLayoutWithStats(Undefined, Undefined, DirectionLTR)
	want := LayoutStats{CachedLayouts: 1}
	if second != want {
		t.Errorf("second pass stats = %+v, want %+v", second, want)
	}
}

func TestLayoutCache_OnlyDirtyLeafIsMeasured(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)
	root.SetWidth(Point(300))
	root.SetHeight(Point(100))

	var callsA, callsB int
	a := NewNode()
	a.SetMeasureFunc(fixedMeasure(10, 10, &callsA))
	b := NewNode()
	b.SetMeasureFunc(fixedMeasure(20, 20, &callsB))
	root.AppendChild(a)
	root.AppendChild(b)
	root.CalculateLayout(Undefined, Undefined, DirectionLTR)
	callsA, callsB = 0, 0

	a.SetMeasureFunc(fixedMeasure(30, 30, &callsA))
	a.MarkDirty()
	stats := root.CalculateLayoutWithStats(Undefined, Undefined, DirectionLTR)

	if callsA == 0 {
		t.Error("dirty leaf was not measured again")
	}
	if callsB != 0 {
		t.Errorf("clean leaf measured %d times, want 0", callsB)
	}
	if stats.CachedLayouts+stats.CachedMeasures == 0 {
		t.Errorf("stats = %+v, want cache hits for the clean leaf", stats)
	}
	assertBox(t, "a", a, box{0, 0, 30, 30})
	assertBox(t, "b", b, box{30, 0, 20, 20})
}

func TestLayoutCache_ConstraintChangeRelayouts(t *testing.T) {
	root := NewNode()
	child := NewNode()
	child.SetHeight(Point(10))
	root.AppendChild(child)

	root.CalculateLayout(100, 100, DirectionLTR)
	assertBox(t, "child", child, box{0, 0, 100, 10})

	stats := root.CalculateLayoutWithStats(150, 100, DirectionLTR)
	if stats.Layouts == 0 {
		t.Errorf("stats = %+v, want a fresh layout", stats)
	}
	assertBox(t, "root", root, box{0, 0, 150, 100})
	assertBox(t, "child", child, box{0, 0, 150, 10})
}

func TestLayoutCache_DirectionChangeRelayouts(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(Point(100))
	root.SetHeight(Point(100))
	child := sized(root.Config(), 10, 10)
	root.AppendChild(child)

	root.CalculateLayout(Undefined, Undefined, DirectionLTR)
	assertBox(t, "ltr child", child, box{0, 0, 10, 10})
	root.CalculateLayout(Undefined, Undefined, DirectionRTL)
	assertBox(t, "rtl child", child, box{90, 0, 10, 10})
}

func TestMeasureModes(t *testing.T) {
	type call struct {
		width      float32
		widthMode  MeasureMode
		heightMode MeasureMode
	}

	t.Run("unconstrained root", func(t *testing.T) {
		var got []call
		leaf := NewNode()
		leaf.SetMeasureFunc(func(_ *Node, w float32, wm MeasureMode, _ float32, hm MeasureMode) Size {
			got = append(got, call{w, wm, hm})
			return Size{Width: 12, Height: 8}
		})
		leaf.CalculateLayout(Undefined, Undefined, DirectionLTR)

		if len(got) == 0 || got[0].widthMode != MeasureModeUndefined || !IsUndefined(got[0].width) {
			t.Fatalf("calls = %+v, want an undefined width", got)
		}
		assertBox(t, "leaf", leaf, box{0, 0, 12, 8})
	})

	t.Run("root with available width", func(t *testing.T) {
		var got []call
		leaf := NewNode()
		leaf.SetMeasureFunc(func(_ *Node, w float32, wm MeasureMode, _ float32, hm MeasureMode) Size {
			got = append(got, call{w, wm, hm})
			return Size{Width: 12, Height: 8}
		})
		leaf.CalculateLayout(100, Undefined, DirectionLTR)

		if len(got) == 0 || got[0].widthMode != MeasureModeExactly || got[0].width != 100 ||
			got[0].heightMode != MeasureModeUndefined {
			t.Fatalf("calls = %+v, want exactly 100 by undefined", got)
		}
		assertBox(t, "leaf", leaf, box{0, 0, 100, 8})
	})

	t.Run("child fits content", func(t *testing.T) {
		var got []call
		root := NewNode()
		root.SetAlignItems(AlignFlexStart)
		root.SetWidth(Point(100))
		root.SetHeight(Point(100))
		root.SetPadding(EdgeHorizontal, Point(5))
		leaf := NewNode()
		leaf.SetMeasureFunc(func(_ *Node, w float32, wm MeasureMode, _ float32, hm MeasureMode) Size {
			got = append(got, call{w, wm, hm})
			return Size{Width: 12, Height: 8}
		})
		root.AppendChild(leaf)
		root.CalculateLayout(Undefined, Undefined, DirectionLTR)

		if len(got) == 0 {
			t.Fatal("measure function never called")
		}
		for _, c := range got {
			if c.widthMode != MeasureModeAtMost || c.width != 90 {
				t.Errorf("call = %+v, want at most 90 wide", c)
			}
		}
		assertBox(t, "leaf", leaf, box{5, 0, 12, 8})
	})
}
