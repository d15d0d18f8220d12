package flex_test

import (
	"errors"
	"testing"

	flex "github.com/grindlemire/go-flex"
)

func TestCalculateLayout_PublicAPI(t *testing.T) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(flex.Point(200))
	root.SetHeight(flex.Point(100))
	root.SetPadding(flex.EdgeAll, flex.Point(10))

	sidebar := flex.NewNode()
	sidebar.SetWidth(flex.Percent(25))
	content := flex.NewNode()
	content.SetFlexGrow(1)
	content.SetMargin(flex.EdgeStart, flex.Point(5))

	root.AppendChild(sidebar)
	root.AppendChild(content)
	root.CalculateLayout(flex.Undefined, flex.Undefined, flex.DirectionLTR)

	type tc struct {
		node                     *flex.Node
		left, top, width, height float32
	}

	tests := map[string]tc{
		"root":    {node: root, left: 0, top: 0, width: 200, height: 100},
		"sidebar": {node: sidebar, left: 10, top: 10, width: 45, height: 80},
		"content": {node: content, left: 60, top: 10, width: 130, height: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := tt.node
			if n.ComputedLeft() != tt.left || n.ComputedTop() != tt.top {
				t.Errorf("position = (%v, %v), want (%v, %v)", n.ComputedLeft(), n.ComputedTop(), tt.left, tt.top)
			}
			if n.ComputedWidth() != tt.width || n.ComputedHeight() != tt.height {
				t.Errorf("size = %vx%v, want %vx%v", n.ComputedWidth(), n.ComputedHeight(), tt.width, tt.height)
			}
		})
	}
}

func TestCalculateLayout_MeasureFunc(t *testing.T) {
	root := flex.NewNode()
	root.SetWidth(flex.Point(100))

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(_ *flex.Node, w float32, wMode flex.MeasureMode, _ float32, _ flex.MeasureMode) flex.Size {
		if wMode != flex.MeasureModeExactly {
			t.Errorf("widthMode = %v, want %v", wMode, flex.MeasureModeExactly)
		}
		return flex.Size{Width: w, Height: 12}
	})
	root.AppendChild(leaf)

	stats := root.CalculateLayoutWithStats(flex.Undefined, flex.Undefined, flex.DirectionLTR)
	if stats.MeasureCallbacks == 0 {
		t.Errorf("MeasureCallbacks = 0, want the measure function called")
	}
	if got := leaf.ComputedWidth(); got != 100 {
		t.Errorf("leaf width = %v, want 100", got)
	}
	if got := leaf.ComputedHeight(); got != 12 {
		t.Errorf("leaf height = %v, want 12", got)
	}
	if got := root.ComputedHeight(); got != 12 {
		t.Errorf("root height = %v, want 12", got)
	}
}

func TestUsageErrorPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %v, want an error", r)
		}
		var usage *flex.UsageError
		if !errors.As(err, &usage) {
			t.Errorf("recovered %T, want *flex.UsageError", err)
		}
	}()

	parent := flex.NewNode()
	child := flex.NewNode()
	parent.AppendChild(child)
	flex.NewNode().AppendChild(child)
}

func TestParseValue(t *testing.T) {
	type tc struct {
		in   string
		want flex.Value
	}

	tests := map[string]tc{
		"points":  {in: "12", want: flex.Point(12)},
		"percent": {in: "50%", want: flex.Percent(50)},
		"auto":    {in: "auto", want: flex.Auto()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := flex.ParseValue(tt.in)
			if err != nil {
				t.Fatalf("ParseValue(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
