package layout

import (
	"strings"
	"testing"
)

// box is a node's computed left, top, width and height.
type box struct {
	left, top, width, height float32
}

func boxOf(n *Node) box {
	return box{n.ComputedLeft(), n.ComputedTop(), n.ComputedWidth(), n.ComputedHeight()}
}

func (b box) equal(o box) bool {
	return FloatsEqual(b.left, o.left) && FloatsEqual(b.top, o.top) &&
		FloatsEqual(b.width, o.width) && FloatsEqual(b.height, o.height)
}

func assertBox(t *testing.T, name string, n *Node, want box) {
	t.Helper()
	if got := boxOf(n); !got.equal(want) {
		t.Errorf("%s layout = %+v, want %+v", name, got, want)
	}
}

// sized creates a node with a fixed width and height.
func sized(config *Config, w, h float32) *Node {
	n := NewNodeWithConfig(config)
	n.SetWidth(Point(w))
	n.SetHeight(Point(h))
	return n
}

// withChildren appends children to n and returns n.
func withChildren(n *Node, children ...*Node) *Node {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// fixedMeasure returns a measure function that reports a fixed size and
// counts its calls.
func fixedMeasure(w, h float32, calls *int) MeasureFunc {
	return func(_ *Node, _ float32, _ MeasureMode, _ float32, _ MeasureMode) Size {
		if calls != nil {
			*calls++
		}
		return Size{Width: w, Height: h}
	}
}

// mustPanic runs fn and checks that it panics with a *UsageError whose
// message contains want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		err, ok := r.(*UsageError)
		if !ok {
			t.Fatalf("panic value = %#v, want *UsageError", r)
		}
		if !strings.HasPrefix(err.Error(), "flex: ") {
			t.Errorf("error = %q, want flex: prefix", err.Error())
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %q, want it to contain %q", err.Error(), want)
		}
	}()
	fn()
}
