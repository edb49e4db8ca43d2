package dom

import (
	"testing"

	"github.com/matzehuels/overlaykit/pkg/geom"
)

func rect(left, top, width, height float64) geom.Rect {
	return geom.RectFromOrigin(geom.Point{X: left, Y: top}, geom.Size{Width: width, Height: height})
}

func TestBoxStaticRect(t *testing.T) {
	page := NewPage(geom.Size{Width: 800, Height: 600})
	outer := NewBox("outer", geom.Point{X: 10, Y: 20}, geom.Size{Width: 300, Height: 200})
	inner := NewBox("inner", geom.Point{X: 5, Y: 5}, geom.Size{Width: 50, Height: 50})
	page.Root.Append(outer.Append(inner))

	if got := inner.BoundingClientRect(); got != rect(15, 25, 50, 50) {
		t.Errorf("inner rect = %v", got)
	}
	if page.Root.Find("inner") != inner {
		t.Error("Find(inner) did not return the box")
	}
}

func TestBoxPositionedRect(t *testing.T) {
	tests := []struct {
		name  string
		style map[string]string
		want  geom.Rect
	}{
		{"unstyled", nil, rect(100, 100, 40, 30)},
		{"left top", map[string]string{PropLeft: "10px", PropTop: "20px"}, rect(110, 120, 40, 30)},
		{"right bottom", map[string]string{PropRight: "10px", PropBottom: "20px"}, rect(350, 250, 40, 30)},
		{"sized", map[string]string{PropLeft: "0px", PropTop: "0px", PropWidth: "80px", PropHeight: "10px"}, rect(100, 100, 80, 10)},
		{"translated", map[string]string{PropLeft: "0px", PropTop: "0px", PropTransform: "translateX(-5px) translateY(6px)"}, rect(95, 106, 40, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapper := NewBox("wrapper", geom.Point{X: 100, Y: 100}, geom.Size{Width: 300, Height: 200})
			b := NewPositionedBox("b", geom.Size{Width: 40, Height: 30})
			wrapper.Append(b)
			for k, v := range tt.style {
				b.Style().Set(k, v)
			}
			if got := b.BoundingClientRect(); got != tt.want {
				t.Errorf("rect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxDetach(t *testing.T) {
	parent := NewBox("p", geom.Point{}, geom.Size{})
	child := NewBox("c", geom.Point{}, geom.Size{})
	parent.Append(child)
	if child.Parent() == nil {
		t.Fatal("Parent() = nil after Append")
	}
	child.Detach()
	if child.Parent() != nil {
		t.Error("Parent() should be a nil interface after Detach")
	}
	if len(parent.Children()) != 0 {
		t.Errorf("parent has %d children after Detach", len(parent.Children()))
	}
}

func TestBoxScroll(t *testing.T) {
	list := NewBox("list", geom.Point{}, geom.Size{Width: 100, Height: 100})
	for i := 0; i < 5; i++ {
		list.Append(NewBox("item", geom.Point{Y: float64(i) * 40}, geom.Size{Width: 100, Height: 40}))
	}
	if got := list.ScrollHeight(); got != 200 {
		t.Errorf("ScrollHeight() = %g, want 200", got)
	}

	list.SetScrollTop(500)
	if got := list.ScrollTop(); got != 100 {
		t.Errorf("ScrollTop() = %g, want clamped to 100", got)
	}
	if got := list.Children()[2].BoundingClientRect().Top; got != -20 {
		t.Errorf("third item top = %g, want -20", got)
	}
	list.SetScrollTop(-5)
	if got := list.ScrollTop(); got != 0 {
		t.Errorf("ScrollTop() = %g, want clamped to 0", got)
	}
}

func TestPageScroll(t *testing.T) {
	page := NewPage(geom.Size{Width: 400, Height: 300})
	b := NewBox("b", geom.Point{X: 50, Y: 500}, geom.Size{Width: 10, Height: 10})
	page.Root.Append(b)

	page.ScrollTo(geom.Point{Y: 400})
	if got := b.BoundingClientRect().Top; got != 100 {
		t.Errorf("client top = %g, want 100", got)
	}
	page.ScrollBy(0, 50)
	if got := page.ScrollOffset(); got != (geom.Point{Y: 450}) {
		t.Errorf("ScrollOffset() = %v", got)
	}
	if got := ViewportRect(page); got != rect(0, 450, 400, 300) {
		t.Errorf("ViewportRect() = %v", got)
	}
	if got := ClientViewportRect(page); got != rect(0, 0, 400, 300) {
		t.Errorf("ClientViewportRect() = %v", got)
	}

	page.Resize(geom.Size{Width: 200, Height: 100})
	if got := page.Root.BoundingClientRect().Size(); got != (geom.Size{Width: 200, Height: 100}) {
		t.Errorf("root size after Resize = %v", got)
	}
}

func TestTargetRect(t *testing.T) {
	if got := TargetRect(nil); got != (geom.Rect{}) {
		t.Errorf("TargetRect(nil) = %v, want zero", got)
	}
	if got := TargetRect(PointTarget{X: 3, Y: 4}); got != rect(3, 4, 0, 0) {
		t.Errorf("TargetRect(point) = %v", got)
	}
}
