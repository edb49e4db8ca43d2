package position

import (
	"testing"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
)

// fixture is a page holding a static target and a positioned content box.
type fixture struct {
	page    *dom.Page
	target  *dom.Box
	content *dom.Box
}

func newFixture(viewport geom.Size, target geom.Rect, content geom.Size) fixture {
	page := dom.NewPage(viewport)
	tb := dom.NewBox("target", target.Origin(), target.Size())
	cb := dom.NewPositionedBox("content", content)
	page.Root.Append(tb, cb)
	return fixture{page: page, target: tb, content: cb}
}

func rect(left, top, width, height float64) geom.Rect {
	return geom.RectFromOrigin(geom.Point{X: left, Y: top}, geom.Size{Width: width, Height: height})
}

func settings(hd geom.HorizontalAlignment, vd geom.VerticalAlignment, hs geom.HorizontalAlignment, vs geom.VerticalAlignment) Settings {
	s := DefaultSettings()
	s.HorizontalDirection = hd
	s.VerticalDirection = vd
	s.HorizontalStartPoint = hs
	s.VerticalStartPoint = vs
	return s
}

func assertExclusive(t *testing.T, st *dom.Style) {
	t.Helper()
	if st.Has(dom.PropLeft) == st.Has(dom.PropRight) {
		t.Errorf("style %q: want exactly one of left/right", st)
	}
	if st.Has(dom.PropTop) == st.Has(dom.PropBottom) {
		t.Errorf("style %q: want exactly one of top/bottom", st)
	}
}

func assertRect(t *testing.T, name string, got, want geom.Rect) {
	t.Helper()
	if got != want {
		t.Errorf("%s rect = %v, want %v", name, got, want)
	}
}

var (
	horizontals = []geom.HorizontalAlignment{geom.Left, geom.Center, geom.Right}
	verticals   = []geom.VerticalAlignment{geom.Top, geom.Middle, geom.Bottom}
)
