package dom

import "github.com/matzehuels/overlaykit/pkg/geom"

// Page is an in-memory document: a viewport over a root box.
type Page struct {
	Root *Box

	viewport geom.Size
	scroll   geom.Point
}

// NewPage returns a page whose root box covers the viewport.
func NewPage(viewport geom.Size) *Page {
	return &Page{
		Root:     NewBox("root", geom.Point{}, viewport),
		viewport: viewport,
	}
}

// ViewportSize implements Document.
func (p *Page) ViewportSize() geom.Size { return p.viewport }

// ScrollOffset implements Document.
func (p *Page) ScrollOffset() geom.Point { return p.scroll }

// Resize changes the viewport size. The root box keeps covering it.
func (p *Page) Resize(s geom.Size) {
	p.viewport = s
	p.Root.SetSize(s)
}

// ScrollTo scrolls the page. Client rects of every box shift by the
// opposite amount.
func (p *Page) ScrollTo(pt geom.Point) {
	p.scroll = pt
	p.Root.SetOffset(geom.Point{X: -pt.X, Y: -pt.Y})
}

// ScrollBy scrolls the page relative to its current position.
func (p *Page) ScrollBy(dx, dy float64) {
	p.ScrollTo(p.scroll.Add(geom.Point{X: dx, Y: dy}))
}

var _ Document = (*Page)(nil)
