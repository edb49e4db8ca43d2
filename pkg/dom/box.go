package dom

import (
	"math"

	"github.com/matzehuels/overlaykit/pkg/geom"
)

// Box is an in-memory element. Static boxes sit at a fixed offset inside
// their parent (shifted by the parent's scroll position); positioned boxes
// resolve their offset from their inline style.
type Box struct {
	Name string

	parent     *Box
	children   []*Box
	offset     geom.Point
	size       geom.Size
	positioned bool
	style      Style
	scrollTop  float64
	metrics    Metrics
}

// NewBox returns a static box at offset inside its future parent.
func NewBox(name string, offset geom.Point, size geom.Size) *Box {
	return &Box{Name: name, offset: offset, size: size}
}

// NewPositionedBox returns an absolutely positioned box with an intrinsic size.
func NewPositionedBox(name string, size geom.Size) *Box {
	return &Box{Name: name, size: size, positioned: true}
}

// Append attaches children and returns b for chaining.
func (b *Box) Append(children ...*Box) *Box {
	for _, c := range children {
		c.Detach()
		c.parent = b
		b.children = append(b.children, c)
	}
	return b
}

// Detach removes b from its parent.
func (b *Box) Detach() {
	p := b.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == b {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	b.parent = nil
}

// Children returns the attached children.
func (b *Box) Children() []*Box { return b.children }

// Find returns the first descendant (or b itself) with the given name.
func (b *Box) Find(name string) *Box {
	if b.Name == name {
		return b
	}
	for _, c := range b.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Parent implements Element.
func (b *Box) Parent() Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// Style implements Element.
func (b *Box) Style() *Style { return &b.style }

// SetOffset moves a static box inside its parent.
func (b *Box) SetOffset(p geom.Point) { b.offset = p }

// Offset returns the static offset.
func (b *Box) Offset() geom.Point { return b.offset }

// SetSize changes the intrinsic size.
func (b *Box) SetSize(s geom.Size) { b.size = s }

// IntrinsicSize returns the size used when no width/height style is set.
func (b *Box) IntrinsicSize() geom.Size { return b.size }

// SetMetrics sets the computed text metrics.
func (b *Box) SetMetrics(m Metrics) { b.metrics = m }

// ComputedMetrics implements Typographic.
func (b *Box) ComputedMetrics() Metrics { return b.metrics }

// ScrollTop implements ScrollContainer.
func (b *Box) ScrollTop() float64 { return b.scrollTop }

// SetScrollTop clamps v to the scrollable range.
func (b *Box) SetScrollTop(v float64) {
	b.scrollTop = math.Max(0, math.Min(v, b.ScrollHeight()-b.ClientHeight()))
}

// ClientHeight implements ScrollContainer.
func (b *Box) ClientHeight() float64 { return b.layoutSize().Height }

// ScrollHeight is the larger of the box height and the extent of its static
// children.
func (b *Box) ScrollHeight() float64 {
	h := b.ClientHeight()
	for _, c := range b.children {
		if c.positioned {
			continue
		}
		h = math.Max(h, c.offset.Y+c.layoutSize().Height)
	}
	return h
}

func (b *Box) layoutSize() geom.Size {
	s := b.size
	if w, ok := b.style.Px(PropWidth); ok {
		s.Width = w
	}
	if h, ok := b.style.Px(PropHeight); ok {
		s.Height = h
	}
	return s
}

// BoundingClientRect implements Element.
func (b *Box) BoundingClientRect() geom.Rect {
	size := b.layoutSize()
	origin := b.offset
	if b.parent != nil {
		pr := b.parent.BoundingClientRect()
		if b.positioned {
			origin = b.positionedOrigin(pr, size)
		} else {
			origin = geom.Point{X: pr.Left + b.offset.X, Y: pr.Top + b.offset.Y - b.parent.scrollTop}
		}
	}
	dx, dy := b.style.Translate()
	return geom.RectFromOrigin(origin.Add(geom.Point{X: dx, Y: dy}), size)
}

func (b *Box) positionedOrigin(pr geom.Rect, size geom.Size) geom.Point {
	o := geom.Point{X: pr.Left, Y: pr.Top}
	if v, ok := b.style.Px(PropLeft); ok {
		o.X = pr.Left + v
	} else if v, ok := b.style.Px(PropRight); ok {
		o.X = pr.Right - v - size.Width
	}
	if v, ok := b.style.Px(PropTop); ok {
		o.Y = pr.Top + v
	} else if v, ok := b.style.Px(PropBottom); ok {
		o.Y = pr.Bottom - v - size.Height
	}
	return o
}

var (
	_ Typographic     = (*Box)(nil)
	_ ScrollContainer = (*Box)(nil)
)
