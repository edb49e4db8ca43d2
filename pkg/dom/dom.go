package dom

import "github.com/matzehuels/overlaykit/pkg/geom"

// Element is the view of a host element the engine needs.
type Element interface {
	// BoundingClientRect returns the element's border box in client coordinates.
	BoundingClientRect() geom.Rect
	// Parent returns the element the style offsets are relative to, or nil
	// when the element is not attached.
	Parent() Element
	// Style returns the inline style. Writes must be reflected by the next
	// BoundingClientRect call.
	Style() *Style
}

// Document exposes viewport metrics.
type Document interface {
	ViewportSize() geom.Size
	ScrollOffset() geom.Point
}

// Target anchors a positioned element. Any Element is a Target; a fixed
// coordinate is wrapped with PointTarget.
type Target interface {
	BoundingClientRect() geom.Rect
}

// PointTarget is a zero-size target at a fixed client coordinate.
type PointTarget geom.Point

// BoundingClientRect implements Target.
func (p PointTarget) BoundingClientRect() geom.Rect {
	return geom.RectFromPoint(geom.Point(p))
}

// TargetRect resolves a target to its rect. A nil target is a zero-size rect
// at the origin.
func TargetRect(t Target) geom.Rect {
	if t == nil {
		return geom.Rect{}
	}
	return t.BoundingClientRect()
}

// ViewportRect returns the visible area in document coordinates.
func ViewportRect(doc Document) geom.Rect {
	return geom.RectFromOrigin(doc.ScrollOffset(), doc.ViewportSize())
}

// ClientViewportRect returns the visible area in client coordinates, the
// space element rects are reported in.
func ClientViewportRect(doc Document) geom.Rect {
	return geom.RectFromOrigin(geom.Point{}, doc.ViewportSize())
}

// Metrics are the computed typographic values the select strategy reads.
type Metrics struct {
	FontSize      float64 `json:"font_size" toml:"font_size"`
	PaddingTop    float64 `json:"padding_top" toml:"padding_top"`
	PaddingBottom float64 `json:"padding_bottom" toml:"padding_bottom"`
	PaddingLeft   float64 `json:"padding_left" toml:"padding_left"`
	TextIndent    float64 `json:"text_indent" toml:"text_indent"`
}

// Typographic is an element with computed text metrics.
type Typographic interface {
	Element
	ComputedMetrics() Metrics
}

// ScrollContainer is an element with a vertical scroll position.
type ScrollContainer interface {
	Element
	ScrollTop() float64
	SetScrollTop(v float64)
	ScrollHeight() float64
	ClientHeight() float64
}
