package position

import (
	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
)

// StartPoint returns the anchor on the target, shifted by offset.
func StartPoint(target geom.Rect, s Settings, offset geom.Point) geom.Point {
	return geom.Point{
		X: target.Right + target.Width*float64(s.HorizontalStartPoint) + offset.X,
		Y: target.Bottom + target.Height*float64(s.VerticalStartPoint) + offset.Y,
	}
}

// calculateLeft is the left edge content of the given width gets under s.
func calculateLeft(target geom.Rect, width float64, s Settings, offset float64) float64 {
	return target.Right + target.Width*float64(s.HorizontalStartPoint) + width*float64(s.HorizontalDirection) + offset
}

// calculateTop is the top edge content of the given height gets under s.
func calculateTop(target geom.Rect, height float64, s Settings, offset float64) float64 {
	return target.Bottom + target.Height*float64(s.VerticalStartPoint) + height*float64(s.VerticalDirection) + offset
}

// Connect writes the offset styles that place el at the start point derived
// from target and s. The four offset properties are cleared first so exactly
// one horizontal and one vertical property remain. el must be attached.
func Connect(el dom.Element, target geom.Rect, size geom.Size, s Settings, offset geom.Point) error {
	parent := el.Parent()
	if parent == nil {
		return errors.New(errors.ErrCodeDetached, "content element is not attached to a parent")
	}
	start := StartPoint(target, s, offset)
	wrapper := parent.BoundingClientRect()

	st := el.Style()
	st.Clear(dom.OffsetProps...)

	switch s.HorizontalDirection {
	case geom.Left:
		st.SetPx(dom.PropRight, wrapper.Right-start.X)
	case geom.Center:
		st.SetPx(dom.PropLeft, start.X-wrapper.Left-size.Width/2)
	default:
		st.SetPx(dom.PropLeft, start.X-wrapper.Left)
	}

	switch s.VerticalDirection {
	case geom.Top:
		st.SetPx(dom.PropBottom, wrapper.Bottom-start.Y)
	case geom.Middle:
		st.SetPx(dom.PropTop, start.Y-wrapper.Top-size.Height/2)
	default:
		st.SetPx(dom.PropTop, start.Y-wrapper.Top)
	}
	return nil
}

// ConnectedFit is the viewport test of one placement. It is computed from
// the rects and settings alone, without moving the element.
type ConnectedFit struct {
	TargetRect   geom.Rect
	ElementRect  geom.Rect
	ViewportRect geom.Rect

	HorizontalOffset float64
	VerticalOffset   float64

	// Edges the content would occupy.
	Left, Right, Top, Bottom float64

	FitHorizontal bool
	FitVertical   bool
}

// NewConnectedFit computes the placement edges of element under s and
// whether they lie inside viewport. Touching an edge counts as fitting: the
// strict comparison would reject content that fits exactly after a flip.
func NewConnectedFit(target, element, viewport geom.Rect, s Settings, offset geom.Point) ConnectedFit {
	f := ConnectedFit{
		TargetRect:       target,
		ElementRect:      element,
		ViewportRect:     viewport,
		HorizontalOffset: offset.X,
		VerticalOffset:   offset.Y,
	}
	f.update(s)
	return f
}

func (f *ConnectedFit) update(s Settings) {
	f.Left = calculateLeft(f.TargetRect, f.ElementRect.Width, s, f.HorizontalOffset)
	f.Right = f.Left + f.ElementRect.Width
	f.Top = calculateTop(f.TargetRect, f.ElementRect.Height, s, f.VerticalOffset)
	f.Bottom = f.Top + f.ElementRect.Height
	f.FitHorizontal = f.ViewportRect.Left <= f.Left && f.Right <= f.ViewportRect.Right
	f.FitVertical = f.ViewportRect.Top <= f.Top && f.Bottom <= f.ViewportRect.Bottom
}

// Fits reports whether both axes fit.
func (f ConnectedFit) Fits() bool { return f.FitHorizontal && f.FitVertical }

// Rect returns the rect the content would occupy.
func (f ConnectedFit) Rect() geom.Rect {
	return geom.RectFromOrigin(geom.Point{X: f.Left, Y: f.Top}, f.ElementRect.Size())
}

// withSize returns the fit recomputed for content of a different size.
func (f ConnectedFit) withSize(size geom.Size, s Settings) ConnectedFit {
	f.ElementRect = geom.RectFromOrigin(f.ElementRect.Origin(), size)
	f.update(s)
	return f
}
