package position

import (
	"math"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/observability"
)

// Elastic shrinks overflowing content toward Settings.MinSize. Whatever
// overflow remains at the minimum size is pushed back into view.
type Elastic struct{}

// Name implements FitPolicy.
func (Elastic) Name() string { return "elastic" }

// Resolve implements FitPolicy.
func (p Elastic) Resolve(in FitInput) Resolution {
	fit, s := in.Fit, in.Settings
	vp := fit.ViewportRect
	size := fit.ElementRect.Size()
	res := Resolution{Settings: s}

	if !fit.FitHorizontal {
		overflow := maxf(0, vp.Left-fit.Left) + maxf(0, fit.Right-vp.Right)
		size.Width -= math.Round(minf(maxf(0, size.Width-s.MinSize.Width), overflow))
		res.setPatch(dom.PropWidth, dom.FormatPx(size.Width))
	}
	if !fit.FitVertical {
		overflow := maxf(0, vp.Top-fit.Top) + maxf(0, fit.Bottom-vp.Bottom)
		size.Height -= math.Round(minf(maxf(0, size.Height-s.MinSize.Height), overflow))
		res.setPatch(dom.PropHeight, dom.FormatPx(size.Height))
	}
	res.Size = size
	observability.Position().OnResize(p.Name(), size.Width, size.Height)

	shrunk := fit.withSize(size, s)
	if !shrunk.FitHorizontal {
		res.Translate.X = pushAmount(shrunk.Left, shrunk.Right, vp.Left, vp.Right)
	}
	if !shrunk.FitVertical {
		res.Translate.Y = pushAmount(shrunk.Top, shrunk.Bottom, vp.Top, vp.Bottom)
	}
	return res
}

// AutoElastic resizes the content height to the viewport before flipping or
// pushing. Content taller than the viewport is clamped to the viewport
// height and loses its width constraint; shorter content is stretched to
// fill the space below the target.
type AutoElastic struct{}

// Name implements FitPolicy.
func (AutoElastic) Name() string { return "auto-elastic" }

// Resolve implements FitPolicy.
func (p AutoElastic) Resolve(in FitInput) Resolution {
	return autoElastic(p.Name(), in.Fit, in.Settings)
}

func autoElastic(name string, fit ConnectedFit, s Settings) Resolution {
	vp := fit.ViewportRect
	size := fit.ElementRect.Size()
	res := Resolution{Settings: s}

	if size.Height > vp.Height {
		size.Height = vp.Height
		res.setPatch(dom.PropWidth, "")
	} else {
		size.Height = maxf(maxf(vp.Height-fit.TargetRect.Bottom-1, size.Height), s.MinSize.Height)
	}
	size.Height = math.Round(size.Height)
	res.setPatch(dom.PropHeight, dom.FormatPx(size.Height))
	res.Size = size
	observability.Position().OnResize(name, size.Width, size.Height)

	resized := fit.withSize(size, s)
	if resized.Fits() {
		return res
	}
	return flipOrPush(name, resized, s, res)
}

// excelCandidates are tried in order before falling back to auto-elastic:
// below-left, below-right, above-left, above-right.
var excelCandidates = []Settings{
	{HorizontalDirection: geom.Right, VerticalDirection: geom.Bottom, HorizontalStartPoint: geom.Left, VerticalStartPoint: geom.Bottom},
	{HorizontalDirection: geom.Left, VerticalDirection: geom.Bottom, HorizontalStartPoint: geom.Right, VerticalStartPoint: geom.Bottom},
	{HorizontalDirection: geom.Right, VerticalDirection: geom.Top, HorizontalStartPoint: geom.Left, VerticalStartPoint: geom.Top},
	{HorizontalDirection: geom.Left, VerticalDirection: geom.Top, HorizontalStartPoint: geom.Right, VerticalStartPoint: geom.Top},
}

// ExcelStyle places a filter-menu style dropdown at the first corner of the
// target where it fits completely, and falls back to AutoElastic.
type ExcelStyle struct{}

// Name implements FitPolicy.
func (ExcelStyle) Name() string { return "excel-style" }

// Resolve implements FitPolicy.
func (p ExcelStyle) Resolve(in FitInput) Resolution {
	for _, c := range excelCandidates {
		cs := in.Settings.WithAlignment(c)
		if in.Settings.SameAlignment(cs) {
			continue
		}
		f := NewConnectedFit(in.Fit.TargetRect, in.Fit.ElementRect, in.Fit.ViewportRect, cs,
			geom.Point{X: in.Fit.HorizontalOffset, Y: in.Fit.VerticalOffset})
		if f.Fits() {
			res := Resolution{Settings: cs, Size: in.Fit.ElementRect.Size()}
			if c.HorizontalDirection != in.Settings.HorizontalDirection {
				res.Flipped |= FlipHorizontal
			}
			if c.VerticalDirection != in.Settings.VerticalDirection {
				res.Flipped |= FlipVertical
			}
			return res
		}
	}
	return autoElastic(p.Name(), in.Fit, in.Settings)
}
