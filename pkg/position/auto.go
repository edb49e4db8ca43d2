package position

import (
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/observability"
)

// FlipOrPush flips an overflowing axis to the mirrored side when the
// mirrored placement fits, and otherwise translates the content back into
// the viewport. Center and Middle directions never flip.
type FlipOrPush struct{}

// Name implements FitPolicy.
func (FlipOrPush) Name() string { return "auto" }

// Resolve implements FitPolicy.
func (p FlipOrPush) Resolve(in FitInput) Resolution {
	return flipOrPush(p.Name(), in.Fit, in.Settings, Resolution{
		Settings: in.Settings,
		Size:     in.Fit.ElementRect.Size(),
	})
}

// flipOrPush resolves the misfit of fit on top of res.
func flipOrPush(name string, fit ConnectedFit, s Settings, res Resolution) Resolution {
	hooks := observability.Position()
	vp := fit.ViewportRect

	if !fit.FitHorizontal {
		if f, ok := flipHorizontal(fit, s); ok {
			res.Settings.HorizontalDirection = f.HorizontalDirection
			res.Settings.HorizontalStartPoint = f.HorizontalStartPoint
			res.Flipped |= FlipHorizontal
			hooks.OnFlip(name, observability.AxisHorizontal)
		} else if dx := pushAmount(fit.Left, fit.Right, vp.Left, vp.Right); dx != 0 {
			res.Translate.X += dx
			hooks.OnPush(name, observability.AxisHorizontal, dx)
		}
	}
	if !fit.FitVertical {
		if f, ok := flipVertical(fit, s); ok {
			res.Settings.VerticalDirection = f.VerticalDirection
			res.Settings.VerticalStartPoint = f.VerticalStartPoint
			res.Flipped |= FlipVertical
			hooks.OnFlip(name, observability.AxisVertical)
		} else if dy := pushAmount(fit.Top, fit.Bottom, vp.Top, vp.Bottom); dy != 0 {
			res.Translate.Y += dy
			hooks.OnPush(name, observability.AxisVertical, dy)
		}
	}
	return res
}

func flipHorizontal(fit ConnectedFit, s Settings) (Settings, bool) {
	if s.HorizontalDirection == geom.Center {
		return s, false
	}
	f := s.FlipHorizontal()
	left := calculateLeft(fit.TargetRect, fit.ElementRect.Width, f, fit.HorizontalOffset)
	right := left + fit.ElementRect.Width
	if left < fit.ViewportRect.Left || right > fit.ViewportRect.Right {
		return s, false
	}
	return f, true
}

func flipVertical(fit ConnectedFit, s Settings) (Settings, bool) {
	if s.VerticalDirection == geom.Middle {
		return s, false
	}
	f := s.FlipVertical()
	top := calculateTop(fit.TargetRect, fit.ElementRect.Height, f, fit.VerticalOffset)
	bottom := top + fit.ElementRect.Height
	if top < fit.ViewportRect.Top || bottom > fit.ViewportRect.Bottom {
		return s, false
	}
	return f, true
}
