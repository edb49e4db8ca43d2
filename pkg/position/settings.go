package position

import (
	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
)

// Settings describe where content should be placed relative to its target.
type Settings struct {
	// Target anchors the content when Position is called without one.
	Target dom.Target

	HorizontalDirection  geom.HorizontalAlignment
	VerticalDirection    geom.VerticalAlignment
	HorizontalStartPoint geom.HorizontalAlignment
	VerticalStartPoint   geom.VerticalAlignment

	// MinSize bounds elastic resizing from below.
	MinSize geom.Size

	// Animation handles are passed through untouched.
	OpenAnimation  string
	CloseAnimation string
}

// DefaultSettings returns the connected defaults: content below the target,
// growing right from its left edge.
func DefaultSettings() Settings {
	return Settings{
		HorizontalDirection:  geom.Right,
		VerticalDirection:    geom.Bottom,
		HorizontalStartPoint: geom.Left,
		VerticalStartPoint:   geom.Bottom,
		OpenAnimation:        "scaleInVerTop",
		CloseAnimation:       "scaleOutVerTop",
	}
}

// SelectDefaultSettings returns the defaults of the select strategy: content
// starts at the input's top-left corner so a list item can cover the input.
func SelectDefaultSettings() Settings {
	return Settings{
		HorizontalDirection:  geom.Right,
		VerticalDirection:    geom.Bottom,
		HorizontalStartPoint: geom.Left,
		VerticalStartPoint:   geom.Top,
		OpenAnimation:        "fadeIn",
		CloseAnimation:       "fadeOut",
	}
}

// Validate rejects alignments outside the closed sets and negative sizes.
func (s Settings) Validate() error {
	if !s.HorizontalDirection.Valid() {
		return errors.New(errors.ErrCodeInvalidSettings, "invalid horizontal direction %v", s.HorizontalDirection)
	}
	if !s.HorizontalStartPoint.Valid() {
		return errors.New(errors.ErrCodeInvalidSettings, "invalid horizontal start point %v", s.HorizontalStartPoint)
	}
	if !s.VerticalDirection.Valid() {
		return errors.New(errors.ErrCodeInvalidSettings, "invalid vertical direction %v", s.VerticalDirection)
	}
	if !s.VerticalStartPoint.Valid() {
		return errors.New(errors.ErrCodeInvalidSettings, "invalid vertical start point %v", s.VerticalStartPoint)
	}
	if s.MinSize.Width < 0 || s.MinSize.Height < 0 {
		return errors.New(errors.ErrCodeInvalidSettings, "min size cannot be negative, got %v", s.MinSize)
	}
	return nil
}

// FlipHorizontal returns s with horizontal direction and start point mirrored.
func (s Settings) FlipHorizontal() Settings {
	s.HorizontalDirection = s.HorizontalDirection.Flip()
	s.HorizontalStartPoint = s.HorizontalStartPoint.Flip()
	return s
}

// FlipVertical returns s with vertical direction and start point mirrored.
func (s Settings) FlipVertical() Settings {
	s.VerticalDirection = s.VerticalDirection.Flip()
	s.VerticalStartPoint = s.VerticalStartPoint.Flip()
	return s
}

// WithAlignment returns s with the four alignment fields taken from a.
func (s Settings) WithAlignment(a Settings) Settings {
	s.HorizontalDirection = a.HorizontalDirection
	s.VerticalDirection = a.VerticalDirection
	s.HorizontalStartPoint = a.HorizontalStartPoint
	s.VerticalStartPoint = a.VerticalStartPoint
	return s
}

// SameAlignment reports whether both settings use the same directions and
// start points.
func (s Settings) SameAlignment(o Settings) bool {
	return s.HorizontalDirection == o.HorizontalDirection &&
		s.VerticalDirection == o.VerticalDirection &&
		s.HorizontalStartPoint == o.HorizontalStartPoint &&
		s.VerticalStartPoint == o.VerticalStartPoint
}
