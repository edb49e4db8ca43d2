package scene

import (
	"slices"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/position"
)

// Strategy names beyond the ones position.New accepts.
const (
	StrategyTooltip = "tooltip"
	StrategySelect  = "select"
)

// Strategies lists every strategy a scene may name.
var Strategies = slices.Concat(position.Kinds, []string{StrategyTooltip, StrategySelect})

// Limits on list-valued scene fields.
const (
	MaxSelectItems = 5000
	MaxTicks       = 1000
)

// Scene is a serializable positioning problem.
type Scene struct {
	Name     string   `toml:"name" json:"name"`
	Strategy string   `toml:"strategy" json:"strategy"`
	Viewport Viewport `toml:"viewport" json:"viewport"`
	Wrapper  *Box     `toml:"wrapper,omitempty" json:"wrapper,omitempty"`
	Target   Box      `toml:"target" json:"target"`
	Content  Size     `toml:"content" json:"content"`
	Settings Settings `toml:"settings" json:"settings"`
	Arrow    *Size    `toml:"arrow,omitempty" json:"arrow,omitempty"`
	Select   *Select  `toml:"select,omitempty" json:"select,omitempty"`
	Ticks    []Tick   `toml:"ticks,omitempty" json:"ticks,omitempty"`
}

// Viewport is the visible area and the page scroll.
type Viewport struct {
	Width   float64 `toml:"width" json:"width"`
	Height  float64 `toml:"height" json:"height"`
	ScrollX float64 `toml:"scroll_x,omitempty" json:"scroll_x,omitempty"`
	ScrollY float64 `toml:"scroll_y,omitempty" json:"scroll_y,omitempty"`
}

// Box is a rectangle in page coordinates. A zero-size target is a point.
type Box struct {
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Rect converts b to a geometry rect.
func (b Box) Rect() geom.Rect {
	return geom.RectFromOrigin(geom.Point{X: b.X, Y: b.Y}, b.Size())
}

// Size returns the box size.
func (b Box) Size() geom.Size { return geom.Size{Width: b.Width, Height: b.Height} }

// Size is a width and height.
type Size struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Geom converts s to a geometry size.
func (s Size) Geom() geom.Size { return geom.Size{Width: s.Width, Height: s.Height} }

// Settings are position settings in their textual form. Empty fields keep
// the strategy defaults.
type Settings struct {
	HorizontalDirection  string  `toml:"horizontal_direction,omitempty" json:"horizontal_direction,omitempty"`
	VerticalDirection    string  `toml:"vertical_direction,omitempty" json:"vertical_direction,omitempty"`
	HorizontalStartPoint string  `toml:"horizontal_start_point,omitempty" json:"horizontal_start_point,omitempty"`
	VerticalStartPoint   string  `toml:"vertical_start_point,omitempty" json:"vertical_start_point,omitempty"`
	MinWidth             float64 `toml:"min_width,omitempty" json:"min_width,omitempty"`
	MinHeight            float64 `toml:"min_height,omitempty" json:"min_height,omitempty"`
	// Placement seeds the alignment of tooltip scenes before the fields
	// above are applied.
	Placement string `toml:"placement,omitempty" json:"placement,omitempty"`
}

// Select describes the list of a select scene. The target is the input.
type Select struct {
	Items      int     `toml:"items" json:"items"`
	ItemHeight float64 `toml:"item_height" json:"item_height"`
	// Selected indexes the items; negative means no selection.
	Selected     int         `toml:"selected" json:"selected"`
	InputMetrics dom.Metrics `toml:"input_metrics" json:"input_metrics"`
	ItemMetrics  dom.Metrics `toml:"item_metrics" json:"item_metrics"`
}

// Tick is one reactive step replayed after the initial call.
type Tick struct {
	ScrollX float64 `toml:"scroll_x,omitempty" json:"scroll_x,omitempty"`
	ScrollY float64 `toml:"scroll_y,omitempty" json:"scroll_y,omitempty"`
	MoveX   float64 `toml:"move_x,omitempty" json:"move_x,omitempty"`
	MoveY   float64 `toml:"move_y,omitempty" json:"move_y,omitempty"`
	// Width and Height resize the viewport when positive.
	Width  float64 `toml:"width,omitempty" json:"width,omitempty"`
	Height float64 `toml:"height,omitempty" json:"height,omitempty"`
	// Initial re-derives the placement instead of re-applying it.
	Initial bool `toml:"initial,omitempty" json:"initial,omitempty"`
}

// Defaults returns the default settings of the scene's strategy.
func (s *Scene) Defaults() position.Settings {
	if s.Strategy == StrategySelect {
		return position.SelectDefaultSettings()
	}
	return position.DefaultSettings()
}

// PositionSettings parses the textual settings over the strategy defaults.
func (s *Scene) PositionSettings() (position.Settings, error) {
	ps := s.Defaults()
	if s.Settings.Placement != "" {
		p, err := position.ParsePlacement(s.Settings.Placement)
		if err != nil {
			return ps, err
		}
		ps = position.PlacementSettings(p, ps)
	}

	var err error
	if v := s.Settings.HorizontalDirection; v != "" {
		if ps.HorizontalDirection, err = geom.ParseHorizontalAlignment(v); err != nil {
			return ps, errors.Wrap(errors.ErrCodeInvalidSettings, err, "horizontal_direction")
		}
	}
	if v := s.Settings.VerticalDirection; v != "" {
		if ps.VerticalDirection, err = geom.ParseVerticalAlignment(v); err != nil {
			return ps, errors.Wrap(errors.ErrCodeInvalidSettings, err, "vertical_direction")
		}
	}
	if v := s.Settings.HorizontalStartPoint; v != "" {
		if ps.HorizontalStartPoint, err = geom.ParseHorizontalAlignment(v); err != nil {
			return ps, errors.Wrap(errors.ErrCodeInvalidSettings, err, "horizontal_start_point")
		}
	}
	if v := s.Settings.VerticalStartPoint; v != "" {
		if ps.VerticalStartPoint, err = geom.ParseVerticalAlignment(v); err != nil {
			return ps, errors.Wrap(errors.ErrCodeInvalidSettings, err, "vertical_start_point")
		}
	}
	ps.MinSize = geom.Size{Width: s.Settings.MinWidth, Height: s.Settings.MinHeight}
	return ps, ps.Validate()
}

// Validate checks the scene for values no strategy can work with.
func (s *Scene) Validate() error {
	if s.Name != "" {
		if err := errors.ValidateSceneName(s.Name); err != nil {
			return err
		}
	}
	if s.Strategy != "" && !slices.Contains(Strategies, s.Strategy) {
		return errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want one of %v)", s.Strategy, Strategies)
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "viewport must have a positive size, got %gx%g", s.Viewport.Width, s.Viewport.Height)
	}

	type dim struct {
		name string
		v    float64
	}
	sizes := []dim{
		{"target.width", s.Target.Width},
		{"target.height", s.Target.Height},
		{"content.width", s.Content.Width},
		{"content.height", s.Content.Height},
	}
	if s.Wrapper != nil {
		sizes = append(sizes, dim{"wrapper.width", s.Wrapper.Width}, dim{"wrapper.height", s.Wrapper.Height})
	}
	for _, d := range sizes {
		if err := errors.ValidateDimension(d.name, d.v); err != nil {
			return err
		}
	}
	coords := []dim{
		{"target.x", s.Target.X},
		{"target.y", s.Target.Y},
		{"viewport.scroll_x", s.Viewport.ScrollX},
		{"viewport.scroll_y", s.Viewport.ScrollY},
	}
	for _, d := range coords {
		if err := errors.ValidateFinite(d.name, d.v); err != nil {
			return err
		}
	}

	if s.Strategy == StrategySelect {
		if s.Select == nil || s.Select.Items <= 0 || s.Select.ItemHeight <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "select scenes need items and a positive item_height")
		}
	}
	if s.Select != nil && s.Select.Items > MaxSelectItems {
		return errors.New(errors.ErrCodeInvalidScene, "select.items %d exceeds the limit of %d", s.Select.Items, MaxSelectItems)
	}
	if len(s.Ticks) > MaxTicks {
		return errors.New(errors.ErrCodeInvalidScene, "%d ticks exceed the limit of %d", len(s.Ticks), MaxTicks)
	}
	_, err := s.PositionSettings()
	return err
}
