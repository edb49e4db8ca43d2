package scene

import (
	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/position"
)

// Result is a resolved scene.
type Result struct {
	Scene    string            `json:"scene"`
	Strategy string            `json:"strategy"`
	Style    map[string]string `json:"style"`

	Viewport geom.Rect   `json:"viewport"`
	Wrapper  geom.Rect   `json:"wrapper"`
	Target   geom.Rect   `json:"target"`
	Content  geom.Rect   `json:"content"`
	Items    []geom.Rect `json:"items,omitempty"`

	// Settings is the alignment that was applied, after any flip.
	Settings ResolvedSettings `json:"settings"`
	Flipped  []string         `json:"flipped,omitempty"`
	Fit      Fit              `json:"fit"`

	Placement string                `json:"placement,omitempty"`
	Arrow     *ArrowResult          `json:"arrow,omitempty"`
	Select    *position.SelectCache `json:"select,omitempty"`

	Steps []Step `json:"steps"`
}

// ResolvedSettings is the textual form of an applied alignment.
type ResolvedSettings struct {
	HorizontalDirection  string `json:"horizontal_direction"`
	VerticalDirection    string `json:"vertical_direction"`
	HorizontalStartPoint string `json:"horizontal_start_point"`
	VerticalStartPoint   string `json:"vertical_start_point"`
}

func resolvedSettings(s position.Settings) ResolvedSettings {
	return ResolvedSettings{
		HorizontalDirection:  s.HorizontalDirection.String(),
		VerticalDirection:    s.VerticalDirection.String(),
		HorizontalStartPoint: s.HorizontalStartPoint.String(),
		VerticalStartPoint:   s.VerticalStartPoint.String(),
	}
}

// Fit reports whether the final content rect lies inside the viewport.
type Fit struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

// ArrowResult is the placed tooltip arrow.
type ArrowResult struct {
	Class string            `json:"class"`
	Style map[string]string `json:"style"`
	Rect  geom.Rect         `json:"rect"`
}

// Step records the outcome of one call.
type Step struct {
	Initial bool              `json:"initial"`
	Style   map[string]string `json:"style"`
	Content geom.Rect         `json:"content"`
	Target  geom.Rect         `json:"target"`
}

// Resolve builds s, runs the initial call and replays its ticks.
func Resolve(s *Scene) (*Result, error) {
	b, err := s.Build()
	if err != nil {
		return nil, err
	}
	return b.Resolve(s)
}

// Resolve runs the initial call and the ticks of s on an already built page.
func (b *Built) Resolve(s *Scene) (*Result, error) {
	res := &Result{Scene: s.Name, Strategy: b.StrategyName()}

	if err := b.Position(true); err != nil {
		return nil, err
	}
	res.Steps = append(res.Steps, b.step(true))
	for _, t := range s.Ticks {
		b.Apply(t)
		if err := b.Position(t.Initial); err != nil {
			return nil, err
		}
		res.Steps = append(res.Steps, b.step(t.Initial))
	}

	b.fill(res, s)
	return res, nil
}

func (b *Built) step(initial bool) Step {
	return Step{
		Initial: initial,
		Style:   b.Content.Style().Properties(),
		Content: b.Content.BoundingClientRect(),
		Target:  b.Target.BoundingClientRect(),
	}
}

func (b *Built) fill(res *Result, s *Scene) {
	res.Style = b.Content.Style().Properties()
	res.Viewport = dom.ClientViewportRect(b.Page)
	res.Wrapper = b.Wrapper.BoundingClientRect()
	res.Target = b.Target.BoundingClientRect()
	res.Content = b.Content.BoundingClientRect()
	for _, it := range b.Items {
		res.Items = append(res.Items, it.BoundingClientRect())
	}
	res.Fit = Fit{
		Horizontal: res.Viewport.Left <= res.Content.Left && res.Content.Right <= res.Viewport.Right,
		Vertical:   res.Viewport.Top <= res.Content.Top && res.Content.Bottom <= res.Viewport.Bottom,
	}

	applied, _ := s.PositionSettings()
	switch p := b.positioner.(type) {
	case *strategyPositioner:
		if r, ok := p.st.Resolved(); ok {
			applied = r.Settings
			res.Flipped = flipped(r.Flipped)
		}
	case *tooltipPositioner:
		if r, ok := p.st.Resolved(); ok {
			applied = r.Settings
			res.Flipped = flipped(r.Flipped)
		}
		res.Placement = string(p.st.Placement())
		if a, ok := p.st.Arrow(); ok {
			res.Arrow = &ArrowResult{Class: a.Class, Style: a.Styles, Rect: b.Arrow.BoundingClientRect()}
		}
	case *selectPositioner:
		if p.cache != nil {
			c := p.cache.Clone()
			res.Select = &c
		}
	}
	res.Settings = resolvedSettings(applied)
}

func flipped(f position.Flip) []string {
	var out []string
	if f.Has(position.FlipHorizontal) {
		out = append(out, "horizontal")
	}
	if f.Has(position.FlipVertical) {
		out = append(out, "vertical")
	}
	return out
}
