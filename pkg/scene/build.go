package scene

import (
	"fmt"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/position"
)

// Built is a scene materialized as an in-memory page and a strategy bound
// to it.
type Built struct {
	Page    *dom.Page
	Wrapper *dom.Box
	Target  *dom.Box
	Content *dom.Box
	Arrow   *dom.Box
	Scroll  *dom.Box
	Items   []*dom.Box

	positioner positioner
}

// positioner runs one call of a strategy against the built page.
type positioner interface {
	name() string
	position(b *Built, initial bool) error
}

// Build creates the page tree and the strategy of the scene.
func (s *Scene) Build() (*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ps, err := s.PositionSettings()
	if err != nil {
		return nil, err
	}

	page := dom.NewPage(geom.Size{Width: s.Viewport.Width, Height: s.Viewport.Height})
	b := &Built{Page: page, Wrapper: page.Root}
	if s.Wrapper != nil {
		b.Wrapper = dom.NewBox("wrapper", geom.Point{X: s.Wrapper.X, Y: s.Wrapper.Y}, s.Wrapper.Size())
		page.Root.Append(b.Wrapper)
	}
	b.Target = dom.NewBox("target", geom.Point{X: s.Target.X, Y: s.Target.Y}, s.Target.Size())
	b.Content = dom.NewPositionedBox("content", s.Content.Geom())
	page.Root.Append(b.Target)
	b.Wrapper.Append(b.Content)

	switch s.Strategy {
	case StrategyTooltip:
		var arrow dom.Element
		if s.Arrow != nil {
			b.Arrow = dom.NewPositionedBox("arrow", s.Arrow.Geom())
			b.Content.Append(b.Arrow)
			arrow = b.Arrow
		}
		b.positioner = &tooltipPositioner{st: position.NewTooltip(ps, arrow)}
	case StrategySelect:
		b.buildList(s.Select)
		b.positioner = &selectPositioner{st: position.NewSelect(b.selectList(s.Select.Selected), ps)}
	default:
		st, err := position.New(s.Strategy, ps)
		if err != nil {
			return nil, err
		}
		b.positioner = &strategyPositioner{st: st}
	}

	page.ScrollTo(geom.Point{X: s.Viewport.ScrollX, Y: s.Viewport.ScrollY})
	return b, nil
}

func (b *Built) buildList(sel *Select) {
	b.Target.SetMetrics(sel.InputMetrics)
	b.Scroll = dom.NewBox("list", geom.Point{}, b.Content.IntrinsicSize())
	b.Content.Append(b.Scroll)
	b.Items = make([]*dom.Box, sel.Items)
	for i := range b.Items {
		item := dom.NewBox(fmt.Sprintf("item-%d", i),
			geom.Point{Y: float64(i) * sel.ItemHeight},
			geom.Size{Width: b.Content.IntrinsicSize().Width, Height: sel.ItemHeight})
		item.SetMetrics(sel.ItemMetrics)
		b.Items[i] = item
		b.Scroll.Append(item)
	}
}

func (b *Built) selectList(selected int) position.SelectList {
	items := make([]dom.Typographic, len(b.Items))
	for i, it := range b.Items {
		items[i] = it
	}
	return position.SelectList{Input: b.Target, Scroll: b.Scroll, Items: items, Selected: selected}
}

// StrategyName returns the name of the bound strategy.
func (b *Built) StrategyName() string { return b.positioner.name() }

// Position runs one call of the bound strategy.
func (b *Built) Position(initial bool) error {
	return b.positioner.position(b, initial)
}

// Apply replays a tick on the page.
func (b *Built) Apply(t Tick) {
	if t.ScrollX != 0 || t.ScrollY != 0 {
		b.Page.ScrollBy(t.ScrollX, t.ScrollY)
	}
	if t.MoveX != 0 || t.MoveY != 0 {
		b.Target.SetOffset(b.Target.Offset().Add(geom.Point{X: t.MoveX, Y: t.MoveY}))
	}
	if t.Width > 0 || t.Height > 0 {
		size := b.Page.ViewportSize()
		if t.Width > 0 {
			size.Width = t.Width
		}
		if t.Height > 0 {
			size.Height = t.Height
		}
		b.Page.Resize(size)
	}
}

type strategyPositioner struct {
	st *position.Strategy
}

func (p *strategyPositioner) name() string { return p.st.Name() }

func (p *strategyPositioner) position(b *Built, initial bool) error {
	return p.st.Position(b.Content, geom.Size{}, b.Page, initial, b.Target)
}

type tooltipPositioner struct {
	st *position.TooltipStrategy
}

func (p *tooltipPositioner) name() string { return StrategyTooltip }

func (p *tooltipPositioner) position(b *Built, initial bool) error {
	return p.st.Position(b.Content, geom.Size{}, b.Page, initial, b.Target)
}

type selectPositioner struct {
	st    *position.SelectStrategy
	cache *position.SelectCache
}

func (p *selectPositioner) name() string { return StrategySelect }

func (p *selectPositioner) position(b *Built, initial bool) error {
	c, err := p.st.Position(b.Content, geom.Size{}, b.Page, initial, b.Target, p.cache)
	if err != nil {
		return err
	}
	p.cache = c
	return nil
}
