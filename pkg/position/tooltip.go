package position

import (
	"maps"
	"strings"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/observability"
)

// Placement names where a tooltip sits relative to its target. The first
// word is the side; the optional suffix aligns the tooltip with the start or
// end of that side.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
)

// Placements lists all placements in lookup order.
var Placements = []Placement{
	PlacementTop, PlacementTopStart, PlacementTopEnd,
	PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
	PlacementRight, PlacementRightStart, PlacementRightEnd,
	PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
}

func align(hd geom.HorizontalAlignment, vd geom.VerticalAlignment, hs geom.HorizontalAlignment, vs geom.VerticalAlignment) Settings {
	return Settings{HorizontalDirection: hd, VerticalDirection: vd, HorizontalStartPoint: hs, VerticalStartPoint: vs}
}

// PositionsMap holds the alignment of every placement. Only the four
// alignment fields are set.
var PositionsMap = map[Placement]Settings{
	PlacementTop:         align(geom.Center, geom.Top, geom.Center, geom.Top),
	PlacementTopStart:    align(geom.Right, geom.Top, geom.Left, geom.Top),
	PlacementTopEnd:      align(geom.Left, geom.Top, geom.Right, geom.Top),
	PlacementBottom:      align(geom.Center, geom.Bottom, geom.Center, geom.Bottom),
	PlacementBottomStart: align(geom.Right, geom.Bottom, geom.Left, geom.Bottom),
	PlacementBottomEnd:   align(geom.Left, geom.Bottom, geom.Right, geom.Bottom),
	PlacementRight:       align(geom.Right, geom.Middle, geom.Right, geom.Middle),
	PlacementRightStart:  align(geom.Right, geom.Bottom, geom.Right, geom.Top),
	PlacementRightEnd:    align(geom.Right, geom.Top, geom.Right, geom.Bottom),
	PlacementLeft:        align(geom.Left, geom.Middle, geom.Left, geom.Middle),
	PlacementLeftStart:   align(geom.Left, geom.Bottom, geom.Left, geom.Top),
	PlacementLeftEnd:     align(geom.Left, geom.Top, geom.Left, geom.Bottom),
}

// ParsePlacement validates a placement name.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := PositionsMap[p]; !ok {
		return "", errors.New(errors.ErrCodeInvalidSettings, "unknown placement %q", s)
	}
	return p, nil
}

// Side returns the side word of the placement: top, bottom, left or right.
func (p Placement) Side() string {
	side, _, _ := strings.Cut(string(p), "-")
	return side
}

// Suffix returns "start", "end" or "" for centered placements.
func (p Placement) Suffix() string {
	_, suffix, _ := strings.Cut(string(p), "-")
	return suffix
}

// Vertical reports whether the tooltip sits above or below the target.
func (p Placement) Vertical() bool {
	side := p.Side()
	return side == "top" || side == "bottom"
}

// PlacementSettings returns base with the alignment of p.
func PlacementSettings(p Placement, base Settings) Settings {
	a, ok := PositionsMap[p]
	if !ok {
		a = PositionsMap[PlacementBottom]
	}
	return base.WithAlignment(a)
}

// PlacementBySettings finds the placement whose alignment matches s. Unknown
// combinations fall back to bottom.
func PlacementBySettings(s Settings) Placement {
	for _, p := range Placements {
		if PositionsMap[p].SameAlignment(s) {
			return p
		}
	}
	return PlacementBottom
}

// Arrow geometry.
const (
	ArrowOverlap      = -4
	arrowEndInsetTop  = 8
	arrowEndInsetSide = 4
	arrowClassPrefix  = "arrow--"
)

var oppositeSide = map[string]string{
	"top":    "bottom",
	"bottom": "top",
	"left":   "right",
	"right":  "left",
}

// ArrowPlacement is where an arrow was put.
type ArrowPlacement struct {
	Placement Placement
	// Class marks the side the arrow points from, e.g. "arrow--top".
	Class string
	// Styles are the inline offsets written to the arrow.
	Styles map[string]string
}

// PositionArrow places arrow on the edge of the tooltip that faces the
// target. It overlaps that edge by 4px and is aligned on the cross axis with
// the placement's start, center or end. All four offsets are cleared first.
func PositionArrow(arrow dom.Element, tooltip geom.Rect, p Placement) ArrowPlacement {
	if _, ok := PositionsMap[p]; !ok {
		p = PlacementBottom
	}
	size := arrow.BoundingClientRect().Size()
	side := p.Side()

	crossProp, span, arrowSpan, inset := dom.PropTop, tooltip.Height, size.Height, float64(arrowEndInsetSide)
	if p.Vertical() {
		crossProp, span, arrowSpan, inset = dom.PropLeft, tooltip.Width, size.Width, arrowEndInsetTop
	}

	var offset float64
	switch p.Suffix() {
	case "":
		offset = span/2 - arrowSpan/2
	case "end":
		offset = span - arrowSpan - inset
	}

	style := arrow.Style()
	style.Clear(dom.OffsetProps...)
	style.SetPx(crossProp, offset)
	style.SetPx(oppositeSide[side], ArrowOverlap)

	observability.Position().OnArrow(string(p))
	return ArrowPlacement{
		Placement: p,
		Class:     arrowClassPrefix + side,
		Styles: map[string]string{
			crossProp:          style.Get(crossProp),
			oppositeSide[side]: style.Get(oppositeSide[side]),
		},
	}
}

// TooltipStrategy flips or pushes like NewAuto and then positions an arrow
// for the placement that was actually used.
type TooltipStrategy struct {
	*Strategy
	arrow     dom.Element
	lastArrow *ArrowPlacement
}

// NewTooltip returns a tooltip strategy. arrow may be nil.
func NewTooltip(s Settings, arrow dom.Element) *TooltipStrategy {
	return &TooltipStrategy{Strategy: &Strategy{name: "tooltip", settings: s, policy: FlipOrPush{}}, arrow: arrow}
}

// NewTooltipAt returns a tooltip strategy with the alignment of p.
func NewTooltipAt(p Placement, base Settings, arrow dom.Element) *TooltipStrategy {
	return NewTooltip(PlacementSettings(p, base), arrow)
}

// Position positions the tooltip, then its arrow.
func (t *TooltipStrategy) Position(el dom.Element, size geom.Size, doc dom.Document, initialCall bool, target dom.Target) error {
	if err := t.Strategy.Position(el, size, doc, initialCall, target); err != nil {
		return err
	}
	if t.arrow == nil {
		return nil
	}
	a := PositionArrow(t.arrow, el.BoundingClientRect(), t.Placement())
	t.lastArrow = &a
	return nil
}

// Placement returns the placement of the last resolution, or of the
// original settings before the first call.
func (t *TooltipStrategy) Placement() Placement {
	if res, ok := t.Resolved(); ok {
		return PlacementBySettings(res.Settings)
	}
	return PlacementBySettings(t.settings)
}

// Arrow returns the last arrow placement.
func (t *TooltipStrategy) Arrow() (ArrowPlacement, bool) {
	if t.lastArrow == nil {
		return ArrowPlacement{}, false
	}
	return *t.lastArrow, true
}

// Clone returns an independent copy sharing the arrow element.
func (t *TooltipStrategy) Clone() *TooltipStrategy {
	c := &TooltipStrategy{Strategy: t.Strategy.Clone(), arrow: t.arrow}
	if t.lastArrow != nil {
		a := *t.lastArrow
		a.Styles = maps.Clone(a.Styles)
		c.lastArrow = &a
	}
	return c
}
