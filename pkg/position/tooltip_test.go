package position

import (
	"testing"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
)

func TestPlacementRoundTrip(t *testing.T) {
	if len(PositionsMap) != 12 || len(Placements) != 12 {
		t.Fatalf("got %d placements and %d map entries, want 12", len(Placements), len(PositionsMap))
	}
	for _, p := range Placements {
		s := PlacementSettings(p, DefaultSettings())
		if got := PlacementBySettings(s); got != p {
			t.Errorf("PlacementBySettings(PlacementSettings(%q)) = %q", p, got)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("PlacementSettings(%q) invalid: %v", p, err)
		}
	}
}

func TestPlacementBySettingsDefaultsToBottom(t *testing.T) {
	s := settings(geom.Left, geom.Bottom, geom.Center, geom.Bottom)
	if got := PlacementBySettings(s); got != PlacementBottom {
		t.Errorf("PlacementBySettings() = %q, want bottom", got)
	}
}

func TestParsePlacement(t *testing.T) {
	if p, err := ParsePlacement(" Top-End "); err != nil || p != PlacementTopEnd {
		t.Errorf("ParsePlacement(Top-End) = %q, %v", p, err)
	}
	if _, err := ParsePlacement("middle"); err == nil {
		t.Error("ParsePlacement(middle) should fail")
	}
}

func TestPlacementParts(t *testing.T) {
	tests := []struct {
		p        Placement
		side     string
		suffix   string
		vertical bool
	}{
		{PlacementTop, "top", "", true},
		{PlacementBottomEnd, "bottom", "end", true},
		{PlacementLeftStart, "left", "start", false},
		{PlacementRight, "right", "", false},
	}
	for _, tt := range tests {
		if got := tt.p.Side(); got != tt.side {
			t.Errorf("%q.Side() = %q, want %q", tt.p, got, tt.side)
		}
		if got := tt.p.Suffix(); got != tt.suffix {
			t.Errorf("%q.Suffix() = %q, want %q", tt.p, got, tt.suffix)
		}
		if got := tt.p.Vertical(); got != tt.vertical {
			t.Errorf("%q.Vertical() = %v, want %v", tt.p, got, tt.vertical)
		}
	}
}

func TestPositionArrow(t *testing.T) {
	tooltip := rect(0, 0, 100, 40)
	tests := []struct {
		p          Placement
		crossProp  string
		cross      string
		overlapped string
	}{
		{PlacementTop, dom.PropLeft, "45px", dom.PropBottom},
		{PlacementTopStart, dom.PropLeft, "0px", dom.PropBottom},
		{PlacementTopEnd, dom.PropLeft, "82px", dom.PropBottom},
		{PlacementBottom, dom.PropLeft, "45px", dom.PropTop},
		{PlacementBottomEnd, dom.PropLeft, "82px", dom.PropTop},
		{PlacementRight, dom.PropTop, "15px", dom.PropLeft},
		{PlacementRightEnd, dom.PropTop, "26px", dom.PropLeft},
		{PlacementLeftStart, dom.PropTop, "0px", dom.PropRight},
		{PlacementLeft, dom.PropTop, "15px", dom.PropRight},
	}

	arrow := dom.NewPositionedBox("arrow", geom.Size{Width: 10, Height: 10})
	for _, tt := range tests {
		t.Run(string(tt.p), func(t *testing.T) {
			a := PositionArrow(arrow, tooltip, tt.p)
			style := arrow.Style()
			if got := style.Get(tt.crossProp); got != tt.cross {
				t.Errorf("%s = %q, want %q", tt.crossProp, got, tt.cross)
			}
			if got := style.Get(tt.overlapped); got != "-4px" {
				t.Errorf("%s = %q, want -4px", tt.overlapped, got)
			}
			if n := len(style.Names()); n != 2 {
				t.Errorf("arrow style %q has %d properties, want 2", style, n)
			}
			if a.Class != "arrow--"+tt.p.Side() {
				t.Errorf("Class = %q, want arrow--%s", a.Class, tt.p.Side())
			}
			if a.Styles[tt.crossProp] != tt.cross {
				t.Errorf("Styles = %v, want %s: %s", a.Styles, tt.crossProp, tt.cross)
			}
		})
	}
}

func TestTooltipFlipMovesArrow(t *testing.T) {
	page := dom.NewPage(geom.Size{Width: 400, Height: 400})
	target := dom.NewBox("target", geom.Point{X: 150, Y: 10}, geom.Size{Width: 100, Height: 20})
	tooltip := dom.NewPositionedBox("tooltip", geom.Size{Width: 100, Height: 40})
	arrow := dom.NewPositionedBox("arrow", geom.Size{Width: 10, Height: 10})
	tooltip.Append(arrow)
	page.Root.Append(target, tooltip)

	st := NewTooltipAt(PlacementTop, DefaultSettings(), arrow)
	if got := st.Placement(); got != PlacementTop {
		t.Fatalf("Placement() before positioning = %q, want top", got)
	}
	if err := st.Position(tooltip, geom.Size{}, page, true, target); err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	if got := st.Placement(); got != PlacementBottom {
		t.Errorf("Placement() = %q, want bottom after flip", got)
	}
	assertRect(t, "tooltip", tooltip.BoundingClientRect(), rect(150, 30, 100, 40))

	a, ok := st.Arrow()
	if !ok {
		t.Fatal("Arrow() ok = false")
	}
	if a.Class != "arrow--bottom" {
		t.Errorf("arrow class = %q, want arrow--bottom", a.Class)
	}
	assertRect(t, "arrow", arrow.BoundingClientRect(), rect(195, 26, 10, 10))

	c := st.Clone()
	if c.Strategy == st.Strategy {
		t.Error("Clone() shares the strategy")
	}
	if got := c.Placement(); got != PlacementBottom {
		t.Errorf("clone Placement() = %q, want bottom", got)
	}
}

func TestTooltipWithoutArrow(t *testing.T) {
	f := newFixture(geom.Size{Width: 400, Height: 400}, rect(150, 200, 100, 20), geom.Size{Width: 60, Height: 30})
	st := NewTooltipAt(PlacementRight, DefaultSettings(), nil)
	if err := st.Position(f.content, geom.Size{}, f.page, true, f.target); err != nil {
		t.Fatalf("Position() error: %v", err)
	}
	assertRect(t, "content", f.content.BoundingClientRect(), rect(250, 195, 60, 30))
	if _, ok := st.Arrow(); ok {
		t.Error("Arrow() ok = true without an arrow element")
	}
}
