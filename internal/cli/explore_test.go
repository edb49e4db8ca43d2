package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

func newExploreModel(t *testing.T) ExploreModel {
	t.Helper()
	sc, err := scene.ReadTOML(strings.NewReader(dropdownTOML))
	if err != nil {
		t.Fatal(err)
	}
	m := NewExploreModel(sc)
	if m.Err != nil {
		t.Fatalf("initial resolve error: %v", m.Err)
	}
	return m
}

func press(m ExploreModel, keys ...tea.KeyMsg) (ExploreModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(ExploreModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExploreMove(t *testing.T) {
	m := newExploreModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	if m.Scene.Target.X != 280 || m.Scene.Target.Y != 90 {
		t.Errorf("target = %g,%g, want 280,90", m.Scene.Target.X, m.Scene.Target.Y)
	}
	if m.Result.Target.Left != 280 {
		t.Errorf("result target left = %g, want 280", m.Result.Target.Left)
	}

	m, _ = press(m, runes("r"))
	if m.Scene.Target.X != 290 || m.Scene.Target.Y != 100 {
		t.Errorf("reset target = %g,%g, want 290,100", m.Scene.Target.X, m.Scene.Target.Y)
	}
}

func TestExploreStep(t *testing.T) {
	m := newExploreModel(t)

	m, _ = press(m, runes("+"), runes("+"), runes("+"), runes("+"), runes("+"))
	if m.Step != 160 {
		t.Errorf("step = %g, want capped at 160", m.Step)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(m, runes("-"))
	}
	if m.Step != 1 {
		t.Errorf("step = %g, want floored at 1", m.Step)
	}
}

func TestExploreCycleStrategies(t *testing.T) {
	m := newExploreModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Scene.Strategy != "elastic" || m.Result.Strategy != "elastic" {
		t.Errorf("after tab strategy = %q, want elastic", m.Scene.Strategy)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Scene.Strategy != "connected" {
		t.Errorf("after shift+tab strategy = %q, want connected", m.Scene.Strategy)
	}

	// Select needs list data, so a plain scene wraps from tooltip to connected.
	m.Scene.Strategy = scene.StrategyTooltip
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Scene.Strategy != "connected" {
		t.Errorf("after tooltip strategy = %q, want connected", m.Scene.Strategy)
	}
}

func TestExploreQuit(t *testing.T) {
	m := newExploreModel(t)
	if _, cmd := press(m, runes("q")); cmd == nil {
		t.Error("q should return a quit command")
	}
	if _, cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Error("moving should not return a command")
	}
}

func TestExploreView(t *testing.T) {
	view := plain(newExploreModel(t).View())
	for _, want := range []string{"dropdown", "auto", "right", "#", "T"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMinimap(t *testing.T) {
	res := &scene.Result{
		Viewport: geom.RectFromOrigin(geom.Point{}, geom.Size{Width: 100, Height: 100}),
		Target:   geom.RectFromOrigin(geom.Point{}, geom.Size{Width: 50, Height: 50}),
		Content:  geom.RectFromOrigin(geom.Point{X: 50, Y: 50}, geom.Size{Width: 50, Height: 50}),
	}
	if got, want := plain(minimap(res, 2, 2)), "T.\n.#\n"; got != want {
		t.Errorf("minimap = %q, want %q", got, want)
	}
	if got := minimap(&scene.Result{}, 2, 2); got != "" {
		t.Errorf("minimap of an empty viewport = %q, want empty", got)
	}
}
