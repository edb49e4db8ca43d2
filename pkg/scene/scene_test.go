package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
)

const dropdownTOML = `
name = "dropdown"
strategy = "auto"

[viewport]
width = 300
height = 300

[target]
x = 290
y = 100
width = 10
height = 20

[content]
width = 100
height = 50

[settings]
horizontal_direction = "right"
horizontal_start_point = "right"

[[ticks]]
scroll_y = 20
`

func readDropdown(t *testing.T) *Scene {
	t.Helper()
	s, err := ReadTOML(strings.NewReader(dropdownTOML))
	if err != nil {
		t.Fatalf("ReadTOML error: %v", err)
	}
	return s
}

func TestReadTOML(t *testing.T) {
	s := readDropdown(t)
	if s.Name != "dropdown" || s.Strategy != "auto" {
		t.Errorf("name/strategy = %q/%q", s.Name, s.Strategy)
	}
	if s.Target.Rect() != geom.RectFromOrigin(geom.Point{X: 290, Y: 100}, geom.Size{Width: 10, Height: 20}) {
		t.Errorf("target = %+v", s.Target)
	}
	if len(s.Ticks) != 1 || s.Ticks[0].ScrollY != 20 {
		t.Errorf("ticks = %+v, want one scroll of 20", s.Ticks)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestReadTOMLUnknownKey(t *testing.T) {
	_, err := ReadTOML(strings.NewReader(dropdownTOML + "\n[extra]\nfoo = 1\n"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadTOML error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestReadJSONUnknownField(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"name":"x","colour":"red"}`))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadJSON error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRoundTrip(t *testing.T) {
	s := readDropdown(t)

	var js bytes.Buffer
	if err := WriteJSON(s, &js); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	fromJSON, err := ReadJSON(&js)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	var tm bytes.Buffer
	if err := WriteTOML(fromJSON, &tm); err != nil {
		t.Fatalf("WriteTOML error: %v", err)
	}
	back, err := ReadTOML(&tm)
	if err != nil {
		t.Fatalf("ReadTOML error: %v\n%s", err, tm.String())
	}

	if back.Settings != s.Settings {
		t.Errorf("settings = %+v, want %+v", back.Settings, s.Settings)
	}
	if back.Target != s.Target || back.Content != s.Content || back.Viewport != s.Viewport {
		t.Errorf("geometry changed in round trip: %+v", back)
	}
	if len(back.Ticks) != 1 || back.Ticks[0] != s.Ticks[0] {
		t.Errorf("ticks = %+v, want %+v", back.Ticks, s.Ticks)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scene)
		code   errors.Code
	}{
		{"zero viewport", func(s *Scene) { s.Viewport.Width = 0 }, errors.ErrCodeInvalidScene},
		{"negative content", func(s *Scene) { s.Content.Height = -1 }, errors.ErrCodeInvalidScene},
		{"unknown strategy", func(s *Scene) { s.Strategy = "teleport" }, errors.ErrCodeInvalidStrategy},
		{"bad direction", func(s *Scene) { s.Settings.VerticalDirection = "up" }, errors.ErrCodeInvalidSettings},
		{"bad placement", func(s *Scene) { s.Settings.Placement = "inside" }, errors.ErrCodeInvalidSettings},
		{"bad name", func(s *Scene) { s.Name = "../etc" }, errors.ErrCodeInvalidScene},
		{"select without list", func(s *Scene) { s.Strategy = StrategySelect }, errors.ErrCodeInvalidScene},
		{"negative wrapper", func(s *Scene) { s.Wrapper = &Box{Width: -5} }, errors.ErrCodeInvalidScene},
		{"too many items", func(s *Scene) {
			s.Strategy = StrategySelect
			s.Select = &Select{Items: MaxSelectItems + 1, ItemHeight: 30}
		}, errors.ErrCodeInvalidScene},
		{"too many ticks", func(s *Scene) { s.Ticks = make([]Tick, MaxTicks+1) }, errors.ErrCodeInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := readDropdown(t)
			tt.mutate(s)
			err := s.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateAtLimits(t *testing.T) {
	s := readDropdown(t)
	s.Select = &Select{Items: MaxSelectItems, ItemHeight: 30, Selected: -1}
	s.Ticks = make([]Tick, MaxTicks)
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() at the limits error: %v", err)
	}
}

func TestPositionSettings(t *testing.T) {
	s := readDropdown(t)
	ps, err := s.PositionSettings()
	if err != nil {
		t.Fatalf("PositionSettings() error: %v", err)
	}
	if ps.HorizontalStartPoint != geom.Right {
		t.Errorf("HorizontalStartPoint = %v, want right", ps.HorizontalStartPoint)
	}
	// unset fields keep the defaults
	if ps.VerticalDirection != geom.Bottom || ps.VerticalStartPoint != geom.Bottom {
		t.Errorf("vertical = %v/%v, want bottom/bottom", ps.VerticalDirection, ps.VerticalStartPoint)
	}

	s.Strategy = StrategyTooltip
	s.Settings = Settings{Placement: "left-end"}
	ps, err = s.PositionSettings()
	if err != nil {
		t.Fatalf("PositionSettings() error: %v", err)
	}
	if ps.HorizontalDirection != geom.Left || ps.VerticalDirection != geom.Top {
		t.Errorf("left-end alignment = %v/%v, want left/top", ps.HorizontalDirection, ps.VerticalDirection)
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "menu.toml")
	if err := os.WriteFile(src, []byte(strings.Replace(dropdownTOML, `name = "dropdown"`, "", 1)), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Import(src)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if s.Name != "menu" {
		t.Errorf("Name = %q, want menu (from the file name)", s.Name)
	}

	out := filepath.Join(dir, "menu.json")
	if err := Export(s, out); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	again, err := Import(out)
	if err != nil {
		t.Fatalf("Import(json) error: %v", err)
	}
	if again.Name != "menu" || again.Settings != s.Settings {
		t.Errorf("re-imported scene = %+v", again)
	}

	if _, err := Import(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
	if _, err := Import(filepath.Join(dir, "scene.yaml")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Import(yaml) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.toml", FormatTOML, true},
		{"dir/B.JSON", FormatJSON, true},
		{"c.yml", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q, ok %v", tt.path, got, err, tt.want, tt.ok)
		}
	}
}
