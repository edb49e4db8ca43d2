package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", appName); dir != want {
		t.Errorf("configDir() with XDG_CONFIG_HOME = %q, want %q", dir, want)
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		scene, output, want string
	}{
		{"scenes/menu.toml", "", "scenes/menu"},
		{"menu.json", "", "menu"},
		{"menu.toml", "out/preview", "out/preview"},
		{"menu.toml", "out/preview.svg", "out/preview"},
		{"menu.toml", "out/preview.pdf", "out/preview"},
		{"menu.toml", "out/v1.2", "out/v1.2"},
	}
	for _, tt := range tests {
		if got := outputBase(tt.scene, tt.output); got != tt.want {
			t.Errorf("outputBase(%q, %q) = %q, want %q", tt.scene, tt.output, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("svg,json"); len(got) != 2 || got[1] != "json" {
		t.Errorf("parseFormats(\"svg,json\") = %v, want [svg json]", got)
	}
}
