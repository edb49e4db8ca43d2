package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "overlaykit.toml", `
[server]
addr = ":9000"
read_timeout = "15s"

[cache]
redis = "redis://localhost:6379/1"

[store]
mongo = "mongodb://localhost:27017"
database = "overlays"
`)
	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Cache.Redis != "redis://localhost:6379/1" {
		t.Errorf("Cache.Redis = %q", cfg.Cache.Redis)
	}
	if cfg.Store.Database != "overlays" {
		t.Errorf("Store.Database = %q, want overlays", cfg.Store.Database)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig(optional) error: %v", err)
	}
	if cfg.Server.Addr != "" {
		t.Errorf("Server.Addr = %q, want empty", cfg.Server.Addr)
	}

	if _, err := LoadConfig(path, true); err == nil {
		t.Error("LoadConfig(required) on a missing file should fail")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[server]\nport = 80\n", "unknown key"},
		{"bad duration", "[server]\nread_timeout = \"soon\"\n", "load config"},
		{"bad syntax", "[server\n", "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "overlaykit.toml", tt.content)
			_, err := LoadConfig(path, true)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestServeOptsMerge(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Addr: ":9000"},
		Cache:  CacheConfig{Redis: "redis://cfg"},
		Store:  StoreConfig{Dir: "/var/scenes", Database: "cfgdb"},
	}
	got := serveOpts{addr: ":7000", mongo: "mongodb://flag"}.merge(cfg)
	want := serveOpts{addr: ":7000", redis: "redis://cfg", mongo: "mongodb://flag", database: "cfgdb", storeDir: "/var/scenes"}
	if got != want {
		t.Errorf("merge() = %+v, want %+v", got, want)
	}
}
