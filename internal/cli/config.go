package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the contents of overlaykit.toml. Command-line flags override it.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures "overlaykit serve".
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  duration `toml:"read_timeout"`
	WriteTimeout duration `toml:"write_timeout"`
}

// CacheConfig selects the result cache. Redis, when set, is used by the
// server instead of the file cache.
type CacheConfig struct {
	Dir   string `toml:"dir"`
	Redis string `toml:"redis"`
}

// StoreConfig selects the scene store of the server. Mongo wins over Dir;
// with neither set scenes live in memory.
type StoreConfig struct {
	Dir      string `toml:"dir"`
	Mongo    string `toml:"mongo"`
	Database string `toml:"database"`
}

// duration decodes TOML strings such as "15s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// LoadConfig decodes the config file at path. A missing file yields an empty
// config unless required is set. Unknown keys are rejected.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
