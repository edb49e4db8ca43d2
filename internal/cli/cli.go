// Package cli implements the overlaykit command-line interface.
//
// # Commands
//
//   - position: resolve a scene file and print the written styles
//   - render: write SVG, PNG, PDF or JSON artifacts of a scene
//   - placements: list tooltip placements and their fallbacks
//   - explore: move a scene's target interactively and watch it resolve
//   - serve: run the HTTP service
//   - cache: manage the result cache
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every flip, push and resize the engine performs.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/buildinfo"
	"github.com/matzehuels/overlaykit/pkg/cache"
	"github.com/matzehuels/overlaykit/pkg/observability"
	"github.com/matzehuels/overlaykit/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "overlaykit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "overlaykit positions overlays next to their anchors",
		Long:         `overlaykit resolves where dropdowns, tooltips and select lists open relative to a target, flipping and pushing them to stay inside the viewport.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetPositionHooks(observability.NewLogHooks(c.Logger))
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			observability.SetCacheHooks(observability.NewLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/overlaykit/overlaykit.toml)")

	root.AddCommand(c.positionCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.placementsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file once. A missing default file yields the
// defaults; a missing explicit --config file is an error.
func (c *CLI) loadConfig() (*Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, appName+".toml")
		}
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	rc, err := newCache(cfg.Cache.Dir, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(rc, nil, c.Logger), nil
}

func newCache(dir string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/overlaykit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/overlaykit/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
