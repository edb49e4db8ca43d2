// Package pipeline runs scenes through the load → resolve → render pipeline.
//
// The CLI and the HTTP service share this package so that both resolve and
// render scenes the same way and share cached results.
//
// # Stages
//
//  1. Load: read and validate a scene file ([Load])
//  2. Resolve: position the content and replay the scene's ticks
//  3. Render: produce artifacts (SVG, PNG, PDF, JSON) from the resolution
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	s, err := pipeline.Load("examples/scenes/dropdown.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"svg"}})
//	svg := result.Artifacts["svg"]
//
// Resolutions are cached under the hash of the canonical scene encoding and
// artifacts under that hash plus their render options, so editing a scene
// invalidates both.
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/overlaykit/pkg/cache"
	"github.com/matzehuels/overlaykit/pkg/render"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// DefaultPNGScale is the PNG resolution multiplier.
const DefaultPNGScale = 2.0

// Options configures a pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`

	// Labels names the shapes in SVG output.
	Labels bool `json:"labels,omitempty"`
	// Grid draws a background grid with this spacing; zero disables it.
	Grid float64 `json:"grid,omitempty"`
	// StyleSheet replaces the default SVG stylesheet.
	StyleSheet string `json:"style_sheet,omitempty"`

	// Refresh bypasses cached resolutions and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the input scene.
	Scene *scene.Scene

	// SceneHash is the content hash of the canonical scene encoding.
	SceneHash string

	// Resolution is the resolved scene.
	Resolution *scene.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline timings.
type Stats struct {
	Steps       int
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	ResolveHit bool // Whether the resolution came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Grid < 0 {
		return fmt.Errorf("invalid grid: %g (must be zero or positive)", o.Grid)
	}
	return ValidateFormats(o.Formats)
}

// SVGOptions translates the options into render options.
func (o *Options) SVGOptions() []render.SVGOption {
	var opts []render.SVGOption
	if o.Labels {
		opts = append(opts, render.WithLabels())
	}
	if o.Grid > 0 {
		opts = append(opts, render.WithGrid(o.Grid))
	}
	if o.StyleSheet != "" {
		opts = append(opts, render.WithStyleSheet(o.StyleSheet))
	}
	return opts
}

// SceneKeyOpts returns cache key options for resolving s.
func SceneKeyOpts(s *scene.Scene) cache.SceneKeyOpts {
	return cache.SceneKeyOpts{Strategy: s.Strategy, Ticks: len(s.Ticks)}
}

// ArtifactKeyOpts returns cache key options for rendering format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Labels: o.Labels, Grid: o.Grid}
	if o.StyleSheet != "" {
		opts.Style = cache.Hash([]byte(o.StyleSheet))
	}
	return opts
}
