package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output     string
	formats    []string
	strategy   string
	labels     bool
	grid       float64
	styleSheet string
	noCache    bool
	refresh    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a resolved scene to SVG, PNG, PDF or JSON",
		Long: `Resolve a scene and draw the viewport, wrapper, target and content.
PNG and PDF output requires rsvg-convert on PATH.`,
		Example: `  overlaykit render dropdown.toml
  overlaykit render dropdown.toml -f svg,png -o out/dropdown --labels --grid 50`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (extension added per format; default: scene path)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "comma-separated formats: svg, png, pdf, json (default: svg)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "override the scene strategy")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label the shapes")
	cmd.Flags().Float64Var(&opts.grid, "grid", 0, "draw a background grid with this spacing")
	cmd.Flags().StringVar(&opts.styleSheet, "style", "", "CSS file replacing the default stylesheet")
	_ = cmd.RegisterFlagCompletionFunc("strategy", completeStrategies)
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := loadScene(path, opts.strategy)
	if err != nil {
		return err
	}
	popts := pipeline.Options{
		Formats: opts.formats,
		Labels:  opts.labels,
		Grid:    opts.grid,
		Refresh: opts.refresh,
		Logger:  logger,
	}
	if opts.styleSheet != "" {
		css, err := os.ReadFile(opts.styleSheet)
		if err != nil {
			return fmt.Errorf("read stylesheet: %w", err)
		}
		popts.StyleSheet = string(css)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, sc, popts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	base := outputBase(path, opts.output)
	printSuccess(out, "Rendered %s", sceneLabel(sc, path))
	for _, f := range popts.Formats {
		dst := base + "." + f
		if dir := filepath.Dir(dst); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(dst, result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f, err)
		}
		printFile(out, dst)
	}
	res := result.Resolution
	printStats(out, result.Stats.Steps, res.Flipped, res.Fit.Horizontal && res.Fit.Vertical,
		result.CacheInfo.ResolveHit && result.CacheInfo.RenderHit)
	return nil
}

// outputBase strips a known extension from output, or derives the base from
// the scene path.
func outputBase(scenePath, output string) string {
	if output == "" {
		return strings.TrimSuffix(scenePath, filepath.Ext(scenePath))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range pipeline.ValidFormats {
		if ext == f {
			return strings.TrimSuffix(output, filepath.Ext(output))
		}
	}
	return output
}
