package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/pipeline"
	"github.com/matzehuels/overlaykit/pkg/render"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// positionOpts holds the flags of the position command.
type positionOpts struct {
	json     bool
	svg      string
	strategy string
	noCache  bool
	refresh  bool
}

func (c *CLI) positionCommand() *cobra.Command {
	var opts positionOpts

	cmd := &cobra.Command{
		Use:   "position <scene>",
		Short: "Resolve a scene and print the content styles",
		Long: `Resolve a scene file (.toml or .json) and print the styles written to the
content element, the applied alignment and whether the result fits.`,
		Example: `  overlaykit position examples/scenes/dropdown.toml
  overlaykit position tooltip.toml --json
  overlaykit position menu.toml --strategy auto --svg menu.svg`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPosition(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full resolution as JSON")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also write an SVG preview to this path")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "override the scene strategy ("+strings.Join(scene.Strategies, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("strategy", completeStrategies)
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runPosition(cmd *cobra.Command, path string, opts positionOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := loadScene(path, opts.strategy)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, hit, err := runner.ResolveWithCacheInfo(ctx, sc, pipeline.Options{Refresh: opts.refresh, Logger: logger})
	if err != nil {
		return err
	}
	prog.done("Resolved " + sceneLabel(sc, path))

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printResolution(out, res, hit)
	}

	if opts.svg != "" {
		if err := os.WriteFile(opts.svg, render.RenderSVG(res), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		logger.Info("wrote preview", "path", opts.svg)
	}
	return nil
}

// loadScene imports a scene file and applies a strategy override.
func loadScene(path, strategy string) (*scene.Scene, error) {
	sc, err := pipeline.Load(path)
	if err != nil {
		return nil, err
	}
	if strategy != "" {
		sc.Strategy = strategy
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func sceneLabel(sc *scene.Scene, path string) string {
	if sc.Name != "" {
		return sc.Name
	}
	return path
}

// printResolution writes the human-readable form of res.
func printResolution(w io.Writer, res *scene.Result, cached bool) {
	fmt.Fprintln(w, StyleTitle.Render(res.Strategy))
	names := make([]string, 0, len(res.Style))
	for k := range res.Style {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		printKeyValue(w, k, res.Style[k])
	}

	s := res.Settings
	printKeyValue(w, "direction", s.HorizontalDirection+" "+s.VerticalDirection)
	printKeyValue(w, "start", s.HorizontalStartPoint+" "+s.VerticalStartPoint)
	if res.Placement != "" {
		printKeyValue(w, "placement", res.Placement)
	}
	if res.Arrow != nil {
		printKeyValue(w, "arrow", res.Arrow.Class)
	}
	if res.Select != nil {
		printKeyValue(w, "scroll top", fmt.Sprintf("%gpx", res.Select.ScrollTop))
		printKeyValue(w, "offset", fmt.Sprintf("%g,%g", res.Select.XOffset, res.Select.YOffset))
	}
	printKeyValue(w, "content", res.Content.String())
	printStats(w, len(res.Steps), res.Flipped, res.Fit.Horizontal && res.Fit.Vertical, cached)
}
