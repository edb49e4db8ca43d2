package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/position"
	"github.com/matzehuels/overlaykit/pkg/render"
)

func (c *CLI) placementsCommand() *cobra.Command {
	var graph string
	var dot bool

	cmd := &cobra.Command{
		Use:   "placements",
		Short: "List tooltip placements and the placements they flip to",
		Example: `  overlaykit placements
  overlaykit placements --graph placements.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if dot {
				_, err := fmt.Fprint(out, render.PlacementDOT())
				return err
			}
			if graph != "" {
				svg, err := render.RenderPlacementGraph(cmd.Context(), render.PlacementDOT())
				if err != nil {
					return err
				}
				if err := os.WriteFile(graph, svg, 0o644); err != nil {
					return fmt.Errorf("write graph: %w", err)
				}
				printSuccess(out, "Wrote placement graph")
				printFile(out, graph)
				return nil
			}
			fmt.Fprintln(out, placementTable().Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&graph, "graph", "", "write the fallback graph as SVG to this path")
	cmd.Flags().BoolVar(&dot, "dot", false, "print the fallback graph in DOT format")
	return cmd
}

// placementTable lays out every placement with its alignment and fallbacks.
func placementTable() *table.Table {
	fallbacks := make(map[position.Placement]map[string]position.Placement)
	for _, e := range render.PlacementEdges() {
		if fallbacks[e.From] == nil {
			fallbacks[e.From] = make(map[string]position.Placement)
		}
		fallbacks[e.From][e.Axis] = e.To
	}

	rows := make([][]string, 0, len(position.Placements))
	for _, p := range position.Placements {
		a := position.PositionsMap[p]
		rows = append(rows, []string{
			string(p),
			a.HorizontalDirection.String() + " " + a.VerticalDirection.String(),
			a.HorizontalStartPoint.String() + " " + a.VerticalStartPoint.String(),
			fallbackCell(fallbacks[p]["horizontal"]),
			fallbackCell(fallbacks[p]["vertical"]),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Placement", "Direction", "Start", "Flip X", "Flip Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})
}

func fallbackCell(p position.Placement) string {
	if p == "" {
		return "-"
	}
	return string(p)
}
