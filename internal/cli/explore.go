package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

var (
	exploreDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	exploreErrorStyle   = StyleWarning
	exploreTargetStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	exploreContentStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	mapCols = 64
	mapRows = 20
)

func (c *CLI) exploreCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "explore <scene>",
		Short: "Move the target of a scene interactively",
		Long: `Open a scene in an interactive view. Arrow keys move the target, tab
cycles the strategy, and the content is re-resolved after every change.
With --output the scene is saved as it was left on quit.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(args[0], "")
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewExploreModel(sc), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			m := final.(ExploreModel)
			if err := scene.Export(&m.Scene, output); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Saved %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save the explored scene to this .toml or .json file")
	return cmd
}

// ExploreModel is the bubbletea model of the explore command.
type ExploreModel struct {
	Scene  scene.Scene
	Step   float64
	Result *scene.Result
	Err    error

	origin geom.Point
}

// NewExploreModel resolves sc once and returns the model.
func NewExploreModel(sc *scene.Scene) ExploreModel {
	m := ExploreModel{
		Scene:  *sc,
		Step:   10,
		origin: geom.Point{X: sc.Target.X, Y: sc.Target.Y},
	}
	return m.resolve()
}

func (m ExploreModel) resolve() ExploreModel {
	s := m.Scene
	m.Result, m.Err = scene.Resolve(&s)
	return m
}

// strategies lists the strategies the scene can be resolved with.
func (m ExploreModel) strategies() []string {
	var out []string
	for _, s := range scene.Strategies {
		if s == scene.StrategySelect && m.Scene.Select == nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Scene.Target.Y -= m.Step
	case "down", "j":
		m.Scene.Target.Y += m.Step
	case "left", "h":
		m.Scene.Target.X -= m.Step
	case "right", "l":
		m.Scene.Target.X += m.Step
	case "+", "=":
		m.Step = math.Min(m.Step*2, 160)
		return m, nil
	case "-":
		m.Step = math.Max(m.Step/2, 1)
		return m, nil
	case "tab":
		m.Scene.Strategy = m.nextStrategy(1)
	case "shift+tab":
		m.Scene.Strategy = m.nextStrategy(-1)
	case "r":
		m.Scene.Target.X, m.Scene.Target.Y = m.origin.X, m.origin.Y
	default:
		return m, nil
	}
	return m.resolve(), nil
}

func (m ExploreModel) nextStrategy(delta int) string {
	all := m.strategies()
	cur := m.Scene.Strategy
	if cur == "" {
		cur = all[0]
	}
	i := slices.Index(all, cur)
	if i < 0 {
		return all[0]
	}
	return all[(i+delta+len(all))%len(all)]
}

func (m ExploreModel) View() string {
	var b strings.Builder

	title := m.Scene.Name
	if title == "" {
		title = "scene"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  target %g,%g  step %gpx", m.Scene.Target.X, m.Scene.Target.Y, m.Step)))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("←↑↓→ move  +/- step  tab strategy  r reset  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(exploreErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(minimap(m.Result, mapCols, mapRows))
	b.WriteString("\n")
	b.WriteString(styleTable(m.Result).Render())
	b.WriteString("\n")
	return b.String()
}

// styleTable shows the written styles next to the resolution summary.
func styleTable(res *scene.Result) *table.Table {
	rows := [][]string{{"strategy", res.Strategy}}
	names := make([]string, 0, len(res.Style))
	for k := range res.Style {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		rows = append(rows, []string{k, res.Style[k]})
	}
	if len(res.Flipped) > 0 {
		rows = append(rows, []string{"flipped", strings.Join(res.Flipped, ", ")})
	}
	if res.Placement != "" {
		rows = append(rows, []string{"placement", res.Placement})
	}
	rows = append(rows, []string{"fits", fmt.Sprintf("%t / %t", res.Fit.Horizontal, res.Fit.Vertical)})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
}

// minimap draws the viewport as a character grid: '.' is the viewport, 'T'
// the target and '#' the content. Cells covered by both show '#'.
func minimap(res *scene.Result, cols, rows int) string {
	vp := res.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return ""
	}
	sx, sy := vp.Width/float64(cols), vp.Height/float64(rows)

	cell := func(r geom.Rect, col, row int) bool {
		x := vp.Left + (float64(col)+0.5)*sx
		y := vp.Top + (float64(row)+0.5)*sy
		return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch {
			case cell(res.Content, col, row):
				b.WriteString(exploreContentStyle.Render("#"))
			case cell(res.Target, col, row):
				b.WriteString(exploreTargetStyle.Render("T"))
			default:
				b.WriteString(exploreDimStyle.Render("."))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
