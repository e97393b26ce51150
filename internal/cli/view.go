package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bumpless/pkg/bpd"
	"github.com/matzehuels/bumpless/pkg/pipeline"
	"github.com/matzehuels/bumpless/pkg/render"
)

// viewCommand creates the view command for interactive orbit browsing.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		variant    string
		unicode    bool
		cacheFlags cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "view <perm>",
		Short: "Browse an orbit interactively in the terminal",
		Long: `Browse an orbit interactively in the terminal.

Enumerates the orbit and opens a pager showing one grid at a time.

Keys:
  ←/h  previous grid        →/l  next grid
  g    first grid           G    last grid
  u    toggle box-drawing tiles
  q    quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perm, err := parsePerm(args[0])
			if err != nil {
				return err
			}
			return c.runView(cmd, perm, variant, unicode, cacheFlags)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(pipeline.DefaultVariant), "move variant: droop (default), k, flat, top")
	cmd.Flags().BoolVar(&unicode, "unicode", false, "start with box-drawing tiles")
	registerCacheFlags(cmd, &cacheFlags)

	return cmd
}

func (c *CLI) runView(cmd *cobra.Command, perm []int, variant string, unicode bool, cacheFlags cacheOpts) error {
	runner, err := c.newRunner(cmd, cacheFlags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	grids, err := runner.Enumerate(cmd.Context(), pipeline.Options{
		Perm:    perm,
		Variant: variant,
		Logger:  c.Logger,
	})
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}

	model := newOrbitModel(grids, variant, unicode)
	_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	return err
}

// =============================================================================
// OrbitModel - Interactive orbit browsing
// =============================================================================

// OrbitModel is the bubbletea model for paging through an orbit.
type OrbitModel struct {
	Grids   []bpd.Grid
	Variant string
	Cursor  int
	Unicode bool
}

// newOrbitModel creates a new orbit browser model.
func newOrbitModel(grids []bpd.Grid, variant string, unicode bool) OrbitModel {
	return OrbitModel{
		Grids:   grids,
		Variant: variant,
		Unicode: unicode,
	}
}

func (m OrbitModel) Init() tea.Cmd {
	return nil
}

func (m OrbitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l":
			if m.Cursor < len(m.Grids)-1 {
				m.Cursor++
			}
		case "g":
			m.Cursor = 0
		case "G":
			m.Cursor = len(m.Grids) - 1
		case "u":
			m.Unicode = !m.Unicode
		}
	}
	return m, nil
}

func (m OrbitModel) View() string {
	if len(m.Grids) == 0 {
		return StyleDim.Render("empty orbit") + "\n"
	}

	g := m.Grids[m.Cursor]
	header := fmt.Sprintf("%s orbit · grid %d/%d", m.Variant, m.Cursor+1, len(m.Grids))

	s := StyleTitle.Render(header) + "\n"
	s += StyleDim.Render("←/→ navigate  u tiles  q quit") + "\n\n"
	s += render.Text(g, render.TextOptions{Unicode: m.Unicode}) + "\n\n"

	status := fmt.Sprintf("perm %v · %d blank(s)", g.Perm(), g.Blanks())
	if g.IsReduced() {
		status += " · reduced"
	}
	s += StyleDim.Render(status) + "\n"
	return s
}
