package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depsort/pkg/depsort"
	"github.com/matzehuels/depsort/pkg/records"
)

func newInspectCmd() *cobra.Command {
	var fields fieldFlags

	cmd := &cobra.Command{
		Use:   "inspect <records.(json|toml)>",
		Short: "Browse the sorted sequence interactively",
		Long: `Browse the sorted sequence in an interactive list.

Each entry shows its final position, id and weight; the selected entry also
shows its dependencies. Navigate with the arrow keys or j/k, quit with q.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sorterOpts, err := fields.sorterOptions(cmd)
			if err != nil {
				return err
			}
			recs, err := records.Load(args[0])
			if err != nil {
				return err
			}

			nodes, err := graphNodes(depsort.New(sorterOpts), recs, false)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(newInspectModel(nodes)).Run()
			return err
		},
	}

	fields.register(cmd)
	return cmd
}

var (
	listSelectedStyle = StyleTitle
	listNormalStyle   = StyleValue
	listDimStyle      = StyleDim
)

// inspectModel is the bubbletea model for browsing a sorted node sequence.
type inspectModel struct {
	nodes  []*depsort.Node
	cursor int
	offset int
	height int
}

func newInspectModel(nodes []*depsort.Node) inspectModel {
	return inspectModel{nodes: nodes, height: 15}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 4; h > 0 {
			m.height = h
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.nodes) - 1
		}
	}

	// Keep the cursor inside the visible window.
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("sorted sequence"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d records", len(m.nodes))))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.nodes))
	for i := m.offset; i < end; i++ {
		n := m.nodes[i]
		line := fmt.Sprintf("%3d  %s", i, n.ID)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  weight=%v", n.Weight)))
			if len(n.Depends) > 0 {
				b.WriteString(listDimStyle.Render("  depends=" + formatDepends(n.Depends)))
			}
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate · q quit"))
	b.WriteString("\n")
	return b.String()
}
