package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/pkg/perm"
	"github.com/swaplab/swapplan/pkg/plan"
)

var (
	playSlotStyle     = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Border(lipgloss.NormalBorder())
	playSwappedStyle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorCyan)
	playDoneStyle     = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	playStepStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	playStepDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	playStepNextStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// playCommand creates the play command, an interactive step-through of a plan.
func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <plan-file-or-id>",
		Short: "Step through a plan interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPlayModel(doc))
			_, err = p.Run()
			return err
		},
	}
}

// PlayModel is the bubbletea model for stepping through a swap plan.
type PlayModel struct {
	Doc  *plan.Document
	Step int // number of swaps applied so far

	arrangement []perm.Label
	err         error
}

// NewPlayModel creates a play model positioned before the first swap.
func NewPlayModel(doc *plan.Document) PlayModel {
	arrangement := make([]perm.Label, len(doc.Labels))
	copy(arrangement, doc.Labels)
	return PlayModel{Doc: doc, arrangement: arrangement}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ", "enter":
			m.advance(1)
		case "left", "h":
			m.advance(-1)
		case "r":
			m.reset()
		case "end":
			m.advance(len(m.Doc.Steps) - m.Step)
		}
	}
	return m, nil
}

// advance applies or unapplies swaps to move the cursor by delta steps.
// Swaps are self-inverse, so moving backwards re-applies the same swap.
func (m *PlayModel) advance(delta int) {
	for delta > 0 && m.Step < len(m.Doc.Steps) {
		m.swapStep(m.Step)
		m.Step++
		delta--
	}
	for delta < 0 && m.Step > 0 {
		m.Step--
		m.swapStep(m.Step)
		delta++
	}
}

func (m *PlayModel) reset() {
	copy(m.arrangement, m.Doc.Labels)
	m.Step = 0
}

// swapStep exchanges the contents of the two slots named by step i.
// Slots are identified by the original working labels, so positions are
// looked up in Doc.Labels, not in the current arrangement.
func (m *PlayModel) swapStep(i int) {
	step := m.Doc.Steps[i]
	a, b := -1, -1
	for j, l := range m.Doc.Labels {
		if l == step.A {
			a = j
		}
		if l == step.B {
			b = j
		}
	}
	if a < 0 || b < 0 {
		m.err = fmt.Errorf("step %d references unknown slot", i+1)
		return
	}
	m.arrangement[a], m.arrangement[b] = m.arrangement[b], m.arrangement[a]
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plan " + m.Doc.ID))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  r reset  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	// Current arrangement, with the slots touched by the previous swap
	// highlighted.
	var touched map[perm.Label]bool
	if m.Step > 0 {
		step := m.Doc.Steps[m.Step-1]
		touched = map[perm.Label]bool{step.A: true, step.B: true}
	}
	cells := make([]string, len(m.arrangement))
	for i, l := range m.arrangement {
		style := playSlotStyle
		if touched != nil && touched[m.Doc.Labels[i]] {
			style = playSwappedStyle
		}
		cells[i] = style.Render(l.String())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	for i, step := range m.Doc.Steps {
		line := fmt.Sprintf("  %2d. swap %s ↔ %s", i+1, step.A.String(), step.B.String())
		switch {
		case i < m.Step:
			b.WriteString(playStepDimStyle.Render(line))
		case i == m.Step:
			b.WriteString(playStepNextStyle.Render("▸" + line[1:]))
		default:
			b.WriteString(playStepStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Step == len(m.Doc.Steps) {
		b.WriteString(playDoneStyle.Render(fmt.Sprintf("Target reached: %s", formatLabels(m.arrangement))))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("[%d/%d]", m.Step, len(m.Doc.Steps))))
	}
	b.WriteString("\n")

	return b.String()
}
