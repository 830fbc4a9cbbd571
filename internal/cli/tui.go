package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/capfig/pkg/figures"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// FigureListModel - Interactive figure selection
// =============================================================================

// FigureListModel is the bubbletea model for picking the figures to render.
type FigureListModel struct {
	Figures   []*figures.Figure
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
}

// NewFigureListModel creates a figure list with every figure checked.
func NewFigureListModel(figs []*figures.Figure) FigureListModel {
	checked := make(map[int]bool, len(figs))
	for i := range figs {
		checked[i] = true
	}
	return FigureListModel{Figures: figs, Checked: checked}
}

func (m FigureListModel) Init() tea.Cmd {
	return nil
}

func (m FigureListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Figures)-1 {
			m.Cursor++
		}
	case " ", "x":
		m.Checked[m.Cursor] = !m.Checked[m.Cursor]
	case "a":
		all := len(m.Selected()) == len(m.Figures)
		for i := range m.Figures {
			m.Checked[i] = !all
		}
	case "enter":
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// Selected returns the checked figures in list order.
func (m FigureListModel) Selected() []*figures.Figure {
	var out []*figures.Figure
	for i, f := range m.Figures {
		if m.Checked[i] {
			out = append(out, f)
		}
	}
	return out
}

func (m FigureListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Figures"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Figures {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[i] {
			box = "[" + StyleSuccess.Render("x") + "]"
		}

		line := fmt.Sprintf("%s%s %-5s %s", cursor, box, f.Name, f.Title)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  " + listDimStyle.Render(f.Alias))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d selected]", len(m.Selected()), len(m.Figures))))

	return b.String()
}

// pickFigures runs the figure picker. A quit without confirming selects
// nothing.
func pickFigures(figs []*figures.Figure) ([]*figures.Figure, error) {
	final, err := tea.NewProgram(NewFigureListModel(figs)).Run()
	if err != nil {
		return nil, fmt.Errorf("figure picker: %w", err)
	}
	m := final.(FigureListModel)
	if !m.Confirmed {
		return nil, nil
	}
	return m.Selected(), nil
}

// =============================================================================
// Figure table
// =============================================================================

// figureTable renders the figure registry as a bordered table.
func figureTable(figs []*figures.Figure) string {
	rows := make([][]string, 0, len(figs))
	for _, f := range figs {
		rows = append(rows, []string{
			f.Name,
			f.Alias,
			f.Title,
			f.File,
			fmt.Sprintf("%.0f×%.1f in", f.Width.Points()/72, f.Height.Points()/72),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Alias", "Title", "File", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3 || col == 4:
				return StyleDim
			}
			return StyleValue
		})

	return t.Render()
}
