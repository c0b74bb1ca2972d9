package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// HomeListModel - Interactive home selection
// =============================================================================

// homeEntry is one row in the home picker.
type homeEntry struct {
	Name    string
	Widgets int
	Rows    int
}

// HomeListModel is the bubbletea model for interactive home selection.
type HomeListModel struct {
	Homes    []homeEntry
	Cursor   int
	Selected *homeEntry
	Height   int
	Offset   int
}

// NewHomeListModel creates a new home list model.
func NewHomeListModel(homes []homeEntry) HomeListModel {
	return HomeListModel{
		Homes:  homes,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m HomeListModel) Init() tea.Cmd {
	return nil
}

func (m HomeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Homes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			home := m.Homes[m.Cursor]
			m.Selected = &home
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m HomeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Home"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Homes) {
		end = len(m.Homes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		h := m.Homes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			h.Name,
			fmt.Sprintf("%d", h.Widgets),
			fmt.Sprintf("%d", h.Rows),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Home", "Widgets", "Rows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Homes) {
				return lipgloss.NewStyle()
			}

			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Homes))))

	return b.String()
}
