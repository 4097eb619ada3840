package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// seriesListModel is the bubbletea model for the inspect command. It shows
// every series of a chart description as a table row and a detail line for
// the selected one.
type seriesListModel struct {
	Title  string
	Rows   []seriesRow
	Cursor int
}

func newSeriesListModel(title string, rows []seriesRow) seriesListModel {
	if title == "" {
		title = "Chart"
	}
	return seriesListModel{Title: title, Rows: rows}
}

func (m seriesListModel) Init() tea.Cmd {
	return nil
}

func (m seriesListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m seriesListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, r := range m.Rows {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.Name,
			r.Kind,
			r.Source,
			fmt.Sprintf("%d", r.Count),
			formatStat(r.Min, r.Count),
			formatStat(r.Median, r.Count),
			formatStat(r.Max, r.Count),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Series", "Kind", "Source", "N", "Min", "Median", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

func formatStat(v float64, count int) string {
	if count == 0 {
		return "—"
	}
	return fmt.Sprintf("%.4g", v)
}
