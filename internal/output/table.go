package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/dataset"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// newTable returns a Markdown-style table with the given numeric columns
// right-aligned
func newTable(headers []string, numeric ...int) *table.Table {
	return table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			for _, n := range numeric {
				if col == n {
					return numberStyle
				}
			}
			return cellStyle
		})
}

// RenderStats renders the per-class occurrence table followed by the total
// body count including the Sun.
func RenderStats(stats dataset.Stats) string {
	t := newTable([]string{"orbit class", "occurrences"}, 1)
	for _, c := range stats.Classes {
		t.Row(fmt.Sprintf("%s (%s)", c.Class.Label(), c.Class), strconv.Itoa(c.Count))
	}

	total := fmt.Sprintf("total number of bodies: %d + 1 (Sun) = %d", stats.Total, stats.TotalWithSun())
	return lipgloss.JoinVertical(lipgloss.Left, t.String(), "", totalStyle.Render(total))
}

// PrintStats writes RenderStats(stats) to w
func PrintStats(w io.Writer, stats dataset.Stats) error {
	_, err := fmt.Fprintln(w, RenderStats(stats))
	return err
}

// RenderCatalog renders the major-body catalog
func RenderCatalog(bodies []catalog.Body) string {
	t := newTable([]string{"name", "class", "central body", "mass (kg)", "horizons command"}, 3)
	for _, b := range bodies {
		t.Row(b.Name, string(b.Class), b.CentralBody, strconv.FormatFloat(b.Mass, 'g', -1, 64), b.Command)
	}
	return t.String()
}
