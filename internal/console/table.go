package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusHeader names the column whose cells are colored by leave status.
const StatusHeader = "Status"

// StatusLabel title-cases a leave status for display.
func StatusLabel(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return "-"
	}
	return cases.Title(language.English).String(status)
}

// RenderTable returns headers and rows as an aligned ASCII table.
func (c *Console) RenderTable(headers []string, rows [][]string) string {
	statusCol := -1
	for i, h := range headers {
		if h == StatusHeader {
			statusCol = i
		}
	}

	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		if statusCol >= 0 && statusCol < len(cells) {
			raw := cells[statusCol]
			cells[statusCol] = c.styles.StatusCell(raw).UnsetPadding().Render(StatusLabel(raw))
		}
		body = append(body, cells)
	}

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderStyle(c.styles.Border).
		BorderRow(true).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.Header
			}
			return c.styles.Cell
		})
	return t.String()
}

// Table writes headers and rows as an aligned ASCII table.
func (c *Console) Table(headers []string, rows [][]string) {
	c.Println(c.RenderTable(headers, rows))
}
