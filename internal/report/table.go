package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type tableReporter struct {
	w       io.Writer
	entries []Entry
}

func (r *tableReporter) Begin() error { return nil }

func (r *tableReporter) Add(e Entry) error {
	r.entries = append(r.entries, e)

	return nil
}

func (r *tableReporter) End() error {
	rows := make([][]string, 0, len(r.entries)+1)

	for _, e := range r.entries {
		cells := Cells(e)
		// Pad unsupported rows so every row has the full column count.
		for len(cells) < len(Columns) {
			cells = append(cells, "")
		}

		rows = append(rows, cells)
	}

	rows = append(rows, TotalsCells(r.entries))

	cell := lipgloss.NewStyle().Padding(0, 1)
	numeric := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col < 2 {
				return cell
			}

			return numeric
		})

	_, err := fmt.Fprintln(r.w, t.Render())

	return err
}
