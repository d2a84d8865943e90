package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the table rows from the retained points.
func (m *Model) refreshTable() {
	if len(m.simplified) == 0 {
		m.showTable = false
		m.status = "no simplified points"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "sample", Width: 7},
		{Title: "x", Width: 12},
		{Title: "y", Width: 12},
	}
	rows := make([]table.Row, 0, len(m.simplified))
	for i, p := range m.simplified {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", m.kept[i]),
			fmt.Sprintf("%.6f", p.X),
			fmt.Sprintf("%.6f", p.Y),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
