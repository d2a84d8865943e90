package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" rdplot ─ " + m.sourceName() + " ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	sliderRows := m.renderSliders(lay.contentW)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(lay.mapW)
		m.ta.SetHeight(min(lay.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.ta.View())
	default:
		// plain plot canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderPlot(lay.mapW, lay.mapH))
	}

	// Popup replaces the plot while open
	if m.popup != "" && !m.showTable && !m.pasteMode {
		popupW := max(20, min(60, lay.mapW-4))
		box := boxStyle.Width(popupW).Render(m.popup)
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasXY {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4f y=%.4f  ", m.hoverX, m.hoverY))
	}
	spacerW := max(0, lay.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords)
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, m.renderHelp())
	footer = lipgloss.NewStyle().Width(lay.contentW).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, sliderRows, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

// renderSliders lays the sliders out two per row.
func (m Model) renderSliders(width int) string {
	cellW := width / 2
	// label(8) + value(8) + spacing
	m.gauge.Width = max(6, cellW-20)
	cells := make([]string, len(sliders))
	for i, s := range sliders {
		label := dimStyle.Render(fmt.Sprintf(" %-8s", s.name))
		if i == m.active {
			label = titleStyle.Render(fmt.Sprintf("▸%-8s", s.name))
		}
		value := s.value(m.params)
		if s.sampling && m.src == sourcePasted {
			value = "—"
		}
		cell := label + " " + m.gauge.ViewAs(s.fraction(m.params)) + " " + fmt.Sprintf("%-8s", value)
		cells[i] = lipgloss.NewStyle().Width(cellW).MaxWidth(cellW).Render(cell)
	}
	var rows []string
	for i := 0; i < len(cells); i += 2 {
		row := cells[i]
		if i+1 < len(cells) {
			row = lipgloss.JoinHorizontal(lipgloss.Top, cells[i], cells[i+1])
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	return " " + m.help.View(m.keys)
}
