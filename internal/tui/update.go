package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rdplot/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		lay := m.layout()
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch {
			case key.Matches(msg, m.keys.Table), key.Matches(msg, m.keys.Cancel):
				m.showTable = false
				return m, nil
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		// Arrow keys move the picker selection instead of panning
		if m.showSidebar && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)) {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			if m.popup == "" && m.showSidebar && m.l.FilterState() == list.FilterApplied {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
			m.popup = ""
		case key.Matches(msg, m.keys.PrevSlider):
			m.active = (m.active + len(sliders) - 1) % len(sliders)
			m.status = "slider: " + sliders[m.active].name
		case key.Matches(msg, m.keys.NextSlider):
			m.active = (m.active + 1) % len(sliders)
			m.status = "slider: " + sliders[m.active].name
		case key.Matches(msg, m.keys.Dec):
			m.adjust(-1, false)
		case key.Matches(msg, m.keys.Inc):
			m.adjust(1, false)
		case key.Matches(msg, m.keys.DecBig):
			m.adjust(-1, true)
		case key.Matches(msg, m.keys.IncBig):
			m.adjust(1, true)
		case key.Matches(msg, m.keys.Metric):
			if m.opts.Metric == geom.Vertical {
				m.opts.Metric = geom.Perpendicular
			} else {
				m.opts.Metric = geom.Vertical
			}
			m.recompute()
		case key.Matches(msg, m.keys.Scan):
			if m.opts.Scan == geom.ScanAll {
				m.opts.Scan = geom.ScanSkipLast
			} else {
				m.opts.Scan = geom.ScanAll
			}
			m.recompute()
		case key.Matches(msg, m.keys.Samples):
			m.showSamples = !m.showSamples
			m.status = fmt.Sprintf("samples: %v", m.showSamples)
		case key.Matches(msg, m.keys.Simplified):
			m.showSimplified = !m.showSimplified
			m.status = fmt.Sprintf("simplified: %v", m.showSimplified)
		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.Reset):
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case key.Matches(msg, m.keys.Select):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(funcItem); ok {
					m.selectFunction(it.kind)
				}
			}
		case key.Matches(msg, m.keys.Paste):
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case key.Matches(msg, m.keys.Sampled):
			if m.src != sourceSampled {
				m.selectFunction(m.kind)
			}
		case key.Matches(msg, m.keys.Export):
			if len(m.simplified) > 0 {
				m.popup = geom.MarshalWKT(m.simplified)
				m.status = fmt.Sprintf("wkt: %d points", len(m.simplified))
			}
		case key.Matches(msg, m.keys.Inspect):
			m.inspect()
		case key.Matches(msg, m.keys.Table):
			m.showTable = true
			m.refreshTable()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.Up):
			m.offsetY -= 1
		case key.Matches(msg, m.keys.Down):
			m.offsetY += 1
		case key.Matches(msg, m.keys.Left):
			m.offsetX -= 2
		case key.Matches(msg, m.keys.Right):
			m.offsetX += 2
		case m.showSidebar:
			// unbound keys (filter, paging) belong to the picker
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass non-key messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case key.Matches(msg, m.keys.Select):
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		if !m.loadWKT(w) {
			return m, nil
		}
		m.status = "rendered WKT  " + m.summary()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// adjust moves the active slider and recomputes. Sampling sliders are inert
// while a pasted polyline is the source.
func (m *Model) adjust(n int, big bool) {
	s := sliders[m.active]
	if s.sampling && m.src == sourcePasted {
		m.status = s.name + ": pasted source (press s to sample)"
		return
	}
	m.params = s.adjust(m.params, n, big)
	m.recompute()
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.zoom < 64 {
			m.zoom *= 1.2
		}
		return
	case tea.MouseButtonWheelDown:
		if m.zoom > 0.05 {
			m.zoom /= 1.2
		}
		return
	}
	lay := m.layout()
	if !lay.inMap(msg.X, msg.Y) {
		m.hovering = false
		m.hoverHasXY = false
		return
	}
	m.hovering = true
	m.hoverCellX = msg.X - lay.mapX
	m.hoverCellY = msg.Y - lay.mapY
	// plot coordinates for the footer
	m.hoverX, m.hoverY, m.hoverHasXY = m.cellToXY(m.hoverCellX, m.hoverCellY, lay.mapW, lay.mapH)
	// find nearest retained vertex using micro coords
	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	for _, p := range m.simplified {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, lay.mapW, lay.mapH)
		if !ok {
			continue
		}
		dx := mx - hxMic
		dy := my - hyMic
		d := dx*dx + dy*dy
		if d < best {
			best = d
			bx, by = mx, my
		}
	}
	m.hoverMicX, m.hoverMicY = bx, by
}

// inspect fills the popup with details about the retained vertex nearest the
// view centre.
func (m *Model) inspect() {
	i, ok := m.inspectNearest()
	if !ok {
		m.popup = "no vertex nearby"
		m.status = m.popup
		return
	}
	p := m.simplified[i]
	meta := []string{
		fmt.Sprintf("source: %s", m.sourceName()),
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		fmt.Sprintf("counts: samples=%d simplified=%d", len(m.samples), len(m.simplified)),
		fmt.Sprintf("nearest: #%d (sample %d)", i+1, m.kept[i]),
		fmt.Sprintf("x=%.6f y=%.6f", p.X, p.Y),
		fmt.Sprintf("epsilon: %g", m.params.Epsilon),
		fmt.Sprintf("metric: %s  scan: %s", m.opts.Metric, m.opts.Scan),
	}
	m.popup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
