package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToXY converts a plot cell coordinate back to curve coordinates using
// bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*m.bbox.Width()
	y := m.bbox.MinY + ny*m.bbox.Height()
	return x, y, true
}

// renderPlot draws the samples and the simplified polyline into a w×h
// braille canvas. Cells touched by the simplified polyline take its color.
func (m Model) renderPlot(w, h int) string {
	samples := newBrailleBuf(w, h)
	simp := newBrailleBuf(w, h)

	if m.showSamples {
		var line [][2]int
		for _, p := range m.samples {
			mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
			if !ok {
				continue
			}
			line = append(line, [2]int{mx, my})
		}
		samples.drawPolyline(line)
	}
	if m.showSimplified {
		var line [][2]int
		for _, p := range m.simplified {
			mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
			if !ok {
				continue
			}
			line = append(line, [2]int{mx, my})
		}
		simp.drawPolyline(line)
		for _, v := range line {
			simp.setBlock(v[0], v[1])
		}
	}

	hx, hy := -1, -1
	if m.hovering && m.showSimplified && len(m.simplified) > 0 {
		hx, hy = m.hoverMicX/2, m.hoverMicY/4
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		var run []rune
		var runStyle *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle == nil {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(runStyle.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			var st *lipgloss.Style
			r := ' '
			switch {
			case x == hx && y == hy:
				st, r = &hoverStyle, '◯'
			case simp.m[y][x] != 0:
				st, r = &simpStyle, brailleRune(simp.m[y][x]|samples.m[y][x])
			case samples.m[y][x] != 0:
				st, r = &sampleStyle, brailleRune(samples.m[y][x])
			}
			if st != runStyle {
				flush()
				runStyle = st
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps curve coordinates into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / m.bbox.Width()
	ny := (y - m.bbox.MinY) / m.bbox.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps curve coordinates to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / m.bbox.Width()
	ny := (y - m.bbox.MinY) / m.bbox.Height()
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the retained vertex closest to the viewport center and
// returns its index in m.simplified.
func (m Model) inspectNearest() (int, bool) {
	if len(m.simplified) == 0 {
		return 0, false
	}
	lay := m.layout()
	w, h := lay.mapW, lay.mapH
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	best := -1
	for i, p := range m.simplified {
		sx, sy, ok := m.screenXY(p.X, p.Y, w, h)
		if !ok {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, best >= 0
}
