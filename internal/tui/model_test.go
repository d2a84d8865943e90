package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp/cmpopts"

	"rdplot/internal/geom"
)

const zigzag = "LINESTRING(0 0, 1 0, 2 0, 3 5, 4 0)"

func TestNewSamplesAndSimplifies(t *testing.T) {
	m := New(DefaultConfig())
	if len(m.samples) != 300 {
		t.Fatalf("got %d samples, want 300", len(m.samples))
	}
	if n := len(m.simplified); n < 2 || n >= 300 {
		t.Fatalf("got %d simplified points", n)
	}
	if m.kept[0] != 0 || m.kept[len(m.kept)-1] != 299 {
		t.Errorf("endpoints not kept: %v", m.kept)
	}
	if !strings.Contains(m.status, "samples=300") {
		t.Errorf("status = %q", m.status)
	}
	if sliders[m.active].name != "epsilon" {
		t.Errorf("active slider = %s, want epsilon", sliders[m.active].name)
	}
}

func TestNewClampsParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params = Params{Start: 0, End: 9, Steps: 3, Epsilon: 2}
	m := New(cfg)
	diff(t, Params{Start: 0, End: MaxX, Steps: MinSteps, Epsilon: MaxEpsilon}, m.params)
	if len(m.samples) != MinSteps {
		t.Errorf("got %d samples, want %d", len(m.samples), MinSteps)
	}
}

func TestEpsilonSlider(t *testing.T) {
	m := New(DefaultConfig())
	prev := len(m.simplified)

	m = press(t, m, ".")
	diff(t, 0.055, m.params.Epsilon, cmpopts.EquateApprox(0, 1e-12))

	for i := 0; i < 12; i++ {
		m = press(t, m, ">")
		if n := len(m.simplified); n > prev {
			t.Fatalf("raising epsilon to %g kept %d points, was %d", m.params.Epsilon, n, prev)
		}
		prev = len(m.simplified)
	}
	if m.params.Epsilon != MaxEpsilon {
		t.Errorf("epsilon = %g, want clamped to %g", m.params.Epsilon, MaxEpsilon)
	}
}

func TestStepsSlider(t *testing.T) {
	m := New(DefaultConfig())
	m = press(t, m, "[")
	if sliders[m.active].name != "steps" {
		t.Fatalf("active slider = %s", sliders[m.active].name)
	}
	m = press(t, m, "<")
	if len(m.samples) != 200 {
		t.Errorf("got %d samples, want 200", len(m.samples))
	}
	m = press(t, m, "<", "<", "<", "<", "<")
	if m.params.Steps != MinSteps || len(m.samples) != MinSteps {
		t.Errorf("steps = %d with %d samples, want %d", m.params.Steps, len(m.samples), MinSteps)
	}

	m = press(t, m, "]", "]")
	if sliders[m.active].name != "start" {
		t.Errorf("slider selection should wrap, got %s", sliders[m.active].name)
	}
}

func TestMetricAndScanToggles(t *testing.T) {
	m := New(DefaultConfig())
	m = press(t, m, "m")
	if m.opts.Metric != geom.Perpendicular {
		t.Errorf("metric = %v", m.opts.Metric)
	}
	m = press(t, m, "b")
	if m.opts.Scan != geom.ScanSkipLast {
		t.Errorf("scan = %v", m.opts.Scan)
	}
	if !strings.Contains(m.status, "metric=perpendicular scan=skiplast") {
		t.Errorf("status = %q", m.status)
	}
	m = press(t, m, "m", "b")
	diff(t, geom.DefaultOptions, m.opts)
}

func TestPasteWKT(t *testing.T) {
	m := New(DefaultConfig())
	m = press(t, m, "p")
	if !m.pasteMode {
		t.Fatal("expected paste mode")
	}
	m = press(t, m, zigzag, "enter")
	if m.pasteMode {
		t.Fatalf("still in paste mode, status %q", m.status)
	}
	if m.src != sourcePasted || len(m.samples) != 5 {
		t.Fatalf("source %v with %d points", m.src, len(m.samples))
	}
	diff(t, []int{0, 2, 3, 4}, m.kept)

	// The point before the last is invisible to the legacy scan.
	m = press(t, m, "b")
	diff(t, []int{0, 4}, m.kept)

	// Sampling sliders do nothing for a pasted source.
	m = press(t, m, "[", ".")
	if m.params.Steps != DefaultParams.Steps {
		t.Errorf("steps changed to %d", m.params.Steps)
	}
	if !strings.Contains(m.status, "pasted source") {
		t.Errorf("status = %q", m.status)
	}

	m = press(t, m, "s")
	if m.src != sourceSampled || len(m.samples) != 300 {
		t.Errorf("source %v with %d points after returning to sampling", m.src, len(m.samples))
	}
}

func TestPasteErrors(t *testing.T) {
	m := New(DefaultConfig())
	m = press(t, m, "p", "enter")
	if !m.pasteMode || m.status != "paste: empty" {
		t.Errorf("pasteMode=%v status=%q", m.pasteMode, m.status)
	}
	m = press(t, m, "POINT(1 2)", "enter")
	if !m.pasteMode || !strings.HasPrefix(m.status, "wkt error") {
		t.Errorf("pasteMode=%v status=%q", m.pasteMode, m.status)
	}
	if m.src != sourceSampled {
		t.Error("source changed after a failed paste")
	}
	m = press(t, m, "esc")
	if m.pasteMode {
		t.Error("esc should leave paste mode")
	}
}

func TestNewWithWKT(t *testing.T) {
	m := NewWithWKT(DefaultConfig(), zigzag)
	if m.src != sourcePasted || len(m.simplified) != 4 {
		t.Errorf("source %v, %d simplified", m.src, len(m.simplified))
	}
	if got := m.sourceName(); got != "pasted" {
		t.Errorf("sourceName = %q", got)
	}

	m = NewWithWKT(DefaultConfig(), "garbage")
	if m.src != sourceSampled || !strings.HasPrefix(m.status, "wkt error") {
		t.Errorf("source %v, status %q", m.src, m.status)
	}
}

func TestFunctionPicker(t *testing.T) {
	m := sized(t, New(DefaultConfig()))
	m = press(t, m, "tab")
	if !m.showSidebar {
		t.Fatal("sidebar not shown")
	}
	m = press(t, m, "down", "enter")
	if m.kind != geom.Cosine {
		t.Errorf("kind = %v, want cos", m.kind)
	}
	if m.samples[0].Y != 1 {
		t.Errorf("cos(0) sample = %g", m.samples[0].Y)
	}
	if !strings.HasPrefix(m.status, "function: cos(2πx)") {
		t.Errorf("status = %q", m.status)
	}
}

func TestSidebarKeysDoNotPageList(t *testing.T) {
	m := send(t, New(DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 16})
	m = press(t, m, "tab")
	if m.l.Paginator.TotalPages < 2 {
		t.Fatalf("picker has %d pages, want several", m.l.Paginator.TotalPages)
	}
	page := m.l.Paginator.Page

	m = press(t, m, "right")
	if m.offsetX != 2 {
		t.Errorf("offsetX = %d, want 2", m.offsetX)
	}
	if m.l.Paginator.Page != page {
		t.Errorf("right paged the picker: page %d, want %d", m.l.Paginator.Page, page)
	}

	m = press(t, m, "h")
	if m.helpVisible {
		t.Error("help still visible")
	}
	if m.l.Paginator.Page != page {
		t.Errorf("h paged the picker: page %d, want %d", m.l.Paginator.Page, page)
	}

	m = press(t, m, "left")
	if m.offsetX != 0 || m.l.Paginator.Page != page {
		t.Errorf("offsetX = %d, page = %d", m.offsetX, m.l.Paginator.Page)
	}
}

func TestLayersAndView(t *testing.T) {
	m := sized(t, New(DefaultConfig()))
	v := m.View()
	if !strings.Contains(v, "epsilon") || !strings.Contains(v, "rdplot") {
		t.Errorf("view missing header or sliders:\n%s", v)
	}
	if !strings.ContainsFunc(v, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("view has no braille dots")
	}

	m = press(t, m, "1", "2")
	if m.showSamples || m.showSimplified {
		t.Fatal("layers still visible")
	}
	if strings.ContainsFunc(m.View(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("hidden layers still drawn")
	}
}

func TestZoomPanReset(t *testing.T) {
	m := New(DefaultConfig())
	m = press(t, m, "+", "+", "left", "up")
	diff(t, 1.44, m.zoom, cmpopts.EquateApprox(0, 1e-12))
	if m.offsetX != -2 || m.offsetY != -1 {
		t.Errorf("offset = (%d, %d)", m.offsetX, m.offsetY)
	}
	m = press(t, m, "0")
	if m.zoom != 1 || m.offsetX != 0 || m.offsetY != 0 {
		t.Errorf("view not reset: zoom %g offset (%d, %d)", m.zoom, m.offsetX, m.offsetY)
	}
}

func TestExportAndInspect(t *testing.T) {
	m := sized(t, New(DefaultConfig()))
	m = press(t, m, "w")
	if !strings.HasPrefix(m.popup, "LINESTRING") {
		t.Errorf("popup = %q", m.popup)
	}
	pts, err := geom.ParseWKT(m.popup)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, m.simplified, pts)

	m = press(t, m, "esc")
	if m.popup != "" {
		t.Error("esc should close the popup")
	}

	m = press(t, m, "i")
	if !strings.Contains(m.popup, "nearest: #") {
		t.Errorf("popup = %q", m.popup)
	}
}

func TestPointTable(t *testing.T) {
	m := sized(t, New(DefaultConfig()))
	m = press(t, m, "t")
	if !m.showTable {
		t.Fatal("table not shown")
	}
	rows := m.tbl.Rows()
	if len(rows) != len(m.simplified) {
		t.Fatalf("got %d rows, want %d", len(rows), len(m.simplified))
	}
	if rows[0][1] != "0" || rows[len(rows)-1][1] != "299" {
		t.Errorf("sample index column: first %q last %q", rows[0][1], rows[len(rows)-1][1])
	}
	if m.View() == "" {
		t.Error("empty view with table")
	}
	// slider keys are ignored while the table has focus
	m = press(t, m, ".")
	if m.params.Epsilon != DefaultParams.Epsilon {
		t.Errorf("epsilon changed to %g", m.params.Epsilon)
	}
	m = press(t, m, "esc")
	if m.showTable {
		t.Error("esc should close the table")
	}
}

func TestMouseHover(t *testing.T) {
	m := sized(t, New(DefaultConfig()))
	m = send(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if !m.hovering || !m.hoverHasXY {
		t.Fatal("expected hover inside the plot")
	}
	if m.hoverX < m.bbox.MinX || m.hoverX > m.bbox.MaxX {
		t.Errorf("hover x %g outside %+v", m.hoverX, m.bbox)
	}
	if !strings.Contains(m.View(), "x=") {
		t.Error("footer lacks hover coordinates")
	}

	m = send(t, m, tea.MouseMsg{X: 40, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if m.hovering {
		t.Error("header row should not count as plot")
	}

	m = send(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	diff(t, 1.2, m.zoom, cmpopts.EquateApprox(0, 1e-12))
}

func TestQuit(t *testing.T) {
	m := New(DefaultConfig())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
