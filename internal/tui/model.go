package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"rdplot/internal/geom"
)

// Config seeds a Model.
type Config struct {
	Params  Params
	Kind    geom.Kind
	Options geom.Options
	// Logger receives debug records; nil uses geom.Logger().
	Logger *slog.Logger
}

// DefaultConfig samples sin(2πx) with the default slider values.
func DefaultConfig() Config {
	return Config{Params: DefaultParams, Kind: geom.Sine, Options: geom.DefaultOptions}
}

type source int

const (
	sourceSampled source = iota
	sourcePasted
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Inputs
	params Params
	active int // index into sliders
	kind   geom.Kind
	opts   geom.Options
	src    source
	pasted []geom.Point

	// Data
	samples    []geom.Point
	simplified []geom.Point
	kept       []int // indices of simplified within samples
	bbox       geom.BBox

	// Function picker
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showSamples    bool
	showSimplified bool

	// inspect / export popup
	popup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int
	hoverHasXY bool
	hoverX     float64
	hoverY     float64

	// retained point table
	showTable bool
	tbl       table.Model

	keys  keyMap
	help  help.Model
	gauge progress.Model

	log *slog.Logger
}

func New(cfg Config) Model {
	m := Model{
		helpVisible:    true,
		zoom:           1.0,
		params:         cfg.Params.Clamp(),
		active:         len(sliders) - 1,
		kind:           cfg.Kind,
		opts:           cfg.Options,
		showSamples:    true,
		showSimplified: true,
		keys:           defaultKeyMap(),
		help:           help.New(),
		gauge:          progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(16)),
		log:            cfg.Logger,
	}
	if m.log == nil {
		m.log = geom.Logger()
	}
	// function picker setup
	d := list.NewDefaultDelegate()
	m.l = list.New(functionItems(), d, sidebarWidth-2, 20)
	m.l.Title = "Functions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.l.Select(int(m.kind))
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (LINESTRING, MULTIPOINT). Press Enter to simplify; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// point table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.recompute()
	return m
}

// NewWithWKT starts with a pasted polyline as the source instead of the
// sampled function.
func NewWithWKT(cfg Config, wkt string) Model {
	m := New(cfg)
	m.loadWKT(wkt)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// recompute refreshes samples and the simplified polyline from the inputs.
func (m *Model) recompute() {
	src := m.pasted
	if m.src == sourceSampled {
		pts, err := geom.Sampler{Func: m.kind.Func()}.Sample(m.params.Start, m.params.End, m.params.Steps)
		if err != nil {
			m.status = "sample error: " + err.Error()
			return
		}
		src = pts
	}
	m.samples = src
	m.bbox = geom.Bounds(src)
	kept, err := geom.SimplifyIndices(src, m.params.Epsilon, m.opts)
	if err != nil {
		m.kept, m.simplified = nil, nil
		m.status = "simplify error: " + err.Error()
		return
	}
	m.kept = kept
	m.simplified = make([]geom.Point, len(kept))
	for i, j := range kept {
		m.simplified[i] = src[j]
	}
	m.status = m.summary()
	if m.showTable {
		m.refreshTable()
	}
	m.log.Debug("recomputed",
		"source", m.sourceName(),
		"samples", len(m.samples),
		"simplified", len(m.simplified),
		"epsilon", m.params.Epsilon)
}

func (m Model) summary() string {
	return fmt.Sprintf("samples=%d simplified=%d  metric=%s scan=%s", len(m.samples), len(m.simplified), m.opts.Metric, m.opts.Scan)
}

func (m Model) sourceName() string {
	if m.src == sourcePasted {
		return "pasted"
	}
	return m.kind.Describe()
}

// loadWKT replaces the source with a pasted polyline.
func (m *Model) loadWKT(s string) bool {
	pts, err := geom.ParseWKT(s)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return false
	}
	m.pasted = pts
	m.src = sourcePasted
	// reset viewport for immediate visibility
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.recompute()
	return true
}
