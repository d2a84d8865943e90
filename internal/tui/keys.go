package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Sidebar    key.Binding
	Select     key.Binding
	Cancel     key.Binding
	PrevSlider key.Binding
	NextSlider key.Binding
	Dec        key.Binding
	Inc        key.Binding
	DecBig     key.Binding
	IncBig     key.Binding
	Metric     key.Binding
	Scan       key.Binding
	Samples    key.Binding
	Simplified key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Reset      key.Binding
	Paste      key.Binding
	Sampled    key.Binding
	Export     key.Binding
	Inspect    key.Binding
	Table      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Sidebar:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "functions")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
		PrevSlider: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev slider")),
		NextSlider: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next slider")),
		Dec:        key.NewBinding(key.WithKeys(","), key.WithHelp(",/.", "adjust")),
		Inc:        key.NewBinding(key.WithKeys("."), key.WithHelp(".", "increase")),
		DecBig:     key.NewBinding(key.WithKeys("<"), key.WithHelp("</>", "adjust ×10")),
		IncBig:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "increase ×10")),
		Metric:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metric")),
		Scan:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "scan")),
		Samples:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "samples")),
		Simplified: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "simplified")),
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		Down:       key.NewBinding(key.WithKeys("down")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		Reset:      key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Paste:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Sampled:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sampled")),
		Export:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wkt")),
		Inspect:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Table:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "points")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevSlider, k.Dec, k.Metric, k.Scan, k.Up, k.ZoomIn, k.Sidebar, k.Paste, k.Table, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevSlider, k.NextSlider, k.Dec, k.Inc, k.DecBig, k.IncBig},
		{k.Metric, k.Scan, k.Samples, k.Simplified},
		{k.Up, k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Sidebar, k.Select, k.Paste, k.Sampled, k.Export, k.Inspect, k.Table},
		{k.Cancel, k.Help, k.Quit},
	}
}
