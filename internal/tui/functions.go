package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"rdplot/internal/geom"
)

type funcItem struct {
	kind geom.Kind
}

func (f funcItem) Title() string       { return f.kind.String() }
func (f funcItem) Description() string { return f.kind.Describe() }
func (f funcItem) FilterValue() string { return f.kind.String() }

func functionItems() []list.Item {
	var items []list.Item
	for _, k := range geom.Kinds() {
		items = append(items, funcItem{kind: k})
	}
	return items
}

// selectFunction switches the source to the sampled curve k.
func (m *Model) selectFunction(k geom.Kind) {
	m.kind = k
	m.src = sourceSampled
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.recompute()
	m.status = "function: " + k.Describe() + "  " + m.summary()
}
