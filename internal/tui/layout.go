package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	sliderHeight = 2
	footerHeight = 2
)

// layout holds the screen geometry shared by Update (mouse hit testing) and
// View.
type layout struct {
	contentW int
	contentH int
	sidebarW int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	var lay layout
	if m.showSidebar {
		lay.sidebarW = sidebarWidth
	}
	lay.contentH = max(4, m.height-headerHeight-sliderHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapW = max(10, lay.contentW-lay.sidebarW-1)
	lay.mapH = lay.contentH
	lay.mapX = lay.sidebarW
	if m.showSidebar {
		lay.mapX++
	}
	lay.mapY = headerHeight + sliderHeight
	return lay
}

func (l layout) inMap(x, y int) bool {
	return x >= l.mapX && x < l.mapX+l.mapW && y >= l.mapY && y < l.mapY+l.mapH
}
