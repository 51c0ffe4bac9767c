package tui

// tabDividerWidth is the rendered width of the "│ " divider between tab
// titles, which fixes the click stride at tabWidth+2 columns per tab.
const tabDividerWidth = 2

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// frameGeometry is the screen split recomputed for every frame: a 20%
// bordered list panel on the left, and the right panel split into a
// one-row tab header and the detail body. Mouse coordinates are resolved
// against the same geometry the frame was drawn with.
type frameGeometry struct {
	list   rect
	header rect
	detail rect
}

func layout(width, height int) frameGeometry {
	listWidth := width * 20 / 100
	return frameGeometry{
		list:   rect{x: 0, y: 0, w: listWidth, h: height},
		header: rect{x: listWidth, y: 0, w: width - listWidth, h: 1},
		detail: rect{x: listWidth, y: 1, w: width - listWidth, h: height - 1},
	}
}
