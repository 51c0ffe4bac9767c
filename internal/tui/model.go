package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfishstorage/sfcli/internal/client"
)

// browserModel holds the browser state: the sorted volume list, the
// highlighted row and the active tab. All state is owned by the Bubble
// Tea event loop; each message is dispatched synchronously and the whole
// frame is re-rendered from this state.
type browserModel struct {
	volumes   []client.Volume
	selected  int // index into volumes, -1 when the list is empty
	offset    int // first list row in view, keeps the selection on-screen
	activeTab tab
	icons     iconSet
	width     int
	height    int
}

func newBrowserModel(volumes []client.Volume, iconMode string) browserModel {
	sorted := make([]client.Volume, len(volumes))
	copy(sorted, volumes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	selected := -1
	if len(sorted) > 0 {
		selected = 0
	}

	return browserModel{
		volumes:   sorted,
		selected:  selected,
		activeTab: tabVolumeShow,
		icons:     pickIconSet(iconMode),
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToSelected()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.selectNext()
		case "k", "up":
			m.selectPrevious()
		case "right":
			m.activeTab = m.activeTab.next()
		case "left":
			m.activeTab = m.activeTab.previous()
		default:
			if t, ok := tabFromKey(msg.String()); ok {
				m.activeTab = t
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

// selectNext moves the highlight down one row, wrapping to the top.
func (m *browserModel) selectNext() {
	if len(m.volumes) == 0 {
		m.selected = -1
		return
	}
	m.selected = (m.selected + 1) % len(m.volumes)
	m.scrollToSelected()
}

// selectPrevious moves the highlight up one row, wrapping to the bottom.
func (m *browserModel) selectPrevious() {
	if len(m.volumes) == 0 {
		m.selected = -1
		return
	}
	if m.selected <= 0 {
		m.selected = len(m.volumes) - 1
	} else {
		m.selected--
	}
	m.scrollToSelected()
}

// selectRow highlights the given row if it is a valid list index.
func (m *browserModel) selectRow(row int) {
	if row >= 0 && row < len(m.volumes) {
		m.selected = row
		m.scrollToSelected()
	}
}

// visibleRows returns how many list rows fit inside the panel border.
// Before the first window size arrives the whole list counts as visible.
func (m browserModel) visibleRows() int {
	if m.height == 0 {
		return len(m.volumes)
	}
	return max(layout(m.width, m.height).list.h-2, 0)
}

// scrollToSelected adjusts the list offset so the highlighted row stays
// inside the viewport.
func (m *browserModel) scrollToSelected() {
	visible := m.visibleRows()
	if visible <= 0 || m.selected < 0 {
		m.offset = 0
		return
	}
	if maxOffset := len(m.volumes) - visible; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
	if m.selected < m.offset {
		m.offset = m.selected
	} else if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
}

// selectTabIndex activates the tab at the given header position if valid.
func (m *browserModel) selectTabIndex(index int) {
	if t, ok := tabFromIndex(index); ok {
		m.activeTab = t
	}
}

func (m *browserModel) handleMouse(msg tea.MouseMsg) {
	// Wheel ticks arrive as press actions with wheel buttons, so the
	// action check alone does not exclude them.
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return
	}

	geo := layout(m.width, m.height)
	switch {
	case geo.list.contains(msg.X, msg.Y):
		// The first visible row sits one line below the panel's top
		// border; the offset maps it back to a list index.
		relRow := msg.Y - (geo.list.y + 1)
		if relRow >= 0 && relRow < max(geo.list.h-2, 0) {
			m.selectRow(m.offset + relRow)
		}
	case geo.header.contains(msg.X, msg.Y):
		m.selectTabIndex((msg.X - geo.header.x) / (tabWidth + tabDividerWidth))
	}
}

func (m browserModel) selectedVolume() (client.Volume, bool) {
	if m.selected < 0 || m.selected >= len(m.volumes) {
		return nil, false
	}
	return m.volumes[m.selected], true
}
