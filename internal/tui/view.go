package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	highlightStyle = lipgloss.NewStyle().Reverse(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true)
)

const tabDivider = "│ "

func (m browserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	geo := layout(m.width, m.height)
	left := m.renderVolumeList(geo.list)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabHeader(geo.header),
		m.renderDetail(geo.detail),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m browserModel) renderVolumeList(area rect) string {
	innerWidth := max(area.w-2, 0)
	innerHeight := max(area.h-2, 0)

	end := min(m.offset+innerHeight, len(m.volumes))
	lines := make([]string, 0, innerHeight)
	for i := m.offset; i < end; i++ {
		v := m.volumes[i]
		label := truncate(m.icons.forType(v.Type())+v.Name(), innerWidth)
		if i == m.selected {
			label = highlightStyle.Render(padRight(label, innerWidth))
		}
		lines = append(lines, label)
	}

	return panelStyle.Width(innerWidth).Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

func (m browserModel) renderTabHeader(area rect) string {
	parts := make([]string, 0, tabCount)
	for _, t := range allTabs() {
		title := t.title()
		if t == m.activeTab {
			title = activeTabStyle.Render(title)
		}
		parts = append(parts, title)
	}

	return lipgloss.NewStyle().
		Width(area.w).
		MaxWidth(area.w).
		MaxHeight(1).
		Render(strings.Join(parts, tabDivider))
}

func (m browserModel) renderDetail(area rect) string {
	innerWidth := max(area.w-2, 0)
	innerHeight := max(area.h-2, 0)

	var content string
	switch m.activeTab {
	case tabVolumeShow:
		if v, ok := m.selectedVolume(); ok {
			content = v.Pretty()
		} else {
			content = "No volume selected"
		}
	case tabScans:
		content = "Scans tab content coming soon..."
	case tabBrowse:
		content = "Browse tab content coming soon..."
	}

	wrapped := lipgloss.NewStyle().Width(innerWidth).Render(content)
	return panelStyle.Width(innerWidth).Height(innerHeight).
		Render(clampLines(wrapped, innerHeight))
}

func clampLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func padRight(s string, width int) string {
	if pad := width - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
