package tui

import "fmt"

// tabWidth is the rendered width of every title in the tab header row.
const tabWidth = 15

// tab identifies one of the three fixed views in the detail panel.
type tab int

const (
	tabVolumeShow tab = iota
	tabScans
	tabBrowse
)

const tabCount = 3

// next moves one tab to the right, clamping at the last tab.
func (t tab) next() tab {
	if t < tabBrowse {
		return t + 1
	}
	return t
}

// previous moves one tab to the left, clamping at the first tab.
func (t tab) previous() tab {
	if t > tabVolumeShow {
		return t - 1
	}
	return t
}

func (t tab) index() int {
	return int(t)
}

func (t tab) title() string {
	var base string
	switch t {
	case tabVolumeShow:
		base = "Volume Show [1]"
	case tabScans:
		base = "Scans [2]"
	case tabBrowse:
		base = "Browse [3]"
	}
	return fmt.Sprintf("%-*s", tabWidth, base)
}

func allTabs() []tab {
	return []tab{tabVolumeShow, tabScans, tabBrowse}
}

func tabFromIndex(index int) (tab, bool) {
	if index < 0 || index >= tabCount {
		return 0, false
	}
	return tab(index), true
}

func tabFromKey(key string) (tab, bool) {
	switch key {
	case "1":
		return tabVolumeShow, true
	case "2":
		return tabScans, true
	case "3":
		return tabBrowse, true
	}
	return 0, false
}
