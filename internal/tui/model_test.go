package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfishstorage/sfcli/internal/client"
)

func testVolumes(names ...string) []client.Volume {
	vols := make([]client.Volume, 0, len(names))
	for _, name := range names {
		vols = append(vols, client.Volume{"vol": name, "type": "linux"})
	}
	return vols
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m browserModel, msg tea.Msg) (browserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(browserModel)
	if !ok {
		t.Fatalf("Update returned %T, want browserModel", next)
	}
	return model, cmd
}

func sizedModel(t *testing.T, names ...string) browserModel {
	t.Helper()
	m := newBrowserModel(testVolumes(names...), "text")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestNewBrowserModelSortsByName(t *testing.T) {
	m := newBrowserModel(testVolumes("b", "a"), "text")

	if got := m.volumes[0].Name(); got != "a" {
		t.Fatalf("expected first volume a, got %s", got)
	}
	if got := m.volumes[1].Name(); got != "b" {
		t.Fatalf("expected second volume b, got %s", got)
	}
	if m.selected != 0 {
		t.Fatalf("expected selected 0, got %d", m.selected)
	}
	if m.activeTab != tabVolumeShow {
		t.Fatalf("expected initial tab VolumeShow, got %v", m.activeTab)
	}
}

func TestNewBrowserModelMissingNameSortsFirst(t *testing.T) {
	vols := []client.Volume{
		{"vol": "a", "type": "linux"},
		{"type": "windows"},
	}
	m := newBrowserModel(vols, "text")

	if got := m.volumes[0].Name(); got != "" {
		t.Fatalf("expected unnamed volume first, got %q", got)
	}
}

func TestNewBrowserModelEmptyList(t *testing.T) {
	m := newBrowserModel(nil, "text")

	if m.selected != -1 {
		t.Fatalf("expected no selection for empty list, got %d", m.selected)
	}
	if _, ok := m.selectedVolume(); ok {
		t.Fatal("expected no selected volume for empty list")
	}
}

func TestSelectNextWraps(t *testing.T) {
	m := newBrowserModel(testVolumes("a", "b", "c"), "text")
	m.selected = 2

	m.selectNext()
	if m.selected != 0 {
		t.Fatalf("expected wrap to 0, got %d", m.selected)
	}

	// N steps from index 0 must land back on index 0.
	for i := 0; i < len(m.volumes); i++ {
		m.selectNext()
	}
	if m.selected != 0 {
		t.Fatalf("expected full cycle back to 0, got %d", m.selected)
	}
}

func TestSelectPreviousWraps(t *testing.T) {
	m := newBrowserModel(testVolumes("a", "b", "c"), "text")

	m.selectPrevious()
	if m.selected != 2 {
		t.Fatalf("expected wrap to last index, got %d", m.selected)
	}
}

func TestSelectNextThenPreviousRestoresIndex(t *testing.T) {
	m := newBrowserModel(testVolumes("a", "b", "c", "d"), "text")

	for start := 0; start < len(m.volumes); start++ {
		m.selected = start
		m.selectNext()
		m.selectPrevious()
		if m.selected != start {
			t.Fatalf("next+previous from %d landed on %d", start, m.selected)
		}
		m.selectPrevious()
		m.selectNext()
		if m.selected != start {
			t.Fatalf("previous+next from %d landed on %d", start, m.selected)
		}
	}
}

func TestNavigationOnEmptyList(t *testing.T) {
	m := newBrowserModel(nil, "text")

	m.selectNext()
	if m.selected != -1 {
		t.Fatalf("selectNext on empty list changed selection to %d", m.selected)
	}
	m.selectPrevious()
	if m.selected != -1 {
		t.Fatalf("selectPrevious on empty list changed selection to %d", m.selected)
	}
}

func TestSelectRowValidation(t *testing.T) {
	m := newBrowserModel(testVolumes("a", "b", "c"), "text")

	m.selectRow(2)
	if m.selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.selected)
	}

	m.selectRow(3)
	if m.selected != 2 {
		t.Fatalf("out-of-range row changed selection to %d", m.selected)
	}

	m.selectRow(-1)
	if m.selected != 2 {
		t.Fatalf("negative row changed selection to %d", m.selected)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newBrowserModel(nil, "text")

	_, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestUpdateNavigationKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want int
	}{
		{"j moves down", runeKey("j"), 1},
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"k wraps up", runeKey("k"), 2},
		{"up arrow wraps up", tea.KeyMsg{Type: tea.KeyUp}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sizedModel(t, "a", "b", "c")
			m, _ = update(t, m, tt.msg)
			if m.selected != tt.want {
				t.Fatalf("expected selection %d, got %d", tt.want, m.selected)
			}
		})
	}
}

func TestUpdateTabKeys(t *testing.T) {
	m := sizedModel(t, "a")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabScans {
		t.Fatalf("expected Scans after right, got %v", m.activeTab)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabVolumeShow {
		t.Fatalf("expected VolumeShow after left, got %v", m.activeTab)
	}

	// Left from the first tab stays put.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabVolumeShow {
		t.Fatalf("expected VolumeShow to clamp, got %v", m.activeTab)
	}
}

func TestUpdateTabShortcuts(t *testing.T) {
	m := sizedModel(t, "a")
	m.activeTab = tabBrowse

	m, _ = update(t, m, runeKey("2"))
	if m.activeTab != tabScans {
		t.Fatalf("expected Scans after '2', got %v", m.activeTab)
	}

	// Unrecognized characters leave the tab untouched.
	m, _ = update(t, m, runeKey("x"))
	if m.activeTab != tabScans {
		t.Fatalf("expected 'x' to be a no-op, got %v", m.activeTab)
	}
}

func TestMousePressSelectsRow(t *testing.T) {
	m := sizedModel(t, "a", "b", "c")

	// Row 0 of the list sits below the border at y=1; the second item
	// is at y=2.
	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.selected != 1 {
		t.Fatalf("expected selection 1, got %d", m.selected)
	}
}

func TestMousePressBelowListIsNoop(t *testing.T) {
	m := sizedModel(t, "a", "b")

	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.selected != 0 {
		t.Fatalf("press below the last row changed selection to %d", m.selected)
	}
}

func TestMousePressSelectsTab(t *testing.T) {
	m := sizedModel(t, "a")

	// Width 100 puts the header at x=20; each tab spans tabWidth+2
	// columns, so the third tab starts at x=20+34.
	m, _ = update(t, m, tea.MouseMsg{
		X:      20 + 2*(tabWidth+tabDividerWidth) + 1,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.activeTab != tabBrowse {
		t.Fatalf("expected Browse after header press, got %v", m.activeTab)
	}
}

func TestMousePressInDetailBodyIsNoop(t *testing.T) {
	m := sizedModel(t, "a", "b")
	m.selected = 1

	m, _ = update(t, m, tea.MouseMsg{
		X:      50,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.selected != 1 || m.activeTab != tabVolumeShow {
		t.Fatal("press in the detail body should not change state")
	}
}

func TestMouseWheelIgnored(t *testing.T) {
	m := sizedModel(t, "a", "b", "c")

	// Wheel ticks are delivered as press actions with wheel buttons;
	// neither the list highlight nor the active tab may react.
	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	if m.selected != 0 {
		t.Fatalf("wheel over the list changed selection to %d", m.selected)
	}

	m, _ = update(t, m, tea.MouseMsg{
		X:      20 + 2*(tabWidth+tabDividerWidth) + 1,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelUp,
	})
	if m.activeTab != tabVolumeShow {
		t.Fatalf("wheel over the header changed tab to %v", m.activeTab)
	}
}

func TestMouseNonPressIgnored(t *testing.T) {
	m := sizedModel(t, "a", "b")

	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      2,
		Action: tea.MouseActionMotion,
	})
	if m.selected != 0 {
		t.Fatalf("motion event changed selection to %d", m.selected)
	}
}

func TestListScrollsWithSelection(t *testing.T) {
	m := newBrowserModel(testVolumes("vol-a", "vol-b", "vol-c", "vol-d", "vol-e", "vol-f"), "text")
	// Height 6 leaves 4 rows inside the list border.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 6})

	for i := 0; i < 4; i++ {
		m.selectNext()
	}
	if m.selected != 4 || m.offset != 1 {
		t.Fatalf("expected selection 4 at offset 1, got %d at %d", m.selected, m.offset)
	}

	out := m.View()
	if strings.Contains(out, "vol-a") {
		t.Fatal("expected first row to scroll out of view")
	}
	if !strings.Contains(out, "vol-e") {
		t.Fatal("expected selected row to be visible")
	}

	// Wrapping back to the top scrolls the viewport back with it.
	m.selectNext()
	m.selectNext()
	if m.selected != 0 || m.offset != 0 {
		t.Fatalf("expected wrap to selection 0 at offset 0, got %d at %d", m.selected, m.offset)
	}

	// Wrapping up from the top shows the end of the list.
	m.selectPrevious()
	if m.selected != 5 || m.offset != 2 {
		t.Fatalf("expected selection 5 at offset 2, got %d at %d", m.selected, m.offset)
	}
}

func TestMousePressMapsThroughScrollOffset(t *testing.T) {
	m := newBrowserModel(testVolumes("vol-a", "vol-b", "vol-c", "vol-d", "vol-e", "vol-f"), "text")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 6})
	m.selectPrevious() // wrap to the last row, scrolling to offset 2

	// The first visible row now holds the item at the offset.
	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.selected)
	}

	// A press on the bottom border maps past the viewport and is a no-op.
	m, _ = update(t, m, tea.MouseMsg{
		X:      2,
		Y:      5,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.selected != 2 {
		t.Fatalf("border press changed selection to %d", m.selected)
	}
}

func TestViewRendersPlaceholdersWhenEmpty(t *testing.T) {
	m := newBrowserModel(nil, "text")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	if out == "" {
		t.Fatal("expected non-empty frame")
	}
	if !strings.Contains(out, "No volume selected") {
		t.Fatal("expected empty-list placeholder in detail panel")
	}
}
