package tui

import (
	"strings"
	"unicode"
)

// iconSet holds one list glyph per volume platform category. Every glyph
// carries a trailing space so the volume name can follow directly.
type iconSet struct {
	windows string
	linux   string
	virtual string
	unknown string
}

var (
	glyphIcons = iconSet{
		windows: "\uf17a ",
		linux:   "\uf17c ",
		virtual: "\uf0c2 ",
		unknown: "\uf128 ",
	}

	textIcons = iconSet{
		windows: "[W] ",
		linux:   "[L] ",
		virtual: "[V] ",
		unknown: "[?] ",
	}
)

// forType maps a volume type tag to its icon, case-insensitively. Tags
// outside the known set fall back to the unknown icon.
func (s iconSet) forType(volType string) string {
	switch strings.ToLower(volType) {
	case "windows":
		return s.windows
	case "linux":
		return s.linux
	case "virtual":
		return s.virtual
	default:
		return s.unknown
	}
}

// renderable reports whether every codepoint of every icon in the set is
// a non-control character.
func (s iconSet) renderable() bool {
	for _, icon := range []string{s.windows, s.linux, s.virtual, s.unknown} {
		for _, r := range icon {
			if unicode.IsControl(r) {
				return false
			}
		}
	}
	return true
}

// pickIconSet chooses the glyph or text set once at startup. The choice
// applies to all four categories; sets are never mixed.
func pickIconSet(mode string) iconSet {
	switch mode {
	case "unicode":
		return glyphIcons
	case "text":
		return textIcons
	default:
		if glyphIcons.renderable() {
			return glyphIcons
		}
		return textIcons
	}
}
