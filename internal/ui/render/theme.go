package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the color of each frame role. Colors are ANSI 256 palette
// indexes ("33") or hex triplets ("#0087ff"); empty means terminal default.
type Palette struct {
	HeaderFg    string `yaml:"header"`
	SelectionBg string `yaml:"selection_bg"`
	SelectionFg string `yaml:"selection_fg"`
	DirectoryFg string `yaml:"directory"`
	DimFg       string `yaml:"dim"`
	NoticeFg    string `yaml:"notice"`
}

// DefaultPalette returns the default color scheme.
func DefaultPalette() Palette {
	return Palette{
		HeaderFg:    "33",
		SelectionBg: "33",
		SelectionFg: "15",
		DirectoryFg: "33",
		DimFg:       "245",
		NoticeFg:    "160",
	}
}

// Merge returns p with empty fields taken from fallback.
func (p Palette) Merge(fallback Palette) Palette {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Palette{
		HeaderFg:    pick(p.HeaderFg, fallback.HeaderFg),
		SelectionBg: pick(p.SelectionBg, fallback.SelectionBg),
		SelectionFg: pick(p.SelectionFg, fallback.SelectionFg),
		DirectoryFg: pick(p.DirectoryFg, fallback.DirectoryFg),
		DimFg:       pick(p.DimFg, fallback.DimFg),
		NoticeFg:    pick(p.NoticeFg, fallback.NoticeFg),
	}
}

// ColorTheme maps frame roles to tcell styles.
type ColorTheme struct {
	styles map[CellStyle]tcell.Style
}

// NewColorTheme builds the tcell styles for palette.
func NewColorTheme(p Palette) ColorTheme {
	base := tcell.StyleDefault
	return ColorTheme{styles: map[CellStyle]tcell.Style{
		StyleNormal:    base,
		StyleHeader:    base.Foreground(tcellColor(p.HeaderFg)).Bold(true),
		StyleRule:      base.Foreground(tcellColor(p.DimFg)),
		StyleSelected:  base.Background(tcellColor(p.SelectionBg)).Foreground(tcellColor(p.SelectionFg)).Bold(true),
		StyleDirectory: base.Foreground(tcellColor(p.DirectoryFg)),
		StyleDim:       base.Foreground(tcellColor(p.DimFg)),
		StyleNotice:    base.Foreground(tcellColor(p.NoticeFg)).Bold(true),
	}}
}

// Style returns the tcell style for a role.
func (t ColorTheme) Style(role CellStyle) tcell.Style {
	if style, ok := t.styles[role]; ok {
		return style
	}
	return tcell.StyleDefault
}

func tcellColor(value string) tcell.Color {
	if value == "" {
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(value)
}

// ValidColor reports whether value is accepted by both painters.
func ValidColor(value string) bool {
	if value == "" {
		return true
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n >= 0 && n < 256
	}
	return len(value) == 7 && value[0] == '#' && tcell.GetColor(value) != tcell.ColorDefault
}
