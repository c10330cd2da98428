package render

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// WriteANSI writes frame as styled text. Styling degrades to plain text when
// w is not a terminal.
func WriteANSI(w io.Writer, frame Frame, palette Palette) error {
	renderer := lipgloss.NewRenderer(w)
	styles := ansiStyles(renderer, palette)

	out := bufio.NewWriter(w)
	for _, row := range frame.Rows {
		for _, seg := range row {
			if _, err := out.WriteString(styles[seg.Style].Render(seg.Text)); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return out.Flush()
}

func ansiStyles(r *lipgloss.Renderer, p Palette) map[CellStyle]lipgloss.Style {
	fg := func(value string) lipgloss.TerminalColor {
		if value == "" {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(value)
	}
	base := r.NewStyle()
	return map[CellStyle]lipgloss.Style{
		StyleNormal:    base,
		StyleHeader:    base.Foreground(fg(p.HeaderFg)).Bold(true),
		StyleRule:      base.Foreground(fg(p.DimFg)),
		StyleSelected:  base.Background(fg(p.SelectionBg)).Foreground(fg(p.SelectionFg)).Bold(true),
		StyleDirectory: base.Foreground(fg(p.DirectoryFg)),
		StyleDim:       base.Foreground(fg(p.DimFg)),
		StyleNotice:    base.Foreground(fg(p.NoticeFg)).Bold(true),
	}
}
