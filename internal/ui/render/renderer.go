package render

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer paints frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render clears the screen and paints the whole frame in one Show.
func (r *Renderer) Render(frame Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	for y, row := range frame.Rows {
		if y >= h {
			break
		}
		x := 0
		for _, seg := range row {
			x = r.drawTextLine(x, y, w-x, seg.Text, r.theme.Style(seg.Style))
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		// zero-width runes (combining marks, variation selectors) ride on the
		// previous cell
		var combc []rune
		for i < len(runes) && runeCellWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runeCellWidth(mainc)
		if w == 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}
