package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func runeCellWidth(ru rune) int {
	width := runewidth.RuneWidth(ru)
	if width < 0 {
		return 0
	}
	return width
}

func measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeCellWidth(ru)
	}
	return width
}

// truncateTextToWidth cuts text to maxWidth columns, ending with an ellipsis
// when anything was removed.
func truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}

	if measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := measureTextWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var builder strings.Builder
	currentWidth := 0

	for _, ru := range text {
		runeWidth := runeCellWidth(ru)
		if currentWidth+runeWidth > available {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}

	builder.WriteString(ellipsis)
	return builder.String()
}

// truncateLeftToWidth trims text from the left, keeping its end, which is the
// most useful part of a path.
func truncateLeftToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := measureTextWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	runes := []rune(text)
	start := len(runes)
	currentWidth := 0
	for i := len(runes) - 1; i >= 0; i-- {
		runeWidth := runeCellWidth(runes[i])
		if currentWidth+runeWidth > available {
			break
		}
		currentWidth += runeWidth
		start = i
	}

	return ellipsis + string(runes[start:])
}

// clipTextToWidth cuts text to at most maxWidth columns without an ellipsis.
func clipTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var builder strings.Builder
	currentWidth := 0
	for _, ru := range text {
		runeWidth := runeCellWidth(ru)
		if currentWidth+runeWidth > maxWidth {
			break
		}
		builder.WriteRune(ru)
		currentWidth += runeWidth
	}
	return builder.String()
}

// fitToWidth clips or pads text to exactly width columns.
func fitToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = clipTextToWidth(text, width)
	if pad := width - measureTextWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
