package render

import "strings"

// buildFooterHelpText returns the key binding hint line.
func buildFooterHelpText() string {
	return " " + strings.Join(footerHelpSegments(), " | ") + " "
}

func footerHelpSegments() []string {
	return []string{
		"↑/↓: navigate",
		"Enter: open",
		"H: hidden files",
		"Q: quit",
	}
}

// hiddenStatusText describes the hidden-file policy for the header.
func hiddenStatusText(showHidden bool) string {
	if showHidden {
		return "hidden files shown"
	}
	return "hidden files hidden"
}
