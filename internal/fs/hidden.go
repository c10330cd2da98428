package fs

import "strings"

// HiddenPrefix marks names excluded from listings unless hidden files are shown.
const HiddenPrefix = "."

// IsHidden reports whether name is covered by the hidden-file policy.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}
