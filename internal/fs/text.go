package fs

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText decodes file content as text without any binary detection.
// A UTF-8 or UTF-16 byte order mark selects the encoding; anything else is
// treated as UTF-8 with invalid sequences replaced by U+FFFD.
func DecodeText(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return string(content)
	}
	return string(decoded)
}
