package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	fsutil "github.com/kk-code-lab/twopane/internal/fs"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// previewDirLimit caps how many children a directory preview lists.
	previewDirLimit = 20
	// previewCharLimit caps how many characters of a file a preview shows.
	previewCharLimit = 1000
	// previewMaxFileSize is the size from which files are not read at all.
	previewMaxFileSize int64 = 1_000_000
)

const (
	previewPrompt        = "Select a file or directory to preview"
	previewParent        = "📁 Parent directory\nPress Enter to go back"
	previewEmptyFile     = "(empty file)"
	previewTruncated     = "\n\n... (file truncated for preview)"
	previewTooLarge      = "❌ File too large to preview (>1MB)"
	previewDirErrorHead  = "❌ Cannot access directory:\n"
	previewFileErrorHead = "❌ Cannot read file:\n"
)

// Filesystem access used by previews, overridable in tests.
var (
	previewReadNamesFn = fsutil.ReadNames
	previewProbeFn     = fsutil.Probe
	previewStatFn      = os.Stat
	previewReadFileFn  = os.ReadFile
)

// TimeFormatter renders modification times in previews.
type TimeFormatter func(time.Time) string

// DefaultTimeFormat formats t in the local time zone.
func DefaultTimeFormat(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

// PreviewBuilder produces the right-pane text for a selected entry.
type PreviewBuilder struct {
	printer    *message.Printer
	formatTime TimeFormatter
}

// NewPreviewBuilder creates a builder that groups numbers according to tag
// and formats timestamps with formatTime (DefaultTimeFormat when nil).
func NewPreviewBuilder(tag language.Tag, formatTime TimeFormatter) *PreviewBuilder {
	if formatTime == nil {
		formatTime = DefaultTimeFormat
	}
	return &PreviewBuilder{
		printer:    message.NewPrinter(tag),
		formatTime: formatTime,
	}
}

// Build synchronously derives the preview of entry, which lives in currentPath.
// Failures are rendered into the returned text.
func (b *PreviewBuilder) Build(entry *FileEntry, currentPath string) string {
	switch {
	case entry == nil:
		return previewPrompt
	case entry.IsParent():
		return previewParent
	case entry.Kind == fsutil.KindError:
		return entry.Label
	case entry.IsDir():
		return b.directoryPreview(entry.Name, filepath.Join(currentPath, entry.Name))
	default:
		return b.filePreview(entry.Name, filepath.Join(currentPath, entry.Name))
	}
}

func (b *PreviewBuilder) directoryPreview(name, path string) string {
	children, err := previewReadNamesFn(path)
	if err != nil {
		return previewDirErrorHead + err.Error()
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "📁 Directory: %s\n\n", name)
	builder.WriteString(b.printer.Sprintf("Contains: %d items\n\n", len(children)))

	shown := children
	if len(shown) > previewDirLimit {
		shown = shown[:previewDirLimit]
	}
	for _, child := range shown {
		kind := previewProbeFn(filepath.Join(path, child))
		fmt.Fprintf(&builder, "%s %s\n", fsutil.KindIcon(kind), child)
	}

	if rest := len(children) - len(shown); rest > 0 {
		builder.WriteString(b.printer.Sprintf("\n... and %d more items", rest))
	}
	return builder.String()
}

func (b *PreviewBuilder) filePreview(name, path string) string {
	info, err := previewStatFn(path)
	if err != nil {
		return previewFileErrorHead + err.Error()
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "📄 File: %s\n", name)
	builder.WriteString(b.printer.Sprintf("Size: %d bytes\n", info.Size()))
	fmt.Fprintf(&builder, "Modified: %s\n\n", b.formatTime(info.ModTime()))

	size := info.Size()
	switch {
	case size <= 0:
		builder.WriteString(previewEmptyFile)
	case size >= previewMaxFileSize:
		builder.WriteString(previewTooLarge)
	default:
		content, err := previewReadFileFn(path)
		if err != nil {
			return previewFileErrorHead + err.Error()
		}
		text, truncated := truncateRunes(fsutil.DecodeText(content), previewCharLimit)
		builder.WriteString(text)
		if truncated {
			builder.WriteString(previewTruncated)
		}
	}
	return builder.String()
}

// truncateRunes returns the first limit runes of text and whether anything
// was cut off.
func truncateRunes(text string, limit int) (string, bool) {
	count := 0
	for i := range text {
		if count == limit {
			return text[:i], true
		}
		count++
	}
	return text, false
}
