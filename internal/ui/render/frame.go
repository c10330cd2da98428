package render

import (
	"strings"

	fsutil "github.com/kk-code-lab/twopane/internal/fs"
	textutil "github.com/kk-code-lab/twopane/internal/textutil"
)

// CellStyle names the role of a frame segment; painters map roles to colors.
type CellStyle int

const (
	StyleNormal CellStyle = iota
	StyleHeader
	StyleRule
	StyleSelected
	StyleDirectory
	StyleDim
	StyleNotice
)

const (
	selectedMarker   = "▶ "
	unselectedMarker = "  "
	columnSeparator  = "│"
	ruleRune         = "─"
)

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style CellStyle
}

// Row is one terminal line. Every row of a composed frame is exactly the
// frame width in columns.
type Row []Segment

// Text returns the row without styling.
func (r Row) Text() string {
	var builder strings.Builder
	for _, seg := range r {
		builder.WriteString(seg.Text)
	}
	return builder.String()
}

// Frame is a full screen worth of rows.
type Frame struct {
	Width  int
	Height int
	Rows   []Row
}

// Lines returns the frame as plain text lines.
func (f Frame) Lines() []string {
	lines := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		lines[i] = row.Text()
	}
	return lines
}

// FrameInput is everything one frame is derived from.
type FrameInput struct {
	Path       string
	ShowHidden bool
	Entries    fsutil.EntryList
	Selected   int
	Preview    string
	Notice     string
	Width      int
	Height     int
}

// ComposeFrame lays out the header, the two panes, the footer and the notice
// row. The body always has max(Height-5, 0) rows regardless of how many
// entries or preview lines there are.
func ComposeFrame(in FrameInput) Frame {
	w := in.Width
	if w < 0 {
		w = 0
	}
	layout := computeLayout(w, in.Height)

	frame := Frame{Width: w, Height: in.Height}
	if w == 0 {
		return frame
	}

	frame.Rows = append(frame.Rows, headerRow(in.Path, in.ShowHidden, w))
	frame.Rows = append(frame.Rows, ruleRow(w))

	previewLines := strings.Split(in.Preview, "\n")
	for i := 0; i < layout.bodyRows; i++ {
		frame.Rows = append(frame.Rows, bodyRow(in, previewLines, i, layout, w))
	}

	frame.Rows = append(frame.Rows, ruleRow(w))
	frame.Rows = append(frame.Rows, Row{{Text: fitToWidth(buildFooterHelpText(), w), Style: StyleDim}})
	frame.Rows = append(frame.Rows, noticeRow(in.Notice, w))

	if in.Height >= 0 && len(frame.Rows) > in.Height {
		frame.Rows = frame.Rows[:in.Height]
	}
	return frame
}

func headerRow(path string, showHidden bool, w int) Row {
	prefix := "📂 "
	suffix := " [" + hiddenStatusText(showHidden) + "]"
	path = textutil.SanitizeTerminalText(textutil.ExpandTabs(path, textutil.DefaultTabWidth))

	available := w - measureTextWidth(prefix) - measureTextWidth(suffix)
	text := prefix + truncateLeftToWidth(path, available) + suffix
	if available <= 0 {
		text = truncateLeftToWidth(path, w)
	}
	return Row{{Text: fitToWidth(text, w), Style: StyleHeader}}
}

func ruleRow(w int) Row {
	return Row{{Text: strings.Repeat(ruleRune, w), Style: StyleRule}}
}

func noticeRow(notice string, w int) Row {
	if notice == "" {
		return Row{{Text: fitToWidth("", w), Style: StyleNormal}}
	}
	return Row{{Text: fitToWidth(textutil.SanitizeTerminalText(notice), w), Style: StyleNotice}}
}

func bodyRow(in FrameInput, previewLines []string, i int, layout layoutMetrics, w int) Row {
	row := Row{leftCell(in, i, layout.leftWidth)}

	if layout.rightWidth > 0 {
		row = append(row, Segment{Text: columnSeparator, Style: StyleRule})
		line := ""
		if i < len(previewLines) {
			line = textutil.ExpandTabs(previewLines[i], textutil.DefaultTabWidth)
			line = textutil.SanitizeTerminalText(line)
			if measureTextWidth(line) > layout.rightWidth-previewReserve {
				line = truncateTextToWidth(line, layout.rightWidth-previewReserve)
			}
		}
		row = append(row, Segment{Text: fitToWidth(" "+line, layout.rightWidth), Style: StyleDim})
	}

	return fitRow(row, w)
}

func leftCell(in FrameInput, i, width int) Segment {
	if i >= len(in.Entries) {
		return Segment{Text: fitToWidth("", width), Style: StyleNormal}
	}

	entry := in.Entries[i]
	label := textutil.SanitizeTerminalText(textutil.ExpandTabs(entry.Label, textutil.DefaultTabWidth))
	if measureTextWidth(label) > width-labelReserve {
		label = truncateTextToWidth(label, width-labelReserve)
	}

	if i == in.Selected {
		return Segment{Text: fitToWidth(selectedMarker+label, width), Style: StyleSelected}
	}

	style := StyleNormal
	if entry.IsDir() {
		style = StyleDirectory
	}
	return Segment{Text: fitToWidth(unselectedMarker+label, width), Style: style}
}

// fitRow clips or pads the row so its total width is exactly w.
func fitRow(row Row, w int) Row {
	out := make(Row, 0, len(row))
	used := 0
	for _, seg := range row {
		if used >= w {
			break
		}
		text := clipTextToWidth(seg.Text, w-used)
		used += measureTextWidth(text)
		out = append(out, Segment{Text: text, Style: seg.Style})
	}
	if used < w {
		out = append(out, Segment{Text: strings.Repeat(" ", w-used), Style: StyleNormal})
	}
	return out
}
