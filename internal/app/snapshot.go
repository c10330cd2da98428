package app

import (
	"fmt"
	"io"

	statepkg "github.com/kk-code-lab/twopane/internal/state"
	renderui "github.com/kk-code-lab/twopane/internal/ui/render"
)

// WriteSnapshot renders the startup frame for opts at width x height to w
// without touching the terminal mode.
func WriteSnapshot(w io.Writer, opts Options, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", width, height)
	}

	tag := previewLanguage(opts.Language)

	state := statepkg.NewAppState(opts.StartPath, opts.ShowHidden)
	state.ScreenWidth = width
	state.ScreenHeight = height
	frame := composeFrame(state, statepkg.NewPreviewBuilder(tag, opts.TimeFormat))
	return renderui.WriteANSI(w, frame, opts.Palette.Merge(renderui.DefaultPalette()))
}
