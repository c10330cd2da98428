package app

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twopane/internal/state"
	"github.com/kk-code-lab/twopane/internal/ui/input"
	renderui "github.com/kk-code-lab/twopane/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// NewApplication opens the screen in raw mode and builds the initial state.
// The caller must Close the application to restore the terminal.
func NewApplication(opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	tag := previewLanguage(opts.Language)
	palette := opts.Palette.Merge(renderui.DefaultPalette())

	state := statepkg.NewAppState(opts.StartPath, opts.ShowHidden)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen, renderui.NewColorTheme(palette)),
		previews: statepkg.NewPreviewBuilder(tag, opts.TimeFormat),
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
		logger:   logger,
	}

	logger.WithFields(logrus.Fields{
		"path":   state.CurrentPath,
		"hidden": state.ShowHidden,
		"width":  w,
		"height": h,
	}).Info("browser started")
	return app, nil
}

// Run processes events until quit. The terminal is restored on return,
// including when a panic unwinds through Run.
func (app *Application) Run() {
	defer func() {
		_ = app.Close()
	}()

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, quitSignals()...)
	defer signal.Stop(sigCh)

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-app.noticeCh:
			app.dismissNotice()
			renderPending = true
		case sig := <-sigCh:
			app.logger.WithField("signal", sig.String()).Info("terminating on signal")
			app.shouldQuit = true
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.stopNoticeTimer()
	app.logger.WithField("path", app.state.CurrentPath).Info("browser stopped")
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.ResizeAction:
		if app.screen != nil {
			app.screen.Sync()
		}
	default:
		// any other command replaces a pending notice with the fresh view
		if app.state.Notice != "" {
			app.dismissNotice()
		}
	}

	prevPath := app.state.CurrentPath
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.handleReduceError(err)
		return true
	}

	if app.state.CurrentPath != prevPath {
		app.logger.WithFields(logrus.Fields{
			"from": prevPath,
			"to":   app.state.CurrentPath,
		}).Debug("directory changed")
	}
	return true
}

func (app *Application) handleReduceError(err error) {
	var navErr *statepkg.NavigationError
	if errors.As(err, &navErr) {
		app.logger.WithError(err).Warn("navigation rejected")
		app.showNotice(navErr.Notice())
		return
	}
	app.logger.WithError(err).Error("action failed")
	app.showNotice("❌ " + err.Error())
}

func (app *Application) showNotice(text string) {
	app.state.Notice = text
	app.stopNoticeTimer()
	app.noticeTimer = time.NewTimer(noticeDuration)
	app.noticeCh = app.noticeTimer.C
}

func (app *Application) dismissNotice() {
	app.stopNoticeTimer()
	_, _ = app.reducer.Reduce(app.state, statepkg.DismissNoticeAction{})
}

func (app *Application) stopNoticeTimer() {
	if app.noticeTimer != nil {
		app.noticeTimer.Stop()
		app.noticeTimer = nil
	}
	app.noticeCh = nil
}

// render derives a fresh listing and preview and paints the full frame at
// the last reported terminal size.
func (app *Application) render() {
	app.renderer.Render(composeFrame(app.state, app.previews))
}

func composeFrame(state *statepkg.AppState, previews *statepkg.PreviewBuilder) renderui.Frame {
	entries := state.Entries()
	return renderui.ComposeFrame(renderui.FrameInput{
		Path:       state.CurrentPath,
		ShowHidden: state.ShowHidden,
		Entries:    entries,
		Selected:   state.Selection(len(entries)),
		Preview:    previews.Build(state.SelectedEntry(entries), state.CurrentPath),
		Notice:     state.Notice,
		Width:      state.ScreenWidth,
		Height:     state.ScreenHeight,
	})
}
