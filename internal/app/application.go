package app

import (
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twopane/internal/state"
	inputui "github.com/kk-code-lab/twopane/internal/ui/input"
	renderui "github.com/kk-code-lab/twopane/internal/ui/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = time.Second

// Options configures a new Application.
type Options struct {
	StartPath  string
	ShowHidden bool
	Palette    renderui.Palette
	Language   language.Tag
	TimeFormat statepkg.TimeFormatter
	Logger     logrus.FieldLogger
	// Screen overrides the terminal; nil opens the controlling terminal.
	Screen tcell.Screen
}

// actionReducer applies actions to the navigation state.
type actionReducer interface {
	Reduce(state *statepkg.AppState, action statepkg.Action) (*statepkg.AppState, error)
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    actionReducer
	renderer   *renderui.Renderer
	previews   *statepkg.PreviewBuilder
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	logger     logrus.FieldLogger
	shouldQuit bool

	noticeTimer *time.Timer
	noticeCh    <-chan time.Time

	finiOnce sync.Once
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.finiOnce.Do(app.screen.Fini)
	return nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func previewLanguage(tag language.Tag) language.Tag {
	if tag == language.Und {
		return language.English
	}
	return tag
}
