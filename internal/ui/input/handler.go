package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twopane/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan<- statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan<- statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input; unrecognised keys are ignored.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ActivateAction{}

	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return true
		}
		switch ev.Rune() {
		case 'h', 'H':
			ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
	}
	return true
}
